package bubblegum

import (
	"context"
	"log/slog"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bubblegum-indexer/common/errs"
	"github.com/gaze-network/bubblegum-indexer/core/dispatcher"
	"github.com/gaze-network/bubblegum-indexer/core/messenger"
	"github.com/gaze-network/bubblegum-indexer/core/types"
	"github.com/gaze-network/bubblegum-indexer/internal/taskqueue"
	"github.com/gaze-network/bubblegum-indexer/modules/bubblegum/datagateway"
	"github.com/gaze-network/bubblegum-indexer/modules/bubblegum/internal/bubblegum"
	"github.com/gaze-network/bubblegum-indexer/modules/bubblegum/internal/entity"
	"github.com/gaze-network/bubblegum-indexer/pkg/logger"
	"github.com/gaze-network/bubblegum-indexer/pkg/logger/slogx"
	"github.com/gaze-network/bubblegum-indexer/pkg/metrics"
	"github.com/gaze-network/bubblegum-indexer/pkg/solana"
)

var _ dispatcher.Processor[*types.TransactionInfo] = (*Processor)(nil)

// Processor applies the Bubblegum instructions of the TRANSACTION stream.
type Processor struct {
	bubblegumDg datagateway.BubblegumDataGateway
	taskQueue   taskqueue.Enqueuer
	metrics     *metrics.Metrics
}

func NewProcessor(bubblegumDg datagateway.BubblegumDataGateway, taskQueue taskqueue.Enqueuer, m *metrics.Metrics) *Processor {
	return &Processor{
		bubblegumDg: bubblegumDg,
		taskQueue:   taskQueue,
		metrics:     m,
	}
}

func (p *Processor) Name() string {
	return "bubblegum"
}

func (p *Processor) Shutdown(ctx context.Context) error {
	logger.InfoContext(ctx, "Bubblegum processor stopped")
	return nil
}

// Process applies every Bubblegum instruction of tx, each in its own
// database transaction. Every instruction is decoded before the first write:
// a malformed instruction skips the whole transaction with no state touched,
// an unsupported one skips only itself. Database failures abort the
// transaction.
func (p *Processor) Process(ctx context.Context, tx *types.TransactionInfo) error {
	if tx.IsVote {
		return nil
	}
	ctx = logger.WithContext(ctx,
		slog.String("signature", tx.Signature),
		slogx.Uint64("slot", tx.Slot),
	)

	bundles, err := p.decode(ctx, tx)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := p.bubblegumDg.UpsertRawTransaction(ctx, entity.RawTransaction{
		Signature: tx.Signature,
		Slot:      tx.Slot,
	}); err != nil {
		return errors.Wrap(err, "failed to record transaction")
	}

	for _, bundle := range bundles {
		if err := p.processBundle(ctx, bundle); err != nil {
			return errors.WithStack(err)
		}
	}

	if err := p.bubblegumDg.UpsertRawTransaction(ctx, entity.RawTransaction{
		Signature: tx.Signature,
		Slot:      tx.Slot,
		Processed: true,
	}); err != nil {
		return errors.Wrap(err, "failed to mark transaction processed")
	}
	p.metrics.SetCurrentSlot(messenger.StreamTransaction.String(), tx.Slot)
	return nil
}

// decode routes and validates every Bubblegum instruction of tx.
func (p *Processor) decode(ctx context.Context, tx *types.TransactionInfo) ([]*bubblegum.Bundle, error) {
	if tx.Slot > math.MaxInt64 {
		return nil, errors.Wrapf(errs.ParsingError, "slot %d out of range", tx.Slot)
	}
	ibs, err := bubblegum.Route(tx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to route instructions")
	}

	bundles := make([]*bubblegum.Bundle, 0, len(ibs))
	for _, ib := range ibs {
		bundle, err := decodeBundle(ib)
		if err == nil {
			bundles = append(bundles, bundle)
			continue
		}
		if !errors.Is(err, errs.NotImplemented) {
			p.metrics.RecordBundle(instructionLabel(ib), metrics.OutcomeSkipped)
			return nil, errors.Wrapf(err, "instruction %v", ib.Path)
		}
		logger.WarnContext(ctx, "Skipping unsupported instruction",
			slog.Any("path", ib.Path),
			slogx.Error(err),
		)
		p.metrics.RecordBundle(instructionLabel(ib), metrics.OutcomeSkipped)
	}
	return bundles, nil
}

func decodeBundle(ib bubblegum.InstructionBundle) (*bubblegum.Bundle, error) {
	bundle, err := bubblegum.Decode(ib)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if err := bundle.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}
	return bundle, nil
}

func instructionLabel(ib bubblegum.InstructionBundle) string {
	kind, _ := bubblegum.ParseInstructionKind(ib.Data)
	return kind.String()
}

func (p *Processor) processBundle(ctx context.Context, bundle *bubblegum.Bundle) error {
	ctx = logger.WithContext(ctx, slog.String("instruction", bundle.Kind.String()))

	outcome, tasks, err := p.applyBundle(ctx, bundle)
	if err != nil {
		return errors.WithStack(err)
	}
	p.metrics.RecordBundle(bundle.Kind.String(), outcome)

	// tasks only reference committed state
	for _, task := range tasks {
		p.enqueue(ctx, task)
	}
	return nil
}

// applyBundle sequences and applies one bundle inside one database
// transaction. An update of an asset that does not exist yet is rolled back
// together with its change log, so a replay after the mint is not taken for
// a duplicate.
func (p *Processor) applyBundle(ctx context.Context, bundle *bubblegum.Bundle) (outcome string, tasks []taskqueue.Task, err error) {
	tx, err := p.bubblegumDg.BeginBubblegumTx(ctx)
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil {
			logger.WarnContext(ctx, "Failed to rollback transaction", slogx.Error(err))
		}
	}()

	var seq uint64
	if bundle.TreeUpdate != nil {
		var accepted bool
		seq, accepted, err = p.sequence(ctx, tx, bundle)
		if err != nil {
			return "", nil, errors.WithStack(err)
		}
		if !accepted {
			logger.DebugContext(ctx, "Change log already applied",
				slog.String("tree", bundle.TreeUpdate.ID.String()),
				slogx.Uint64("seq", bundle.TreeUpdate.Seq),
			)
			return metrics.OutcomeDuplicate, nil, nil
		}
	}

	outcome, tasks, err = p.apply(ctx, tx, bundle, seq)
	if err != nil {
		return "", nil, errors.WithStack(err)
	}
	if outcome == metrics.OutcomeMissing {
		return outcome, nil, nil
	}
	if err := tx.Commit(ctx); err != nil {
		return "", nil, errors.Wrap(err, "failed to commit transaction")
	}
	return outcome, tasks, nil
}

func (p *Processor) sequence(ctx context.Context, tx datagateway.BubblegumDataGatewayWithTx, bundle *bubblegum.Bundle) (uint64, bool, error) {
	cl := bundle.TreeUpdate
	changelog := entity.Changelog{
		TreeID:      cl.ID,
		Seq:         cl.Seq,
		LeafIndex:   cl.Index,
		NodeIndex:   cl.NodeIndex(),
		Hash:        cl.LeafHash(),
		PathNodes:   make([][32]byte, 0, len(cl.Path)),
		PathIndexes: make([]uint32, 0, len(cl.Path)),
		Slot:        bundle.Slot,
	}
	for _, node := range cl.Path {
		changelog.PathNodes = append(changelog.PathNodes, node.Node)
		changelog.PathIndexes = append(changelog.PathIndexes, node.Index)
	}

	accepted, err := tx.InsertChangelog(ctx, changelog)
	if err != nil {
		return 0, false, errors.WithStack(err)
	}
	return cl.Seq, accepted, nil
}

func (p *Processor) apply(ctx context.Context, tx datagateway.BubblegumDataGatewayWithTx, bundle *bubblegum.Bundle, seq uint64) (string, []taskqueue.Task, error) {
	switch bundle.Kind {
	case bubblegum.InstructionMintV1:
		return p.processMintV1(ctx, tx, bundle, seq)
	case bubblegum.InstructionTransfer:
		outcome, err := p.processTransfer(ctx, tx, bundle, seq)
		return outcome, nil, err
	case bubblegum.InstructionDelegate:
		outcome, err := p.processDelegate(ctx, tx, bundle, seq)
		return outcome, nil, err
	case bubblegum.InstructionBurn:
		outcome, err := p.processBurn(ctx, tx, bundle, seq)
		return outcome, nil, err
	case bubblegum.InstructionRedeem:
		outcome, err := p.processRedeem(ctx, tx, bundle, seq)
		return outcome, nil, err
	case bubblegum.InstructionDecompressV1:
		outcome, err := p.processDecompress(ctx, tx, bundle)
		return outcome, nil, err
	case bubblegum.InstructionVerifyCollection, bubblegum.InstructionSetAndVerifyCollection:
		outcome, err := p.processCollection(ctx, tx, bundle, seq)
		return outcome, nil, err
	case bubblegum.InstructionUnknown:
	}
	return "", nil, errors.Wrapf(errs.NotImplemented, "no handler for %s", bundle.Kind)
}

// updateOutcome classifies a fenced update. Zero affected rows is either a
// stale write or an update of an asset that was never minted here.
func (p *Processor) updateOutcome(ctx context.Context, tx datagateway.BubblegumDataGatewayWithTx, id solana.Pubkey, seq uint64, affected int64) (string, error) {
	if affected > 0 {
		return metrics.OutcomeApplied, nil
	}
	exists, err := tx.AssetExists(ctx, id)
	if err != nil {
		return "", errors.WithStack(err)
	}
	if !exists {
		logger.DebugContext(ctx, "Asset not found, dropping update",
			slog.String("asset", id.String()),
			slogx.Uint64("seq", seq),
		)
		return metrics.OutcomeMissing, nil
	}
	logger.DebugContext(ctx, "Stale update ignored",
		slog.String("asset", id.String()),
		slogx.Uint64("seq", seq),
	)
	return metrics.OutcomeStale, nil
}

func (p *Processor) enqueue(ctx context.Context, task taskqueue.Task) {
	if p.taskQueue == nil {
		return
	}
	if err := p.taskQueue.Enqueue(ctx, task); err != nil {
		logger.WarnContext(ctx, "Failed to enqueue task",
			slog.String("task", task.Name),
			slogx.Error(err),
		)
		return
	}
	p.metrics.RecordTaskEnqueued(task.Name)
}

// normalizeDelegate stores no delegate when the owner delegates to itself.
func normalizeDelegate(owner, delegate solana.Pubkey) *solana.Pubkey {
	if delegate == owner {
		return nil
	}
	return &delegate
}
