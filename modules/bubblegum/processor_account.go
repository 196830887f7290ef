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
	"github.com/gaze-network/bubblegum-indexer/modules/bubblegum/datagateway"
	"github.com/gaze-network/bubblegum-indexer/modules/bubblegum/internal/bubblegum"
	"github.com/gaze-network/bubblegum-indexer/modules/bubblegum/internal/entity"
	"github.com/gaze-network/bubblegum-indexer/pkg/logger"
	"github.com/gaze-network/bubblegum-indexer/pkg/logger/slogx"
	"github.com/gaze-network/bubblegum-indexer/pkg/metrics"
	"github.com/gaze-network/bubblegum-indexer/pkg/solana"
)

var _ dispatcher.Processor[*types.AccountInfo] = (*AccountProcessor)(nil)

// AccountProcessor keeps the TreeConfig accounts of the ACCOUNT stream.
// Accounts of other programs and other Bubblegum accounts are ignored.
type AccountProcessor struct {
	bubblegumDg datagateway.BubblegumDataGateway
	metrics     *metrics.Metrics
}

func NewAccountProcessor(bubblegumDg datagateway.BubblegumDataGateway, m *metrics.Metrics) *AccountProcessor {
	return &AccountProcessor{
		bubblegumDg: bubblegumDg,
		metrics:     m,
	}
}

func (p *AccountProcessor) Name() string {
	return "bubblegum_account"
}

func (p *AccountProcessor) Shutdown(ctx context.Context) error {
	logger.InfoContext(ctx, "Bubblegum account processor stopped")
	return nil
}

func (p *AccountProcessor) Process(ctx context.Context, acc *types.AccountInfo) error {
	if acc.Owner != solana.BubblegumProgramID || !bubblegum.IsTreeConfig(acc.Data) {
		return nil
	}
	ctx = logger.WithContext(ctx,
		slog.String("account", acc.Pubkey.String()),
		slogx.Uint64("slot", acc.Slot),
	)

	if acc.Slot > math.MaxInt64 || acc.WriteVersion > math.MaxInt64 {
		return errors.Wrapf(errs.ParsingError, "account version out of range: slot %d, write version %d", acc.Slot, acc.WriteVersion)
	}
	cfg, err := bubblegum.ParseTreeConfig(acc.Data)
	if err != nil {
		return errors.WithStack(err)
	}

	// (slot, write_version) orders account snapshots
	affected, err := p.bubblegumDg.UpsertTreeConfig(ctx, entity.TreeConfig{
		ID:                acc.Pubkey,
		TreeCreator:       cfg.TreeCreator,
		TreeDelegate:      cfg.TreeDelegate,
		TotalMintCapacity: cfg.TotalMintCapacity,
		NumMinted:         cfg.NumMinted,
		IsPublic:          cfg.IsPublic,
		SlotUpdated:       acc.Slot,
		WriteVersion:      acc.WriteVersion,
	})
	if err != nil {
		return errors.Wrap(err, "failed to upsert tree config")
	}

	outcome := metrics.OutcomeApplied
	if affected == 0 {
		logger.DebugContext(ctx, "Stale tree config ignored", slogx.Uint64("write_version", acc.WriteVersion))
		outcome = metrics.OutcomeStale
	}
	p.metrics.RecordBundle("tree_config", outcome)
	p.metrics.SetCurrentSlot(messenger.StreamAccount.String(), acc.Slot)
	return nil
}
