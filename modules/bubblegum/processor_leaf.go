package bubblegum

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bubblegum-indexer/modules/bubblegum/datagateway"
	"github.com/gaze-network/bubblegum-indexer/modules/bubblegum/internal/bubblegum"
	"github.com/gaze-network/bubblegum-indexer/pkg/logger"
	"github.com/gaze-network/bubblegum-indexer/pkg/metrics"
)

func leafUpdate(bundle *bubblegum.Bundle, seq uint64) datagateway.AssetUpdate {
	return datagateway.AssetUpdate{
		ID:       bundle.LeafUpdate.Schema.ID,
		LeafHash: bundle.LeafUpdate.LeafHash[:],
		Seq:      seq,
		Slot:     bundle.Slot,
	}
}

// processTransfer moves the asset to the owner of the new leaf and clears
// its delegate.
func (p *Processor) processTransfer(ctx context.Context, tx datagateway.BubblegumDataGatewayWithTx, bundle *bubblegum.Bundle, seq uint64) (string, error) {
	update := leafUpdate(bundle, seq)
	affected, err := tx.TransferAsset(ctx, datagateway.TransferAssetParams{
		AssetUpdate: update,
		Owner:       bundle.LeafUpdate.Schema.Owner,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to transfer asset")
	}
	return p.updateOutcome(ctx, tx, update.ID, seq, affected)
}

func (p *Processor) processDelegate(ctx context.Context, tx datagateway.BubblegumDataGatewayWithTx, bundle *bubblegum.Bundle, seq uint64) (string, error) {
	leaf := bundle.LeafUpdate.Schema
	update := leafUpdate(bundle, seq)
	affected, err := tx.DelegateAsset(ctx, datagateway.DelegateAssetParams{
		AssetUpdate: update,
		Owner:       leaf.Owner,
		Delegate:    normalizeDelegate(leaf.Owner, leaf.Delegate),
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to delegate asset")
	}
	return p.updateOutcome(ctx, tx, update.ID, seq, affected)
}

// processBurn marks the asset burnt. Burn emits no leaf, the asset is
// derived from the replaced leaf index.
func (p *Processor) processBurn(ctx context.Context, tx datagateway.BubblegumDataGatewayWithTx, bundle *bubblegum.Bundle, seq uint64) (string, error) {
	id, err := bundle.AssetID()
	if err != nil {
		return "", errors.WithStack(err)
	}
	affected, err := tx.BurnAsset(ctx, datagateway.BurnAssetParams{
		ID:   id,
		Seq:  seq,
		Slot: bundle.Slot,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to burn asset")
	}
	return p.updateOutcome(ctx, tx, id, seq, affected)
}

// processRedeem records the voucher that a later decompression consumes.
func (p *Processor) processRedeem(ctx context.Context, tx datagateway.BubblegumDataGatewayWithTx, bundle *bubblegum.Bundle, seq uint64) (string, error) {
	id, err := bundle.AssetID()
	if err != nil {
		return "", errors.WithStack(err)
	}
	voucher, err := bundle.Voucher()
	if err != nil {
		return "", errors.WithStack(err)
	}
	hash := bundle.TreeUpdate.LeafHash()
	affected, err := tx.RedeemAsset(ctx, datagateway.RedeemAssetParams{
		AssetUpdate: datagateway.AssetUpdate{
			ID:       id,
			LeafHash: hash[:],
			Seq:      seq,
			Slot:     bundle.Slot,
		},
		Voucher: voucher,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to redeem asset")
	}
	return p.updateOutcome(ctx, tx, id, seq, affected)
}

// processDecompress turns a redeemed asset into a regular token. The
// instruction carries no tree update, so the voucher is the only link to the
// asset and the compressed flag is the only guard.
func (p *Processor) processDecompress(ctx context.Context, tx datagateway.BubblegumDataGatewayWithTx, bundle *bubblegum.Bundle) (string, error) {
	voucher, err := bundle.Voucher()
	if err != nil {
		return "", errors.WithStack(err)
	}
	mint, err := bundle.Mint()
	if err != nil {
		return "", errors.WithStack(err)
	}
	affected, err := tx.DecompressAsset(ctx, datagateway.DecompressAssetParams{
		Voucher: voucher,
		Mint:    mint,
		Slot:    bundle.Slot,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to decompress asset")
	}
	if affected == 0 {
		logger.DebugContext(ctx, "No redeemed asset for voucher",
			slog.String("voucher", voucher.String()),
		)
		return metrics.OutcomeMissing, nil
	}
	return metrics.OutcomeApplied, nil
}
