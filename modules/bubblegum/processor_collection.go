package bubblegum

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bubblegum-indexer/modules/bubblegum/datagateway"
	"github.com/gaze-network/bubblegum-indexer/modules/bubblegum/internal/bubblegum"
	"github.com/gaze-network/bubblegum-indexer/modules/bubblegum/internal/entity"
	"github.com/gaze-network/bubblegum-indexer/pkg/metrics"
)

// processCollection handles VerifyCollection and SetAndVerifyCollection:
// the leaf is replaced and the asset joins the collection.
func (p *Processor) processCollection(ctx context.Context, tx datagateway.BubblegumDataGatewayWithTx, bundle *bubblegum.Bundle, seq uint64) (string, error) {
	collection, err := bundle.CollectionMint()
	if err != nil {
		return "", errors.WithStack(err)
	}
	update := leafUpdate(bundle, seq)

	affected, err := tx.UpdateAssetLeaf(ctx, datagateway.UpdateAssetLeafParams{AssetUpdate: update})
	if err != nil {
		return "", errors.Wrap(err, "failed to update asset leaf")
	}
	outcome, err := p.updateOutcome(ctx, tx, update.ID, seq, affected)
	if err != nil {
		return "", errors.WithStack(err)
	}
	if outcome == metrics.OutcomeMissing {
		return outcome, nil
	}

	// the grouping row carries its own fence, a stale leaf does not imply a
	// stale grouping
	grouped, err := tx.UpsertAssetGrouping(ctx, entity.AssetGrouping{
		AssetID:    update.ID,
		GroupKey:   entity.GroupKeyCollection,
		GroupValue: collection.String(),
		Seq:        seq,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to upsert asset grouping")
	}
	if grouped > 0 {
		return metrics.OutcomeApplied, nil
	}
	return outcome, nil
}
