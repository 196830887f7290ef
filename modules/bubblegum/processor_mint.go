package bubblegum

import (
	"context"
	"log/slog"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bubblegum-indexer/common/errs"
	"github.com/gaze-network/bubblegum-indexer/internal/taskqueue"
	"github.com/gaze-network/bubblegum-indexer/modules/bubblegum/datagateway"
	"github.com/gaze-network/bubblegum-indexer/modules/bubblegum/internal/bubblegum"
	"github.com/gaze-network/bubblegum-indexer/modules/bubblegum/internal/entity"
	"github.com/gaze-network/bubblegum-indexer/pkg/logger"
	"github.com/gaze-network/bubblegum-indexer/pkg/logger/slogx"
	"github.com/gaze-network/bubblegum-indexer/pkg/metrics"
	"github.com/gaze-network/bubblegum-indexer/pkg/solana"
	"github.com/samber/lo"
)

// processMintV1 creates the asset and its satellite rows. Every write is
// insert-if-absent, so the first accepted mint of an id wins.
func (p *Processor) processMintV1(ctx context.Context, tx datagateway.BubblegumDataGatewayWithTx, bundle *bubblegum.Bundle, seq uint64) (string, []taskqueue.Task, error) {
	if bundle.Metadata == nil {
		return "", nil, errors.Wrap(errs.ParsingError, "mint_v1 without metadata")
	}
	tree, err := bundle.MerkleTree()
	if err != nil {
		return "", nil, errors.WithStack(err)
	}
	authority, err := bundle.TreeAuthority()
	if err != nil {
		return "", nil, errors.WithStack(err)
	}
	leaf := bundle.LeafUpdate.Schema
	m := bundle.Metadata

	data := newAssetData(leaf.ID, m, bundle.Slot)
	if err := tx.InsertAssetData(ctx, data); err != nil {
		return "", nil, errors.Wrap(err, "failed to insert asset data")
	}

	asset := entity.Asset{
		ID:                leaf.ID,
		Owner:             leaf.Owner,
		Delegate:          normalizeDelegate(leaf.Owner, leaf.Delegate),
		OwnerType:         entity.OwnerTypeSingle,
		Supply:            1,
		Compressed:        true,
		TreeID:            tree,
		Nonce:             leaf.Nonce,
		LeafHash:          bundle.LeafUpdate.LeafHash[:],
		RoyaltyTargetType: entity.RoyaltyTargetCreators,
		RoyaltyAmount:     int32(m.SellerFeeBasisPoints),
		ChainDataID:       leaf.ID,
		Seq:               seq,
		SlotUpdated:       bundle.Slot,
	}
	created, err := tx.InsertAsset(ctx, asset)
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to insert asset")
	}
	if !created {
		logger.DebugContext(ctx, "Asset already minted", slog.String("asset", leaf.ID.String()))
		return metrics.OutcomeDuplicate, nil, nil
	}

	if len(m.Creators) > 0 {
		creators := lo.Map(m.Creators, func(c bubblegum.Creator, _ int) entity.AssetCreator {
			return entity.AssetCreator{
				AssetID:  leaf.ID,
				Creator:  c.Address,
				Share:    c.Share,
				Verified: c.Verified,
				Seq:      seq,
			}
		})
		if err := tx.InsertAssetCreators(ctx, creators); err != nil {
			return "", nil, errors.Wrap(err, "failed to insert asset creators")
		}
	}

	if err := tx.InsertAssetAuthority(ctx, entity.AssetAuthority{
		AssetID:   leaf.ID,
		Authority: authority,
		Seq:       seq,
	}); err != nil {
		return "", nil, errors.Wrap(err, "failed to insert asset authority")
	}

	// unverified collections are only claims of the minter
	if m.Collection != nil && m.Collection.Verified {
		if err := tx.InsertAssetGrouping(ctx, entity.AssetGrouping{
			AssetID:    leaf.ID,
			GroupKey:   entity.GroupKeyCollection,
			GroupValue: m.Collection.Key.String(),
			Seq:        seq,
		}); err != nil {
			return "", nil, errors.Wrap(err, "failed to insert asset grouping")
		}
	}

	var tasks []taskqueue.Task
	if data.MetadataURL != "" {
		task, err := NewDownloadMetadataTask(leaf.ID, data.MetadataURL)
		if err != nil {
			logger.WarnContext(ctx, "Failed to create metadata task",
				slog.String("asset", leaf.ID.String()),
				slogx.Error(err),
			)
		} else {
			tasks = append(tasks, task)
		}
	}
	return metrics.OutcomeApplied, tasks, nil
}

func newAssetData(id solana.Pubkey, m *bubblegum.MetadataArgs, slot uint64) entity.AssetData {
	chainData := entity.ChainData{
		Name:                trimPadding(m.Name),
		Symbol:              trimPadding(m.Symbol),
		EditionNonce:        m.EditionNonce,
		PrimarySaleHappened: m.PrimarySaleHappened,
	}
	if m.TokenStandard != nil {
		chainData.TokenStandard = lo.ToPtr(m.TokenStandard.String())
	}
	if m.Uses != nil {
		chainData.Uses = &entity.Uses{
			UseMethod: m.Uses.UseMethod.String(),
			Remaining: m.Uses.Remaining,
			Total:     m.Uses.Total,
		}
	}
	mutability := entity.MutabilityOf(m.IsMutable)
	return entity.AssetData{
		ID:                  id,
		ChainData:           chainData,
		ChainDataMutability: mutability,
		MetadataURL:         trimPadding(m.URI),
		Metadata:            entity.MetadataProcessing,
		MetadataMutability:  mutability,
		SlotUpdated:         slot,
	}
}

// trimPadding drops the NUL padding of fixed-size on-chain strings.
func trimPadding(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\x00", ""))
}
