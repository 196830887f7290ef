package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bubblegum-indexer/common/errs"
	"github.com/gaze-network/bubblegum-indexer/internal/postgres"
	"github.com/gaze-network/bubblegum-indexer/modules/bubblegum/datagateway"
	"github.com/gaze-network/bubblegum-indexer/modules/bubblegum/internal/entity"
	"github.com/gaze-network/bubblegum-indexer/modules/bubblegum/repository/postgres/gen"
	"github.com/gaze-network/bubblegum-indexer/pkg/solana"
	"github.com/jackc/pgx/v5"
	"github.com/samber/lo"
)

var _ datagateway.BubblegumDataGatewayWithTx = (*Repository)(nil)

type Repository struct {
	db      postgres.DB
	queries *gen.Queries
	tx      pgx.Tx
}

func NewRepository(db postgres.DB) *Repository {
	return &Repository{
		db:      db,
		queries: gen.New(db),
	}
}

// dbError marks a failed statement as a DatabaseError so the stream stops
// instead of skipping the message.
func dbError(err error, msg string) error {
	return errors.Wrapf(errs.DatabaseError, "%s: %v", msg, err)
}

func (repo *Repository) InsertChangelog(ctx context.Context, changelog entity.Changelog) (bool, error) {
	affected, err := repo.queries.InsertChangelog(ctx, mapChangelogParams(changelog))
	if err != nil {
		return false, dbError(err, "cannot insert changelog")
	}
	return affected > 0, nil
}

func (repo *Repository) GetChangelogs(ctx context.Context, treeID solana.Pubkey) ([]entity.Changelog, error) {
	rows, err := repo.queries.GetChangelogs(ctx, treeID.Bytes())
	if err != nil {
		return nil, dbError(err, "cannot get changelogs")
	}
	return lo.Map(rows, func(item gen.Changelog, _ int) entity.Changelog {
		return mapChangelog(item)
	}), nil
}

func (repo *Repository) InsertAssetData(ctx context.Context, data entity.AssetData) error {
	params, err := mapAssetDataParams(data)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := repo.queries.InsertAssetData(ctx, params); err != nil {
		return dbError(err, "cannot insert asset data")
	}
	return nil
}

func (repo *Repository) GetAssetData(ctx context.Context, id solana.Pubkey) (*entity.AssetData, error) {
	row, err := repo.queries.GetAssetData(ctx, id.Bytes())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.Wrapf(errs.NotFound, "asset data %s", id)
		}
		return nil, dbError(err, "cannot get asset data")
	}
	data, err := mapAssetData(row)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &data, nil
}

func (repo *Repository) SetAssetMetadata(ctx context.Context, arg datagateway.SetAssetMetadataParams) (int64, error) {
	affected, err := repo.queries.SetAssetMetadata(ctx, gen.SetAssetMetadataParams{
		ID:                arg.ID.Bytes(),
		Metadata:          arg.Metadata,
		MetadataFetchedAt: timestamptz(arg.FetchedAt),
	})
	if err != nil {
		return 0, dbError(err, "cannot set asset metadata")
	}
	return affected, nil
}

func (repo *Repository) InsertAsset(ctx context.Context, asset entity.Asset) (bool, error) {
	affected, err := repo.queries.InsertAsset(ctx, mapAssetParams(asset))
	if err != nil {
		return false, dbError(err, "cannot insert asset")
	}
	return affected > 0, nil
}

func (repo *Repository) GetAsset(ctx context.Context, id solana.Pubkey) (*entity.Asset, error) {
	row, err := repo.queries.GetAsset(ctx, id.Bytes())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.Wrapf(errs.NotFound, "asset %s", id)
		}
		return nil, dbError(err, "cannot get asset")
	}
	asset := mapAsset(row)
	return &asset, nil
}

func (repo *Repository) AssetExists(ctx context.Context, id solana.Pubkey) (bool, error) {
	exists, err := repo.queries.AssetExists(ctx, id.Bytes())
	if err != nil {
		return false, dbError(err, "cannot check asset")
	}
	return exists, nil
}

func (repo *Repository) TransferAsset(ctx context.Context, arg datagateway.TransferAssetParams) (int64, error) {
	affected, err := repo.queries.TransferAsset(ctx, gen.TransferAssetParams{
		ID:          arg.ID.Bytes(),
		Owner:       arg.Owner.Bytes(),
		LeafHash:    arg.LeafHash,
		Seq:         int64(arg.Seq),
		SlotUpdated: int64(arg.Slot),
	})
	if err != nil {
		return 0, dbError(err, "cannot transfer asset")
	}
	return affected, nil
}

func (repo *Repository) DelegateAsset(ctx context.Context, arg datagateway.DelegateAssetParams) (int64, error) {
	affected, err := repo.queries.DelegateAsset(ctx, gen.DelegateAssetParams{
		ID:          arg.ID.Bytes(),
		Owner:       arg.Owner.Bytes(),
		Delegate:    optionalPubkey(arg.Delegate),
		LeafHash:    arg.LeafHash,
		Seq:         int64(arg.Seq),
		SlotUpdated: int64(arg.Slot),
	})
	if err != nil {
		return 0, dbError(err, "cannot delegate asset")
	}
	return affected, nil
}

func (repo *Repository) BurnAsset(ctx context.Context, arg datagateway.BurnAssetParams) (int64, error) {
	affected, err := repo.queries.BurnAsset(ctx, gen.BurnAssetParams{
		ID:          arg.ID.Bytes(),
		Seq:         int64(arg.Seq),
		SlotUpdated: int64(arg.Slot),
	})
	if err != nil {
		return 0, dbError(err, "cannot burn asset")
	}
	return affected, nil
}

func (repo *Repository) RedeemAsset(ctx context.Context, arg datagateway.RedeemAssetParams) (int64, error) {
	affected, err := repo.queries.RedeemAsset(ctx, gen.RedeemAssetParams{
		ID:          arg.ID.Bytes(),
		LeafHash:    arg.LeafHash,
		Voucher:     arg.Voucher.Bytes(),
		Seq:         int64(arg.Seq),
		SlotUpdated: int64(arg.Slot),
	})
	if err != nil {
		return 0, dbError(err, "cannot redeem asset")
	}
	return affected, nil
}

func (repo *Repository) DecompressAsset(ctx context.Context, arg datagateway.DecompressAssetParams) (int64, error) {
	affected, err := repo.queries.DecompressAsset(ctx, gen.DecompressAssetParams{
		Voucher:     arg.Voucher.Bytes(),
		SupplyMint:  arg.Mint.Bytes(),
		SlotUpdated: int64(arg.Slot),
	})
	if err != nil {
		return 0, dbError(err, "cannot decompress asset")
	}
	return affected, nil
}

func (repo *Repository) UpdateAssetLeaf(ctx context.Context, arg datagateway.UpdateAssetLeafParams) (int64, error) {
	affected, err := repo.queries.UpdateAssetLeaf(ctx, gen.UpdateAssetLeafParams{
		ID:          arg.ID.Bytes(),
		LeafHash:    arg.LeafHash,
		Seq:         int64(arg.Seq),
		SlotUpdated: int64(arg.Slot),
	})
	if err != nil {
		return 0, dbError(err, "cannot update asset leaf")
	}
	return affected, nil
}

func (repo *Repository) InsertAssetCreators(ctx context.Context, creators []entity.AssetCreator) error {
	// creators of one asset share the asset id and seq
	for assetID, group := range lo.GroupBy(creators, func(c entity.AssetCreator) solana.Pubkey { return c.AssetID }) {
		err := repo.queries.InsertAssetCreators(ctx, gen.InsertAssetCreatorsParams{
			AssetID:     assetID.Bytes(),
			CreatorArr:  lo.Map(group, func(c entity.AssetCreator, _ int) []byte { return c.Creator.Bytes() }),
			ShareArr:    lo.Map(group, func(c entity.AssetCreator, _ int) int32 { return int32(c.Share) }),
			VerifiedArr: lo.Map(group, func(c entity.AssetCreator, _ int) bool { return c.Verified }),
			Seq:         int64(group[0].Seq),
		})
		if err != nil {
			return dbError(err, "cannot insert asset creators")
		}
	}
	return nil
}

func (repo *Repository) GetAssetCreators(ctx context.Context, id solana.Pubkey) ([]entity.AssetCreator, error) {
	rows, err := repo.queries.GetAssetCreators(ctx, id.Bytes())
	if err != nil {
		return nil, dbError(err, "cannot get asset creators")
	}
	return lo.Map(rows, func(item gen.AssetCreator, _ int) entity.AssetCreator {
		return mapAssetCreator(item)
	}), nil
}

func (repo *Repository) InsertAssetAuthority(ctx context.Context, authority entity.AssetAuthority) error {
	err := repo.queries.InsertAssetAuthority(ctx, gen.InsertAssetAuthorityParams{
		AssetID:   authority.AssetID.Bytes(),
		Authority: authority.Authority.Bytes(),
		Seq:       int64(authority.Seq),
	})
	if err != nil {
		return dbError(err, "cannot insert asset authority")
	}
	return nil
}

func (repo *Repository) GetAssetAuthority(ctx context.Context, id solana.Pubkey) (*entity.AssetAuthority, error) {
	row, err := repo.queries.GetAssetAuthority(ctx, id.Bytes())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.Wrapf(errs.NotFound, "asset authority %s", id)
		}
		return nil, dbError(err, "cannot get asset authority")
	}
	return &entity.AssetAuthority{
		AssetID:   toPubkey(row.AssetID),
		Authority: toPubkey(row.Authority),
		Seq:       uint64(row.Seq),
	}, nil
}

func (repo *Repository) InsertAssetGrouping(ctx context.Context, grouping entity.AssetGrouping) error {
	err := repo.queries.InsertAssetGrouping(ctx, gen.InsertAssetGroupingParams(mapAssetGroupingParams(grouping)))
	if err != nil {
		return dbError(err, "cannot insert asset grouping")
	}
	return nil
}

func (repo *Repository) UpsertAssetGrouping(ctx context.Context, grouping entity.AssetGrouping) (int64, error) {
	affected, err := repo.queries.UpsertAssetGrouping(ctx, mapAssetGroupingParams(grouping))
	if err != nil {
		return 0, dbError(err, "cannot upsert asset grouping")
	}
	return affected, nil
}

func (repo *Repository) GetAssetGroupings(ctx context.Context, id solana.Pubkey) ([]entity.AssetGrouping, error) {
	rows, err := repo.queries.GetAssetGroupings(ctx, id.Bytes())
	if err != nil {
		return nil, dbError(err, "cannot get asset groupings")
	}
	return lo.Map(rows, func(item gen.AssetGrouping, _ int) entity.AssetGrouping {
		return entity.AssetGrouping{
			AssetID:    toPubkey(item.AssetID),
			GroupKey:   item.GroupKey,
			GroupValue: item.GroupValue,
			Seq:        uint64(item.Seq),
		}
	}), nil
}

func (repo *Repository) UpsertTreeConfig(ctx context.Context, config entity.TreeConfig) (int64, error) {
	affected, err := repo.queries.UpsertTreeConfig(ctx, mapTreeConfigParams(config))
	if err != nil {
		return 0, dbError(err, "cannot upsert tree config")
	}
	return affected, nil
}

func (repo *Repository) GetTreeConfig(ctx context.Context, id solana.Pubkey) (*entity.TreeConfig, error) {
	row, err := repo.queries.GetTreeConfig(ctx, id.Bytes())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.Wrapf(errs.NotFound, "tree config %s", id)
		}
		return nil, dbError(err, "cannot get tree config")
	}
	config := mapTreeConfig(row)
	return &config, nil
}

func (repo *Repository) UpsertRawTransaction(ctx context.Context, txn entity.RawTransaction) error {
	err := repo.queries.UpsertRawTxn(ctx, gen.UpsertRawTxnParams{
		Signature: txn.Signature,
		Slot:      int64(txn.Slot),
		Processed: txn.Processed,
	})
	if err != nil {
		return dbError(err, "cannot upsert raw transaction")
	}
	return nil
}

func (repo *Repository) GetRawTransaction(ctx context.Context, signature string) (*entity.RawTransaction, error) {
	row, err := repo.queries.GetRawTxn(ctx, signature)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.Wrapf(errs.NotFound, "raw transaction %s", signature)
		}
		return nil, dbError(err, "cannot get raw transaction")
	}
	return &entity.RawTransaction{
		Signature: row.Signature,
		Slot:      uint64(row.Slot),
		Processed: row.Processed,
	}, nil
}
