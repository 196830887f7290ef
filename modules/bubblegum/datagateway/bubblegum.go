package datagateway

import (
	"context"
	"time"

	"github.com/gaze-network/bubblegum-indexer/modules/bubblegum/internal/entity"
	"github.com/gaze-network/bubblegum-indexer/pkg/solana"
)

type BubblegumDataGateway interface {
	BubblegumReaderDataGateway
	BubblegumWriterDataGateway

	// BeginBubblegumTx returns a new BubblegumDataGateway with transaction enabled. All write operations performed in this datagateway must be committed to persist changes.
	BeginBubblegumTx(ctx context.Context) (BubblegumDataGatewayWithTx, error)
}

type BubblegumDataGatewayWithTx interface {
	BubblegumDataGateway
	Tx
}

type BubblegumReaderDataGateway interface {
	GetAsset(ctx context.Context, id solana.Pubkey) (*entity.Asset, error)
	GetAssetData(ctx context.Context, id solana.Pubkey) (*entity.AssetData, error)
	GetAssetCreators(ctx context.Context, id solana.Pubkey) ([]entity.AssetCreator, error)
	GetAssetGroupings(ctx context.Context, id solana.Pubkey) ([]entity.AssetGrouping, error)
	GetAssetAuthority(ctx context.Context, id solana.Pubkey) (*entity.AssetAuthority, error)
	GetChangelogs(ctx context.Context, treeID solana.Pubkey) ([]entity.Changelog, error)
	GetTreeConfig(ctx context.Context, id solana.Pubkey) (*entity.TreeConfig, error)
	GetRawTransaction(ctx context.Context, signature string) (*entity.RawTransaction, error)
	AssetExists(ctx context.Context, id solana.Pubkey) (bool, error)
}

// BubblegumWriterDataGateway holds the fenced writes of the pipeline. Update
// methods return the number of affected rows; zero means the write was stale
// or the row is missing.
type BubblegumWriterDataGateway interface {
	// InsertChangelog reports false if (tree, seq) was already accepted.
	InsertChangelog(ctx context.Context, changelog entity.Changelog) (bool, error)

	// Mint writes, each a no-op if the row exists.
	InsertAssetData(ctx context.Context, data entity.AssetData) error
	InsertAsset(ctx context.Context, asset entity.Asset) (bool, error)
	InsertAssetCreators(ctx context.Context, creators []entity.AssetCreator) error
	InsertAssetAuthority(ctx context.Context, authority entity.AssetAuthority) error
	InsertAssetGrouping(ctx context.Context, grouping entity.AssetGrouping) error

	TransferAsset(ctx context.Context, arg TransferAssetParams) (int64, error)
	DelegateAsset(ctx context.Context, arg DelegateAssetParams) (int64, error)
	BurnAsset(ctx context.Context, arg BurnAssetParams) (int64, error)
	RedeemAsset(ctx context.Context, arg RedeemAssetParams) (int64, error)
	DecompressAsset(ctx context.Context, arg DecompressAssetParams) (int64, error)
	UpdateAssetLeaf(ctx context.Context, arg UpdateAssetLeafParams) (int64, error)
	UpsertAssetGrouping(ctx context.Context, grouping entity.AssetGrouping) (int64, error)

	UpsertTreeConfig(ctx context.Context, config entity.TreeConfig) (int64, error)
	UpsertRawTransaction(ctx context.Context, txn entity.RawTransaction) error
	SetAssetMetadata(ctx context.Context, arg SetAssetMetadataParams) (int64, error)
}

// AssetUpdate is the fencing part shared by every leaf update.
type AssetUpdate struct {
	ID       solana.Pubkey
	LeafHash []byte
	Seq      uint64
	Slot     uint64
}

type TransferAssetParams struct {
	AssetUpdate
	Owner solana.Pubkey
}

type DelegateAssetParams struct {
	AssetUpdate
	Owner solana.Pubkey
	// Delegate is nil when the owner delegates to itself.
	Delegate *solana.Pubkey
}

type BurnAssetParams struct {
	ID   solana.Pubkey
	Seq  uint64
	Slot uint64
}

type RedeemAssetParams struct {
	AssetUpdate
	Voucher solana.Pubkey
}

type DecompressAssetParams struct {
	Voucher solana.Pubkey
	Mint    solana.Pubkey
	Slot    uint64
}

type UpdateAssetLeafParams struct {
	AssetUpdate
}

type SetAssetMetadataParams struct {
	ID        solana.Pubkey
	Metadata  []byte
	FetchedAt time.Time
}
