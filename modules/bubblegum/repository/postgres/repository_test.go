package postgres

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bubblegum-indexer/common/errs"
	"github.com/gaze-network/bubblegum-indexer/internal/postgres"
	"github.com/gaze-network/bubblegum-indexer/modules/bubblegum/datagateway"
	"github.com/gaze-network/bubblegum-indexer/modules/bubblegum/internal/bubblegumtest"
	"github.com/gaze-network/bubblegum-indexer/modules/bubblegum/internal/entity"
	"github.com/gaze-network/bubblegum-indexer/pkg/solana"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRun = strconv.FormatInt(time.Now().UnixNano(), 36)

// testKey derives a key unique to the test and the run, so reruns against
// the same database never collide.
func testKey(t *testing.T, name string) solana.Pubkey {
	return bubblegumtest.Key(testRun + "/" + t.Name() + "/" + name)
}

// newTestRepository connects to BUBBLEGUM_TEST_DATABASE_URL and applies the
// migrations.
func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	databaseURL := os.Getenv("BUBBLEGUM_TEST_DATABASE_URL")
	if databaseURL == "" {
		t.Skip("BUBBLEGUM_TEST_DATABASE_URL is not set")
	}

	m, err := migrate.New("file://../../database/postgresql/migrations", databaseURL)
	require.NoError(t, err)
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		require.NoError(t, err)
	}
	_, _ = m.Close()

	pool, err := postgres.NewPool(context.Background(), postgres.Config{URL: databaseURL})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return NewRepository(pool)
}

func mintTestAsset(t *testing.T, repo *Repository, id, tree solana.Pubkey, seq uint64) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, repo.InsertAssetData(ctx, entity.AssetData{
		ID:                  id,
		ChainData:           entity.ChainData{Name: "cat"},
		ChainDataMutability: entity.Mutable,
		MetadataURL:         "https://example.com/cat.json",
		MetadataMutability:  entity.Mutable,
		SlotUpdated:         10,
	}))
	created, err := repo.InsertAsset(ctx, entity.Asset{
		ID:                id,
		Owner:             bubblegumtest.Key("owner"),
		OwnerType:         entity.OwnerTypeSingle,
		Supply:            1,
		Compressed:        true,
		TreeID:            tree,
		LeafHash:          []byte{1},
		RoyaltyTargetType: entity.RoyaltyTargetCreators,
		ChainDataID:       id,
		Seq:               seq,
		SlotUpdated:       10,
	})
	require.NoError(t, err)
	require.True(t, created)
}

func TestRepositorySeqFencing(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	id := testKey(t, "asset")
	tree := testKey(t, "tree")
	mintTestAsset(t, repo, id, tree, 1)

	t.Run("mint is unique", func(t *testing.T) {
		created, err := repo.InsertAsset(ctx, entity.Asset{ID: id, Owner: bubblegumtest.Key("other"), TreeID: tree, ChainDataID: id, Seq: 1})
		require.NoError(t, err)
		assert.False(t, created)
	})

	newOwner := bubblegumtest.Key("new-owner")
	delegate := bubblegumtest.Key("delegate")

	// delegate at seq 3 lands before the transfer at seq 2
	affected, err := repo.DelegateAsset(ctx, datagateway.DelegateAssetParams{
		AssetUpdate: datagateway.AssetUpdate{ID: id, LeafHash: []byte{3}, Seq: 3, Slot: 12},
		Owner:       newOwner,
		Delegate:    &delegate,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	affected, err = repo.TransferAsset(ctx, datagateway.TransferAssetParams{
		AssetUpdate: datagateway.AssetUpdate{ID: id, LeafHash: []byte{2}, Seq: 2, Slot: 11},
		Owner:       newOwner,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected)

	asset, err := repo.GetAsset(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, newOwner, asset.Owner)
	require.NotNil(t, asset.Delegate)
	assert.Equal(t, delegate, *asset.Delegate)
	assert.EqualValues(t, 3, asset.Seq)
	assert.Equal(t, []byte{3}, asset.LeafHash)

	// replaying the same seq is a no-op
	affected, err = repo.BurnAsset(ctx, datagateway.BurnAssetParams{ID: id, Seq: 3, Slot: 13})
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected)

	affected, err = repo.BurnAsset(ctx, datagateway.BurnAssetParams{ID: id, Seq: 4, Slot: 13})
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	asset, err = repo.GetAsset(ctx, id)
	require.NoError(t, err)
	assert.True(t, asset.Burnt)
	assert.Zero(t, asset.Supply)
}

func TestRepositoryChangelog(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	tree := testKey(t, "tree")

	changelog := entity.Changelog{
		TreeID:      tree,
		Seq:         1,
		NodeIndex:   16,
		Hash:        [32]byte{9},
		PathNodes:   [][32]byte{{1}, {2}},
		PathIndexes: []uint32{16, 8},
		Slot:        5,
	}
	accepted, err := repo.InsertChangelog(ctx, changelog)
	require.NoError(t, err)
	assert.True(t, accepted)

	accepted, err = repo.InsertChangelog(ctx, changelog)
	require.NoError(t, err)
	assert.False(t, accepted)

	changelogs, err := repo.GetChangelogs(ctx, tree)
	require.NoError(t, err)
	require.Len(t, changelogs, 1)
	assert.Equal(t, changelog.PathNodes, changelogs[0].PathNodes)
	assert.Equal(t, changelog.PathIndexes, changelogs[0].PathIndexes)
}

func TestRepositoryTxAtomicity(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	id := testKey(t, "asset")
	tree := testKey(t, "tree")

	tx, err := repo.BeginBubblegumTx(ctx)
	require.NoError(t, err)
	accepted, err := tx.InsertChangelog(ctx, entity.Changelog{TreeID: tree, Seq: 1, Hash: [32]byte{1}})
	require.NoError(t, err)
	require.True(t, accepted)
	mintTestAsset(t, tx.(*Repository), id, tree, 1)
	require.NoError(t, tx.Rollback(ctx))

	changelogs, err := repo.GetChangelogs(ctx, tree)
	require.NoError(t, err)
	assert.Empty(t, changelogs)
	exists, err := repo.AssetExists(ctx, id)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.GetAsset(ctx, id)
	assert.ErrorIs(t, err, errs.NotFound)
}

func TestRepositoryRedeemDecompress(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	id := testKey(t, "asset")
	tree := testKey(t, "tree")
	voucher := testKey(t, "voucher")
	mint := testKey(t, "mint")
	mintTestAsset(t, repo, id, tree, 1)

	affected, err := repo.DecompressAsset(ctx, datagateway.DecompressAssetParams{Voucher: voucher, Mint: mint, Slot: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected)

	affected, err = repo.RedeemAsset(ctx, datagateway.RedeemAssetParams{
		AssetUpdate: datagateway.AssetUpdate{ID: id, LeafHash: make([]byte, 32), Seq: 2, Slot: 19},
		Voucher:     voucher,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	affected, err = repo.DecompressAsset(ctx, datagateway.DecompressAssetParams{Voucher: voucher, Mint: mint, Slot: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	asset, err := repo.GetAsset(ctx, id)
	require.NoError(t, err)
	assert.False(t, asset.Compressed)
	require.NotNil(t, asset.SupplyMint)
	assert.Equal(t, mint, *asset.SupplyMint)
}

func TestRepositoryTreeConfig(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	config := entity.TreeConfig{
		ID:                testKey(t, "config"),
		TreeCreator:       bubblegumtest.Key("creator"),
		TotalMintCapacity: 8,
		NumMinted:         2,
		SlotUpdated:       100,
		WriteVersion:      5,
	}
	affected, err := repo.UpsertTreeConfig(ctx, config)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	older := config
	older.NumMinted = 1
	older.WriteVersion = 4
	affected, err = repo.UpsertTreeConfig(ctx, older)
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected)

	newer := config
	newer.NumMinted = 3
	newer.SlotUpdated = 101
	newer.WriteVersion = 1
	affected, err = repo.UpsertTreeConfig(ctx, newer)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	got, err := repo.GetTreeConfig(ctx, config.ID)
	require.NoError(t, err)
	assert.Equal(t, newer, *got)
}
