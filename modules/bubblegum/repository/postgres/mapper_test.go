package postgres

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/gaze-network/bubblegum-indexer/common/errs"
	"github.com/gaze-network/bubblegum-indexer/modules/bubblegum/internal/bubblegumtest"
	"github.com/gaze-network/bubblegum-indexer/modules/bubblegum/internal/entity"
	"github.com/gaze-network/bubblegum-indexer/modules/bubblegum/repository/postgres/gen"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapChangelog(t *testing.T) {
	t.Parallel()

	src := entity.Changelog{
		TreeID:      bubblegumtest.Key("tree"),
		Seq:         42,
		LeafIndex:   3,
		NodeIndex:   19,
		Hash:        [32]byte{1},
		PathNodes:   [][32]byte{{2}, {3}, {4}},
		PathIndexes: []uint32{19, 9, 4},
		Slot:        1000,
	}
	params := mapChangelogParams(src)
	assert.Equal(t, []int64{19, 9, 4}, params.PathIndexes)
	assert.Len(t, params.PathNodes, 3)

	now := time.Now()
	got := mapChangelog(gen.Changelog{
		TreeID:      params.TreeID,
		Seq:         params.Seq,
		LeafIndex:   params.LeafIndex,
		NodeIndex:   params.NodeIndex,
		Hash:        params.Hash,
		PathNodes:   params.PathNodes,
		PathIndexes: params.PathIndexes,
		Slot:        params.Slot,
		CreatedAt:   pgtype.Timestamptz{Time: now, Valid: true},
	})
	src.CreatedAt = now
	assert.Equal(t, src, got)
}

func TestMapAsset(t *testing.T) {
	t.Parallel()

	t.Run("optional keys", func(t *testing.T) {
		t.Parallel()
		params := mapAssetParams(entity.Asset{ID: bubblegumtest.Key("asset")})
		assert.Nil(t, params.Delegate)
		assert.Nil(t, params.SupplyMint)
		assert.Nil(t, params.RoyaltyTarget)

		got := mapAsset(gen.Asset{ID: params.ID, Delegate: nil})
		assert.Nil(t, got.Delegate)
		assert.Nil(t, got.Voucher)
	})

	t.Run("delegate", func(t *testing.T) {
		t.Parallel()
		delegate := bubblegumtest.Key("delegate")
		params := mapAssetParams(entity.Asset{ID: bubblegumtest.Key("asset"), Delegate: &delegate, Nonce: 7, Seq: 9})
		assert.Equal(t, delegate.Bytes(), params.Delegate)
		assert.EqualValues(t, 7, params.Nonce)

		got := mapAsset(gen.Asset{ID: params.ID, Delegate: params.Delegate, Seq: params.Seq})
		require.NotNil(t, got.Delegate)
		assert.Equal(t, delegate, *got.Delegate)
		assert.EqualValues(t, 9, got.Seq)
	})
}

func TestMapAssetData(t *testing.T) {
	t.Parallel()

	t.Run("metadata placeholder", func(t *testing.T) {
		t.Parallel()
		params, err := mapAssetDataParams(entity.AssetData{
			ID:        bubblegumtest.Key("asset"),
			ChainData: entity.ChainData{Name: "cat", EditionNonce: lo.ToPtr[uint8](1)},
		})
		require.NoError(t, err)
		assert.Equal(t, []byte(entity.MetadataProcessing), params.Metadata)
		assert.JSONEq(t, `{"name":"cat","symbol":"","edition_nonce":1,"primary_sale_happened":false,"token_standard":null,"uses":null}`, string(params.ChainData))
	})

	t.Run("fetched at", func(t *testing.T) {
		t.Parallel()
		fetchedAt := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		got, err := mapAssetData(gen.AssetDatum{
			ID:                bubblegumtest.Key("asset").Bytes(),
			ChainData:         json.RawMessage(`{"name":"cat"}`),
			Metadata:          json.RawMessage(`{}`),
			MetadataFetchedAt: pgtype.Timestamptz{Time: fetchedAt, Valid: true},
		})
		require.NoError(t, err)
		assert.Equal(t, "cat", got.ChainData.Name)
		require.NotNil(t, got.MetadataFetchedAt)
		assert.Equal(t, fetchedAt, *got.MetadataFetchedAt)
	})

	t.Run("corrupt chain data", func(t *testing.T) {
		t.Parallel()
		_, err := mapAssetData(gen.AssetDatum{ChainData: []byte("{")})
		assert.ErrorIs(t, err, errs.InternalError)
	})
}
