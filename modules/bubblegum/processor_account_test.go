package bubblegum

import (
	"context"
	"testing"

	"github.com/gaze-network/bubblegum-indexer/common/errs"
	"github.com/gaze-network/bubblegum-indexer/core/types"
	"github.com/gaze-network/bubblegum-indexer/modules/bubblegum/datagateway/mocks"
	"github.com/gaze-network/bubblegum-indexer/modules/bubblegum/internal/bubblegum"
	"github.com/gaze-network/bubblegum-indexer/modules/bubblegum/internal/bubblegumtest"
	"github.com/gaze-network/bubblegum-indexer/modules/bubblegum/internal/entity"
	"github.com/gaze-network/bubblegum-indexer/pkg/solana"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAccountProcessor(t *testing.T) {
	t.Parallel()

	config := &bubblegum.TreeConfig{
		TreeCreator:       bubblegumtest.Key("creator"),
		TreeDelegate:      bubblegumtest.Key("delegate"),
		TotalMintCapacity: 1 << 14,
		NumMinted:         12,
		IsPublic:          true,
	}
	account := func() *types.AccountInfo {
		return &types.AccountInfo{
			Pubkey:       bubblegumtest.Key("tree-config"),
			Owner:        solana.BubblegumProgramID,
			Data:         config.Encode(),
			Slot:         100,
			WriteVersion: 7,
		}
	}

	t.Run("upserts tree config", func(t *testing.T) {
		t.Parallel()
		dg := mocks.NewBubblegumDataGateway(t)
		dg.EXPECT().UpsertTreeConfig(mock.Anything, entity.TreeConfig{
			ID:                bubblegumtest.Key("tree-config"),
			TreeCreator:       config.TreeCreator,
			TreeDelegate:      config.TreeDelegate,
			TotalMintCapacity: 1 << 14,
			NumMinted:         12,
			IsPublic:          true,
			SlotUpdated:       100,
			WriteVersion:      7,
		}).Return(1, nil).Once()

		require.NoError(t, NewAccountProcessor(dg, nil).Process(context.Background(), account()))
	})

	t.Run("stale snapshot", func(t *testing.T) {
		t.Parallel()
		dg := mocks.NewBubblegumDataGateway(t)
		dg.EXPECT().UpsertTreeConfig(mock.Anything, mock.Anything).Return(0, nil).Once()

		require.NoError(t, NewAccountProcessor(dg, nil).Process(context.Background(), account()))
	})

	t.Run("ignores other accounts", func(t *testing.T) {
		t.Parallel()
		dg := mocks.NewBubblegumDataGateway(t)
		p := NewAccountProcessor(dg, nil)

		foreign := account()
		foreign.Owner = solana.TokenMetadataProgramID
		require.NoError(t, p.Process(context.Background(), foreign))

		other := account()
		other.Data = []byte("not a tree config")
		require.NoError(t, p.Process(context.Background(), other))
	})

	t.Run("truncated tree config", func(t *testing.T) {
		t.Parallel()
		dg := mocks.NewBubblegumDataGateway(t)
		acc := account()
		acc.Data = acc.Data[:20]

		err := NewAccountProcessor(dg, nil).Process(context.Background(), acc)
		assert.ErrorIs(t, err, errs.ParsingError)
	})

	t.Run("version beyond the signed range", func(t *testing.T) {
		t.Parallel()
		dg := mocks.NewBubblegumDataGateway(t)
		p := NewAccountProcessor(dg, nil)

		slot := account()
		slot.Slot = 1 << 63
		assert.ErrorIs(t, p.Process(context.Background(), slot), errs.ParsingError)

		writeVersion := account()
		writeVersion.WriteVersion = 1 << 63
		assert.ErrorIs(t, p.Process(context.Background(), writeVersion), errs.ParsingError)

		counters := account()
		overflow := *config
		overflow.TotalMintCapacity = 1 << 63
		counters.Data = overflow.Encode()
		assert.ErrorIs(t, p.Process(context.Background(), counters), errs.ParsingError)
	})
}
