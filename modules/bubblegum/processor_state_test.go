package bubblegum

import (
	"context"
	"testing"

	"github.com/gaze-network/bubblegum-indexer/common/errs"
	"github.com/gaze-network/bubblegum-indexer/core/dispatcher"
	"github.com/gaze-network/bubblegum-indexer/core/types"
	"github.com/gaze-network/bubblegum-indexer/internal/taskqueue"
	"github.com/gaze-network/bubblegum-indexer/modules/bubblegum/internal/bubblegum"
	"github.com/gaze-network/bubblegum-indexer/modules/bubblegum/internal/bubblegumtest"
	"github.com/gaze-network/bubblegum-indexer/modules/bubblegum/internal/entity"
	"github.com/gaze-network/bubblegum-indexer/pkg/solana"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// history is one asset's life: mint at seq 1, transfer at seq 5 and a
// transfer at seq 7.
type history struct {
	minted, first, second bubblegumtest.Leaf

	mint, transfer5, transfer7 *types.TransactionInfo
}

func newHistory() history {
	owner3 := bubblegumtest.Key("owner-3")
	h := history{
		minted: bubblegumtest.Leaf{Tree: testTree, Nonce: 4, Owner: testOwner, Delegate: testOwner, Seq: 1},
	}
	h.first = h.minted
	h.first.Owner, h.first.Delegate, h.first.Seq = testOwner2, testOwner2, 5
	h.second = h.minted
	h.second.Owner, h.second.Delegate, h.second.Seq = owner3, owner3, 7

	h.mint = bubblegumtest.Transaction("mint", testSlot, bubblegumtest.MintV1(h.minted, bubblegumtest.Metadata("cat", testCreator)))
	h.transfer5 = bubblegumtest.Transaction("transfer-5", testSlot+1, bubblegumtest.Transfer(h.first, testOwner))
	h.transfer7 = bubblegumtest.Transaction("transfer-7", testSlot+2, bubblegumtest.Transfer(h.second, testOwner2))
	return h
}

func newStateProcessor() (*memoryGateway, *taskqueue.Memory, *Processor) {
	dg := newMemoryGateway()
	queue := taskqueue.NewMemory(16)
	return dg, queue, NewProcessor(dg, queue, nil)
}

func processAll(t *testing.T, p *Processor, txs ...*types.TransactionInfo) {
	t.Helper()
	for _, tx := range txs {
		require.NoError(t, p.Process(context.Background(), tx), tx.Signature)
	}
}

func TestStateOrderIndependence(t *testing.T) {
	t.Parallel()
	h := newHistory()

	inOrder, _, p := newStateProcessor()
	processAll(t, p, h.mint, h.transfer5, h.transfer7)

	reordered, _, p := newStateProcessor()
	processAll(t, p, h.mint, h.transfer7, h.transfer5)

	assert.Equal(t, inOrder.state.Assets, reordered.state.Assets)
	assert.Equal(t, inOrder.state.Changelogs, reordered.state.Changelogs)
	assert.Equal(t, inOrder.state.Creators, reordered.state.Creators)
	assert.Equal(t, inOrder.state.Authorities, reordered.state.Authorities)

	asset, err := reordered.GetAsset(context.Background(), h.minted.AssetID())
	require.NoError(t, err)
	assert.Equal(t, h.second.Owner, asset.Owner)
	assert.EqualValues(t, 7, asset.Seq)
	assert.EqualValues(t, testSlot+2, asset.SlotUpdated)
	hash := h.second.LeafHash()
	assert.Equal(t, hash[:], asset.LeafHash)

	changelogs, err := reordered.GetChangelogs(context.Background(), testTree)
	require.NoError(t, err)
	require.Len(t, changelogs, 3)
	assert.EqualValues(t, 1, changelogs[0].Seq)
	assert.EqualValues(t, 5, changelogs[1].Seq)
	assert.EqualValues(t, 7, changelogs[2].Seq)
}

func TestStateRedelivery(t *testing.T) {
	t.Parallel()
	h := newHistory()

	once, _, p := newStateProcessor()
	processAll(t, p, h.mint, h.transfer5, h.transfer7)

	twice, queue, p := newStateProcessor()
	processAll(t, p, h.mint, h.transfer5, h.mint, h.transfer7, h.transfer5, h.transfer7)

	assert.Equal(t, once.state, twice.state)
	assert.Len(t, queue.Enqueued(), 1, "metadata download is enqueued once")
}

func TestStateFailedWriteLeavesNothing(t *testing.T) {
	t.Parallel()
	h := newHistory()
	ctx := context.Background()

	dg, queue, p := newStateProcessor()
	dg.failOn = "InsertAssetCreators"

	err := p.Process(ctx, h.mint)
	require.ErrorIs(t, err, errs.DatabaseError)
	assert.False(t, dispatcher.IsSkippable(err))

	assert.Empty(t, dg.state.Changelogs)
	assert.Empty(t, dg.state.Assets)
	assert.Empty(t, dg.state.AssetData)
	assert.Empty(t, dg.state.Creators)
	assert.Empty(t, queue.Enqueued())
	txn, err := dg.GetRawTransaction(ctx, "mint")
	require.NoError(t, err)
	assert.False(t, txn.Processed)

	// redelivery after the database recovered
	dg.failOn = ""
	processAll(t, p, h.mint)

	asset, err := dg.GetAsset(ctx, h.minted.AssetID())
	require.NoError(t, err)
	assert.Equal(t, testOwner, asset.Owner)
	creators, err := dg.GetAssetCreators(ctx, h.minted.AssetID())
	require.NoError(t, err)
	assert.Len(t, creators, 1)
	txn, err = dg.GetRawTransaction(ctx, "mint")
	require.NoError(t, err)
	assert.True(t, txn.Processed)
	assert.Len(t, queue.Enqueued(), 1)
}

func TestStateReplayAfterMissingAsset(t *testing.T) {
	t.Parallel()
	h := newHistory()
	ctx := context.Background()

	dg, _, p := newStateProcessor()

	// the transfer arrives before the mint
	processAll(t, p, h.transfer5)
	assert.Empty(t, dg.state.Changelogs, "update of a missing asset keeps no change log")
	assert.Empty(t, dg.state.Assets)

	processAll(t, p, h.mint)
	asset, err := dg.GetAsset(ctx, h.minted.AssetID())
	require.NoError(t, err)
	assert.Equal(t, testOwner, asset.Owner)

	// backfill replays the transfer
	processAll(t, p, h.transfer5)
	asset, err = dg.GetAsset(ctx, h.minted.AssetID())
	require.NoError(t, err)
	assert.Equal(t, testOwner2, asset.Owner)
	assert.EqualValues(t, 5, asset.Seq)

	changelogs, err := dg.GetChangelogs(ctx, testTree)
	require.NoError(t, err)
	assert.Len(t, changelogs, 2)
}

func TestStateMalformedInstruction(t *testing.T) {
	t.Parallel()
	h := newHistory()
	ctx := context.Background()
	metadata := bubblegumtest.Metadata("cat", testCreator)

	t.Run("poisons the whole transaction", func(t *testing.T) {
		t.Parallel()
		dg, queue, p := newStateProcessor()
		broken := bubblegumtest.Transfer(h.first, testOwner)
		broken.Events = nil
		tx := bubblegumtest.Transaction("mixed", testSlot, bubblegumtest.MintV1(h.minted, metadata), broken)

		err := p.Process(ctx, tx)
		require.ErrorIs(t, err, errs.ParsingError)
		assert.True(t, dispatcher.IsSkippable(err))

		assert.Equal(t, newMemoryState(), dg.state)
		assert.Empty(t, queue.Enqueued())
	})

	t.Run("unsupported instruction is skipped alone", func(t *testing.T) {
		t.Parallel()
		dg, _, p := newStateProcessor()
		createTree := bubblegum.InstructionDiscriminator("create_tree")
		unsupported := bubblegumtest.Instruction{Data: createTree[:], Accounts: []solana.Pubkey{testTree}}
		tx := bubblegumtest.Transaction("mixed", testSlot, unsupported, bubblegumtest.MintV1(h.minted, metadata))

		processAll(t, p, tx)
		exists, err := dg.AssetExists(ctx, h.minted.AssetID())
		require.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, entity.RawTransaction{Signature: "mixed", Slot: testSlot, Processed: true}, dg.state.RawTxns["mixed"])
	})

	t.Run("seq beyond the signed range", func(t *testing.T) {
		t.Parallel()
		dg, _, p := newStateProcessor()
		huge := h.minted
		huge.Seq = 1 << 63
		tx := bubblegumtest.Transaction("huge", testSlot, bubblegumtest.MintV1(huge, metadata))

		err := p.Process(ctx, tx)
		require.ErrorIs(t, err, errs.ChangeLogEventMalformed)
		assert.Equal(t, newMemoryState(), dg.state)
	})

	t.Run("slot beyond the signed range", func(t *testing.T) {
		t.Parallel()
		dg, _, p := newStateProcessor()
		tx := bubblegumtest.Transaction("huge", 1<<63, bubblegumtest.MintV1(h.minted, metadata))

		err := p.Process(ctx, tx)
		require.ErrorIs(t, err, errs.ParsingError)
		assert.Equal(t, newMemoryState(), dg.state)
	})
}
