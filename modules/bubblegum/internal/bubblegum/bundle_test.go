package bubblegum_test

import (
	"math"
	"testing"

	"github.com/gaze-network/bubblegum-indexer/common/errs"
	"github.com/gaze-network/bubblegum-indexer/core/types"
	"github.com/gaze-network/bubblegum-indexer/modules/bubblegum/internal/bubblegum"
	"github.com/gaze-network/bubblegum-indexer/modules/bubblegum/internal/bubblegumtest"
	"github.com/gaze-network/bubblegum-indexer/pkg/solana"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testTree    = bubblegumtest.Key("tree")
	testOwner   = bubblegumtest.Key("owner")
	testOwner2  = bubblegumtest.Key("owner-2")
	testCreator = bubblegumtest.Key("creator")
)

func decodeAll(t *testing.T, tx *types.TransactionInfo) []*bubblegum.Bundle {
	t.Helper()
	// round trip through the envelope like the stream does
	parsed, err := types.ParseTransactionInfo(tx.Build())
	require.NoError(t, err)

	ibs, err := bubblegum.Route(parsed)
	require.NoError(t, err)

	bundles := make([]*bubblegum.Bundle, 0, len(ibs))
	for _, ib := range ibs {
		b, err := bubblegum.Decode(ib)
		require.NoError(t, err)
		require.NoError(t, b.Validate())
		bundles = append(bundles, b)
	}
	return bundles
}

func TestDecodeMintV1(t *testing.T) {
	t.Parallel()

	leaf := bubblegumtest.Leaf{Tree: testTree, Nonce: 7, Owner: testOwner, Delegate: testOwner, Seq: 8}
	metadata := bubblegumtest.Metadata("gum", testCreator)
	metadata.Collection = &bubblegum.Collection{Verified: true, Key: bubblegumtest.Key("collection")}

	bundles := decodeAll(t, bubblegumtest.Transaction("sig-mint", 100, bubblegumtest.MintV1(leaf, metadata)))
	require.Len(t, bundles, 1)
	b := bundles[0]

	assert.Equal(t, bubblegum.InstructionMintV1, b.Kind)
	assert.Equal(t, "sig-mint", b.Signature)
	assert.EqualValues(t, 100, b.Slot)
	assert.Equal(t, metadata, b.Metadata)

	require.NotNil(t, b.TreeUpdate)
	assert.Equal(t, testTree, b.TreeUpdate.ID)
	assert.EqualValues(t, 8, b.TreeUpdate.Seq)
	assert.EqualValues(t, 7, b.TreeUpdate.Index)
	assert.Equal(t, leaf.LeafHash(), b.TreeUpdate.LeafHash())
	assert.Len(t, b.TreeUpdate.Path, 2)

	require.NotNil(t, b.LeafUpdate)
	assert.Equal(t, leaf.AssetID(), b.LeafUpdate.Schema.ID)
	assert.Equal(t, testOwner, b.LeafUpdate.Schema.Owner)

	tree, err := b.MerkleTree()
	require.NoError(t, err)
	assert.Equal(t, testTree, tree)

	authority, err := b.TreeAuthority()
	require.NoError(t, err)
	assert.Equal(t, leaf.TreeAuthority(), authority)

	id, err := b.AssetID()
	require.NoError(t, err)
	assert.Equal(t, leaf.AssetID(), id)
}

func TestDecodeLeafInstructions(t *testing.T) {
	t.Parallel()

	before := bubblegumtest.Leaf{Tree: testTree, Nonce: 3, Owner: testOwner, Delegate: testOwner, Seq: 1}
	transferred := bubblegumtest.Leaf{Tree: testTree, Nonce: 3, Owner: testOwner2, Delegate: testOwner2, Seq: 2}
	delegated := bubblegumtest.Leaf{Tree: testTree, Nonce: 3, Owner: testOwner2, Delegate: bubblegumtest.Key("delegate"), Seq: 3}
	burnt := bubblegumtest.Leaf{Tree: testTree, Nonce: 3, Owner: testOwner2, Seq: 4}

	bundles := decodeAll(t, bubblegumtest.Transaction("sig", 5,
		bubblegumtest.Transfer(transferred, before.Owner),
		bubblegumtest.Delegate(delegated, transferred.Delegate),
		bubblegumtest.Burn(burnt),
	))
	require.Len(t, bundles, 3)

	t.Run("transfer", func(t *testing.T) {
		t.Parallel()
		b := bundles[0]
		assert.Equal(t, bubblegum.InstructionTransfer, b.Kind)
		newOwner, err := b.NewLeafOwner()
		require.NoError(t, err)
		assert.Equal(t, testOwner2, newOwner)
		assert.EqualValues(t, 2, b.TreeUpdate.Seq)
	})
	t.Run("delegate", func(t *testing.T) {
		t.Parallel()
		b := bundles[1]
		assert.Equal(t, bubblegum.InstructionDelegate, b.Kind)
		newDelegate, err := b.NewLeafDelegate()
		require.NoError(t, err)
		assert.Equal(t, bubblegumtest.Key("delegate"), newDelegate)
	})
	t.Run("burn derives asset id from the leaf index", func(t *testing.T) {
		t.Parallel()
		b := bundles[2]
		assert.Equal(t, bubblegum.InstructionBurn, b.Kind)
		assert.Nil(t, b.LeafUpdate)
		id, err := b.AssetID()
		require.NoError(t, err)
		assert.Equal(t, before.AssetID(), id)
	})
}

func TestDecodeCollection(t *testing.T) {
	t.Parallel()

	leaf := bubblegumtest.Leaf{Tree: testTree, Nonce: 1, Owner: testOwner, Seq: 9}
	metadata := bubblegumtest.Metadata("gum", testCreator)
	collection := bubblegumtest.Key("collection")

	bundles := decodeAll(t, bubblegumtest.Transaction("sig", 5,
		bubblegumtest.VerifyCollection(leaf, metadata, collection),
		bubblegumtest.SetAndVerifyCollection(leaf, metadata, collection),
	))
	require.Len(t, bundles, 2)

	for _, b := range bundles {
		mint, err := b.CollectionMint()
		require.NoError(t, err)
		assert.Equal(t, collection, mint)
		assert.Equal(t, metadata, b.Metadata)
	}
	require.NotNil(t, bundles[1].CollectionKey)
	assert.Equal(t, collection, *bundles[1].CollectionKey)
}

func TestDecodeDecompress(t *testing.T) {
	t.Parallel()

	voucher := bubblegumtest.Key("voucher")
	mint := bubblegumtest.Key("mint")
	bundles := decodeAll(t, bubblegumtest.Transaction("sig", 5,
		bubblegumtest.DecompressV1(testOwner, voucher, mint, bubblegumtest.Metadata("gum", testCreator)),
	))
	require.Len(t, bundles, 1)

	b := bundles[0]
	assert.Nil(t, b.TreeUpdate)
	gotVoucher, err := b.Voucher()
	require.NoError(t, err)
	assert.Equal(t, voucher, gotVoucher)
	gotMint, err := b.Mint()
	require.NoError(t, err)
	assert.Equal(t, mint, gotMint)
}

func TestRouteIgnoresOtherPrograms(t *testing.T) {
	t.Parallel()

	other := bubblegumtest.Key("other-program")
	tx := &types.TransactionInfo{
		Signature:   "sig",
		AccountKeys: []solana.Pubkey{other, testOwner},
		OuterInstructions: []types.CompiledInstruction{
			{ProgramIDIndex: 0, Accounts: []uint8{1}, Data: []byte{1, 2, 3}},
		},
	}
	ibs, err := bubblegum.Route(tx)
	require.NoError(t, err)
	assert.Empty(t, ibs)
}

func TestRouteInnerInstruction(t *testing.T) {
	t.Parallel()

	leaf := bubblegumtest.Leaf{Tree: testTree, Nonce: 0, Owner: testOwner, Delegate: testOwner, Seq: 1}
	mint := bubblegumtest.MintV1(leaf, bubblegumtest.Metadata("gum", testCreator))

	// an outer program invoking mint_v1 through CPI
	tx := bubblegumtest.Transaction("sig", 1)
	tx.AccountKeys = []solana.Pubkey{bubblegumtest.Key("wrapper"), solana.BubblegumProgramID, solana.NoopProgramID}
	accounts := make([]uint8, 0, len(mint.Accounts))
	for _, key := range mint.Accounts {
		accounts = append(accounts, uint8(len(tx.AccountKeys)))
		tx.AccountKeys = append(tx.AccountKeys, key)
	}
	tx.OuterInstructions = []types.CompiledInstruction{{ProgramIDIndex: 0}}
	group := types.InnerInstructions{Index: 0}
	group.Instructions = append(group.Instructions, types.CompiledInstruction{ProgramIDIndex: 1, Accounts: accounts, Data: mint.Data})
	for _, event := range mint.Events {
		group.Instructions = append(group.Instructions, types.CompiledInstruction{ProgramIDIndex: 2, Data: event})
	}
	tx.InnerInstructions = []types.InnerInstructions{group}

	bundles := decodeAll(t, tx)
	require.Len(t, bundles, 1)
	assert.Equal(t, bubblegum.InstructionMintV1, bundles[0].Kind)
	assert.Equal(t, leaf.AssetID(), bundles[0].LeafUpdate.Schema.ID)
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	leaf := bubblegumtest.Leaf{Tree: testTree, Nonce: 0, Owner: testOwner, Delegate: testOwner, Seq: 1}
	metadata := bubblegumtest.Metadata("gum", testCreator)

	decode := func(ix bubblegumtest.Instruction) (*bubblegum.Bundle, error) {
		ibs, err := bubblegum.Route(bubblegumtest.Transaction("sig", 1, ix))
		require.NoError(t, err)
		require.Len(t, ibs, 1)
		return bubblegum.Decode(ibs[0])
	}

	t.Run("unknown discriminator", func(t *testing.T) {
		t.Parallel()
		_, err := decode(bubblegumtest.Instruction{Data: []byte{1, 2, 3, 4, 5, 6, 7, 8}})
		assert.ErrorIs(t, err, errs.ParsingError)
	})
	t.Run("short data", func(t *testing.T) {
		t.Parallel()
		_, err := decode(bubblegumtest.Instruction{Data: []byte{1}})
		assert.ErrorIs(t, err, errs.ParsingError)
	})
	t.Run("recognized but not implemented", func(t *testing.T) {
		t.Parallel()
		d := bubblegum.InstructionDiscriminator("create_tree")
		_, err := decode(bubblegumtest.Instruction{Data: d[:]})
		assert.ErrorIs(t, err, errs.NotImplemented)
	})
	t.Run("truncated metadata", func(t *testing.T) {
		t.Parallel()
		ix := bubblegumtest.MintV1(leaf, metadata)
		ix.Data = ix.Data[:len(ix.Data)-10]
		_, err := decode(ix)
		assert.ErrorIs(t, err, errs.ParsingError)
	})
	t.Run("missing change log", func(t *testing.T) {
		t.Parallel()
		ix := bubblegumtest.MintV1(leaf, metadata)
		ix.Events = ix.Events[:1]
		_, err := decode(ix)
		assert.ErrorIs(t, err, errs.ParsingError)
	})
	t.Run("malformed change log", func(t *testing.T) {
		t.Parallel()
		ix := bubblegumtest.MintV1(leaf, metadata)
		ix.Events[1] = ix.Events[1][:40]
		_, err := decode(ix)
		assert.ErrorIs(t, err, errs.ChangeLogEventMalformed)
	})
	t.Run("empty path", func(t *testing.T) {
		t.Parallel()
		ix := bubblegumtest.MintV1(leaf, metadata)
		cl := leaf.ChangeLog()
		cl.Path = nil
		ix.Events[1] = cl.Encode()
		b, err := decode(ix)
		require.NoError(t, err)
		assert.ErrorIs(t, b.Validate(), errs.ChangeLogEventMalformed)
	})
	t.Run("tree mismatch", func(t *testing.T) {
		t.Parallel()
		ix := bubblegumtest.MintV1(leaf, metadata)
		cl := leaf.ChangeLog()
		cl.ID = bubblegumtest.Key("another-tree")
		ix.Events[1] = cl.Encode()
		b, err := decode(ix)
		require.NoError(t, err)
		assert.ErrorIs(t, b.Validate(), errs.ChangeLogEventMalformed)
	})
	t.Run("seq out of range", func(t *testing.T) {
		t.Parallel()
		huge := leaf
		huge.Seq = math.MaxInt64 + 1
		b, err := decode(bubblegumtest.MintV1(huge, metadata))
		require.NoError(t, err)
		assert.ErrorIs(t, b.Validate(), errs.ChangeLogEventMalformed)
	})
	t.Run("nonce out of range", func(t *testing.T) {
		t.Parallel()
		huge := leaf
		huge.Nonce = math.MaxUint64
		ix := bubblegumtest.MintV1(huge, metadata)
		b, err := decode(ix)
		require.NoError(t, err)
		assert.ErrorIs(t, b.Validate(), errs.ParsingError)
	})
	t.Run("missing accounts", func(t *testing.T) {
		t.Parallel()
		ix := bubblegumtest.Transfer(leaf, testOwner)
		ix.Accounts = ix.Accounts[:2]
		b, err := decode(ix)
		require.NoError(t, err)
		_, err = b.MerkleTree()
		assert.ErrorIs(t, err, errs.ParsingError)
	})
}

func TestParseTreeConfig(t *testing.T) {
	t.Parallel()

	cfg := &bubblegum.TreeConfig{
		TreeCreator:       bubblegumtest.Key("creator"),
		TreeDelegate:      bubblegumtest.Key("delegate"),
		TotalMintCapacity: 1 << 14,
		NumMinted:         12,
		IsPublic:          true,
	}
	data := cfg.Encode()
	assert.True(t, bubblegum.IsTreeConfig(data))

	got, err := bubblegum.ParseTreeConfig(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)

	_, err = bubblegum.ParseTreeConfig(data[:20])
	assert.ErrorIs(t, err, errs.ParsingError)

	overflow := *cfg
	overflow.NumMinted = math.MaxInt64 + 1
	_, err = bubblegum.ParseTreeConfig(overflow.Encode())
	assert.ErrorIs(t, err, errs.ParsingError)

	assert.False(t, bubblegum.IsTreeConfig([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9}))
	_, err = bubblegum.ParseTreeConfig([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9})
	assert.ErrorIs(t, err, errs.ParsingError)
}
