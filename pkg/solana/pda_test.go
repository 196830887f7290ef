package solana

import (
	"testing"

	"github.com/gaze-network/bubblegum-indexer/common/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialTree() Pubkey {
	var tree Pubkey
	for i := range tree {
		tree[i] = byte(i)
	}
	return tree
}

func TestAssetID(t *testing.T) {
	t.Parallel()
	tree := sequentialTree()
	require.Equal(t, "1thX6LZfHDZZKUs92febYZhYRcXddmzfzF2NvTkPNE", tree.String())

	test := func(nonce uint64, expected string) {
		t.Run(expected, func(t *testing.T) {
			t.Parallel()
			id, err := AssetID(tree, nonce)
			require.NoError(t, err)
			assert.Equal(t, expected, id.String())
			assert.False(t, IsOnCurve(id))
		})
	}
	test(0, "B33MHTPvZbXV7ZUSNXnZeH3qm752UYyVAUo1e6sqviML")
	test(1, "3phfMway6d314CVGkgQxDzuAiQbd73Pm7zCGxQWHnBHi")
	test(42, "JA35GoWNhzQ2fB1vLigGqebLNTLorvnEN1Amy8bHeQdt")
}

func TestFindProgramAddressBump(t *testing.T) {
	t.Parallel()
	tree := sequentialTree()
	pk, bump, err := FindProgramAddress([][]byte{tree[:]}, BubblegumProgramID)
	require.NoError(t, err)
	assert.Equal(t, uint8(253), bump)
	assert.Equal(t, "DhdtRNdeT3P3fE1r3SU1Nw7p9uzr8zHh3HybZPxEhxe8", pk.String())

	authority, err := TreeAuthority(tree)
	require.NoError(t, err)
	assert.Equal(t, pk, authority)
}

func TestCreateProgramAddressLimits(t *testing.T) {
	t.Parallel()
	_, err := CreateProgramAddress([][]byte{make([]byte, MaxSeedLength+1)}, BubblegumProgramID)
	assert.Error(t, err)

	_, err = CreateProgramAddress(make([][]byte, MaxSeeds+1), BubblegumProgramID)
	assert.Error(t, err)
}

func TestIsOnCurve(t *testing.T) {
	t.Parallel()
	// ed25519 base point
	assert.True(t, IsOnCurve(MustParsePubkey("6x5SYnLroiN7WYq8NQYU9KHcH4YjpBbwpUfVu3EB7ieH")))
	assert.True(t, IsOnCurve(BubblegumProgramID))
}

func TestFindProgramAddressKeepsSeeds(t *testing.T) {
	t.Parallel()
	tree := sequentialTree()
	seeds := make([][]byte, 1, 4)
	seeds[0] = tree[:]
	spare := seeds[:2]
	spare[1] = []byte("untouched")

	_, _, err := FindProgramAddress(seeds, BubblegumProgramID)
	require.NoError(t, err)
	assert.Equal(t, []byte("untouched"), spare[1])

	_, _, err = FindProgramAddress(make([][]byte, MaxSeeds), BubblegumProgramID)
	assert.ErrorIs(t, err, errs.InvalidArgument, "no room left for the bump seed")
}
