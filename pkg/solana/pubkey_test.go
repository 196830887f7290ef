package solana

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePubkey(t *testing.T) {
	t.Parallel()
	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		for _, s := range []string{
			"BGUMAp9Gq7iTEuizy4pqaxsTyUCBK68MDfK752saRPUY",
			"noopb9bkMVfRPU8AsbpTUg8AQkHtKwMYZiFUjNRtMmV",
			"11111111111111111111111111111111",
		} {
			pk, err := ParsePubkey(s)
			require.NoError(t, err)
			assert.Equal(t, s, pk.String())
		}
	})
	t.Run("system program is zero", func(t *testing.T) {
		t.Parallel()
		pk, err := ParsePubkey("11111111111111111111111111111111")
		require.NoError(t, err)
		assert.True(t, pk.IsZero())
	})
	t.Run("invalid", func(t *testing.T) {
		t.Parallel()
		_, err := ParsePubkey("0OIl")
		assert.Error(t, err)
		_, err = ParsePubkey("abc")
		assert.Error(t, err)
	})
}

func TestPubkeyScan(t *testing.T) {
	t.Parallel()
	var pk Pubkey
	require.NoError(t, pk.Scan(BubblegumProgramID.Bytes()))
	assert.Equal(t, BubblegumProgramID, pk)

	assert.Error(t, pk.Scan([]byte{1, 2}))
	assert.Error(t, pk.Scan("not bytes"))

	v, err := pk.Value()
	require.NoError(t, err)
	assert.Equal(t, BubblegumProgramID[:], v)
}

func TestPubkeyText(t *testing.T) {
	t.Parallel()
	text, err := NoopProgramID.MarshalText()
	require.NoError(t, err)

	var pk Pubkey
	require.NoError(t, pk.UnmarshalText(text))
	assert.Equal(t, NoopProgramID, pk)
}
