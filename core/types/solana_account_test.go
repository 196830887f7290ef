package types

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bubblegum-indexer/common/errs"
	"github.com/gaze-network/bubblegum-indexer/pkg/solana"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountInfoRoundTrip(t *testing.T) {
	t.Parallel()
	expected := &AccountInfo{
		Pubkey:       solana.Pubkey{9},
		Owner:        solana.BubblegumProgramID,
		Lamports:     1_461_600,
		Data:         []byte{1, 2, 3, 4},
		Slot:         42,
		WriteVersion: 7,
		IsStartup:    true,
		SeenAt:       time.UnixMilli(1_700_000_000_000).UTC(),
	}

	actual, err := ParseAccountInfo(expected.Build())
	require.NoError(t, err)
	assert.Equal(t, expected, actual)
}

func TestParseAccountInfoMalformed(t *testing.T) {
	t.Parallel()
	_, err := ParseAccountInfo([]byte{0})
	assert.True(t, errors.Is(err, errs.ParsingError))

	_, err = ParseAccountInfo([]byte{0xff, 0xff, 0, 0})
	assert.True(t, errors.Is(err, errs.ParsingError))
}
