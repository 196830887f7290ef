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

func sampleTransaction() *TransactionInfo {
	return &TransactionInfo{
		Signature: "5h6xBEauJ3PK6SWCZ1PGjBvj8vDdWG3KpwATGy1ARAXFSDwt8GFXM7W5Ncn16wmqokgpiKRLuS83KUxyZyv2sUYv",
		Slot:      180_000_001,
		SlotIndex: "180000001:7",
		AccountKeys: []solana.Pubkey{
			solana.BubblegumProgramID,
			solana.NoopProgramID,
			solana.AccountCompressionProgramID,
			{1, 2, 3},
		},
		LogMessages: []string{"Program log: Instruction: MintV1"},
		OuterInstructions: []CompiledInstruction{
			{ProgramIDIndex: 0, Accounts: []uint8{3, 2}, Data: []byte{0xde, 0xad}},
		},
		InnerInstructions: []InnerInstructions{
			{Index: 0, Instructions: []CompiledInstruction{
				{ProgramIDIndex: 1, Data: []byte{0, 0}},
				{ProgramIDIndex: 2, Accounts: []uint8{3}, Data: []byte{1}},
			}},
		},
		SeenAt: time.UnixMilli(1_700_000_000_123).UTC(),
	}
}

func TestTransactionInfoRoundTrip(t *testing.T) {
	t.Parallel()
	expected := sampleTransaction()
	buf := expected.Build()

	actual, err := ParseTransactionInfo(buf)
	require.NoError(t, err)
	assert.Equal(t, expected, actual)
}

func TestParseTransactionInfoCopiesBuffer(t *testing.T) {
	t.Parallel()
	buf := sampleTransaction().Build()
	tx, err := ParseTransactionInfo(buf)
	require.NoError(t, err)

	for i := range buf {
		buf[i] = 0xff
	}
	assert.Equal(t, []byte{0xde, 0xad}, tx.OuterInstructions[0].Data)
	assert.Equal(t, solana.BubblegumProgramID, tx.AccountKeys[0])
}

func TestParseTransactionInfoMalformed(t *testing.T) {
	t.Parallel()
	test := func(name string, buf []byte) {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			tx, err := ParseTransactionInfo(buf)
			assert.Nil(t, tx)
			assert.True(t, errors.Is(err, errs.ParsingError), "got %v", err)
		})
	}
	test("empty", nil)
	test("short", []byte{1, 2})
	test("root offset out of range", []byte{0xff, 0xff, 0xff, 0x7f, 0, 0, 0, 0})
	full := sampleTransaction().Build()
	test("truncated", full[:len(full)/2])
}

func TestTransactionInfoLookups(t *testing.T) {
	t.Parallel()
	tx := sampleTransaction()

	key, err := tx.Key(3)
	require.NoError(t, err)
	assert.Equal(t, solana.Pubkey{1, 2, 3}, key)

	_, err = tx.Key(4)
	assert.True(t, errors.Is(err, errs.ParsingError))

	assert.Len(t, tx.InnerInstructionsOf(0), 2)
	assert.Nil(t, tx.InnerInstructionsOf(1))
}
