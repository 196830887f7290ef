package types

import (
	"bytes"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bubblegum-indexer/common/errs"
	"github.com/gaze-network/bubblegum-indexer/pkg/plerkle"
	"github.com/gaze-network/bubblegum-indexer/pkg/solana"
	flatbuffers "github.com/google/flatbuffers/go"
)

type CompiledInstruction struct {
	ProgramIDIndex uint8
	Accounts       []uint8
	Data           []byte
}

type InnerInstructions struct {
	// Index of the outer instruction that produced these instructions.
	Index        uint8
	Instructions []CompiledInstruction
}

type TransactionInfo struct {
	Signature         string
	Slot              uint64
	SlotIndex         string
	IsVote            bool
	AccountKeys       []solana.Pubkey
	LogMessages       []string
	OuterInstructions []CompiledInstruction
	InnerInstructions []InnerInstructions
	SeenAt            time.Time
}

// ParseTransactionInfo decodes a TRANSACTION stream envelope. Every slice in
// the result is a copy, so buf may be released once this returns.
func ParseTransactionInfo(buf []byte) (tx *TransactionInfo, err error) {
	defer func() {
		if r := recover(); r != nil {
			tx, err = nil, errors.Wrapf(errs.ParsingError, "malformed transaction envelope: %v", r)
		}
	}()
	if len(buf) < flatbuffers.SizeUOffsetT {
		return nil, errors.Wrap(errs.ParsingError, "transaction envelope too short")
	}

	src := plerkle.GetRootAsTransactionInfo(buf, 0)
	tx = &TransactionInfo{
		Signature: string(src.Signature()),
		Slot:      src.Slot(),
		SlotIndex: string(src.SlotIndex()),
		IsVote:    src.IsVote(),
		SeenAt:    time.UnixMilli(src.SeenAt()).UTC(),
	}

	if err := checkVectorLen(buf, src.AccountKeysLength(), solana.PubkeyLength); err != nil {
		return nil, err
	}
	if err := checkVectorLen(buf, src.LogMessagesLength(), flatbuffers.SizeUOffsetT); err != nil {
		return nil, err
	}
	if err := checkVectorLen(buf, src.OuterInstructionsLength(), flatbuffers.SizeUOffsetT); err != nil {
		return nil, err
	}
	if err := checkVectorLen(buf, src.InnerInstructionsLength(), flatbuffers.SizeUOffsetT); err != nil {
		return nil, err
	}

	tx.AccountKeys = make([]solana.Pubkey, src.AccountKeysLength())
	key := new(plerkle.Pubkey)
	for i := range tx.AccountKeys {
		src.AccountKeys(key, i)
		tx.AccountKeys[i] = parsePubkey(key)
	}

	tx.LogMessages = make([]string, src.LogMessagesLength())
	for i := range tx.LogMessages {
		tx.LogMessages[i] = string(src.LogMessages(i))
	}

	tx.OuterInstructions = make([]CompiledInstruction, src.OuterInstructionsLength())
	ix := new(plerkle.CompiledInstruction)
	for i := range tx.OuterInstructions {
		src.OuterInstructions(ix, i)
		tx.OuterInstructions[i] = parseCompiledInstruction(ix)
	}

	tx.InnerInstructions = make([]InnerInstructions, src.InnerInstructionsLength())
	inner := new(plerkle.InnerInstructions)
	for i := range tx.InnerInstructions {
		src.InnerInstructions(inner, i)
		if err := checkVectorLen(buf, inner.InstructionsLength(), flatbuffers.SizeUOffsetT); err != nil {
			return nil, err
		}
		group := InnerInstructions{
			Index:        inner.Index(),
			Instructions: make([]CompiledInstruction, inner.InstructionsLength()),
		}
		for j := range group.Instructions {
			inner.Instructions(ix, j)
			group.Instructions[j] = parseCompiledInstruction(ix)
		}
		tx.InnerInstructions[i] = group
	}

	if tx.Signature == "" {
		return nil, errors.Wrap(errs.ParsingError, "transaction envelope has no signature")
	}
	return tx, nil
}

// checkVectorLen rejects vector lengths that cannot fit in buf before anything
// is allocated for them.
func checkVectorLen(buf []byte, n, elemSize int) error {
	if n < 0 || n > len(buf)/elemSize {
		return errors.Wrapf(errs.ParsingError, "vector length %d exceeds envelope size %d", n, len(buf))
	}
	return nil
}

func parseCompiledInstruction(src *plerkle.CompiledInstruction) CompiledInstruction {
	return CompiledInstruction{
		ProgramIDIndex: src.ProgramIdIndex(),
		Accounts:       cloneBytes(src.AccountsBytes()),
		Data:           cloneBytes(src.DataBytes()),
	}
}

// cloneBytes copies b out of the envelope buffer. Empty vectors become nil.
func cloneBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	return bytes.Clone(b)
}

func parsePubkey(src *plerkle.Pubkey) solana.Pubkey {
	var pk solana.Pubkey
	for i := range pk {
		pk[i] = src.Key(i)
	}
	return pk
}

// Key resolves an account index of the transaction.
func (tx *TransactionInfo) Key(index uint8) (solana.Pubkey, error) {
	if int(index) >= len(tx.AccountKeys) {
		return solana.Pubkey{}, errors.Wrapf(errs.ParsingError, "account index %d out of range (%d keys)", index, len(tx.AccountKeys))
	}
	return tx.AccountKeys[index], nil
}

// InnerInstructionsOf returns the inner instructions produced by the outer
// instruction at index, or nil.
func (tx *TransactionInfo) InnerInstructionsOf(index int) []CompiledInstruction {
	for _, group := range tx.InnerInstructions {
		if int(group.Index) == index {
			return group.Instructions
		}
	}
	return nil
}

// Build encodes tx into a TRANSACTION stream envelope.
func (tx *TransactionInfo) Build() []byte {
	b := flatbuffers.NewBuilder(1024)

	outer := buildInstructionVector(b, tx.OuterInstructions, plerkle.TransactionInfoStartOuterInstructionsVector)

	groups := make([]flatbuffers.UOffsetT, len(tx.InnerInstructions))
	for i, group := range tx.InnerInstructions {
		ixs := buildInstructionVector(b, group.Instructions, plerkle.InnerInstructionsStartInstructionsVector)
		plerkle.InnerInstructionsStart(b)
		plerkle.InnerInstructionsAddIndex(b, group.Index)
		plerkle.InnerInstructionsAddInstructions(b, ixs)
		groups[i] = plerkle.InnerInstructionsEnd(b)
	}
	inner := buildOffsetVector(b, groups, plerkle.TransactionInfoStartInnerInstructionsVector)

	logs := make([]flatbuffers.UOffsetT, len(tx.LogMessages))
	for i, msg := range tx.LogMessages {
		logs[i] = b.CreateString(msg)
	}
	logVec := buildOffsetVector(b, logs, plerkle.TransactionInfoStartLogMessagesVector)

	plerkle.TransactionInfoStartAccountKeysVector(b, len(tx.AccountKeys))
	for i := len(tx.AccountKeys) - 1; i >= 0; i-- {
		plerkle.CreatePubkey(b, tx.AccountKeys[i][:])
	}
	keys := b.EndVector(len(tx.AccountKeys))

	signature := b.CreateString(tx.Signature)
	slotIndex := b.CreateString(tx.SlotIndex)

	plerkle.TransactionInfoStart(b)
	plerkle.TransactionInfoAddIsVote(b, tx.IsVote)
	plerkle.TransactionInfoAddAccountKeys(b, keys)
	plerkle.TransactionInfoAddLogMessages(b, logVec)
	plerkle.TransactionInfoAddInnerInstructions(b, inner)
	plerkle.TransactionInfoAddOuterInstructions(b, outer)
	plerkle.TransactionInfoAddSlot(b, tx.Slot)
	plerkle.TransactionInfoAddSlotIndex(b, slotIndex)
	plerkle.TransactionInfoAddSeenAt(b, tx.SeenAt.UnixMilli())
	plerkle.TransactionInfoAddSignature(b, signature)
	b.Finish(plerkle.TransactionInfoEnd(b))
	return b.FinishedBytes()
}

func buildInstructionVector(b *flatbuffers.Builder, ixs []CompiledInstruction, start func(*flatbuffers.Builder, int) flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	offsets := make([]flatbuffers.UOffsetT, len(ixs))
	for i, ix := range ixs {
		accounts := b.CreateByteVector(ix.Accounts)
		data := b.CreateByteVector(ix.Data)
		plerkle.CompiledInstructionStart(b)
		plerkle.CompiledInstructionAddProgramIdIndex(b, ix.ProgramIDIndex)
		plerkle.CompiledInstructionAddAccounts(b, accounts)
		plerkle.CompiledInstructionAddData(b, data)
		offsets[i] = plerkle.CompiledInstructionEnd(b)
	}
	return buildOffsetVector(b, offsets, start)
}

func buildOffsetVector(b *flatbuffers.Builder, offsets []flatbuffers.UOffsetT, start func(*flatbuffers.Builder, int) flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	start(b, len(offsets))
	for i := len(offsets) - 1; i >= 0; i-- {
		b.PrependUOffsetT(offsets[i])
	}
	return b.EndVector(len(offsets))
}
