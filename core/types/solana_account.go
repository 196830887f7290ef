package types

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bubblegum-indexer/common/errs"
	"github.com/gaze-network/bubblegum-indexer/pkg/plerkle"
	"github.com/gaze-network/bubblegum-indexer/pkg/solana"
	flatbuffers "github.com/google/flatbuffers/go"
)

type AccountInfo struct {
	Pubkey       solana.Pubkey
	Owner        solana.Pubkey
	Lamports     uint64
	Data         []byte
	Slot         uint64
	WriteVersion uint64
	IsStartup    bool
	SeenAt       time.Time
}

// ParseAccountInfo decodes an ACCOUNT stream envelope into an owned value.
func ParseAccountInfo(buf []byte) (acc *AccountInfo, err error) {
	defer func() {
		if r := recover(); r != nil {
			acc, err = nil, errors.Wrapf(errs.ParsingError, "malformed account envelope: %v", r)
		}
	}()
	if len(buf) < flatbuffers.SizeUOffsetT {
		return nil, errors.Wrap(errs.ParsingError, "account envelope too short")
	}

	src := plerkle.GetRootAsAccountInfo(buf, 0)
	pubkey := src.Pubkey(nil)
	owner := src.Owner(nil)
	if pubkey == nil || owner == nil {
		return nil, errors.Wrap(errs.ParsingError, "account envelope missing pubkey or owner")
	}
	return &AccountInfo{
		Pubkey:       parsePubkey(pubkey),
		Owner:        parsePubkey(owner),
		Lamports:     src.Lamports(),
		Data:         cloneBytes(src.DataBytes()),
		Slot:         src.Slot(),
		WriteVersion: src.WriteVersion(),
		IsStartup:    src.IsStartup(),
		SeenAt:       time.UnixMilli(src.SeenAt()).UTC(),
	}, nil
}

// Build encodes acc into an ACCOUNT stream envelope.
func (acc *AccountInfo) Build() []byte {
	b := flatbuffers.NewBuilder(256 + len(acc.Data))
	data := b.CreateByteVector(acc.Data)

	plerkle.AccountInfoStart(b)
	plerkle.AccountInfoAddPubkey(b, plerkle.CreatePubkey(b, acc.Pubkey[:]))
	plerkle.AccountInfoAddLamports(b, acc.Lamports)
	plerkle.AccountInfoAddOwner(b, plerkle.CreatePubkey(b, acc.Owner[:]))
	plerkle.AccountInfoAddData(b, data)
	plerkle.AccountInfoAddWriteVersion(b, acc.WriteVersion)
	plerkle.AccountInfoAddSlot(b, acc.Slot)
	plerkle.AccountInfoAddIsStartup(b, acc.IsStartup)
	plerkle.AccountInfoAddSeenAt(b, acc.SeenAt.UnixMilli())
	b.Finish(plerkle.AccountInfoEnd(b))
	return b.FinishedBytes()
}
