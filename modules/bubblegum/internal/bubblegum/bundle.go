package bubblegum

import (
	"math"

	"github.com/cockroachdb/errors"
	bin "github.com/gagliardetto/binary"
	"github.com/gaze-network/bubblegum-indexer/common/errs"
	"github.com/gaze-network/bubblegum-indexer/core/types"
	"github.com/gaze-network/bubblegum-indexer/pkg/solana"
)

// InstructionBundle is one Bubblegum instruction of a transaction with its
// resolved accounts and the instructions it invoked.
type InstructionBundle struct {
	Signature string
	Slot      uint64
	// Path locates the instruction: {outer} or {outer, inner}.
	Path  []int
	Keys  []solana.Pubkey
	Data  []byte
	Inner []InnerInstruction
}

// InnerInstruction is an instruction invoked by a Bubblegum instruction.
type InnerInstruction struct {
	ProgramID solana.Pubkey
	Data      []byte
}

// Bundle is a decoded Bubblegum instruction. Optional fields are set
// according to Kind.
type Bundle struct {
	Kind      InstructionKind
	Signature string
	Slot      uint64
	Keys      []solana.Pubkey

	TreeUpdate *ChangeLogEvent
	LeafUpdate *LeafSchemaEvent

	// Metadata is set for MintV1 and the collection instructions.
	Metadata *MetadataArgs

	// CollectionKey is the collection argument of SetAndVerifyCollection.
	CollectionKey *solana.Pubkey
}

// Account roles by instruction, as indexes into the instruction accounts.
const (
	accTreeAuthority = 0
	accLeafOwner     = 1

	accMintMerkleTree   = 3
	accTransferNewOwner = 3
	accTransferTree     = 4
	accDelegateNew      = 3
	accDelegateTree     = 4
	accBurnTree         = 3
	accRedeemTree       = 3
	accRedeemVoucher    = 4

	accDecompressVoucher = 0
	accDecompressMint    = 3

	accCollectionTree = 3
	accCollectionMint = 8
)

func (b *Bundle) key(index int) (solana.Pubkey, error) {
	if index < 0 || index >= len(b.Keys) {
		return solana.Pubkey{}, errors.Wrapf(errs.ParsingError, "%s: missing account %d, have %d", b.Kind, index, len(b.Keys))
	}
	return b.Keys[index], nil
}

// MerkleTree returns the merkle tree account of instructions that modify a tree.
func (b *Bundle) MerkleTree() (solana.Pubkey, error) {
	switch b.Kind {
	case InstructionMintV1:
		return b.key(accMintMerkleTree)
	case InstructionTransfer:
		return b.key(accTransferTree)
	case InstructionDelegate:
		return b.key(accDelegateTree)
	case InstructionBurn:
		return b.key(accBurnTree)
	case InstructionRedeem:
		return b.key(accRedeemTree)
	case InstructionVerifyCollection, InstructionSetAndVerifyCollection:
		return b.key(accCollectionTree)
	}
	return solana.Pubkey{}, errors.Wrapf(errs.InvalidArgument, "%s has no merkle tree account", b.Kind)
}

func (b *Bundle) TreeAuthority() (solana.Pubkey, error) {
	if b.Kind == InstructionDecompressV1 {
		return solana.Pubkey{}, errors.Wrapf(errs.InvalidArgument, "%s has no tree authority account", b.Kind)
	}
	return b.key(accTreeAuthority)
}

func (b *Bundle) LeafOwner() (solana.Pubkey, error) {
	return b.key(accLeafOwner)
}

// NewLeafOwner returns the receiver of a transfer.
func (b *Bundle) NewLeafOwner() (solana.Pubkey, error) {
	if b.Kind != InstructionTransfer {
		return solana.Pubkey{}, errors.Wrapf(errs.InvalidArgument, "%s has no new leaf owner", b.Kind)
	}
	return b.key(accTransferNewOwner)
}

// NewLeafDelegate returns the delegate set by a delegate instruction.
func (b *Bundle) NewLeafDelegate() (solana.Pubkey, error) {
	if b.Kind != InstructionDelegate {
		return solana.Pubkey{}, errors.Wrapf(errs.InvalidArgument, "%s has no new leaf delegate", b.Kind)
	}
	return b.key(accDelegateNew)
}

func (b *Bundle) Voucher() (solana.Pubkey, error) {
	switch b.Kind {
	case InstructionRedeem:
		return b.key(accRedeemVoucher)
	case InstructionDecompressV1:
		return b.key(accDecompressVoucher)
	}
	return solana.Pubkey{}, errors.Wrapf(errs.InvalidArgument, "%s has no voucher account", b.Kind)
}

// Mint returns the token mint created by a decompression.
func (b *Bundle) Mint() (solana.Pubkey, error) {
	if b.Kind != InstructionDecompressV1 {
		return solana.Pubkey{}, errors.Wrapf(errs.InvalidArgument, "%s has no mint account", b.Kind)
	}
	return b.key(accDecompressMint)
}

// CollectionMint returns the collection of a collection verification. For
// SetAndVerifyCollection the instruction argument wins over the account.
func (b *Bundle) CollectionMint() (solana.Pubkey, error) {
	switch b.Kind {
	case InstructionSetAndVerifyCollection:
		if b.CollectionKey != nil {
			return *b.CollectionKey, nil
		}
		return b.key(accCollectionMint)
	case InstructionVerifyCollection:
		return b.key(accCollectionMint)
	}
	return solana.Pubkey{}, errors.Wrapf(errs.InvalidArgument, "%s has no collection mint", b.Kind)
}

// AssetID returns the asset touched by the instruction. Instructions that
// emit no leaf derive it from the tree and the leaf index of the change log.
func (b *Bundle) AssetID() (solana.Pubkey, error) {
	if b.LeafUpdate != nil {
		return b.LeafUpdate.Schema.ID, nil
	}
	if b.TreeUpdate == nil {
		return solana.Pubkey{}, errors.Wrapf(errs.ParsingError, "%s: no leaf or tree update to derive the asset id", b.Kind)
	}
	id, err := solana.AssetID(b.TreeUpdate.ID, uint64(b.TreeUpdate.Index))
	if err != nil {
		return solana.Pubkey{}, errors.Wrap(err, "can't derive asset id")
	}
	return id, nil
}

// Decode turns an instruction bundle into a typed Bundle.
func Decode(ib InstructionBundle) (*Bundle, error) {
	kind, err := ParseInstructionKind(ib.Data)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	b := &Bundle{
		Kind:      kind,
		Signature: ib.Signature,
		Slot:      ib.Slot,
		Keys:      append([]solana.Pubkey(nil), ib.Keys...),
	}
	if err := b.decodeArgs(ib.Data[len(Discriminator{}):]); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := b.decodeEvents(ib.Inner); err != nil {
		return nil, errors.WithStack(err)
	}
	return b, nil
}

func (b *Bundle) decodeArgs(args []byte) error {
	dec := bin.NewBorshDecoder(args)
	switch b.Kind {
	case InstructionMintV1:
		var v mintV1Args
		if err := dec.Decode(&v); err != nil {
			return parsingError(err, "can't decode "+b.Kind.String()+" arguments")
		}
		b.Metadata = &v.Message
	case InstructionVerifyCollection:
		var v verifyCollectionArgs
		if err := dec.Decode(&v); err != nil {
			return parsingError(err, "can't decode "+b.Kind.String()+" arguments")
		}
		b.Metadata = &v.Message
	case InstructionSetAndVerifyCollection:
		var v setAndVerifyCollectionArgs
		if err := dec.Decode(&v); err != nil {
			return parsingError(err, "can't decode "+b.Kind.String()+" arguments")
		}
		b.Metadata = &v.Message
		b.CollectionKey = &v.Collection
	case InstructionTransfer,
		InstructionDelegate,
		InstructionBurn,
		InstructionRedeem,
		InstructionDecompressV1:
		// arguments are proofs of the previous leaf; state comes from events and accounts
	default:
		return errors.Wrapf(errs.ParsingError, "unhandled instruction kind %d", b.Kind)
	}
	return nil
}

// decodeEvents finds the first change log event and the first leaf schema
// event among the noop calls of the instruction.
func (b *Bundle) decodeEvents(inner []InnerInstruction) error {
	for _, ix := range inner {
		if ix.ProgramID != solana.NoopProgramID {
			continue
		}
		if b.TreeUpdate == nil {
			event, err := ParseChangeLogEvent(ix.Data)
			switch {
			case err == nil:
				b.TreeUpdate = event
				continue
			case !errors.Is(err, errNotAnEvent):
				return errors.Wrapf(errs.ChangeLogEventMalformed, "%s: %v", b.Kind, err)
			}
		}
		if b.LeafUpdate == nil {
			payload, err := ParseApplicationData(ix.Data)
			if err != nil {
				if errors.Is(err, errNotAnEvent) {
					continue
				}
				return errors.WithStack(err)
			}
			event, err := ParseLeafSchemaEvent(payload)
			if err != nil {
				if errors.Is(err, errNotAnEvent) {
					continue
				}
				return errors.WithStack(err)
			}
			b.LeafUpdate = event
		}
	}

	if b.Kind.HasTreeUpdate() && b.TreeUpdate == nil {
		return errors.Wrapf(errs.ParsingError, "%s: no change log event", b.Kind)
	}
	if b.Kind.HasLeafUpdate() && b.LeafUpdate == nil {
		return errors.Wrapf(errs.ParsingError, "%s: no leaf schema event", b.Kind)
	}
	return nil
}

// Validate checks the tree update against the instruction accounts. Counters
// are stored as signed 64-bit integers, larger values are rejected.
func (b *Bundle) Validate() error {
	if b.Slot > math.MaxInt64 {
		return errors.Wrapf(errs.ParsingError, "%s: slot %d out of range", b.Kind, b.Slot)
	}
	if b.LeafUpdate != nil && b.LeafUpdate.Schema.Nonce > math.MaxInt64 {
		return errors.Wrapf(errs.ParsingError, "%s: nonce %d out of range", b.Kind, b.LeafUpdate.Schema.Nonce)
	}
	if b.TreeUpdate == nil {
		return nil
	}
	if b.TreeUpdate.Seq > math.MaxInt64 {
		return errors.Wrapf(errs.ChangeLogEventMalformed, "%s: change log seq %d out of range", b.Kind, b.TreeUpdate.Seq)
	}
	if len(b.TreeUpdate.Path) == 0 {
		return errors.Wrapf(errs.ChangeLogEventMalformed, "%s: empty change log path", b.Kind)
	}
	tree, err := b.MerkleTree()
	if err != nil {
		return errors.WithStack(err)
	}
	if tree != b.TreeUpdate.ID {
		return errors.Wrapf(errs.ChangeLogEventMalformed, "%s: change log tree %s does not match merkle tree %s", b.Kind, b.TreeUpdate.ID, tree)
	}
	return nil
}

// Route collects the Bubblegum instructions of a transaction, outer ones and
// those invoked through CPI.
func Route(tx *types.TransactionInfo) ([]InstructionBundle, error) {
	var bundles []InstructionBundle
	for i, outer := range tx.OuterInstructions {
		inner := tx.InnerInstructionsOf(i)

		programID, err := tx.Key(outer.ProgramIDIndex)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if programID == solana.BubblegumProgramID {
			ib, err := newInstructionBundle(tx, outer, inner, []int{i})
			if err != nil {
				return nil, errors.WithStack(err)
			}
			bundles = append(bundles, ib)
			continue
		}

		for j, ix := range inner {
			programID, err := tx.Key(ix.ProgramIDIndex)
			if err != nil {
				return nil, errors.WithStack(err)
			}
			if programID != solana.BubblegumProgramID {
				continue
			}
			ib, err := newInstructionBundle(tx, ix, inner[j+1:], []int{i, j})
			if err != nil {
				return nil, errors.WithStack(err)
			}
			bundles = append(bundles, ib)
		}
	}
	return bundles, nil
}

// newInstructionBundle resolves the accounts of ix. Invoked instructions are
// taken up to the next Bubblegum instruction.
func newInstructionBundle(tx *types.TransactionInfo, ix types.CompiledInstruction, following []types.CompiledInstruction, path []int) (InstructionBundle, error) {
	ib := InstructionBundle{
		Signature: tx.Signature,
		Slot:      tx.Slot,
		Path:      path,
		Data:      ix.Data,
		Keys:      make([]solana.Pubkey, 0, len(ix.Accounts)),
	}
	for _, index := range ix.Accounts {
		key, err := tx.Key(index)
		if err != nil {
			return InstructionBundle{}, errors.WithStack(err)
		}
		ib.Keys = append(ib.Keys, key)
	}
	for _, inner := range following {
		programID, err := tx.Key(inner.ProgramIDIndex)
		if err != nil {
			return InstructionBundle{}, errors.WithStack(err)
		}
		if programID == solana.BubblegumProgramID {
			break
		}
		ib.Inner = append(ib.Inner, InnerInstruction{
			ProgramID: programID,
			Data:      inner.Data,
		})
	}
	return ib, nil
}
