// Package bubblegumtest builds Bubblegum transactions for tests.
package bubblegumtest

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/gaze-network/bubblegum-indexer/core/types"
	"github.com/gaze-network/bubblegum-indexer/modules/bubblegum/internal/bubblegum"
	"github.com/gaze-network/bubblegum-indexer/pkg/solana"
)

// Key returns a deterministic pubkey for a test name.
func Key(name string) solana.Pubkey {
	return solana.Pubkey(sha256.Sum256([]byte(name)))
}

// Hash returns a deterministic 32-byte hash for a test value.
func Hash(seed string, n uint64) [32]byte {
	buf := binary.LittleEndian.AppendUint64([]byte(seed), n)
	return sha256.Sum256(buf)
}

// Instruction is a Bubblegum instruction and the noop events it emits.
type Instruction struct {
	Data     []byte
	Accounts []solana.Pubkey
	Events   [][]byte
}

// Transaction assembles a transaction with one outer instruction per ix.
// Events are carried as noop inner instructions.
func Transaction(signature string, slot uint64, ixs ...Instruction) *types.TransactionInfo {
	tx := &types.TransactionInfo{
		Signature: signature,
		Slot:      slot,
	}
	index := map[solana.Pubkey]uint8{}
	keyIndex := func(key solana.Pubkey) uint8 {
		if i, ok := index[key]; ok {
			return i
		}
		i := uint8(len(tx.AccountKeys))
		index[key] = i
		tx.AccountKeys = append(tx.AccountKeys, key)
		return i
	}

	for i, ix := range ixs {
		accounts := make([]uint8, 0, len(ix.Accounts))
		for _, key := range ix.Accounts {
			accounts = append(accounts, keyIndex(key))
		}
		tx.OuterInstructions = append(tx.OuterInstructions, types.CompiledInstruction{
			ProgramIDIndex: keyIndex(solana.BubblegumProgramID),
			Accounts:       accounts,
			Data:           ix.Data,
		})

		group := types.InnerInstructions{Index: uint8(i)}
		for _, event := range ix.Events {
			group.Instructions = append(group.Instructions, types.CompiledInstruction{
				ProgramIDIndex: keyIndex(solana.NoopProgramID),
				Data:           event,
			})
		}
		if len(group.Instructions) > 0 {
			tx.InnerInstructions = append(tx.InnerInstructions, group)
		}
	}
	return tx
}

// Leaf describes the state of a leaf after an instruction.
type Leaf struct {
	Tree     solana.Pubkey
	Nonce    uint64
	Owner    solana.Pubkey
	Delegate solana.Pubkey
	Seq      uint64
}

// AssetID returns the asset id of the leaf.
func (l Leaf) AssetID() solana.Pubkey {
	id, err := solana.AssetID(l.Tree, l.Nonce)
	if err != nil {
		panic(err)
	}
	return id
}

// LeafHash returns the leaf hash the fixtures emit for the leaf.
func (l Leaf) LeafHash() [32]byte {
	return Hash(l.Owner.String()+l.Delegate.String(), l.Seq)
}

// ChangeLog returns the change log event of the leaf.
func (l Leaf) ChangeLog() *bubblegum.ChangeLogEvent {
	return &bubblegum.ChangeLogEvent{
		ID: l.Tree,
		Path: []bubblegum.PathNode{
			{Node: l.LeafHash(), Index: uint32(l.Nonce) + 1<<14},
			{Node: Hash("node", l.Seq), Index: (uint32(l.Nonce) + 1<<14) >> 1},
		},
		Seq:   l.Seq,
		Index: uint32(l.Nonce),
	}
}

// LeafSchema returns the leaf schema event of the leaf.
func (l Leaf) LeafSchema() *bubblegum.LeafSchemaEvent {
	return &bubblegum.LeafSchemaEvent{
		Schema: bubblegum.LeafSchema{
			ID:          l.AssetID(),
			Owner:       l.Owner,
			Delegate:    l.Delegate,
			Nonce:       l.Nonce,
			DataHash:    Hash("data", l.Nonce),
			CreatorHash: Hash("creator", l.Nonce),
		},
		LeafHash: l.LeafHash(),
	}
}

func (l Leaf) events(withLeaf bool) [][]byte {
	events := [][]byte{}
	if withLeaf {
		events = append(events, l.LeafSchema().Encode())
	}
	return append(events, l.ChangeLog().Encode())
}

// TreeAuthority returns the tree config PDA of the leaf's tree.
func (l Leaf) TreeAuthority() solana.Pubkey {
	key, err := solana.TreeAuthority(l.Tree)
	if err != nil {
		panic(err)
	}
	return key
}

// Metadata returns minimal mint metadata with one verified creator.
func Metadata(name string, creator solana.Pubkey) *bubblegum.MetadataArgs {
	nonce := uint8(255)
	standard := bubblegum.TokenStandardNonFungible
	return &bubblegum.MetadataArgs{
		Name:                 name,
		Symbol:               "TST",
		URI:                  "https://example.com/" + name + ".json",
		SellerFeeBasisPoints: 500,
		IsMutable:            true,
		EditionNonce:         &nonce,
		TokenStandard:        &standard,
		Creators: []bubblegum.Creator{
			{Address: creator, Verified: true, Share: 100},
		},
	}
}

func MintV1(l Leaf, m *bubblegum.MetadataArgs) Instruction {
	return Instruction{
		Data: bubblegum.EncodeMintV1(m),
		Accounts: []solana.Pubkey{
			l.TreeAuthority(), l.Owner, l.Delegate, l.Tree, Key("payer"), Key("tree-delegate"),
			solana.NoopProgramID, solana.AccountCompressionProgramID, solana.SystemProgramID,
		},
		Events: l.events(true),
	}
}

// Transfer moves the leaf from its previous owner to l.Owner.
func Transfer(l Leaf, previousOwner solana.Pubkey) Instruction {
	return Instruction{
		Data: bubblegum.EncodeLeafInstruction(bubblegum.InstructionTransfer, l.Nonce, uint32(l.Nonce)),
		Accounts: []solana.Pubkey{
			l.TreeAuthority(), previousOwner, previousOwner, l.Owner, l.Tree,
			solana.NoopProgramID, solana.AccountCompressionProgramID, solana.SystemProgramID,
		},
		Events: l.events(true),
	}
}

func Delegate(l Leaf, previousDelegate solana.Pubkey) Instruction {
	return Instruction{
		Data: bubblegum.EncodeLeafInstruction(bubblegum.InstructionDelegate, l.Nonce, uint32(l.Nonce)),
		Accounts: []solana.Pubkey{
			l.TreeAuthority(), l.Owner, previousDelegate, l.Delegate, l.Tree,
			solana.NoopProgramID, solana.AccountCompressionProgramID, solana.SystemProgramID,
		},
		Events: l.events(true),
	}
}

func Burn(l Leaf) Instruction {
	return Instruction{
		Data: bubblegum.EncodeLeafInstruction(bubblegum.InstructionBurn, l.Nonce, uint32(l.Nonce)),
		Accounts: []solana.Pubkey{
			l.TreeAuthority(), l.Owner, l.Owner, l.Tree,
			solana.NoopProgramID, solana.AccountCompressionProgramID, solana.SystemProgramID,
		},
		Events: l.events(false),
	}
}

func Redeem(l Leaf, voucher solana.Pubkey) Instruction {
	return Instruction{
		Data: bubblegum.EncodeLeafInstruction(bubblegum.InstructionRedeem, l.Nonce, uint32(l.Nonce)),
		Accounts: []solana.Pubkey{
			l.TreeAuthority(), l.Owner, l.Owner, l.Tree, voucher,
			solana.NoopProgramID, solana.AccountCompressionProgramID, solana.SystemProgramID,
		},
		Events: l.events(false),
	}
}

func DecompressV1(owner, voucher, mint solana.Pubkey, m *bubblegum.MetadataArgs) Instruction {
	return Instruction{
		Data: bubblegum.EncodeDecompressV1(m),
		Accounts: []solana.Pubkey{
			voucher, owner, Key("token-account"), mint, Key("mint-authority"), Key("metadata"), Key("master-edition"),
			solana.SystemProgramID, solana.TokenMetadataProgramID,
		},
	}
}

func VerifyCollection(l Leaf, m *bubblegum.MetadataArgs, collectionMint solana.Pubkey) Instruction {
	return Instruction{
		Data:     bubblegum.EncodeVerifyCollection(l.Nonce, uint32(l.Nonce), m),
		Accounts: collectionAccounts(l, collectionMint),
		Events:   l.events(true),
	}
}

func SetAndVerifyCollection(l Leaf, m *bubblegum.MetadataArgs, collectionMint solana.Pubkey) Instruction {
	return Instruction{
		Data:     bubblegum.EncodeSetAndVerifyCollection(l.Nonce, uint32(l.Nonce), m, collectionMint),
		Accounts: collectionAccounts(l, collectionMint),
		Events:   l.events(true),
	}
}

func collectionAccounts(l Leaf, collectionMint solana.Pubkey) []solana.Pubkey {
	return []solana.Pubkey{
		l.TreeAuthority(), l.Owner, l.Delegate, l.Tree, Key("payer"), Key("tree-delegate"),
		Key("collection-authority"), Key("collection-authority-record"), collectionMint,
		Key("collection-metadata"), Key("collection-edition"),
		solana.NoopProgramID, solana.AccountCompressionProgramID, solana.TokenMetadataProgramID, solana.SystemProgramID,
	}
}
