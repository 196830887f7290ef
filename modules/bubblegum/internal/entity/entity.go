package entity

import (
	"encoding/json"
	"time"

	"github.com/gaze-network/bubblegum-indexer/pkg/solana"
)

type OwnerType string

const (
	OwnerTypeSingle OwnerType = "single"
	OwnerTypeToken  OwnerType = "token"
)

type RoyaltyTargetType string

const (
	RoyaltyTargetCreators RoyaltyTargetType = "creators"
	RoyaltyTargetFanout   RoyaltyTargetType = "fanout"
	RoyaltyTargetSingle   RoyaltyTargetType = "single"
)

type Mutability string

const (
	Mutable   Mutability = "mutable"
	Immutable Mutability = "immutable"
)

func MutabilityOf(isMutable bool) Mutability {
	if isMutable {
		return Mutable
	}
	return Immutable
}

// GroupKeyCollection is the grouping key of a verified collection.
const GroupKeyCollection = "collection"

// MetadataProcessing is the placeholder stored until the off-chain
// metadata was downloaded.
var MetadataProcessing = json.RawMessage(`"processing"`)

// Changelog is one accepted tree update.
type Changelog struct {
	TreeID    solana.Pubkey
	Seq       uint64
	LeafIndex uint32
	NodeIndex uint32
	Hash      [32]byte
	// PathNodes and PathIndexes are the proof path, leaf first.
	PathNodes   [][32]byte
	PathIndexes []uint32
	Slot        uint64
	CreatedAt   time.Time
}

type Asset struct {
	ID                solana.Pubkey
	Owner             solana.Pubkey
	Delegate          *solana.Pubkey
	OwnerType         OwnerType
	Frozen            bool
	Supply            int64
	SupplyMint        *solana.Pubkey
	Compressed        bool
	Compressible      bool
	TreeID            solana.Pubkey
	Nonce             uint64
	LeafHash          []byte
	Voucher           *solana.Pubkey
	RoyaltyTargetType RoyaltyTargetType
	RoyaltyTarget     *solana.Pubkey
	RoyaltyAmount     int32
	ChainDataID       solana.Pubkey
	Burnt             bool
	Seq               uint64
	SlotUpdated       uint64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ChainData is the on-chain part of the asset data, stored as JSON.
type ChainData struct {
	Name                string  `json:"name"`
	Symbol              string  `json:"symbol"`
	EditionNonce        *uint8  `json:"edition_nonce"`
	PrimarySaleHappened bool    `json:"primary_sale_happened"`
	TokenStandard       *string `json:"token_standard"`
	Uses                *Uses   `json:"uses"`
}

type Uses struct {
	UseMethod string `json:"use_method"`
	Remaining uint64 `json:"remaining"`
	Total     uint64 `json:"total"`
}

type AssetData struct {
	ID                  solana.Pubkey
	ChainData           ChainData
	ChainDataMutability Mutability
	MetadataURL         string
	Metadata            json.RawMessage
	MetadataMutability  Mutability
	MetadataFetchedAt   *time.Time
	SlotUpdated         uint64
}

type AssetCreator struct {
	AssetID  solana.Pubkey
	Creator  solana.Pubkey
	Share    uint8
	Verified bool
	Seq      uint64
}

type AssetAuthority struct {
	AssetID   solana.Pubkey
	Authority solana.Pubkey
	Seq       uint64
}

type AssetGrouping struct {
	AssetID    solana.Pubkey
	GroupKey   string
	GroupValue string
	Seq        uint64
}

// TreeConfig is keyed by its account address, the tree authority PDA of
// the tree it governs.
type TreeConfig struct {
	ID                solana.Pubkey
	TreeCreator       solana.Pubkey
	TreeDelegate      solana.Pubkey
	TotalMintCapacity uint64
	NumMinted         uint64
	IsPublic          bool
	SlotUpdated       uint64
	WriteVersion      uint64
}

type RawTransaction struct {
	Signature string
	Slot      uint64
	Processed bool
}
