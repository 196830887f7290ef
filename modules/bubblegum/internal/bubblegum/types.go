package bubblegum

import (
	"math"

	"github.com/cockroachdb/errors"
	bin "github.com/gagliardetto/binary"
	"github.com/gaze-network/bubblegum-indexer/common/errs"
	"github.com/gaze-network/bubblegum-indexer/pkg/solana"
)

type TokenStandard uint8

const (
	TokenStandardNonFungible TokenStandard = iota
	TokenStandardFungibleAsset
	TokenStandardFungible
	TokenStandardNonFungibleEdition
)

var tokenStandardNames = map[TokenStandard]string{
	TokenStandardNonFungible:        "NonFungible",
	TokenStandardFungibleAsset:      "FungibleAsset",
	TokenStandardFungible:           "Fungible",
	TokenStandardNonFungibleEdition: "NonFungibleEdition",
}

func (t TokenStandard) String() string {
	if name, ok := tokenStandardNames[t]; ok {
		return name
	}
	return "Unknown"
}

func (t TokenStandard) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

type UseMethod uint8

const (
	UseMethodBurn UseMethod = iota
	UseMethodMultiple
	UseMethodSingle
)

var useMethodNames = map[UseMethod]string{
	UseMethodBurn:     "Burn",
	UseMethodMultiple: "Multiple",
	UseMethodSingle:   "Single",
}

func (u UseMethod) String() string {
	if name, ok := useMethodNames[u]; ok {
		return name
	}
	return "Unknown"
}

func (u UseMethod) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

type TokenProgramVersion uint8

const (
	TokenProgramVersionOriginal TokenProgramVersion = iota
	TokenProgramVersionToken2022
)

type Creator struct {
	Address  solana.Pubkey
	Verified bool
	Share    uint8
}

type Collection struct {
	Verified bool
	Key      solana.Pubkey
}

type Uses struct {
	UseMethod UseMethod `json:"use_method"`
	Remaining uint64    `json:"remaining"`
	Total     uint64    `json:"total"`
}

// MetadataArgs is the on-chain metadata carried by mint and collection
// instructions.
type MetadataArgs struct {
	Name                 string
	Symbol               string
	URI                  string
	SellerFeeBasisPoints uint16
	PrimarySaleHappened  bool
	IsMutable            bool
	EditionNonce         *uint8         `bin:"optional"`
	TokenStandard        *TokenStandard `bin:"optional"`
	Collection           *Collection    `bin:"optional"`
	Uses                 *Uses          `bin:"optional"`
	TokenProgramVersion  TokenProgramVersion
	Creators             []Creator
}

// leafProof is the argument prefix of instructions that replace a leaf: the
// root, data_hash, creator_hash, nonce and index proving the previous leaf.
type leafProof struct {
	Root        [32]byte
	DataHash    [32]byte
	CreatorHash [32]byte
	Nonce       uint64
	Index       uint32
}

type mintV1Args struct {
	Message MetadataArgs
}

type verifyCollectionArgs struct {
	Proof   leafProof
	Message MetadataArgs
}

type setAndVerifyCollectionArgs struct {
	Proof      leafProof
	Message    MetadataArgs
	Collection solana.Pubkey
}

// PathNode is one node of a change log proof path, leaf first.
type PathNode struct {
	Node  [32]byte
	Index uint32
}

// ChangeLogEvent is the tree update emitted by the account compression
// program through the noop program.
type ChangeLogEvent struct {
	// ID is the merkle tree account.
	ID   solana.Pubkey
	Path []PathNode
	Seq  uint64
	// Index is the leaf index, which is also the nonce of the asset.
	Index uint32
}

// LeafHash returns the node hash of the leaf, the first element of the path.
func (e *ChangeLogEvent) LeafHash() [32]byte {
	if len(e.Path) == 0 {
		return [32]byte{}
	}
	return e.Path[0].Node
}

// NodeIndex returns the index of the leaf node in the tree.
func (e *ChangeLogEvent) NodeIndex() uint32 {
	if len(e.Path) == 0 {
		return 0
	}
	return e.Path[0].Index
}

// LeafSchema is the V1 leaf of a compressed asset.
type LeafSchema struct {
	ID          solana.Pubkey
	Owner       solana.Pubkey
	Delegate    solana.Pubkey
	Nonce       uint64
	DataHash    [32]byte
	CreatorHash [32]byte
}

// LeafSchemaEvent is emitted by Bubblegum as noop application data.
type LeafSchemaEvent struct {
	Schema   LeafSchema
	LeafHash [32]byte
}

// TreeConfig is the Bubblegum account that governs minting into a tree.
type TreeConfig struct {
	TreeCreator       solana.Pubkey
	TreeDelegate      solana.Pubkey
	TotalMintCapacity uint64
	NumMinted         uint64
	IsPublic          bool
}

var treeConfigDiscriminator = NewDiscriminator("account", "TreeConfig")

// IsTreeConfig reports whether account data starts with the TreeConfig discriminator.
func IsTreeConfig(data []byte) bool {
	if len(data) < len(treeConfigDiscriminator) {
		return false
	}
	return Discriminator(data[:8]) == treeConfigDiscriminator
}

// ParseTreeConfig decodes a TreeConfig account.
func ParseTreeConfig(data []byte) (*TreeConfig, error) {
	if !IsTreeConfig(data) {
		return nil, errors.Wrap(errs.ParsingError, "account is not a TreeConfig")
	}
	cfg := new(TreeConfig)
	if err := bin.NewBorshDecoder(data[len(treeConfigDiscriminator):]).Decode(cfg); err != nil {
		return nil, parsingError(err, "can't decode TreeConfig")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}
	return cfg, nil
}

// Validate rejects counters that do not fit a signed 64-bit column.
func (c *TreeConfig) Validate() error {
	if c.TotalMintCapacity > math.MaxInt64 || c.NumMinted > math.MaxInt64 {
		return errors.Wrapf(errs.ParsingError, "TreeConfig counters out of range: capacity %d, minted %d", c.TotalMintCapacity, c.NumMinted)
	}
	return nil
}

func parsingError(err error, msg string) error {
	return errors.Wrapf(errs.ParsingError, "%s: %v", msg, err)
}
