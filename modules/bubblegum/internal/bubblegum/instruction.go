// Package bubblegum decodes instructions and events of the Bubblegum
// compressed-NFT program.
package bubblegum

import (
	"crypto/sha256"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bubblegum-indexer/common/errs"
)

// InstructionKind is the closed set of Bubblegum instructions the indexer
// applies. Recognized instructions without a handler decode to
// NotImplemented errors instead of a kind.
type InstructionKind uint8

const (
	InstructionUnknown InstructionKind = iota
	InstructionMintV1
	InstructionTransfer
	InstructionDelegate
	InstructionBurn
	InstructionRedeem
	InstructionDecompressV1
	InstructionVerifyCollection
	InstructionSetAndVerifyCollection
)

var instructionNames = map[InstructionKind]string{
	InstructionUnknown:                "unknown",
	InstructionMintV1:                 "mint_v1",
	InstructionTransfer:               "transfer",
	InstructionDelegate:               "delegate",
	InstructionBurn:                   "burn",
	InstructionRedeem:                 "redeem",
	InstructionDecompressV1:           "decompress_v1",
	InstructionVerifyCollection:       "verify_collection",
	InstructionSetAndVerifyCollection: "set_and_verify_collection",
}

// String returns the anchor name of the instruction.
func (k InstructionKind) String() string {
	if name, ok := instructionNames[k]; ok {
		return name
	}
	return instructionNames[InstructionUnknown]
}

// HasTreeUpdate reports whether the instruction modifies the merkle tree and
// therefore emits a change log event.
func (k InstructionKind) HasTreeUpdate() bool {
	switch k {
	case InstructionMintV1,
		InstructionTransfer,
		InstructionDelegate,
		InstructionBurn,
		InstructionRedeem,
		InstructionVerifyCollection,
		InstructionSetAndVerifyCollection:
		return true
	}
	return false
}

// HasLeafUpdate reports whether the instruction emits a new leaf schema.
func (k InstructionKind) HasLeafUpdate() bool {
	switch k {
	case InstructionMintV1,
		InstructionTransfer,
		InstructionDelegate,
		InstructionVerifyCollection,
		InstructionSetAndVerifyCollection:
		return true
	}
	return false
}

// Discriminator is the 8-byte Anchor instruction selector.
type Discriminator [8]byte

// NewDiscriminator returns sha256("<namespace>:<name>")[:8].
func NewDiscriminator(namespace, name string) Discriminator {
	sum := sha256.Sum256([]byte(namespace + ":" + name))
	var d Discriminator
	copy(d[:], sum[:8])
	return d
}

func InstructionDiscriminator(name string) Discriminator {
	return NewDiscriminator("global", name)
}

var (
	discriminatorKinds = map[Discriminator]InstructionKind{}

	// Bubblegum instructions the indexer knows about but does not apply.
	unimplemented = map[Discriminator]string{}
)

func init() {
	for kind, name := range instructionNames {
		if kind == InstructionUnknown {
			continue
		}
		discriminatorKinds[InstructionDiscriminator(name)] = kind
	}
	for _, name := range []string{
		"create_tree",
		"set_tree_delegate",
		"mint_to_collection_v1",
		"cancel_redeem",
		"verify_creator",
		"unverify_creator",
		"unverify_collection",
		"set_decompressable_state",
		"set_decompressible_state",
		"compress",
		"update_metadata",
	} {
		unimplemented[InstructionDiscriminator(name)] = name
	}
}

// ParseInstructionKind reads the discriminator of a Bubblegum instruction.
func ParseInstructionKind(data []byte) (InstructionKind, error) {
	if len(data) < len(Discriminator{}) {
		return InstructionUnknown, errors.Wrapf(errs.ParsingError, "instruction data too short: %d bytes", len(data))
	}
	var d Discriminator
	copy(d[:], data)
	if kind, ok := discriminatorKinds[d]; ok {
		return kind, nil
	}
	if name, ok := unimplemented[d]; ok {
		return InstructionUnknown, errors.Wrapf(errs.NotImplemented, "bubblegum instruction %s", name)
	}
	return InstructionUnknown, errors.Wrapf(errs.ParsingError, "unknown bubblegum discriminator %x", d[:])
}
