package bubblegum

import (
	"bytes"

	"github.com/cockroachdb/errors"
	bin "github.com/gagliardetto/binary"
)

// Encoders mirror the decoders above. They produce the bytes a validator
// would carry for the same values and are used to build fixtures.

// mustEncode concatenates the Borsh encoding of values. Encoding into a
// buffer only fails on unsupported types, which is a programming error.
func mustEncode(values ...any) []byte {
	var buf bytes.Buffer
	enc := bin.NewBorshEncoder(&buf)
	for _, v := range values {
		if err := enc.Encode(v); err != nil {
			panic(errors.Wrapf(err, "borsh encode %T", v))
		}
	}
	return buf.Bytes()
}

func discriminatorOf(kind InstructionKind) Discriminator {
	return InstructionDiscriminator(kind.String())
}

func proofOf(nonce uint64, index uint32) leafProof {
	return leafProof{Nonce: nonce, Index: index}
}

// EncodeMintV1 returns the instruction data of mint_v1.
func EncodeMintV1(m *MetadataArgs) []byte {
	return mustEncode(discriminatorOf(InstructionMintV1), mintV1Args{Message: *m})
}

// EncodeLeafInstruction returns the data of an instruction whose arguments
// only prove the previous leaf: transfer, delegate, burn and redeem.
func EncodeLeafInstruction(kind InstructionKind, nonce uint64, index uint32) []byte {
	return mustEncode(discriminatorOf(kind), proofOf(nonce, index))
}

// EncodeVerifyCollection returns the data of verify_collection.
func EncodeVerifyCollection(nonce uint64, index uint32, m *MetadataArgs) []byte {
	return mustEncode(discriminatorOf(InstructionVerifyCollection), verifyCollectionArgs{
		Proof:   proofOf(nonce, index),
		Message: *m,
	})
}

// EncodeSetAndVerifyCollection returns the data of set_and_verify_collection.
func EncodeSetAndVerifyCollection(nonce uint64, index uint32, m *MetadataArgs, collection [32]byte) []byte {
	return mustEncode(discriminatorOf(InstructionSetAndVerifyCollection), setAndVerifyCollectionArgs{
		Proof:      proofOf(nonce, index),
		Message:    *m,
		Collection: collection,
	})
}

// EncodeDecompressV1 returns the data of decompress_v1.
func EncodeDecompressV1(m *MetadataArgs) []byte {
	return mustEncode(discriminatorOf(InstructionDecompressV1), *m)
}

// Encode returns the noop data of the change log event.
func (e *ChangeLogEvent) Encode() []byte {
	return mustEncode(eventTagChangeLog, eventVersionV1, *e)
}

// Encode returns the noop data of the leaf schema event wrapped as
// application data.
func (e *LeafSchemaEvent) Encode() []byte {
	payload := mustEncode(bubblegumEventLeafSchema, bubblegumVersionV1, leafSchemaTagV1, *e)
	return mustEncode(eventTagApplicationData, eventVersionV1, payload)
}

// Encode returns the account data of the tree config.
func (c *TreeConfig) Encode() []byte {
	return mustEncode(treeConfigDiscriminator, *c)
}
