// Package solana holds the account address primitives shared by the decoder
// and the storage layer.
package solana

import (
	"bytes"
	"database/sql/driver"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bubblegum-indexer/common/errs"
	"github.com/mr-tron/base58"
)

const PubkeyLength = 32

// Pubkey is a 32-byte Solana account address.
type Pubkey [PubkeyLength]byte

// ZeroPubkey is the all-zero address (the System Program).
var ZeroPubkey Pubkey

// MustParsePubkey is like ParsePubkey but panics on error. Use it for constants only.
func MustParsePubkey(s string) Pubkey {
	pk, err := ParsePubkey(s)
	if err != nil {
		panic(err)
	}
	return pk
}

// ParsePubkey parses a base58 encoded address.
func ParsePubkey(s string) (Pubkey, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return Pubkey{}, errors.Wrapf(errs.InvalidArgument, "invalid base58 pubkey %q: %v", s, err)
	}
	return PubkeyFromBytes(b)
}

// PubkeyFromBytes copies b into a Pubkey. b must be exactly 32 bytes.
func PubkeyFromBytes(b []byte) (Pubkey, error) {
	var pk Pubkey
	if len(b) != PubkeyLength {
		return pk, errors.Wrapf(errs.InvalidArgument, "pubkey must be %d bytes, got %d", PubkeyLength, len(b))
	}
	copy(pk[:], b)
	return pk, nil
}

func (p Pubkey) String() string {
	return base58.Encode(p[:])
}

// Bytes returns a copy of the address bytes.
func (p Pubkey) Bytes() []byte {
	return bytes.Clone(p[:])
}

func (p Pubkey) IsZero() bool {
	return p == ZeroPubkey
}

func (p Pubkey) Equal(other Pubkey) bool {
	return p == other
}

func (p Pubkey) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Pubkey) UnmarshalText(text []byte) error {
	pk, err := ParsePubkey(string(text))
	if err != nil {
		return errors.WithStack(err)
	}
	*p = pk
	return nil
}

// Value implements driver.Valuer so a Pubkey is stored as bytea.
func (p Pubkey) Value() (driver.Value, error) {
	return p[:], nil
}

// Scan implements sql.Scanner.
func (p *Pubkey) Scan(src any) error {
	b, ok := src.([]byte)
	if !ok {
		return errors.Wrapf(errs.InvalidArgument, "cannot scan %T into Pubkey", src)
	}
	pk, err := PubkeyFromBytes(b)
	if err != nil {
		return errors.WithStack(err)
	}
	*p = pk
	return nil
}
