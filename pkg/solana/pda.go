package solana

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"
	solanago "github.com/gagliardetto/solana-go"
	"github.com/gaze-network/bubblegum-indexer/common/errs"
)

const (
	MaxSeeds      = solanago.MaxSeeds
	MaxSeedLength = solanago.MaxSeedLength
)

const ErrNoViableBump = errs.ErrorKind("solana: unable to find a viable program address bump seed")

// IsOnCurve reports whether the address is a valid ed25519 point.
func IsOnCurve(p Pubkey) bool {
	return solanago.IsOnCurve(p[:])
}

// CreateProgramAddress derives a program address from seeds. The result must
// lie off the ed25519 curve.
func CreateProgramAddress(seeds [][]byte, programID Pubkey) (Pubkey, error) {
	if err := checkSeeds(seeds); err != nil {
		return Pubkey{}, errors.WithStack(err)
	}
	pk, err := solanago.CreateProgramAddress(seeds, solanago.PublicKey(programID))
	if err != nil {
		return Pubkey{}, errors.Wrapf(errs.InvalidArgument, "%v", err)
	}
	return Pubkey(pk), nil
}

// FindProgramAddress searches bump seeds from 255 down for the first
// off-curve address.
func FindProgramAddress(seeds [][]byte, programID Pubkey) (Pubkey, uint8, error) {
	if err := checkSeeds(append(seeds[:len(seeds):len(seeds)], []byte{0})); err != nil {
		return Pubkey{}, 0, errors.WithStack(err)
	}
	// full slice expression keeps the bump append off the caller's array
	pk, bump, err := solanago.FindProgramAddress(seeds[:len(seeds):len(seeds)], solanago.PublicKey(programID))
	if err != nil {
		return Pubkey{}, 0, errors.Wrapf(ErrNoViableBump, "%v", err)
	}
	return Pubkey(pk), bump, nil
}

func checkSeeds(seeds [][]byte) error {
	if len(seeds) > MaxSeeds {
		return errors.Wrapf(errs.InvalidArgument, "too many seeds: %d", len(seeds))
	}
	for _, seed := range seeds {
		if len(seed) > MaxSeedLength {
			return errors.Wrapf(errs.InvalidArgument, "seed too long: %d", len(seed))
		}
	}
	return nil
}

// AssetID derives the id of the compressed asset at leaf nonce of tree.
func AssetID(tree Pubkey, nonce uint64) (Pubkey, error) {
	var le [8]byte
	binary.LittleEndian.PutUint64(le[:], nonce)
	id, _, err := FindProgramAddress([][]byte{[]byte("asset"), tree[:], le[:]}, BubblegumProgramID)
	if err != nil {
		return Pubkey{}, errors.Wrapf(err, "derive asset id for tree %s nonce %d", tree, nonce)
	}
	return id, nil
}

// TreeAuthority derives the TreeConfig account address of a merkle tree.
func TreeAuthority(tree Pubkey) (Pubkey, error) {
	pk, _, err := FindProgramAddress([][]byte{tree[:]}, BubblegumProgramID)
	return pk, errors.WithStack(err)
}
