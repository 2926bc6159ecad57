package crypto

import (
	"errors"
	"fmt"

	"github.com/drand/kyber"
	"github.com/drand/kyber/share"
)

// Combination errors. Share sets are protocol-public, so unlike the decrypt
// paths these failures are loud and carry a reason.
var (
	// ErrTooFewShares is returned when the share set does not reach the
	// threshold, including the empty set.
	ErrTooFewShares = errors.New("not enough decryption shares")
	// ErrDuplicateShareIndex is returned when two shares carry the same
	// participant index.
	ErrDuplicateShareIndex = errors.New("duplicate decryption share index")
	// ErrMalformedShare is returned when a share carries no point.
	ErrMalformedShare = errors.New("malformed decryption share")
)

// DecryptionShare is one participant's partial contribution towards the
// decryption point of a specific ciphertext: u·sk_i for the participant's
// long-term key share sk_i.
type DecryptionShare struct {
	// Index of the participant in the sharing, as dealt by the dealer.
	Index int
	// Point is the partial decryption point in the key group.
	Point kyber.Point
}

// CombineShares interpolates the partial points at zero in the exponent and
// returns the resulting decryption point, which equals what the holder of
// the full secret key derives directly. It rejects malformed share sets
// instead of silently producing a wrong point: the set must contain at least
// threshold shares and no duplicate participant index.
func (s *Suite) CombineShares(shares []*DecryptionShare, threshold int) (kyber.Point, error) {
	if len(shares) == 0 || len(shares) < threshold {
		return nil, fmt.Errorf("%w: got %d, threshold is %d", ErrTooFewShares, len(shares), threshold)
	}

	seen := make(map[int]bool, len(shares))
	pubShares := make([]*share.PubShare, 0, len(shares))
	for _, ds := range shares {
		if ds == nil || ds.Point == nil {
			return nil, ErrMalformedShare
		}
		if seen[ds.Index] {
			return nil, fmt.Errorf("%w: index %d", ErrDuplicateShareIndex, ds.Index)
		}
		seen[ds.Index] = true
		pubShares = append(pubShares, &share.PubShare{I: ds.Index, V: ds.Point})
	}

	point, err := share.RecoverCommit(s.keyGroup, pubShares, threshold, len(shares))
	if err != nil {
		return nil, fmt.Errorf("combining decryption shares: %w", err)
	}
	return point, nil
}
