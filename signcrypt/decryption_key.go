package signcrypt

import (
	"fmt"

	"github.com/LF-Decentralized-Trust-labs/agora-blsful/crypto"
	"github.com/drand/kyber"
)

// DecryptionKey wraps the single point able to open one ciphertext: u·sk,
// derived directly by the holder of the secret key or combined from a
// threshold set of decryption shares. It carries no notion of a signature
// variant; that binding happens at decrypt time through the ciphertext's
// own tag. Immutable once built.
type DecryptionKey struct {
	suite Suite
	point kyber.Point
}

// NewDecryptionKey derives the decryption point of a ciphertext for the
// holder of the full secret key.
func NewDecryptionKey(s Suite, sk kyber.Scalar, c *Ciphertext) *DecryptionKey {
	return &DecryptionKey{
		suite: s,
		point: s.KeyGroup().Point().Mul(sk, c.U),
	}
}

// CombineDecryptionKey builds the decryption key from at least threshold
// partial points, interpolating them at zero in the exponent. Any violation
// of the share-set shape surfaces as one of the crypto package's combination
// errors, never as a silently wrong key.
func CombineDecryptionKey(s Suite, shares []*crypto.DecryptionShare, threshold int) (*DecryptionKey, error) {
	point, err := s.CombineShares(shares, threshold)
	if err != nil {
		return nil, err
	}
	return &DecryptionKey{suite: s, point: point}, nil
}

// Decrypt opens the ciphertext with this key's point. The validity bit is
// computed first and handed to the decrypt primitive as a Choice, which
// gates its output arithmetically; this method never branches on the bit
// before the primitive has run. It returns (nil, false) whenever the
// ciphertext is invalid or bound to a different point.
func (d *DecryptionKey) Decrypt(c *Ciphertext) ([]byte, bool) {
	valid := c.Valid(d.suite)
	msg, ok := d.suite.Decrypt(c.V, d.point, valid)
	if !ok.Bool() {
		return nil, false
	}
	return msg, true
}

// Point returns the wrapped decryption point.
func (d *DecryptionKey) Point() kyber.Point {
	return d.point
}

// Equal compares the wrapped points only.
func (d *DecryptionKey) Equal(other *DecryptionKey) bool {
	if other == nil {
		return false
	}
	return d.point.Equal(other.point)
}

// MarshalBinary encodes the wrapped point in its fixed-size compressed form.
func (d *DecryptionKey) MarshalBinary() ([]byte, error) {
	return d.point.MarshalBinary()
}

// DecodeDecryptionKey parses a decryption key serialized by MarshalBinary.
func DecodeDecryptionKey(s Suite, buff []byte) (*DecryptionKey, error) {
	point := s.KeyGroup().Point()
	if err := point.UnmarshalBinary(buff); err != nil {
		return nil, fmt.Errorf("decoding decryption key: %w", err)
	}
	return &DecryptionKey{suite: s, point: point}, nil
}

// String renders the wrapped point for logging.
func (d *DecryptionKey) String() string {
	return d.point.String()
}
