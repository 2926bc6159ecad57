// Package signcrypt holds the signcryption ciphertext and the decryption
// keys able to open it, either from a recipient's secret key or combined
// from a threshold set of decryption shares. The algebra itself lives behind
// the Suite interface; this package binds it to the right signing domain and
// keeps the validity bit constant-time on the way through.
package signcrypt

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/LF-Decentralized-Trust-labs/agora-blsful/crypto"
	"github.com/drand/kyber"
)

// Suite is the set of curve capabilities the signcryption layer consumes.
// *crypto.Suite implements it; the layer never depends on a concrete curve
// beyond this contract.
type Suite interface {
	Name() string
	KeyGroup() kyber.Group
	SigGroup() kyber.Group
	DomainSeparationTag(scheme crypto.SignatureScheme) []byte
	Seal(recipient kyber.Point, msg, dst []byte) (kyber.Point, []byte, kyber.Point, error)
	Unseal(u kyber.Point, v []byte, w kyber.Point, sk kyber.Scalar, dst []byte) ([]byte, crypto.Choice)
	Valid(u kyber.Point, v []byte, w kyber.Point, dst []byte) crypto.Choice
	Decrypt(v []byte, point kyber.Point, valid crypto.Choice) ([]byte, crypto.Choice)
	CombineShares(shares []*crypto.DecryptionShare, threshold int) (kyber.Point, error)
}

// Ciphertext is the sealed artifact: the ephemeral encapsulation u in the
// key group, the opaque sealed payload v, the binding tag w in the signature
// group, and the signature variant the sealer bound it to. It is a plain
// value: immutable once constructed, safe to copy and compare structurally.
type Ciphertext struct {
	U      kyber.Point
	V      []byte
	W      kyber.Point
	Scheme crypto.SignatureScheme
}

// Seal encrypts msg to the recipient public key, bound to the given
// signature variant of the suite.
func Seal(s Suite, recipient kyber.Point, scheme crypto.SignatureScheme, msg []byte) (*Ciphertext, error) {
	u, v, w, err := s.Seal(recipient, msg, s.DomainSeparationTag(scheme))
	if err != nil {
		return nil, fmt.Errorf("sealing: %w", err)
	}
	return &Ciphertext{U: u, V: v, W: w, Scheme: scheme}, nil
}

// Valid checks the algebraic consistency of the ciphertext under its own
// signing domain. It needs no secret material, so a relay can run it before
// forwarding. The result is a constant-time Choice.
func (c *Ciphertext) Valid(s Suite) crypto.Choice {
	return s.Valid(c.U, c.V, c.W, s.DomainSeparationTag(c.Scheme))
}

// Decrypt opens the ciphertext with the recipient secret key. It returns the
// plaintext when the ciphertext is consistent and keyed to sk, and (nil,
// false) otherwise: wrong key, tampered payload or tag, and a flipped scheme
// tag all look the same to the caller. The outcome is only inspected once
// the primitive has fully run.
func (c *Ciphertext) Decrypt(s Suite, sk kyber.Scalar) ([]byte, bool) {
	msg, ok := s.Unseal(c.U, c.V, c.W, sk, s.DomainSeparationTag(c.Scheme))
	if !ok.Bool() {
		return nil, false
	}
	return msg, true
}

// Equal compares two ciphertexts structurally.
func (c *Ciphertext) Equal(other *Ciphertext) bool {
	if other == nil {
		return false
	}
	return c.U.Equal(other.U) &&
		bytes.Equal(c.V, other.V) &&
		c.W.Equal(other.W) &&
		c.Scheme == other.Scheme
}

// String renders the ciphertext for logging. It is not a round-trippable
// form; use MarshalBinary for that.
func (c *Ciphertext) String() string {
	return fmt.Sprintf("{ u: %s, v: %x, w: %s, scheme: %s }", c.U, c.V, c.W, c.Scheme)
}

// MarshalBinary encodes the ciphertext as
// u ‖ len(v) ‖ v ‖ w ‖ scheme-byte, with both points in their fixed-size
// compressed form and len(v) as a big-endian uint32.
func (c *Ciphertext) MarshalBinary() ([]byte, error) {
	uBuff, err := c.U.MarshalBinary()
	if err != nil {
		return nil, err
	}
	wBuff, err := c.W.MarshalBinary()
	if err != nil {
		return nil, err
	}
	var b bytes.Buffer
	b.Write(uBuff)
	_ = binary.Write(&b, binary.BigEndian, uint32(len(c.V)))
	b.Write(c.V)
	b.Write(wBuff)
	b.WriteByte(byte(c.Scheme))
	return b.Bytes(), nil
}

// DecodeCiphertext parses the layout produced by MarshalBinary against the
// given suite. A truncated buffer, a point outside its group or a scheme tag
// outside the supported set all fail decoding.
func DecodeCiphertext(s Suite, buff []byte) (*Ciphertext, error) {
	uLen := s.KeyGroup().PointLen()
	wLen := s.SigGroup().PointLen()
	if len(buff) < uLen+4 {
		return nil, fmt.Errorf("ciphertext too short: %d bytes", len(buff))
	}

	u := s.KeyGroup().Point()
	if err := u.UnmarshalBinary(buff[:uLen]); err != nil {
		return nil, fmt.Errorf("decoding u: %w", err)
	}
	buff = buff[uLen:]

	vLen := int(binary.BigEndian.Uint32(buff[:4]))
	buff = buff[4:]
	if len(buff) != vLen+wLen+1 {
		return nil, fmt.Errorf("ciphertext length mismatch: %d bytes left, want %d", len(buff), vLen+wLen+1)
	}
	v := make([]byte, vLen)
	copy(v, buff[:vLen])
	buff = buff[vLen:]

	w := s.SigGroup().Point()
	if err := w.UnmarshalBinary(buff[:wLen]); err != nil {
		return nil, fmt.Errorf("decoding w: %w", err)
	}

	scheme, err := crypto.SchemeFromByte(buff[wLen])
	if err != nil {
		return nil, err
	}
	return &Ciphertext{U: u, V: v, W: w, Scheme: scheme}, nil
}
