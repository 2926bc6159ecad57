package crypto

import (
	"crypto/sha256"
	"errors"
	"io"

	"github.com/drand/kyber"
	"github.com/drand/kyber/util/random"
	"golang.org/x/crypto/hkdf"
)

// This file implements the signcryption algebra. A sealed message is the
// triple (u, v, w):
//
//	u = g·r                          ephemeral encapsulation in the key group
//	v = (m ‖ κ) ⊕ HKDF(pk·r)         sealed payload, κ = SHA-256(pk·r ‖ m)
//	w = r·H(u ‖ v, dst)              binding tag in the signature group
//
// for a fresh scalar r. Validity is the pairing check
// e(u, H(u ‖ v, dst)) == e(g, w), which needs no secret material. Unsealing
// recomputes the pad from u·sk = pk·r; the κ commitment makes a decryption
// with a non-matching point come out as no-value instead of garbage.

// length of the κ commitment appended to the plaintext before masking
const bindingLen = sha256.Size

// hashablePoint is implemented by the points of groups supporting
// hash-to-curve, which is the case for both BLS12-381 groups.
type hashablePoint interface {
	Hash(msg []byte) kyber.Point
}

// hashToSigGroup hashes u ‖ v into the signature space registered for dst.
// The second return is 0 when the dst is not one of the suite's domains.
func (s *Suite) hashToSigGroup(u kyber.Point, v, dst []byte) (kyber.Point, Choice) {
	space, ok := s.sigSpaces[string(dst)]
	if !ok {
		return s.sigGroup.Point().Null(), 0
	}
	hashable, ok := space.Point().(hashablePoint)
	if !ok {
		return s.sigGroup.Point().Null(), 0
	}
	uBuff, err := u.MarshalBinary()
	if err != nil {
		return s.sigGroup.Point().Null(), 0
	}
	return hashable.Hash(append(uBuff, v...)), 1
}

// pad derives a keystream of the given length from a shared point, using the
// same hkdf construction the rest of the stack uses for DH-derived keys.
func pad(dhBuff []byte, length int) ([]byte, error) {
	out := make([]byte, length)
	if _, err := io.ReadFull(hkdf.New(sha256.New, dhBuff, nil, nil), out); err != nil {
		return nil, err
	}
	return out, nil
}

// binding commits a plaintext to the shared point it was sealed under.
func binding(dhBuff, msg []byte) []byte {
	h := sha256.New()
	_, _ = h.Write(dhBuff)
	_, _ = h.Write(msg)
	return h.Sum(nil)
}

// Seal encrypts msg to the recipient public key under the given signing
// domain and returns the (u, v, w) components. The domain must be one
// registered with this suite, which is always the case when it comes from
// DomainSeparationTag.
func (s *Suite) Seal(recipient kyber.Point, msg, dst []byte) (kyber.Point, []byte, kyber.Point, error) {
	r := s.keyGroup.Scalar().Pick(random.New())
	u := s.keyGroup.Point().Mul(r, nil)

	dh := s.keyGroup.Point().Mul(r, recipient)
	dhBuff, err := dh.MarshalBinary()
	if err != nil {
		return nil, nil, nil, err
	}
	keystream, err := pad(dhBuff, len(msg)+bindingLen)
	if err != nil {
		return nil, nil, nil, err
	}

	plain := make([]byte, 0, len(msg)+bindingLen)
	plain = append(plain, msg...)
	plain = append(plain, binding(dhBuff, msg)...)
	v := make([]byte, len(plain))
	for i := range plain {
		v[i] = plain[i] ^ keystream[i]
	}

	h, ok := s.hashToSigGroup(u, v, dst)
	if !ok.Bool() {
		return nil, nil, nil, errors.New("sealing with an unregistered signing domain")
	}
	w := s.sigGroup.Point().Mul(r, h)
	return u, v, w, nil
}

// Valid checks the algebraic consistency of a sealed triple without any
// secret material: e(u, H(u ‖ v, dst)) == e(g, w). The result is a Choice so
// callers can keep composing on it without branching; the pairing evaluation
// itself does not depend on the validity outcome.
func (s *Suite) Valid(u kyber.Point, v []byte, w kyber.Point, dst []byte) Choice {
	if u == nil || w == nil || len(v) < bindingLen {
		return 0
	}
	h, ok := s.hashToSigGroup(u, v, dst)

	var left, right kyber.Point
	if s.keysOnG1 {
		left = s.pairing.Pair(u, h)
		right = s.pairing.Pair(s.keyGroup.Point().Base(), w)
	} else {
		left = s.pairing.Pair(h, u)
		right = s.pairing.Pair(w, s.keyGroup.Point().Base())
	}

	leftBuff, errL := left.MarshalBinary()
	rightBuff, errR := right.MarshalBinary()
	if errL != nil || errR != nil {
		return 0
	}
	return EqualBytes(leftBuff, rightBuff).And(ok)
}

// Unseal recovers the plaintext sealed to the holder of sk. The returned
// Choice reports success; the plaintext buffer is zeroed when it is unset.
// The validity check, the pad derivation and the binding check all run
// regardless of the outcome, so the failure paths stay indistinguishable up
// to the guarantees of the underlying group operations.
func (s *Suite) Unseal(u kyber.Point, v []byte, w kyber.Point, sk kyber.Scalar, dst []byte) ([]byte, Choice) {
	valid := s.Valid(u, v, w, dst)
	dh := s.keyGroup.Point().Mul(sk, u)
	return s.Decrypt(v, dh, valid)
}

// Decrypt unmasks v with the pad derived from the decryption point and
// checks the κ commitment against it, so a point the payload was not sealed
// under comes out as no-value. The valid bit and the commitment check gate
// the output arithmetically: when either fails the plaintext comes back
// zeroed, without this function ever branching on a secret bit.
func (s *Suite) Decrypt(v []byte, point kyber.Point, valid Choice) ([]byte, Choice) {
	if len(v) < bindingLen {
		return nil, 0
	}
	msgLen := len(v) - bindingLen

	dhBuff, err := point.MarshalBinary()
	if err != nil {
		return make([]byte, msgLen), 0
	}
	keystream, err := pad(dhBuff, len(v))
	if err != nil {
		return make([]byte, msgLen), 0
	}

	plain := make([]byte, len(v))
	for i := range v {
		plain[i] = v[i] ^ keystream[i]
	}
	msg, tag := plain[:msgLen], plain[msgLen:]

	ok := valid.And(EqualBytes(binding(dhBuff, msg), tag))
	mask := ok.mask()
	out := make([]byte, msgLen)
	for i := range msg {
		out[i] = msg[i] & mask
	}
	return out, ok
}
