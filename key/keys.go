// Package key manages the long-term key material of the signcryption
// engine: recipient key pairs, the trusted-dealer split of a secret into
// threshold shares, and their TOML representation on disk.
package key

import (
	"encoding/hex"
	"errors"

	"github.com/LF-Decentralized-Trust-labs/agora-blsful/crypto"
	"github.com/drand/kyber"
	"github.com/drand/kyber/util/random"
)

// Pair is a wrapper around a random scalar and the corresponding public
// point in the suite's key group.
type Pair struct {
	Key    kyber.Scalar
	Public kyber.Point
	Suite  *crypto.Suite
}

// NewKeyPair returns a freshly created private / public key pair for the
// given suite.
func NewKeyPair(suite *crypto.Suite) *Pair {
	key := suite.KeyGroup().Scalar().Pick(random.New())
	pub := suite.KeyGroup().Point().Mul(key, nil)
	return &Pair{
		Key:    key,
		Public: pub,
		Suite:  suite,
	}
}

// PairTOML is the TOML-able version of a private key
type PairTOML struct {
	Key       string
	SuiteName string
}

// PublicTOML is the TOML-able version of a public key
type PublicTOML struct {
	Key       string
	SuiteName string
}

// TOML returns a struct that can be marshalled using a TOML-encoding library
func (p *Pair) TOML() interface{} {
	return &PairTOML{
		Key:       ScalarToString(p.Key),
		SuiteName: p.Suite.Name(),
	}
}

// FromTOML constructs the private key from an unmarshalled structure from TOML
func (p *Pair) FromTOML(i interface{}) error {
	ptoml, ok := i.(*PairTOML)
	if !ok {
		return errors.New("private can't decode toml from non PairTOML struct")
	}
	suite, err := crypto.SuiteFromName(ptoml.SuiteName)
	if err != nil {
		return err
	}
	p.Suite = suite
	p.Key, err = StringToScalar(suite.KeyGroup(), ptoml.Key)
	if err != nil {
		return err
	}
	p.Public = suite.KeyGroup().Point().Mul(p.Key, nil)
	return nil
}

// TOMLValue returns an empty TOML-compatible interface value
func (p *Pair) TOMLValue() interface{} {
	return &PairTOML{}
}

// Identity is the public half of a Pair, the shape other parties seal to.
type Identity struct {
	Key   kyber.Point
	Suite *crypto.Suite
}

// Identity returns the public part of the pair.
func (p *Pair) Identity() *Identity {
	return &Identity{Key: p.Public, Suite: p.Suite}
}

// Equal returns true if the cryptographic public key of i equals i2's
func (i *Identity) Equal(i2 *Identity) bool {
	return i.Key.Equal(i2.Key)
}

// TOML returns a TOML-compatible version of the public key
func (i *Identity) TOML() interface{} {
	return &PublicTOML{
		Key:       PointToString(i.Key),
		SuiteName: i.Suite.Name(),
	}
}

// FromTOML reads the TOML description of the public key
func (i *Identity) FromTOML(t interface{}) error {
	ptoml, ok := t.(*PublicTOML)
	if !ok {
		return errors.New("public can't decode from non PublicTOML struct")
	}
	suite, err := crypto.SuiteFromName(ptoml.SuiteName)
	if err != nil {
		return err
	}
	i.Suite = suite
	i.Key, err = StringToPoint(suite.KeyGroup(), ptoml.Key)
	return err
}

// TOMLValue returns a TOML-compatible interface value
func (i *Identity) TOMLValue() interface{} {
	return &PublicTOML{}
}

// PointToString returns a hex-encoded string representation of the given point.
func PointToString(p kyber.Point) string {
	buff, _ := p.MarshalBinary()
	return hex.EncodeToString(buff)
}

// ScalarToString returns a hex-encoded string representation of the given scalar.
func ScalarToString(s kyber.Scalar) string {
	buff, _ := s.MarshalBinary()
	return hex.EncodeToString(buff)
}

// StringToPoint unmarshals a point in the given group from the given string.
func StringToPoint(g kyber.Group, s string) (kyber.Point, error) {
	buff, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	p := g.Point()
	return p, p.UnmarshalBinary(buff)
}

// StringToScalar unmarshals a scalar in the given group from the given string.
func StringToScalar(g kyber.Group, s string) (kyber.Scalar, error) {
	buff, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	sc := g.Scalar()
	return sc, sc.UnmarshalBinary(buff)
}

// DefaultThreshold is the threshold used when none is specified: a strict
// two-thirds majority of n.
func DefaultThreshold(n int) int {
	return (n*2)/3 + 1
}
