// Package crypto provides the curve-level capabilities the signcryption layer
// is built on: the closed set of BLS signature variants with their
// domain-separation tags, the constant-time Choice type, the seal/unseal
// primitives and the threshold combination of decryption shares. It currently
// assumes the usage of pairings over BLS12-381 and it is important that the
// SigGroup and KeyGroup of a Suite always live on opposite sides of the
// pairing: G1 keys with G2 signatures, or the other way around.
package crypto

import (
	"fmt"

	"github.com/drand/kyber"
	bls "github.com/drand/kyber-bls12381"
	"github.com/drand/kyber/pairing"
)

// SignatureScheme identifies one of the three BLS signature variants a
// ciphertext can be bound to. The set is closed: the wire codec rejects any
// tag outside of it, so values of this type are always one of the constants
// below.
type SignatureScheme int

const (
	// Basic is the plain BLS variant, no protection against rogue keys.
	Basic SignatureScheme = iota
	// MessageAugmentation prepends the public key to the signed message.
	MessageAugmentation
	// ProofOfPossession relies on a separate possession proof and uses the
	// dedicated signing domain of that variant.
	ProofOfPossession
)

const (
	basicName = "basic"
	augName   = "message-augmentation"
	popName   = "proof-of-possession"
)

func (s SignatureScheme) String() string {
	switch s {
	case Basic:
		return basicName
	case MessageAugmentation:
		return augName
	case ProofOfPossession:
		return popName
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// SchemeFromName parses the textual form used in key files and on the CLI.
func SchemeFromName(name string) (SignatureScheme, error) {
	switch name {
	case basicName:
		return Basic, nil
	case augName:
		return MessageAugmentation, nil
	case popName:
		return ProofOfPossession, nil
	default:
		return 0, fmt.Errorf("invalid signature scheme name '%s'", name)
	}
}

// SchemeFromByte maps a wire tag back to its variant. Unknown tags are an
// error, never a guessed default.
func SchemeFromByte(b byte) (SignatureScheme, error) {
	switch SignatureScheme(b) {
	case Basic, MessageAugmentation, ProofOfPossession:
		return SignatureScheme(b), nil
	default:
		return 0, fmt.Errorf("invalid signature scheme tag %d", b)
	}
}

// ListSchemes returns the names of all supported signature variants.
func ListSchemes() []string {
	return []string{basicName, augName, popName}
}

// Domain-separation tags of the RFC 9380 hash-to-curve ciphersuites, one per
// signature variant and per signature group.
var (
	dstG2Basic = []byte("BLS_SIG_BLS12381G2_XMD:SHA-256_SSWU_RO_NUL_")
	dstG2Aug   = []byte("BLS_SIG_BLS12381G2_XMD:SHA-256_SSWU_RO_AUG_")
	dstG2Pop   = []byte("BLS_SIG_BLS12381G2_XMD:SHA-256_SSWU_RO_POP_")

	dstG1Basic = []byte("BLS_SIG_BLS12381G1_XMD:SHA-256_SSWU_RO_NUL_")
	dstG1Aug   = []byte("BLS_SIG_BLS12381G1_XMD:SHA-256_SSWU_RO_AUG_")
	dstG1Pop   = []byte("BLS_SIG_BLS12381G1_XMD:SHA-256_SSWU_RO_POP_")
)

// Suite ties together the two pairing groups, the per-variant
// domain-separation tags and the hash-to-curve spaces derived from them.
// A Suite is immutable once built and safe for concurrent use.
type Suite struct {
	name     string
	pairing  pairing.Suite
	keyGroup kyber.Group
	sigGroup kyber.Group
	// true when keys live on G1 and signatures on G2
	keysOnG1 bool

	dstBasic []byte
	dstAug   []byte
	dstPop   []byte

	// one sig-group instance per registered DST, since kyber bakes the
	// hash-to-curve domain into the group at construction time
	sigSpaces map[string]kyber.Group
}

// DefaultSuiteID is the suite used when none is specified.
const DefaultSuiteID = BLS12381G2ID

// BLS12381G2ID is the suite with public keys on G1 (48 bytes) and
// signatures on G2 (96 bytes), matching the common BLS deployment.
const BLS12381G2ID = "bls-signcrypt-g2"

// BLS12381G1ID is the swapped suite: public keys on G2 (96 bytes) and
// signatures on G1 (48 bytes), for shorter ciphertext tags.
const BLS12381G1ID = "bls-signcrypt-g1"

// NewSuiteBLS12381G2 instantiates the suite with keys on G1 and signatures
// on G2, using the standard G2 signing domains of the three variants.
func NewSuiteBLS12381G2() *Suite {
	p := bls.NewBLS12381SuiteWithDST(dstG1Basic, dstG2Basic)
	s := &Suite{
		name:     BLS12381G2ID,
		pairing:  p,
		keyGroup: p.G1(),
		sigGroup: p.G2(),
		keysOnG1: true,
		dstBasic: dstG2Basic,
		dstAug:   dstG2Aug,
		dstPop:   dstG2Pop,
	}
	s.sigSpaces = map[string]kyber.Group{
		string(dstG2Basic): bls.NewBLS12381SuiteWithDST(dstG1Basic, dstG2Basic).G2(),
		string(dstG2Aug):   bls.NewBLS12381SuiteWithDST(dstG1Basic, dstG2Aug).G2(),
		string(dstG2Pop):   bls.NewBLS12381SuiteWithDST(dstG1Basic, dstG2Pop).G2(),
	}
	return s
}

// NewSuiteBLS12381G1 instantiates the swapped suite with keys on G2 and
// signatures on G1, using the G1 signing domains of the three variants.
func NewSuiteBLS12381G1() *Suite {
	p := bls.NewBLS12381SuiteWithDST(dstG1Basic, dstG2Basic)
	s := &Suite{
		name:     BLS12381G1ID,
		pairing:  p,
		keyGroup: p.G2(),
		sigGroup: p.G1(),
		keysOnG1: false,
		dstBasic: dstG1Basic,
		dstAug:   dstG1Aug,
		dstPop:   dstG1Pop,
	}
	s.sigSpaces = map[string]kyber.Group{
		string(dstG1Basic): bls.NewBLS12381SuiteWithDST(dstG1Basic, dstG2Basic).G1(),
		string(dstG1Aug):   bls.NewBLS12381SuiteWithDST(dstG1Aug, dstG2Basic).G1(),
		string(dstG1Pop):   bls.NewBLS12381SuiteWithDST(dstG1Pop, dstG2Basic).G1(),
	}
	return s
}

// SuiteFromName retrieves a suite by its identifier.
func SuiteFromName(name string) (*Suite, error) {
	switch name {
	case BLS12381G2ID:
		return NewSuiteBLS12381G2(), nil
	case BLS12381G1ID:
		return NewSuiteBLS12381G1(), nil
	default:
		return nil, fmt.Errorf("invalid suite name '%s'", name)
	}
}

// ListSuites returns the identifiers of all supported suites.
func ListSuites() []string {
	return []string{BLS12381G2ID, BLS12381G1ID}
}

// Name returns the suite identifier.
func (s *Suite) Name() string { return s.name }

func (s *Suite) String() string {
	if s != nil {
		return s.name
	}
	return ""
}

// KeyGroup is the group public keys and the ciphertext component u live in.
func (s *Suite) KeyGroup() kyber.Group { return s.keyGroup }

// SigGroup is the group the binding tag w lives in.
func (s *Suite) SigGroup() kyber.Group { return s.sigGroup }

// DomainSeparationTag resolves the signing domain of a variant. It is total
// over the closed enum; sealing and unsealing stay interoperable only when
// both sides resolve the exact same tag. The default branch is unreachable
// for any value obtained through parsing or decoding and panics rather than
// silently defaulting.
func (s *Suite) DomainSeparationTag(scheme SignatureScheme) []byte {
	switch scheme {
	case Basic:
		return s.dstBasic
	case MessageAugmentation:
		return s.dstAug
	case ProofOfPossession:
		return s.dstPop
	default:
		panic(fmt.Sprintf("signature scheme %d has no registered domain", int(scheme)))
	}
}
