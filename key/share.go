package key

import (
	"errors"
	"fmt"

	"github.com/LF-Decentralized-Trust-labs/agora-blsful/crypto"
	"github.com/drand/kyber"
	"github.com/drand/kyber/share"
	"github.com/drand/kyber/util/random"
)

// Share represents the private information one participant holds after a
// dealer split a secret key t-of-n. This information MUST stay private!
// Commits are the public commitments of the sharing polynomial; Commits[0]
// is the public key of the shared secret.
type Share struct {
	Index     int
	Share     kyber.Scalar
	Commits   []kyber.Point
	Threshold int
	Suite     *crypto.Suite
}

// Split deals the secret of the pair into n shares with reconstruction
// threshold t, using a fresh random polynomial with the secret as constant
// term. Any t of the returned shares reconstruct the decryption capability;
// fewer reveal nothing.
func Split(pair *Pair, t, n int) ([]*Share, error) {
	if t < 1 || t > n {
		return nil, fmt.Errorf("invalid threshold %d for %d participants", t, n)
	}
	suite := pair.Suite
	priPoly := share.NewPriPoly(suite.KeyGroup(), t, pair.Key, random.New())
	pubPoly := priPoly.Commit(suite.KeyGroup().Point().Base())
	_, commits := pubPoly.Info()

	priShares := priPoly.Shares(n)
	shares := make([]*Share, n)
	for i, ps := range priShares {
		shares[i] = &Share{
			Index:     ps.I,
			Share:     ps.V,
			Commits:   commits,
			Threshold: t,
			Suite:     suite,
		}
	}
	return shares, nil
}

// PublicKey returns the public key of the shared secret.
func (s *Share) PublicKey() kyber.Point {
	return s.Commits[0]
}

// PublicShare returns this participant's public share, the evaluation of
// the commitment polynomial at its index.
func (s *Share) PublicShare() kyber.Point {
	pub := share.NewPubPoly(s.Suite.KeyGroup(), s.Suite.KeyGroup().Point().Base(), s.Commits)
	return pub.Eval(s.Index).V
}

// DecryptionShare computes this participant's partial decryption point for
// a ciphertext with encapsulation u.
func (s *Share) DecryptionShare(u kyber.Point) *crypto.DecryptionShare {
	return &crypto.DecryptionShare{
		Index: s.Index,
		Point: s.Suite.KeyGroup().Point().Mul(s.Share, u),
	}
}

// ShareTOML is the TOML representation of a Share
type ShareTOML struct {
	Index     int
	Share     string
	Commits   []string
	Threshold int
	SuiteName string
}

// TOML returns a TOML-compatible version of this share
func (s *Share) TOML() interface{} {
	stoml := &ShareTOML{
		Index:     s.Index,
		Share:     ScalarToString(s.Share),
		Threshold: s.Threshold,
		SuiteName: s.Suite.Name(),
	}
	stoml.Commits = make([]string, len(s.Commits))
	for i, c := range s.Commits {
		stoml.Commits[i] = PointToString(c)
	}
	return stoml
}

// FromTOML initializes the share from the given TOML-compatible interface
func (s *Share) FromTOML(i interface{}) error {
	t, ok := i.(*ShareTOML)
	if !ok {
		return errors.New("invalid struct received for share")
	}
	suite, err := crypto.SuiteFromName(t.SuiteName)
	if err != nil {
		return err
	}
	if t.Index < 0 {
		return fmt.Errorf("share index %d out of range", t.Index)
	}
	if t.Threshold < 1 || t.Threshold > len(t.Commits) {
		return fmt.Errorf("share threshold %d inconsistent with %d commits", t.Threshold, len(t.Commits))
	}
	s.Suite = suite
	s.Index = t.Index
	s.Threshold = t.Threshold
	s.Share, err = StringToScalar(suite.KeyGroup(), t.Share)
	if err != nil {
		return fmt.Errorf("share.Share corrupted: %w", err)
	}
	s.Commits = make([]kyber.Point, len(t.Commits))
	for i, c := range t.Commits {
		p, err := StringToPoint(suite.KeyGroup(), c)
		if err != nil {
			return fmt.Errorf("share.Commits[%d] corrupted: %w", i, err)
		}
		s.Commits[i] = p
	}
	return nil
}

// TOMLValue returns an empty TOML compatible interface of that Share
func (s *Share) TOMLValue() interface{} {
	return &ShareTOML{}
}
