package crypto_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/drand/kyber/share"
	"github.com/drand/kyber/util/random"

	"github.com/LF-Decentralized-Trust-labs/agora-blsful/crypto"
)

const thr, n = 3, 5

func TestCombineSharesMatchesDirectPoint(t *testing.T) {
	forEachSuite(t, func(t *testing.T, suite *crypto.Suite) {
		secret := suite.KeyGroup().Scalar().Pick(random.New())
		poly := share.NewPriPoly(suite.KeyGroup(), thr, secret, random.New())
		priShares := poly.Shares(n)

		u := suite.KeyGroup().Point().Pick(random.New())
		direct := suite.KeyGroup().Point().Mul(secret, u)

		shares := make([]*crypto.DecryptionShare, 0, n)
		for _, ps := range priShares {
			shares = append(shares, &crypto.DecryptionShare{
				Index: ps.I,
				Point: suite.KeyGroup().Point().Mul(ps.V, u),
			})
		}

		// any subset of >= thr shares recovers the direct point
		combined, err := suite.CombineShares(shares[:thr], thr)
		require.NoError(t, err)
		require.True(t, direct.Equal(combined))

		combined, err = suite.CombineShares(shares[n-thr:], thr)
		require.NoError(t, err)
		require.True(t, direct.Equal(combined))

		combined, err = suite.CombineShares(shares, thr)
		require.NoError(t, err)
		require.True(t, direct.Equal(combined))
	})
}

func TestCombineSharesTooFew(t *testing.T) {
	suite := crypto.NewSuiteBLS12381G2()
	u := suite.KeyGroup().Point().Pick(random.New())

	shares := []*crypto.DecryptionShare{
		{Index: 0, Point: u.Clone()},
		{Index: 1, Point: u.Clone()},
	}
	_, err := suite.CombineShares(shares, thr)
	require.ErrorIs(t, err, crypto.ErrTooFewShares)

	_, err = suite.CombineShares(nil, thr)
	require.ErrorIs(t, err, crypto.ErrTooFewShares)
}

func TestCombineSharesDuplicateIndex(t *testing.T) {
	suite := crypto.NewSuiteBLS12381G2()
	u := suite.KeyGroup().Point().Pick(random.New())

	shares := []*crypto.DecryptionShare{
		{Index: 0, Point: u.Clone()},
		{Index: 1, Point: u.Clone()},
		{Index: 1, Point: u.Clone()},
	}
	_, err := suite.CombineShares(shares, thr)
	require.ErrorIs(t, err, crypto.ErrDuplicateShareIndex)
}

func TestCombineSharesMalformed(t *testing.T) {
	suite := crypto.NewSuiteBLS12381G2()
	u := suite.KeyGroup().Point().Pick(random.New())

	shares := []*crypto.DecryptionShare{
		{Index: 0, Point: u.Clone()},
		{Index: 1, Point: nil},
		{Index: 2, Point: u.Clone()},
	}
	_, err := suite.CombineShares(shares, thr)
	require.ErrorIs(t, err, crypto.ErrMalformedShare)
}
