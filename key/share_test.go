package key

import (
	"bytes"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/drand/kyber/util/random"
	"github.com/stretchr/testify/require"

	"github.com/LF-Decentralized-Trust-labs/agora-blsful/crypto"
)

func TestSplit(t *testing.T) {
	suite := crypto.NewSuiteBLS12381G2()
	pair := NewKeyPair(suite)

	shares, err := Split(pair, 3, 5)
	require.NoError(t, err)
	require.Len(t, shares, 5)

	for i, sh := range shares {
		require.Equal(t, i, sh.Index)
		require.Equal(t, 3, sh.Threshold)
		require.Len(t, sh.Commits, 3)
		// the sharing commits to the original public key
		require.True(t, pair.Public.Equal(sh.PublicKey()))
		// the public share matches the private one
		expected := suite.KeyGroup().Point().Mul(sh.Share, nil)
		require.True(t, expected.Equal(sh.PublicShare()))
	}
}

func TestSplitInvalidThreshold(t *testing.T) {
	suite := crypto.NewSuiteBLS12381G2()
	pair := NewKeyPair(suite)

	_, err := Split(pair, 0, 5)
	require.Error(t, err)
	_, err = Split(pair, 6, 5)
	require.Error(t, err)
}

func TestShareDecryptionShare(t *testing.T) {
	suite := crypto.NewSuiteBLS12381G2()
	pair := NewKeyPair(suite)
	shares, err := Split(pair, 2, 3)
	require.NoError(t, err)

	u := suite.KeyGroup().Point().Pick(random.New())
	ds := shares[1].DecryptionShare(u)
	require.Equal(t, 1, ds.Index)
	expected := suite.KeyGroup().Point().Mul(shares[1].Share, u)
	require.True(t, expected.Equal(ds.Point))
}

func TestShareTOMLRoundTrip(t *testing.T) {
	suite := crypto.NewSuiteBLS12381G1()
	pair := NewKeyPair(suite)
	shares, err := Split(pair, 2, 3)
	require.NoError(t, err)
	sh := shares[2]

	var writer bytes.Buffer
	require.NoError(t, toml.NewEncoder(&writer).Encode(sh.TOML()))

	sh2 := new(Share)
	sh2toml := sh2.TOMLValue()
	_, err = toml.NewDecoder(&writer).Decode(sh2toml)
	require.NoError(t, err)
	require.NoError(t, sh2.FromTOML(sh2toml))

	require.Equal(t, sh.Index, sh2.Index)
	require.Equal(t, sh.Threshold, sh2.Threshold)
	require.True(t, sh.Share.Equal(sh2.Share))
	require.Len(t, sh2.Commits, len(sh.Commits))
	for i := range sh.Commits {
		require.True(t, sh.Commits[i].Equal(sh2.Commits[i]))
	}
}

func TestShareFromTOMLRejectsBadInput(t *testing.T) {
	sh := new(Share)
	err := sh.FromTOML(&ShareTOML{
		Index:     0,
		Share:     "00",
		Commits:   []string{"00"},
		Threshold: 2,
		SuiteName: crypto.BLS12381G2ID,
	})
	// threshold larger than the number of commits
	require.Error(t, err)

	err = sh.FromTOML(&ShareTOML{
		Index:     -1,
		Share:     "00",
		Commits:   []string{"00", "00"},
		Threshold: 2,
		SuiteName: crypto.BLS12381G2ID,
	})
	require.Error(t, err)
}
