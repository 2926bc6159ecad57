package key

import (
	"bytes"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/require"

	"github.com/LF-Decentralized-Trust-labs/agora-blsful/crypto"
)

func TestKeyPairTOMLRoundTrip(t *testing.T) {
	for _, name := range crypto.ListSuites() {
		suite, err := crypto.SuiteFromName(name)
		require.NoError(t, err)

		p := NewKeyPair(suite)
		var writer bytes.Buffer
		require.NoError(t, toml.NewEncoder(&writer).Encode(p.TOML()))

		p2 := new(Pair)
		p2toml := p2.TOMLValue()
		_, err = toml.NewDecoder(&writer).Decode(p2toml)
		require.NoError(t, err)
		require.NoError(t, p2.FromTOML(p2toml))

		require.True(t, p.Key.Equal(p2.Key))
		require.True(t, p.Public.Equal(p2.Public))
		require.Equal(t, p.Suite.Name(), p2.Suite.Name())
	}
}

func TestIdentityTOMLRoundTrip(t *testing.T) {
	suite := crypto.NewSuiteBLS12381G2()
	p := NewKeyPair(suite)
	id := p.Identity()

	var writer bytes.Buffer
	require.NoError(t, toml.NewEncoder(&writer).Encode(id.TOML()))

	id2 := new(Identity)
	id2toml := id2.TOMLValue()
	_, err := toml.NewDecoder(&writer).Decode(id2toml)
	require.NoError(t, err)
	require.NoError(t, id2.FromTOML(id2toml))
	require.True(t, id.Equal(id2))
}

func TestPairTOMLRejectsBadSuite(t *testing.T) {
	p := new(Pair)
	err := p.FromTOML(&PairTOML{Key: "00", SuiteName: "nonexistentsuitename"})
	require.Error(t, err)
}

func TestStringConversions(t *testing.T) {
	suite := crypto.NewSuiteBLS12381G2()
	p := NewKeyPair(suite)

	point, err := StringToPoint(suite.KeyGroup(), PointToString(p.Public))
	require.NoError(t, err)
	require.True(t, p.Public.Equal(point))

	scalar, err := StringToScalar(suite.KeyGroup(), ScalarToString(p.Key))
	require.NoError(t, err)
	require.True(t, p.Key.Equal(scalar))

	_, err = StringToPoint(suite.KeyGroup(), "not hex")
	require.Error(t, err)
}

func TestDefaultThreshold(t *testing.T) {
	require.Equal(t, 3, DefaultThreshold(4))
	require.Equal(t, 4, DefaultThreshold(5))
	require.Equal(t, 7, DefaultThreshold(10))
}
