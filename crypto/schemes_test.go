package crypto_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LF-Decentralized-Trust-labs/agora-blsful/crypto"
)

func TestSchemeNamesRoundTrip(t *testing.T) {
	for _, name := range crypto.ListSchemes() {
		scheme, err := crypto.SchemeFromName(name)
		require.NoError(t, err)
		require.Equal(t, name, scheme.String())
	}

	_, err := crypto.SchemeFromName("nonexistentschemename")
	require.Error(t, err)
}

func TestSchemeFromByte(t *testing.T) {
	for _, scheme := range []crypto.SignatureScheme{crypto.Basic, crypto.MessageAugmentation, crypto.ProofOfPossession} {
		got, err := crypto.SchemeFromByte(byte(scheme))
		require.NoError(t, err)
		require.Equal(t, scheme, got)
	}

	_, err := crypto.SchemeFromByte(3)
	require.Error(t, err)
	_, err = crypto.SchemeFromByte(255)
	require.Error(t, err)
}

func TestSuiteFromName(t *testing.T) {
	for _, name := range crypto.ListSuites() {
		suite, err := crypto.SuiteFromName(name)
		require.NoError(t, err)
		require.Equal(t, name, suite.Name())
		require.NotEqual(t, suite.KeyGroup().String(), suite.SigGroup().String())
	}

	_, err := crypto.SuiteFromName("nonexistentsuitename")
	require.Error(t, err)
}

func TestDomainSeparationTags(t *testing.T) {
	for _, name := range crypto.ListSuites() {
		suite, err := crypto.SuiteFromName(name)
		require.NoError(t, err)

		seen := map[string]bool{}
		for _, schemeName := range crypto.ListSchemes() {
			scheme, err := crypto.SchemeFromName(schemeName)
			require.NoError(t, err)
			dst := suite.DomainSeparationTag(scheme)
			require.NotEmpty(t, dst)
			require.False(t, seen[string(dst)], "domain reused across variants")
			seen[string(dst)] = true
		}
	}
}

func TestDomainSeparationTagPanicsOnUnknown(t *testing.T) {
	suite := crypto.NewSuiteBLS12381G2()
	require.Panics(t, func() {
		suite.DomainSeparationTag(crypto.SignatureScheme(42))
	})
}

func TestSuiteGroupSizes(t *testing.T) {
	g2 := crypto.NewSuiteBLS12381G2()
	require.Equal(t, 48, g2.KeyGroup().PointLen())
	require.Equal(t, 96, g2.SigGroup().PointLen())

	g1 := crypto.NewSuiteBLS12381G1()
	require.Equal(t, 96, g1.KeyGroup().PointLen())
	require.Equal(t, 48, g1.SigGroup().PointLen())
}
