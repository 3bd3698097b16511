package sheetutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNorm(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Kevin   Durant \r", "kevin durant"},
		{"PLAYER", "player"},
		{"", ""},
		{"a\tb", "a b"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, Norm(c.in))
	}
}

func TestNormFuzzyEquivalence(t *testing.T) {
	// hand-typed variants of the same name must collapse to one key
	variants := []string{
		"Kevin O'Neal",
		"kevin oneal",
		"Kevin O’Neal ",
		"KEVIN O'NEAL",
	}
	want := NormFuzzy(variants[0])
	for _, v := range variants {
		require.Equal(t, want, NormFuzzy(v), "variant %q", v)
	}

	require.Equal(t, "j wembanyama", NormFuzzy("J. Wembanyama"))
	require.NotEqual(t, NormFuzzy("Kevin O'Neal"), NormFuzzy("Kevin Oneil"))
}

func TestNormHeader(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Record W％", "record w%"},
		{"Champs / Finals", "champs / finals"},
		{"Fpts∕G", "fpts/g"},
		{"Best–Record", "best-record"},
		{"“Total”", "total"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, NormHeader(c.in))
	}
}

func TestCanonType(t *testing.T) {
	variants := []string{"Buy-out", "Buy–out", "Buy out", "BUYOUT", "buy_out"}
	for _, v := range variants {
		require.Equal(t, "buyout", CanonType(v), "variant %q", v)
	}
	require.Equal(t, "trade", CanonType(" Trade \r"))
}
