package atom_test

import (
	"testing"

	"github.com/dorian451/eg-graph-editor/atom"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsEmpty(t *testing.T) {
	_, err := atom.New("")
	require.Error(t, err)
}

func TestNewRejectsDelimiters(t *testing.T) {
	for _, name := range []string{"[", "]", ",", "A[", "]B", "A,B"} {
		_, err := atom.New(name)
		require.Errorf(t, err, "expected %q to be rejected", name)
	}
}

func TestNewRejectsWhitespace(t *testing.T) {
	_, err := atom.New("A B")
	require.Error(t, err)
}

func TestNewAcceptsPlainName(t *testing.T) {
	a, err := atom.New("P1")
	require.NoError(t, err)
	require.Equal(t, "P1", a.Name())
	require.Equal(t, "P1", a.String())
}

func TestEqualityIsByteWise(t *testing.T) {
	a := atom.MustNew("A")
	b := atom.MustNew("A")
	c := atom.MustNew("a")
	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
}
