package jsondoc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// mustParse parses text or fails the test
func mustParse(t *testing.T, text string) *Node {
	t.Helper()
	n, err := ParseString(text)
	require.NoError(t, err, "parse %q", text)
	return n
}

// assertJSON compares the compact encoding of n with want, key order included
func assertJSON(t *testing.T, want string, n *Node) {
	t.Helper()
	got, err := EncodeString(n, 0)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("encoded tree mismatch (-want +got):\n%s", diff)
	}
}

// assertTree compares the native form of two trees
func assertTree(t *testing.T, want, got *Node) {
	t.Helper()
	if diff := cmp.Diff(want.Interface(), got.Interface()); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}
