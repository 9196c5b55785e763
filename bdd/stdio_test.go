package bdd

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStats(t *testing.T) {
	b, err := New(2)
	require.NoError(t, err)
	b.And(b.Var(0), b.Var(1))

	stats := b.Stats()
	require.Contains(t, stats, "Varnum:     2")
	require.Contains(t, stats, "apply cache:")
}

func TestPrintWritesReachableNodes(t *testing.T) {
	b, err := New(2)
	require.NoError(t, err)
	n := b.And(b.Var(0), b.Var(1))

	var buf bytes.Buffer
	b.print(&buf, n)
	out := buf.String()
	require.NotEmpty(t, out)
	require.True(t, strings.Contains(out, "?"))
}

func TestPrintConstants(t *testing.T) {
	b, err := New(1)
	require.NoError(t, err)

	var buf bytes.Buffer
	b.print(&buf, False)
	require.Equal(t, "False\n", buf.String())

	buf.Reset()
	b.print(&buf, True)
	require.Equal(t, "True\n", buf.String())
}

func TestPrintDotWritesDotFile(t *testing.T) {
	b, err := New(2)
	require.NoError(t, err)
	n := b.And(b.Var(0), b.Var(1))

	path := t.TempDir() + "/out.dot"
	require.NoError(t, b.PrintDot(path, n))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(content), "digraph G {")
}
