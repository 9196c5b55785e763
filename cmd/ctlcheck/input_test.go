package main

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const ts2Input = `states 2
init 1 0
transitions 2
0 1
1 1
labels 2
state 0 1 q
state 1 1 p
EF p
`

func TestParseProblem(t *testing.T) {
	p, err := parseProblem(strings.NewReader(ts2Input))
	require.NoError(t, err)
	require.Equal(t, 2, p.numStates)
	require.Equal(t, []int{0}, p.init)
	require.Equal(t, [][2]int{{0, 1}, {1, 1}}, p.transitions)
	require.Equal(t, []string{"q"}, p.labeling[0])
	require.Equal(t, []string{"p"}, p.labeling[1])
	require.Equal(t, "EF p", p.formula)
}

func TestParseProblemRejectsMismatchedInitCount(t *testing.T) {
	bad := strings.Replace(ts2Input, "init 1 0", "init 2 0", 1)
	_, err := parseProblem(strings.NewReader(bad))
	require.Error(t, err)
}

func TestParseProblemRejectsInitLineWithNoCount(t *testing.T) {
	bad := strings.Replace(ts2Input, "init 1 0", "init", 1)
	_, err := parseProblem(strings.NewReader(bad))
	require.Error(t, err)
}

func TestParseProblemRejectsLabelLineWithNoCount(t *testing.T) {
	bad := strings.Replace(ts2Input, "state 0 1 q", "state 0", 1)
	_, err := parseProblem(strings.NewReader(bad))
	require.Error(t, err)
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/ts2.txt"
	require.NoError(t, os.WriteFile(path, []byte(ts2Input), 0o644))
	require.Equal(t, 0, run(path))

	afq := strings.Replace(ts2Input, "EF p", "AG p", 1)
	path2 := dir + "/ts2_ag.txt"
	require.NoError(t, os.WriteFile(path2, []byte(afq), 0o644))
	require.Equal(t, 1, run(path2))
}
