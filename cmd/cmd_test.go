package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, c *cobra.Command, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}

func TestSolve_PrintsWalkthroughAndResult(t *testing.T) {
	out, err := execute(t, rootCmd, "solve", "768", "24")
	require.NoError(t, err)

	assert.Contains(t, out, "» ")
	assert.Contains(t, out, "768 ÷ 24 = 32")
	assert.Contains(t, out, "100 points")
	assert.NotContains(t, out, "(0,3)", "no trace without --trace")
}

func TestSolve_Trace(t *testing.T) {
	defer solveCmd.Flags().Set("trace", "false")

	out, err := execute(t, rootCmd, "solve", "--trace", "768", "24")
	require.NoError(t, err)

	assert.Contains(t, out, "(0,3)")
	assert.Contains(t, out, "after")
}

func TestSolve_RejectsInvalidProblem(t *testing.T) {
	cases := [][]string{
		{"solve", "abc", "24"},
		{"solve", "768", "0"},
		{"solve", "768"},
	}
	for _, args := range cases {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			_, err := execute(t, rootCmd, args...)
			assert.Error(t, err)
		})
	}
}

func TestSolve_MissingConfigFile(t *testing.T) {
	defer rootCmd.PersistentFlags().Set("config", "")

	missing := filepath.Join(t.TempDir(), "missing.yaml")
	out, err := execute(t, rootCmd, "solve", "--config", missing, "768", "24")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
	assert.NotContains(t, out, "= 32", "solve must not run on defaults")
}

func TestProblem_SeededIsReproducible(t *testing.T) {
	defer problemCmd.Flags().Set("seed", "0")
	defer problemCmd.Flags().Set("count", "5")
	defer problemCmd.Flags().Set("answers", "false")

	first, err := execute(t, rootCmd, "problem", "--seed", "42", "--count", "3", "--answers")
	require.NoError(t, err)
	second, err := execute(t, rootCmd, "problem", "--seed", "42", "--count", "3", "--answers")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	lines := strings.Split(strings.TrimSpace(first), "\n")
	require.Len(t, lines, 3)
	for _, l := range lines {
		assert.Contains(t, l, " ÷ ")
		assert.Contains(t, l, " = ")
	}
}

func TestProblem_RejectsZeroCount(t *testing.T) {
	defer problemCmd.Flags().Set("count", "5")

	_, err := execute(t, rootCmd, "problem", "--count", "0")
	assert.Error(t, err)
}

func TestPlay_ArgCount(t *testing.T) {
	err := playCmd.Args(playCmd, []string{"768"})
	assert.Error(t, err)
	assert.NoError(t, playCmd.Args(playCmd, nil))
	assert.NoError(t, playCmd.Args(playCmd, []string{"768", "24"}))
}

func TestParseProblem(t *testing.T) {
	p, err := parseProblem("768", "24")
	require.NoError(t, err)
	assert.Equal(t, 32, p.Quotient())

	_, err = parseProblem("x", "24")
	assert.Error(t, err)
	_, err = parseProblem("768", "y")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, rootCmd, "version")
	require.NoError(t, err)
	assert.Equal(t, "divtutor (devel)\n", out)
}
