package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suderio/greed/internal/triangle"
)

// run executes the root command with args and returns what it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		_ = scoreCmd.Flags().Set("explain", "false")
		_ = triangleCmd.Flags().Set("lenient", "false")
		_ = linesCmd.Flags().Set("find", "")
		_ = rootCmd.PersistentFlags().Set("ruleset", "standard")
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestParseDice(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []int
	}{
		{"spaces", []string{"1", "1", "1", "5", "1"}, []int{1, 1, 1, 5, 1}},
		{"commas", []string{"1,5,5,1"}, []int{1, 5, 5, 1}},
		{"brackets", []string{"[2,", "5,", "2]"}, []int{2, 5, 2}},
		{"empty", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDice(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := parseDice([]string{"1", "x"})
	assert.Error(t, err)
}

func TestScoreCommand(t *testing.T) {
	out, err := run(t, "score", "1", "1", "1", "5", "1")
	require.NoError(t, err)
	assert.Equal(t, "1150\n", out)

	out, err = run(t, "score", "--explain", "[3,4,5,3,3]")
	require.NoError(t, err)
	assert.Contains(t, out, "scores 350")
	assert.Contains(t, out, "three 3s")
	assert.Contains(t, out, "unscored [4]")
}

func TestScoreCommandWithRuleset(t *testing.T) {
	out, err := run(t, "score", "--ruleset", "farkle-lite", "1", "2", "3", "4", "5")
	require.NoError(t, err)
	assert.Equal(t, "1500\n", out)

	out, err = run(t, "score", "--ruleset", "farkle-lite", "2", "3", "4", "5", "6")
	require.NoError(t, err)
	assert.Equal(t, "1500\n", out)

	_, err = run(t, "score", "--ruleset", "no-such-ruleset", "1")
	assert.Error(t, err)
}

func TestTriangleCommand(t *testing.T) {
	out, err := run(t, "triangle", "3", "4", "5")
	require.NoError(t, err)
	assert.Equal(t, string(triangle.Scalene)+"\n", out)

	_, err = run(t, "triangle", "1", "1", "3")
	assert.ErrorIs(t, err, triangle.ErrInvalid)

	out, err = run(t, "triangle", "--lenient", "1", "1", "3")
	require.NoError(t, err)
	assert.Equal(t, string(triangle.Isosceles)+"\n", out)
}

func TestLinesCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "text.txt")
	require.NoError(t, os.WriteFile(path, []byte("this\nis\na\ntest"), 0o644))

	out, err := run(t, "lines", path)
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)

	out, err = run(t, "lines", "--find", "e", path)
	require.NoError(t, err)
	assert.Equal(t, "test", out)

	path = filepath.Join(t.TempDir(), "text_nl.txt")
	require.NoError(t, os.WriteFile(path, []byte("this\nis\na\ntest\n"), 0o644))

	out, err = run(t, "lines", "--find", "e", path)
	require.NoError(t, err)
	assert.Equal(t, "test\n", out)
}
