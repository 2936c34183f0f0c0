package checker_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hakanyildizphd/vplc/internal/checker"
)

func TestDefaultSettings(t *testing.T) {
	s := checker.DefaultSettings(checker.DefaultCharLookahead)
	assert.True(t, s.ShowDiff)
	assert.True(t, s.ShowOutput)
	assert.Equal(t, 10, s.Lookahead)

	s = checker.DefaultSettings(checker.DefaultRealLookahead)
	assert.Equal(t, 3, s.Lookahead)
}

func TestParseSettings(t *testing.T) {
	defaults := checker.DefaultSettings(checker.DefaultCharLookahead)

	t.Run("full file", func(t *testing.T) {
		yaml := `
show_diff: false
show_output: false
lookahead: 5
`
		s, err := checker.ParseSettings([]byte(yaml), defaults)
		require.NoError(t, err)
		assert.False(t, s.ShowDiff)
		assert.False(t, s.ShowOutput)
		assert.Equal(t, 5, s.Lookahead)
	})

	t.Run("absent keys keep defaults", func(t *testing.T) {
		s, err := checker.ParseSettings([]byte("show_diff: false\n"), defaults)
		require.NoError(t, err)
		assert.False(t, s.ShowDiff)
		assert.True(t, s.ShowOutput)
		assert.Equal(t, 10, s.Lookahead)
	})

	t.Run("explicit zero lookahead is honored", func(t *testing.T) {
		s, err := checker.ParseSettings([]byte("lookahead: 0\n"), defaults)
		require.NoError(t, err)
		assert.Equal(t, 0, s.Lookahead)
	})

	t.Run("negative lookahead rejected", func(t *testing.T) {
		_, err := checker.ParseSettings([]byte("lookahead: -1\n"), defaults)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "non-negative")
	})

	t.Run("broken yaml rejected", func(t *testing.T) {
		_, err := checker.ParseSettings([]byte("lookahead: [oops\n"), defaults)
		assert.Error(t, err)
	})
}

func TestLoadSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "checker.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lookahead: 7\n"), 0644))

	s, err := checker.LoadSettings(path, checker.DefaultSettings(checker.DefaultCharLookahead))
	require.NoError(t, err)
	assert.Equal(t, 7, s.Lookahead)
	assert.True(t, s.ShowDiff)

	_, err = checker.LoadSettings(filepath.Join(dir, "missing.yaml"), checker.DefaultSettings(10))
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Run("overrides", func(t *testing.T) {
		t.Setenv("CHECKER_SHOW_DIFF", "false")
		t.Setenv("CHECKER_SHOW_OUTPUT", "0")
		t.Setenv("CHECKER_LOOKAHEAD", "4")

		s := checker.DefaultSettings(checker.DefaultCharLookahead)
		require.NoError(t, s.ApplyEnv())
		assert.False(t, s.ShowDiff)
		assert.False(t, s.ShowOutput)
		assert.Equal(t, 4, s.Lookahead)
	})

	t.Run("unset variables leave settings alone", func(t *testing.T) {
		s := checker.DefaultSettings(checker.DefaultCharLookahead)
		require.NoError(t, s.ApplyEnv())
		assert.True(t, s.ShowDiff)
		assert.Equal(t, 10, s.Lookahead)
	})

	t.Run("malformed values are usage errors", func(t *testing.T) {
		t.Setenv("CHECKER_LOOKAHEAD", "many")
		s := checker.DefaultSettings(checker.DefaultCharLookahead)
		assert.Error(t, s.ApplyEnv())
	})

	t.Run("negative override rejected", func(t *testing.T) {
		t.Setenv("CHECKER_LOOKAHEAD", "-2")
		s := checker.DefaultSettings(checker.DefaultCharLookahead)
		assert.Error(t, s.ApplyEnv())
	})
}
