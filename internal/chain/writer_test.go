package chain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "chainplan/internal/errors"
	"chainplan/internal/model"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestWritePlanAppendsDirective(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out_0000.plan")
	require.NoError(t, WritePlan("LINE1\n\n", out, model.NextOutput("out_0001.plan")))
	assert.Equal(t, "LINE1\n\n#chain out_0001.plan\n", readFile(t, out))
}

func TestWritePlanTerminalHasNoDirective(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out_0001.plan")
	require.NoError(t, WritePlan("LINE2\n\n", out, model.EndOfChain()))
	assert.Equal(t, "LINE2\n\n", readFile(t, out))
}

func TestWritePlanTruncatesExistingOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out_0000.plan")
	writeFile(t, out, "a much longer stale plan that must disappear\n")

	require.NoError(t, WritePlan("short\n\n", out, model.EndOfChain()))
	assert.Equal(t, "short\n\n", readFile(t, out))
}

func TestWritePlanMissingDirectoryIsIOFailure(t *testing.T) {
	out := filepath.Join(t.TempDir(), "no-such-dir", "out_0000.plan")
	err := WritePlan("LINE1\n\n", out, model.EndOfChain())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, apperrors.CategoryIOFailure, apperrors.CategoryOf(err))
	assert.Equal(t, "plan_write_failed", apperrors.CodeOf(err))
	assert.NotEmpty(t, apperrors.HintOf(err))
}
