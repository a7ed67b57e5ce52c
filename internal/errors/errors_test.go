package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapRoundTrip(t *testing.T) {
	base := stderrors.New("boom")
	err := Wrap(base, CategoryIOFailure, "plan_write_failed", "check directory permissions")
	require.Error(t, err)

	assert.Equal(t, CategoryIOFailure, CategoryOf(err))
	assert.Equal(t, "plan_write_failed", CodeOf(err))
	assert.Equal(t, "check directory permissions", HintOf(err))
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "boom", err.Error())
}

func TestClassificationSurvivesFurtherWrapping(t *testing.T) {
	base := stderrors.New("too few")
	err := fmt.Errorf("build chain: %w", Wrap(base, CategoryUsage, "chain_too_short", ""))

	assert.Equal(t, CategoryUsage, CategoryOf(err))
	assert.Equal(t, "chain_too_short", CodeOf(err))
	assert.ErrorIs(t, err, base)
}

func TestUnknownErrorDefaults(t *testing.T) {
	err := stderrors.New("plain")
	assert.Empty(t, CategoryOf(err))
	assert.Empty(t, CodeOf(err))
	assert.Empty(t, HintOf(err))
}

func TestWrapNilCauseReturnsNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, CategoryUsage, "usage", "see --help"))
}

func TestClassifiedErrorNilCauseDefaults(t *testing.T) {
	err := &classifiedError{category: CategoryUsage}
	assert.Equal(t, "unknown error", err.Error())
	assert.Nil(t, err.Unwrap())
}
