package gen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigError(t *testing.T) {
	t.Parallel()

	err := NewConfigError("Target", nil, "target directory cannot be empty")
	assert.Equal(t, `butterflyc: config error for "Target": target directory cannot be empty`, err.Error())
	assert.True(t, errors.Is(err, ErrMissingConfig))

	err = NewConfigError("Workers", -1, "worker count cannot be negative")
	assert.Equal(t, `butterflyc: config error for "Workers" (value: -1): worker count cannot be negative`, err.Error())
	assert.True(t, IsConfigError(err))
	assert.False(t, IsGenerationError(err))
}

func TestGenerationError(t *testing.T) {
	t.Parallel()
	cause := errors.New("disk full")

	err := NewGenerationError("purescript", "ExamplePortal.purs", "generate portal", cause)
	assert.Equal(t,
		"butterflyc: generation error in backend purescript (file: ExamplePortal.purs): generate portal: disk full",
		err.Error())
	assert.True(t, errors.Is(err, ErrGenerationFailed))
	assert.True(t, errors.Is(err, cause))
	assert.True(t, IsGenerationError(err))

	var genErr *GenerationError
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, "purescript", genErr.Backend)

	bare := NewGenerationError("", "", "", nil)
	assert.Equal(t, "butterflyc: generation error", bare.Error())
}
