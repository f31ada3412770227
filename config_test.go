package jsondoc

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultDelimiter, cfg.Delimiter)
	assert.Equal(t, Options(0), cfg.Options)
	assert.False(t, cfg.AllowComments)
	assert.Equal(t, int64(DefaultMaxJSONSize), cfg.MaxJSONSize)
	assert.Nil(t, cfg.Logger)
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	var nilCfg *Config
	require.ErrorIs(t, nilCfg.Validate(), ErrInvalidConfig)
	require.ErrorIs(t, (&Config{MaxJSONSize: -1}).Validate(), ErrInvalidConfig)

	cfg := &Config{}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultDelimiter, cfg.Delimiter)
	assert.Equal(t, int64(DefaultMaxJSONSize), cfg.MaxJSONSize)
}

func TestConfigClone(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Delimiter = ":"
	clone := cfg.Clone()
	clone.Delimiter = "/"
	assert.Equal(t, ":", cfg.Delimiter)

	var nilCfg *Config
	assert.Equal(t, DefaultConfig(), nilCfg.Clone())
}

func TestResolveConfigCopies(t *testing.T) {
	cfg := &Config{}
	resolved, err := resolveConfig(nil, cfg)
	require.NoError(t, err)
	assert.NotSame(t, cfg, resolved)
	assert.Equal(t, "", cfg.Delimiter, "caller's config is not modified")
	assert.Equal(t, DefaultDelimiter, resolved.Delimiter)
}

func TestDocError(t *testing.T) {
	err := newPathError("set", "a.b", "at \"a\": boom", ErrTypeMismatch)
	assert.Equal(t, `jsondoc set failed at 'a.b': at "a": boom`, err.Error())
	assert.True(t, errors.Is(err, ErrTypeMismatch))
	assert.False(t, errors.Is(err, ErrParse))
	assert.True(t, errors.Is(err, &DocError{Op: "set", Err: ErrTypeMismatch}))

	wrapped := fmt.Errorf("outer: %w", newOperationError("parse", "bad input", ErrParse))
	assert.Equal(t, "outer: jsondoc parse failed: bad input", wrapped.Error())
	assert.ErrorIs(t, wrapped, ErrParse)

	assert.Equal(t, "size limit exceeded", errorType(newSizeLimitError("parse", "", 10, 5)))
	assert.Equal(t, "list index out of range",
		errorType(&DocError{Op: "set", Err: fmt.Errorf("token: %w", ErrIndexOutOfRange)}))
	assert.Equal(t, "unknown", errorType(errors.New("plain")))
}

func TestSanitizePath(t *testing.T) {
	assert.Equal(t, "a.b", sanitizePath("a.b"))
	long := sanitizePath(fmt.Sprintf("%0200d", 0))
	assert.Len(t, long, 100+len("...[truncated]"))
}
