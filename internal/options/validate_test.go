package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/aws2openapi/oaserrors"
)

func TestValidateSingleInputSource(t *testing.T) {
	require.NoError(t, ValidateSingleInputSource("none", "many", false, true, false))

	err := ValidateSingleInputSource("none", "many", false, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrConfig)
	assert.Contains(t, err.Error(), "none")

	err = ValidateSingleInputSource("none", "many", true, true)
	require.Error(t, err)
	var cfg *oaserrors.ConfigError
	require.ErrorAs(t, err, &cfg)
	assert.Equal(t, 2, cfg.Value)
	assert.Contains(t, err.Error(), "many")
}
