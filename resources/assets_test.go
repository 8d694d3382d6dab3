package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogoIsCached(t *testing.T) {
	first, err := Logo("greenhouse.svg")
	require.NoError(t, err)
	second := MustLogo("greenhouse.svg")

	assert.Same(t, first, second)
	assert.NotEmpty(t, first.Content())
}

func TestMissingLogo(t *testing.T) {
	_, err := Logo("missing.svg")
	assert.Error(t, err)
	assert.Panics(t, func() { MustLogo("missing.svg") })
}
