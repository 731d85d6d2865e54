package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCommandStructure(t *testing.T) {
	assert.Equal(t, "render", renderCmd.Use)
	assert.NotEmpty(t, renderCmd.Short)
	assert.NotNil(t, renderCmd.RunE)
}

func TestRenderCommandIsRegistered(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "render" {
			found = true
			break
		}
	}
	assert.True(t, found)
}

func TestRenderRequiresEnabledSink(t *testing.T) {
	resetFlags(t)

	err := renderReport(renderCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database sink is not enabled")
}
