package mcpserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SCHEMATIC_OUTPUT_DIR", "")
	t.Setenv("SCHEMATIC_PACKAGE_NAME", "")
	t.Setenv("SCHEMATIC_DRY_RUN", "")

	c := loadConfig()
	assert.Equal(t, "./generated", c.OutputDir)
	assert.Equal(t, "schema", c.PackageName)
	assert.False(t, c.DryRun)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SCHEMATIC_OUTPUT_DIR", "/tmp/out")
	t.Setenv("SCHEMATIC_PACKAGE_NAME", "apiclient")
	t.Setenv("SCHEMATIC_DRY_RUN", "true")

	c := loadConfig()
	assert.Equal(t, "/tmp/out", c.OutputDir)
	assert.Equal(t, "apiclient", c.PackageName)
	assert.True(t, c.DryRun)
}

func TestLoadConfigInvalidBoolFallsBack(t *testing.T) {
	t.Setenv("SCHEMATIC_DRY_RUN", "maybe")

	c := loadConfig()
	assert.False(t, c.DryRun)
}
