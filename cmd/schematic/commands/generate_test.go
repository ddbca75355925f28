package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupGenerateFlags(t *testing.T) {
	fs, flags := SetupGenerateFlags()

	t.Run("default values", func(t *testing.T) {
		assert.Empty(t, flags.API)
		assert.Empty(t, flags.File)
		assert.False(t, flags.All, "expected All to be false by default")
		assert.Equal(t, "./generated", flags.Output)
		assert.Equal(t, "schema", flags.PackageName)
		assert.False(t, flags.DryRun, "expected DryRun to be false by default")
		assert.Equal(t, FormatText, flags.Format)
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"--api", "ElevenLabs", "-o", "./out", "-p", "myapi", "--dry-run"}
		require.NoError(t, fs.Parse(args))

		assert.Equal(t, "ElevenLabs", flags.API)
		assert.Equal(t, "./out", flags.Output)
		assert.Equal(t, "myapi", flags.PackageName)
		assert.True(t, flags.DryRun, "expected DryRun to be true")
	})
}

func TestHandleGenerate_NoSelector(t *testing.T) {
	err := HandleGenerate([]string{})
	assert.Error(t, err)
}

func TestHandleGenerate_Help(t *testing.T) {
	err := HandleGenerate([]string{"--help"})
	assert.NoError(t, err)
}

func TestHandleGenerate_MultipleSelectors(t *testing.T) {
	err := HandleGenerate([]string{"--api", "OpenAI", "--all"})
	assert.Error(t, err)
}

func TestHandleGenerate_DryRun(t *testing.T) {
	err := HandleGenerate([]string{"--api", "OpenAI", "--dry-run", "-q"})
	assert.NoError(t, err)
}

func TestHandleGenerate_WritesFiles(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "openai")

	err := HandleGenerate([]string{"--api", "OpenAI", "-o", outDir, "-q"})
	require.NoError(t, err)

	for _, name := range []string{"shared.go", "doc.go", "openai.go", "go.mod"} {
		_, statErr := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, statErr, "expected %s to exist", name)
	}
}

func TestHandleGenerate_AllWritesModuleSubdirectories(t *testing.T) {
	root := t.TempDir()

	err := HandleGenerate([]string{"--all", "-o", root, "-q"})
	require.NoError(t, err)

	for _, module := range []string{"openai", "anthropic", "elevenlabs", "huggingface", "ollama", "ollamaopenai", "emqx"} {
		_, statErr := os.Stat(filepath.Join(root, module, module+".go"))
		assert.NoError(t, statErr, "expected module %s to be generated", module)
	}
}

func TestHandleGenerate_ValidationFailureWritesNothing(t *testing.T) {
	dir := t.TempDir()
	defPath := filepath.Join(dir, "bad.yaml")
	doc := `name: Broken
base_url: https://broken.example.com
endpoints:
  - id: GetThing
    method: GET
    path: /things/{id
  - id: GetThing
    method: GET
    path: /things
`
	require.NoError(t, os.WriteFile(defPath, []byte(doc), 0o644))
	outDir := filepath.Join(dir, "out")

	err := HandleGenerate([]string{"--file", defPath, "-o", outDir, "-q"})
	require.Error(t, err)

	_, statErr := os.Stat(outDir)
	assert.True(t, os.IsNotExist(statErr), "expected no output directory on validation failure")
}
