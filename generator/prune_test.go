package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pruneInput = `package schema

// Stale is an outdated request type.
type Stale struct {
	// Nested braces must not confuse removal.
	Inner struct{ M map[string]string }
}

func (r Stale) parts() (int, error) { return 0, nil }

func (r *Stale) helper() {}

// NewStale builds a Stale.
func NewStale() Stale { return Stale{} }

// Fresh survives pruning.
type Fresh struct{}

func (f Fresh) parts() (int, error) { return 1, nil }

const StaleLimit = 10

const FreshLimit = 20
`

func TestPruneDeclsRemovesTypeAndMethods(t *testing.T) {
	out, err := PruneDecls([]byte(pruneInput), "Stale", "NewStale", "StaleLimit")
	require.NoError(t, err)

	src := string(out)
	assert.NotContains(t, src, "type Stale struct")
	assert.NotContains(t, src, "func (r Stale)")
	assert.NotContains(t, src, "func (r *Stale)")
	assert.NotContains(t, src, "func NewStale")
	assert.NotContains(t, src, "StaleLimit")

	assert.Contains(t, src, "type Fresh struct")
	assert.Contains(t, src, "func (f Fresh) parts()")
	assert.Contains(t, src, "FreshLimit")
}

func TestPruneDeclsUnknownNamesAreIgnored(t *testing.T) {
	out, err := PruneDecls([]byte(pruneInput), "DoesNotExist")
	require.NoError(t, err)
	assert.Contains(t, string(out), "type Stale struct")
	assert.Contains(t, string(out), "type Fresh struct")
}

func TestPruneDeclsStillParses(t *testing.T) {
	out, err := PruneDecls([]byte(pruneInput), "Stale")
	require.NoError(t, err)

	_, err = formatSource("pruned.go", out)
	require.NoError(t, err)
}

func TestPruneDeclsRejectsInvalidSource(t *testing.T) {
	_, err := PruneDecls([]byte("not go source"), "X")
	require.Error(t, err)

	var cgErr *CodeGenError
	require.ErrorAs(t, err, &cgErr)
}
