package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yankeeinlondon/schematic/define"
)

func TestSetupListFlags(t *testing.T) {
	fs, flags := SetupListFlags()

	assert.Equal(t, FormatText, flags.Format)

	require.NoError(t, fs.Parse([]string{"--format", "yaml"}))
	assert.Equal(t, "yaml", flags.Format)
}

func TestHandleList(t *testing.T) {
	assert.NoError(t, HandleList([]string{}))
}

func TestHandleList_Help(t *testing.T) {
	assert.NoError(t, HandleList([]string{"--help"}))
}

func TestHandleList_InvalidFormat(t *testing.T) {
	assert.Error(t, HandleList([]string{"--format", "toml"}))
}

func TestHandleList_PositionalArgsRejected(t *testing.T) {
	assert.Error(t, HandleList([]string{"extra"}))
}

func TestDescribeAuth(t *testing.T) {
	assert.Equal(t, "none", describeAuth(define.AuthNone{}))
	assert.Equal(t, "bearer", describeAuth(define.BearerToken{}))
	assert.Equal(t, "api-key", describeAuth(define.APIKey{Header: "X-Api-Key"}))
	assert.Equal(t, "basic", describeAuth(define.Basic{}))
}
