package mcpserver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
		{
			name: "plain message untouched",
			err:  errors.New("unknown api \"Nope\""),
			want: "unknown api \"Nope\"",
		},
		{
			name: "home path redacted",
			err:  errors.New("opening definition file: open /home/alice/defs.yaml: no such file"),
			want: "opening definition file: open <path>: no such file",
		},
		{
			name: "tmp path redacted",
			err:  errors.New("write /tmp/gen-123/openai.go: permission denied"),
			want: "write <path>: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeError(tt.err))
		})
	}
}

func TestErrResult(t *testing.T) {
	result := errResult(errors.New("boom"))
	assert.True(t, result.IsError)
	assert.Len(t, result.Content, 1)
}

func TestMakeSlice(t *testing.T) {
	assert.Nil(t, makeSlice[int](0))

	s := makeSlice[int](3)
	assert.NotNil(t, s)
	assert.Empty(t, s)
	assert.Equal(t, 3, cap(s))
}
