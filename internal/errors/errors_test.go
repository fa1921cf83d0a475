package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark_PreservesCauseAndClass(t *testing.T) {
	cause := New("yaml: line 3: did not find expected key")
	err := Mark(Wrapf(cause, "decode %s", "broken.yaml"), ErrSpecLoad)

	assert.True(t, Is(err, ErrSpecLoad))
	assert.True(t, Is(err, cause))
	assert.False(t, Is(err, ErrWrite))
	assert.Contains(t, err.Error(), "decode broken.yaml")
}

func TestWithHint(t *testing.T) {
	err := WithHint(Mark(New("cannot remove Foo.java"), ErrOutputConflict), "check file permissions")

	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Equal(t, "check file permissions", hints[0])
	assert.True(t, Is(err, ErrOutputConflict))
}

func TestClass(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "load", err: Mark(New("x"), ErrSpecLoad), want: "load"},
		{name: "invalid", err: Mark(New("x"), ErrInvalidSpec), want: "invalid"},
		{name: "conflict", err: Mark(New("x"), ErrFieldConflict), want: "conflict"},
		{name: "output", err: Mark(New("x"), ErrOutputConflict), want: "output-conflict"},
		{name: "write", err: Wrap(Mark(New("x"), ErrWrite), "ctx"), want: "write"},
		{name: "plain", err: New("x"), want: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Class(tt.err))
		})
	}
}
