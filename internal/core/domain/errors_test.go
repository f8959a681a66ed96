package domain

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrNotImplemented", ErrNotImplemented},
		{"ErrFetch", ErrFetch},
		{"ErrWrite", ErrWrite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrNotFound(t *testing.T) {
	assert.Equal(t, "not found", ErrNotFound.Error())
	assert.True(t, errors.Is(ErrNotFound, ErrNotFound))
	assert.False(t, errors.Is(ErrNotFound, ErrInvalidInput))
}

func TestFetchError(t *testing.T) {
	cause := errors.New("NotFoundException: intent not found")
	err := &FetchError{Kind: KindIntent, Name: "OrderCoffee", Version: "3", Err: cause}

	assert.Equal(t, "fetch intent OrderCoffee (version 3): NotFoundException: intent not found", err.Error())
	assert.True(t, errors.Is(err, ErrFetch))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, ErrWrite))
}

func TestFetchError_Wrapped(t *testing.T) {
	err := fmt.Errorf("export failed: %w", &FetchError{Kind: KindBot, Name: "PressoBot", Version: LatestVersion, Err: ErrNotFound})

	var fetchErr *FetchError
	assert.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, KindBot, fetchErr.Kind)
	assert.True(t, errors.Is(err, ErrFetch))
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestWriteError(t *testing.T) {
	err := &WriteError{Path: "/nope/PressoBot.json", Err: fs.ErrPermission}

	assert.Contains(t, err.Error(), "/nope/PressoBot.json")
	assert.True(t, errors.Is(err, ErrWrite))
	assert.True(t, errors.Is(err, fs.ErrPermission))
	assert.False(t, errors.Is(err, ErrFetch))
}
