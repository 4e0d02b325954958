package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHandle(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Handle
		wantErr  bool
	}{
		{
			name:     "plain handle",
			input:    "alice@example.org",
			expected: Handle{Username: "alice", Domain: "example.org"},
		},
		{
			name:     "leading at sign",
			input:    "@alice@example.org",
			expected: Handle{Username: "alice", Domain: "example.org"},
		},
		{
			name:    "no domain",
			input:   "alice",
			wantErr: true,
		},
		{
			name:    "empty username",
			input:   "@example.org",
			wantErr: true,
		},
		{
			name:    "too many parts",
			input:   "alice@example.org@else",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := ParseHandle(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidHandle)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, h)
		})
	}
}

func TestHandle_FileNames(t *testing.T) {
	h := Handle{Username: "alice", Domain: "example.org"}

	assert.Equal(t, "alice@example.org", h.String())
	assert.Equal(t, "example.org.user.alice.json", h.ArchiveFile())
	assert.Equal(t, "example.org.user.alice", h.MediaDir())
	assert.Equal(t, "example.org.user.alice.statuses.0.html", h.PageFile("statuses", 0))
	assert.Equal(t, "example.org.user.alice.favourites.12.html", h.PageFile("favourites", 12))
}
