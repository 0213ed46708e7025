package storage_test

import (
	"testing"
	"time"

	storage "pfp_gallery/internal/storage/filestorage"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases the name",
			input:    "Avatar.PNG",
			expected: "avatar.png",
		},
		{
			name:     "replaces spaces",
			input:    "my cool pic.png",
			expected: "my_cool_pic.png",
		},
		{
			name:     "keeps allowed characters",
			input:    "my-pic_2.jpg",
			expected: "my-pic_2.jpg",
		},
		{
			name:     "replaces special characters",
			input:    "we$rd!(1).png",
			expected: "we_rd__1_.png",
		},
		{
			name:     "replaces non-latin characters",
			input:    "фото.png",
			expected: "____.png",
		},
		{
			name:     "empty name",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, storage.SanitizeFilename(tt.input))
		})
	}
}

func TestUniqueFilename(t *testing.T) {
	ts := time.UnixMilli(1700000000000)

	tests := []struct {
		name     string
		input    string
		n        int64
		expected string
	}{
		{
			name:     "suffix goes before the extension",
			input:    "Avatar.PNG",
			n:        123456789,
			expected: "avatar-1700000000000-123456789.png",
		},
		{
			name:     "name without extension",
			input:    "avatar",
			n:        5,
			expected: "avatar-1700000000000-5",
		},
		{
			name:     "only the last dot starts the extension",
			input:    "a.b.c.png",
			n:        42,
			expected: "a.b.c-1700000000000-42.png",
		},
		{
			name:     "sanitizes before splitting",
			input:    "My Pic.JPEG",
			n:        7,
			expected: "my_pic-1700000000000-7.jpeg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, storage.UniqueFilename(tt.input, ts, tt.n))
		})
	}
}
