package storage

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDerivePublicID(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		want     string
	}{
		{"single extension", "shoe.jpg", "shoe"},
		{"no extension", "shoe", "shoe"},
		{"multi dot keeps first segment", "archive.tar.gz", "archive"},
		{"dotted stem truncates", "my.photo.jpg", "my"},
		{"path separators kept", "summer/shoe.png", "summer/shoe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DerivePublicID(tt.fileName))
		})
	}
}

func TestDerivePublicID_EmptyStemGetsRandomKey(t *testing.T) {
	for _, name := range []string{"", ".env", "..jpg"} {
		got := DerivePublicID(name)
		_, err := uuid.Parse(got)
		assert.NoError(t, err, "file name %q", name)
	}
	assert.NotEqual(t, DerivePublicID(".env"), DerivePublicID(".env"))
}

func TestExtractPublicID(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		want   string
		wantOK bool
	}{
		{
			name:   "versioned nested path",
			url:    "https://res.cloudinary.com/demo/image/upload/v123/a/b/name.ext",
			want:   "a/b/name",
			wantOK: true,
		},
		{
			name:   "products folder",
			url:    "https://res.cloudinary.com/demo/image/upload/v1712345678/products/shoe.jpg",
			want:   "products/shoe",
			wantOK: true,
		},
		{
			name:   "no version segment",
			url:    "https://res.cloudinary.com/demo/image/upload/products/shoe.jpg",
			want:   "products/shoe",
			wantOK: true,
		},
		{
			name:   "leading v folder is not a version",
			url:    "https://res.cloudinary.com/demo/image/upload/vacation/beach.png",
			want:   "vacation/beach",
			wantOK: true,
		},
		{
			name:   "bare v folder is not a version",
			url:    "https://res.cloudinary.com/demo/image/upload/v/beach.png",
			want:   "v/beach",
			wantOK: true,
		},
		{
			name:   "version-like file name is kept",
			url:    "https://res.cloudinary.com/demo/image/upload/v1.jpg",
			want:   "v1",
			wantOK: true,
		},
		{
			name:   "no extension",
			url:    "https://res.cloudinary.com/demo/raw/upload/v9/products/manual",
			want:   "products/manual",
			wantOK: true,
		},
		{
			name:   "only last extension stripped",
			url:    "https://res.cloudinary.com/demo/raw/upload/v9/products/archive.tar.gz",
			want:   "products/archive.tar",
			wantOK: true,
		},
		{
			name:   "dot inside folder survives",
			url:    "https://res.cloudinary.com/demo/image/upload/v1/my.folder/photo",
			want:   "my.folder/photo",
			wantOK: true,
		},
		{
			name: "missing upload marker",
			url:  "https://res.cloudinary.com/demo/image/private/v1/products/shoe.jpg",
		},
		{
			name: "marker must be a whole segment",
			url:  "https://example.com/uploads/v1/shoe.jpg",
		},
		{
			name: "nothing after marker",
			url:  "https://res.cloudinary.com/demo/image/upload",
		},
		{
			name: "only version after marker",
			url:  "https://res.cloudinary.com/demo/image/upload/v123",
		},
		{
			name: "empty string",
			url:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractPublicID(tt.url)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractPublicID_RoundTripsUploadKey(t *testing.T) {
	key := DerivePublicID("sneaker.webp")
	url := "https://res.cloudinary.com/demo/image/upload/v1700000000/products/" + key + ".webp"

	got, ok := ExtractPublicID(url)

	assert.True(t, ok)
	assert.Equal(t, "products/"+key, got)
}
