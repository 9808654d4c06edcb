package s3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKeyFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "public domain", url: "https://cdn.example.com/rooms/r1/a.jpg", want: "rooms/r1/a.jpg"},
		{name: "api endpoint", url: "https://s3.example.com/photos/rooms/r1/a.jpg", want: "rooms/r1/a.jpg"},
		{name: "foreign url", url: "https://elsewhere.com/rooms/r1/a.jpg", want: ""},
		{name: "domain only", url: "https://cdn.example.com/", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := objectKeyFromURL(tt.url, "https://cdn.example.com/", "https://s3.example.com", "photos")
			assert.Equal(t, tt.want, got)
		})
	}
}
