package mcpserver

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := []int{0, 1, 2, 3, 4}

	tests := []struct {
		name   string
		offset int
		limit  int
		want   []int
	}{
		{name: "default limit returns all when under 100", offset: 0, limit: 0, want: []int{0, 1, 2, 3, 4}},
		{name: "explicit limit", offset: 0, limit: 2, want: []int{0, 1}},
		{name: "offset only", offset: 2, limit: 0, want: []int{2, 3, 4}},
		{name: "offset and limit", offset: 1, limit: 2, want: []int{1, 2}},
		{name: "offset beyond end", offset: 5, limit: 2, want: nil},
		{name: "negative offset", offset: -1, limit: 2, want: nil},
		{name: "limit overflow", offset: 1, limit: math.MaxInt, want: []int{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paginate(items, tt.offset, tt.limit))
		})
	}
}

func TestSanitizeError(t *testing.T) {
	assert.Equal(t, "", sanitizeError(nil))
	assert.Equal(t,
		"read error for <path>: file does not exist",
		sanitizeError(errors.New("read error for /tmp/abc/words: file does not exist")))
	assert.Equal(t, "parse error in words/a.json", sanitizeError(errors.New("parse error in words/a.json")))
}

func TestErrResult(t *testing.T) {
	res := errResult(errors.New("write error for /home/me/words.txt"))
	assert.True(t, res.IsError)
	assert.Len(t, res.Content, 1)
}
