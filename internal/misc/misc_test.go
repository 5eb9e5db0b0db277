package misc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringLimit(t *testing.T) {
	tests := []struct {
		name string
		s    string
		n    int
		want string
	}{
		{name: "short enough", s: "abc", n: 10, want: "abc"},
		{name: "exact length", s: "abcde", n: 5, want: "abcde"},
		{name: "clipped with ellipsis", s: "abcdefghij", n: 6, want: "abc..."},
		{name: "tiny limit", s: "abcdef", n: 2, want: "ab"},
		{name: "zero", s: "abc", n: 0, want: ""},
		{name: "negative", s: "abc", n: -1, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StringLimit(tt.s, tt.n))
		})
	}
}

func TestBytesLimit(t *testing.T) {
	assert.Equal(t, []byte("abc"), BytesLimit([]byte("abc"), 10))
	assert.Equal(t, []byte("abc..."), BytesLimit([]byte("abcdefghij"), 6))
	assert.Nil(t, BytesLimit([]byte("abc"), -1))
}

func TestBytesLimitLeavesInputIntact(t *testing.T) {
	in := []byte("abcdefghij")
	out := BytesLimit(in, 6)
	assert.Equal(t, []byte("abc..."), out)
	assert.Equal(t, []byte("abcdefghij"), in, "clipping must not write into the input slice")
}
