package htmltext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{name: "fragment", html: "<p>Hello <b>world</b></p>", want: "Hello world"},
		{name: "full document", html: "<html><head><title>T</title></head><body><div>Body</div></body></html>", want: "TBody"},
		{name: "entities", html: "<span>a &amp; b</span>", want: "a & b"},
		{name: "drops scripts", html: "<p>x</p><script>alert(1)</script>", want: "x"},
		{name: "plain text", html: "no tags", want: "no tags"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractText(tt.html)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
