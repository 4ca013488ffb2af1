package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeBlocks(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "two blocks with and without language tag",
			text: "```rust\nA\n```\n```\nB\n```",
			want: []string{"A", "B"},
		},
		{
			name: "no fences",
			text: "just some prose, no commands here",
			want: nil,
		},
		{
			name: "single tagged block surrounded by prose",
			text: "Run this:\n```bash\nls -la | grep foo\n```\nand be careful.",
			want: []string{"ls -la | grep foo"},
		},
		{
			name: "multi-line body",
			text: "```sh\ncd /tmp\ntar xzf backup.tar.gz\n```",
			want: []string{"cd /tmp\ntar xzf backup.tar.gz"},
		},
		{
			name: "empty body",
			text: "```\n```",
			want: []string{""},
		},
		{
			name: "unterminated fence yields nothing",
			text: "```bash\nrm -rf /",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeBlocks(tt.text))
		})
	}
}

func TestRendered(t *testing.T) {
	t.Run("joins block bodies with newlines", func(t *testing.T) {
		got := Rendered("first\n```\nA\n```\nthen\n```\nB\n```")
		assert.Equal(t, "A\nB", got)
	})

	t.Run("falls back to raw text without fences", func(t *testing.T) {
		raw := "echo hello"
		assert.Equal(t, raw, Rendered(raw))
	})
}
