package text_test

import (
	"testing"

	"github.com/adrianliechti/flowgenius/pkg/text"

	"github.com/stretchr/testify/require"
)

func TestPlain(t *testing.T) {
	markdown := `---
tags: [trip, autumn]
---
# Hiking Trip

We walk through the *foggy* forest
at dawn, see [the lake](https://example.com/lake).

- pack **boots**
- bring tea

` + "```go\nfmt.Println(\"ignored\")\n```\n" + `
<div>raw</div>

Visit <https://example.com> later.
`

	result := text.Plain(markdown)

	require.Equal(t, "Hiking Trip\n\nWe walk through the foggy forest at dawn, see the lake.\n\npack boots\n\nbring tea\n\nVisit later.", result)
}

func TestPlainEmpty(t *testing.T) {
	require.Equal(t, "", text.Plain(""))
	require.Equal(t, "", text.Plain("---\ntitle: x\n---\n"))
}

func TestStripFrontmatter(t *testing.T) {
	require.Equal(t, "body", text.StripFrontmatter("---\na: 1\n---\nbody"))
	require.Equal(t, "no frontmatter", text.StripFrontmatter("no frontmatter"))
}

func TestNormalize(t *testing.T) {
	require.Equal(t, "a b\n\nc", text.Normalize("  a   b \r\n\r\n\n\n  c  \n"))
}
