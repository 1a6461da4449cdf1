// Package source provides workflow content sources.
package source

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrianliechti/flowgenius/pkg/text"
	"github.com/adrianliechti/flowgenius/pkg/workflow"
)

var (
	_ workflow.Source = Text("")
	_ workflow.Source = (*File)(nil)
)

// Text is a fixed piece of content. Blank text counts as no content.
type Text string

func (t Text) Content(ctx context.Context) (string, error) {
	return strings.TrimSpace(string(t)), nil
}

// Markdown is a markdown document rendered to plain text.
type Markdown string

func (m Markdown) Content(ctx context.Context) (string, error) {
	return text.Plain(string(m)), nil
}

// File reads a note from disk on every call. Markdown files are rendered to
// plain text, anything else is normalized.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{
		path: path,
	}
}

func (f *File) Content(ctx context.Context) (string, error) {
	data, err := os.ReadFile(f.path)

	if err != nil {
		return "", err
	}

	switch strings.ToLower(filepath.Ext(f.path)) {
	case ".md", ".markdown", ".mdown":
		return text.Plain(string(data)), nil
	}

	return text.Normalize(string(data)), nil
}
