package ui

import (
	"bytes"
	"testing"
)

func TestMarkdownWriter_NonTTYPassesThrough(t *testing.T) {
	var out bytes.Buffer
	w := NewMarkdownWriter(&out, false)

	n, err := w.Write([]byte("# Heading\n"))
	if err != nil {
		t.Fatal(err)
	}
	if n != 10 {
		t.Errorf("Write returned %d", n)
	}
	if out.String() != "# Heading\n" {
		t.Errorf("non-TTY writes should pass through, got %q", out.String())
	}
	// Flush has nothing buffered.
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	if out.String() != "# Heading\n" {
		t.Errorf("Flush changed output: %q", out.String())
	}
}

func TestMarkdownWriter_RawMode(t *testing.T) {
	var out bytes.Buffer
	w := NewMarkdownWriter(&out, true)

	w.Write([]byte("**bold**"))
	if out.String() != "**bold**" {
		t.Errorf("raw mode should not buffer, got %q", out.String())
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
}

func TestMarkdownWriter_StreamedChunks(t *testing.T) {
	var out bytes.Buffer
	w := NewMarkdownWriter(&out, false)

	for _, chunk := range []string{"Keep ", "showing ", "up."} {
		if _, err := w.Write([]byte(chunk)); err != nil {
			t.Fatal(err)
		}
	}
	if out.String() != "Keep showing up." {
		t.Errorf("got %q", out.String())
	}
}

func TestRenderMarkdown_ReturnsContent(t *testing.T) {
	out := RenderMarkdown("plain text")
	if out == "" {
		t.Error("render produced nothing")
	}
}
