package ui

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
)

// IsStdoutTTY returns true when stdout is connected to a terminal.
func IsStdoutTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// MarkdownWriter is an io.Writer that buffers streamed content and renders it
// as styled terminal markdown (via glamour) when Flush is called. The coach
// streams its analysis through one of these.
//
// In raw mode or non-TTY contexts, all writes pass through immediately to the
// underlying writer without buffering.
type MarkdownWriter struct {
	out   io.Writer
	buf   bytes.Buffer
	raw   bool // force plain output regardless of TTY
	isTTY bool
}

// NewMarkdownWriter creates a MarkdownWriter targeting out.
func NewMarkdownWriter(out io.Writer, raw bool) *MarkdownWriter {
	tty := false
	if f, ok := out.(*os.File); ok {
		tty = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &MarkdownWriter{
		out:   out,
		raw:   raw,
		isTTY: tty,
	}
}

// Write buffers data in render mode, or forwards it directly in raw/non-TTY
// mode.
func (m *MarkdownWriter) Write(p []byte) (int, error) {
	if m.raw || !m.isTTY {
		return m.out.Write(p)
	}
	return m.buf.Write(p)
}

// Flush renders the buffered content as styled terminal markdown and writes
// it to the underlying writer. In raw or non-TTY mode this is a no-op. On
// renderer failure the raw buffered content is emitted instead.
func (m *MarkdownWriter) Flush() error {
	if m.raw || !m.isTTY || m.buf.Len() == 0 {
		return nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, Muted.Render("  (markdown rendering unavailable, showing raw output)"))
		_, werr := m.out.Write(m.buf.Bytes())
		return werr
	}

	rendered, err := r.Render(m.buf.String())
	if err != nil {
		fmt.Fprintln(os.Stderr, Muted.Render("  (markdown rendering failed, showing raw output)"))
		_, werr := m.out.Write(m.buf.Bytes())
		return werr
	}

	_, err = fmt.Fprint(m.out, rendered)
	return err
}

// RenderMarkdown renders a complete markdown string for terminal output.
// Returns the original string on any error.
func RenderMarkdown(md string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
