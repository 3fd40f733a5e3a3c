package ai

import (
	"context"
	"io"
	"testing"
)

type fakeProvider struct{ name string }

func (f *fakeProvider) Name() string { return f.name }
func (f *fakeProvider) Complete(ctx context.Context, req *Request) (*Response, error) {
	return &Response{Content: "fake"}, nil
}
func (f *fakeProvider) Stream(ctx context.Context, req *Request, w io.Writer) error {
	_, err := w.Write([]byte("fake"))
	return err
}

func TestRegistry(t *testing.T) {
	Register("fake-test", func(apiKey string) (Provider, error) {
		return &fakeProvider{name: "fake-test"}, nil
	})

	p, err := New("fake-test", "key")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if p.Name() != "fake-test" {
		t.Errorf("Name = %q", p.Name())
	}

	found := false
	for _, name := range Names() {
		if name == "fake-test" {
			found = true
		}
	}
	if !found {
		t.Errorf("Names() missing registered provider: %v", Names())
	}
}

func TestNew_Unknown(t *testing.T) {
	if _, err := New("no-such-provider", "key"); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestBuiltinProvidersRegistered(t *testing.T) {
	for _, name := range []string{"gemini", "claude"} {
		if _, err := New(name, "some-key"); err != nil {
			t.Errorf("New(%q): %v", name, err)
		}
	}
	// Both reject empty keys.
	for _, name := range []string{"gemini", "claude"} {
		if _, err := New(name, ""); err == nil {
			t.Errorf("New(%q, \"\") should fail", name)
		}
	}
}
