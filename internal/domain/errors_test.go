package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "source.open",
		Kind: KindNotFound,
		Path: "a.txt",
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindNotFound {
		t.Fatalf("expected kind %s", KindNotFound)
	}

	msg := err.Error()
	for _, want := range []string{"source.open", "not_found", "path=a.txt", "root"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in %q", want, msg)
		}
	}
}

func TestIsKind(t *testing.T) {
	err := &OpError{Op: "config.load", Kind: KindInvalidConfig}
	wrapped := errors.Join(errors.New("outer"), err)

	if !IsKind(wrapped, KindInvalidConfig) {
		t.Fatalf("expected IsKind to see through wrapping")
	}
	if IsKind(wrapped, KindNotFound) {
		t.Fatalf("expected IsKind to reject other kinds")
	}
	if IsKind(errors.New("plain"), KindExecution) {
		t.Fatalf("expected IsKind false for non-OpError")
	}
}

func TestNilOpError(t *testing.T) {
	var e *OpError
	if e.Error() != "<nil>" {
		t.Fatalf("expected <nil>, got %q", e.Error())
	}
	if e.Unwrap() != nil {
		t.Fatalf("expected nil unwrap")
	}
}
