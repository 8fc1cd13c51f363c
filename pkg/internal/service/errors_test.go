package service

import (
	"errors"
	"fmt"
	"testing"
)

func TestUploadErrorMessage(t *testing.T) {
	err := NewUploadError("open form image", errors.New("http: no such file"))

	if got, want := err.Error(), "open form image: http: no such file"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestAsUploadErrorDirect(t *testing.T) {
	cause := errors.New("multipart: NextPart: EOF")
	err := NewUploadError("parse form", cause)

	ue, ok := AsUploadError(err)
	if !ok {
		t.Fatal("expected UploadError to be detected")
	}

	if ue.Op != "parse form" {
		t.Fatalf("Op = %q, want %q", ue.Op, "parse form")
	}

	if !errors.Is(err, cause) {
		t.Fatal("Unwrap should expose the underlying error")
	}
}

func TestAsUploadErrorWrapped(t *testing.T) {
	err := fmt.Errorf("save image: %w", NewUploadError("open form image", errors.New("boom")))

	if _, ok := AsUploadError(err); !ok {
		t.Fatal("UploadError should be found through wrapping")
	}
}

func TestAsUploadErrorPlain(t *testing.T) {
	if _, ok := AsUploadError(errors.New("disk full")); ok {
		t.Fatal("plain error must not classify as UploadError")
	}

	if _, ok := AsUploadError(nil); ok {
		t.Fatal("nil must not classify as UploadError")
	}
}
