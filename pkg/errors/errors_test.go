package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("boom")
	err := Wrap(CodeDependency, cause, "sending mail")

	if err.Code() != CodeDependency {
		t.Fatalf("unexpected code: %s", err.Code())
	}
	if !stdErrors.Is(err, cause) {
		t.Fatal("expected cause to be in the chain")
	}
}

func TestAsFindsTypedErrorThroughWrapping(t *testing.T) {
	typed := New(CodeValidation, "cart is empty")
	wrapped := fmt.Errorf("handling checkout: %w", typed)

	got := As(wrapped)
	if got == nil || got.Code() != CodeValidation {
		t.Fatalf("expected typed validation error, got %v", got)
	}
}

func TestMetadataForUnknownCodeFallsBackToInternal(t *testing.T) {
	meta := MetadataFor(Code("NO_SUCH_CODE"))
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("unexpected status: %d", meta.HTTPStatus)
	}
}

func TestDumpIncludesChain(t *testing.T) {
	cause := stdErrors.New("dial tcp: refused")
	err := Wrap(CodeDependency, cause, "relay unavailable")

	dump := Dump(err)
	if dump.Code != CodeDependency {
		t.Fatalf("unexpected code: %s", dump.Code)
	}
	if len(dump.Chain) < 2 {
		t.Fatalf("expected chain with cause, got %v", dump.Chain)
	}
}

func TestNilErrorAccessors(t *testing.T) {
	var err *Error
	if err.Code() != CodeInternal {
		t.Fatal("nil error should report internal code")
	}
	if err.Error() != "" {
		t.Fatal("nil error should stringify empty")
	}
}
