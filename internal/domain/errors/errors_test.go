package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestNotFoundSurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("get user 42: %w", ErrNotFound)
	if !stdErrors.Is(wrapped, ErrNotFound) {
		t.Fatalf("expected wrapped error to match ErrNotFound: %v", wrapped)
	}
	if stdErrors.Is(stdErrors.New("not found"), ErrNotFound) {
		t.Fatal("expected distinct error with same text not to match")
	}
}
