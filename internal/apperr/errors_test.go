package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hakanyildizphd/vplc/internal/apperr"
)

func TestNewUsage(t *testing.T) {
	err := apperr.NewUsage("expected 4 positional arguments, got 2")

	if err.Error() != "expected 4 positional arguments, got 2" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestNewInfra(t *testing.T) {
	err := apperr.NewInfra("reference output is malformed")

	if err.Error() != "reference output is malformed" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Errorf("expected nil unwrap, got %v", err.Unwrap())
	}
}

func TestNewInfraWrap(t *testing.T) {
	inner := fmt.Errorf("open failed")
	err := apperr.NewInfraWrap("reference output unreadable", inner)

	if err.Error() != "reference output unreadable: open failed" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to reach the inner error")
	}
}

func TestInfraError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewInfra("reference output is malformed")

	wrapped := fmt.Errorf("grading case 3: %w", original)
	doubleWrapped := fmt.Errorf("suite run: %w", wrapped)

	var ie *apperr.InfraError
	if !errors.As(doubleWrapped, &ie) {
		t.Fatal("errors.As should find InfraError through double wrapping")
	}
	if ie.Message != "reference output is malformed" {
		t.Errorf("unexpected message %q", ie.Message)
	}
}

func TestTaxonomyIsDisjoint(t *testing.T) {
	usage := apperr.NewUsage("bad hidden flag")

	var ie *apperr.InfraError
	if errors.As(usage, &ie) {
		t.Fatal("a usage error must not satisfy InfraError")
	}

	infra := apperr.NewInfra("broken reference")
	var ue *apperr.UsageError
	if errors.As(infra, &ue) {
		t.Fatal("an infra error must not satisfy UsageError")
	}
}
