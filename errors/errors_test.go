package errors

import (
	"context"
	"fmt"
	"os/exec"
	"testing"
)

func TestSvcError(t *testing.T) {
	err := New(ErrCodeInvalidUnitName, "bad unit")
	if err.Code != ErrCodeInvalidUnitName {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidUnitName, err.Code)
	}

	cause := fmt.Errorf("underlying error")
	wrapped := Wrap(cause, ErrCodeCommandFailed, "command failed")

	if wrapped.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	if !Is(wrapped, ErrCodeCommandFailed) {
		t.Error("Is should return true for matching code")
	}

	if Is(wrapped, ErrCodeLoadFailed) {
		t.Error("Is should return false for non-matching code")
	}

	detailed := err.WithDetail("unit", "cron.service").WithDetail("attempt", 2)
	if detailed.Details["unit"] != "cron.service" {
		t.Error("WithDetail should add details")
	}
}

func TestIsFollowsNestedCodes(t *testing.T) {
	inner := CommandFailed("systemctl list-units", fmt.Errorf("boom"))
	outer := LoadFailed("systemctl list-units", inner)

	if !Is(outer, ErrCodeLoadFailed) {
		t.Error("expected outer code to match")
	}
	if !Is(outer, ErrCodeCommandFailed) {
		t.Error("expected nested code to match")
	}
	if GetCode(outer) != ErrCodeLoadFailed {
		t.Errorf("GetCode should return outermost code, got %s", GetCode(outer))
	}

	plain := fmt.Errorf("context: %w", inner)
	if GetCode(plain) != ErrCodeCommandFailed {
		t.Errorf("GetCode should unwrap fmt errors, got %s", GetCode(plain))
	}
	if GetCode(nil) != "" {
		t.Error("GetCode(nil) should be empty")
	}
}

func TestErrorConstructors(t *testing.T) {
	err := InvalidUnitName("-evil")
	if err.Code != ErrCodeInvalidUnitName {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidUnitName, err.Code)
	}
	if err.Details["unit"] != "-evil" {
		t.Error("InvalidUnitName should include unit detail")
	}

	notFound := CommandFailed("nosuchbinary --flag", exec.ErrNotFound)
	if notFound.Code != ErrCodeCommandNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeCommandNotFound, notFound.Code)
	}
	if notFound.Details["command"] != "nosuchbinary" {
		t.Errorf("expected binary name detail, got %v", notFound.Details["command"])
	}

	timeout := CommandFailed("systemctl", context.DeadlineExceeded)
	if timeout.Code != ErrCodeCommandTimeout {
		t.Errorf("expected code %s, got %s", ErrCodeCommandTimeout, timeout.Code)
	}

	if Canceled("restart").Code != ErrCodeCanceled {
		t.Error("Canceled should carry the canceled code")
	}
}

func TestToJSON(t *testing.T) {
	err := ConfigNotFound("/etc/svcman.yml")
	out := err.ToJSON()
	if out == "" || out[0] != '{' {
		t.Fatalf("expected JSON object, got %q", out)
	}
}
