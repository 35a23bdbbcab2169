package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("boom")
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(appErr, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if appErr.Error() != "INTERNAL_ERROR: An internal error occurred: boom" {
		t.Fatalf("unexpected message: %s", appErr.Error())
	}

	body := appErr.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Details != nil {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestAppErrorDefaults(t *testing.T) {
	appErr := NewDomainErrorSimple("NOT_FOUND", "", http.StatusNotFound)
	if appErr.ToHTTPError().Message != "Not Found" {
		t.Fatalf("expected status text, got %q", appErr.ToHTTPError().Message)
	}

	detailed := appErr.WithDetails(map[string]interface{}{"available": 2})
	if detailed.ToHTTPError().Details["available"] != 2 {
		t.Fatalf("expected details")
	}
	if appErr.Details != nil {
		t.Fatalf("original must stay untouched")
	}
	if appErr.Error() != "NOT_FOUND: " {
		t.Fatalf("unexpected message: %s", appErr.Error())
	}
}
