package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pocketbase/pocketbase/core"
)

func decodeToast(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()

	trigger := rec.Header().Get("HX-Trigger")
	if trigger == "" {
		t.Fatal("expected HX-Trigger header to be set")
	}

	var parsed map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trigger), &parsed); err != nil {
		t.Fatalf("HX-Trigger is not valid JSON: %v", err)
	}

	raw, ok := parsed["showToast"]
	if !ok {
		t.Fatal("expected showToast key in HX-Trigger JSON")
	}

	var toast map[string]string
	if err := json.Unmarshal(raw, &toast); err != nil {
		t.Fatalf("showToast value is not valid JSON: %v", err)
	}
	return toast
}

func TestSetToast_Basic(t *testing.T) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Response = rec

	SetToast(e, "success", "Catalog prices updated")

	toast := decodeToast(t, rec)
	if toast["message"] != "Catalog prices updated" {
		t.Errorf("expected message %q, got %q", "Catalog prices updated", toast["message"])
	}
	if toast["type"] != "success" {
		t.Errorf("expected type %q, got %q", "success", toast["type"])
	}
}

func TestSetToast_MergesWithExisting(t *testing.T) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Response = rec

	rec.Header().Set("HX-Trigger", `{"someEvent":{"key":"value"}}`)

	SetToast(e, "success", "Merged toast")

	var parsed map[string]json.RawMessage
	if err := json.Unmarshal([]byte(rec.Header().Get("HX-Trigger")), &parsed); err != nil {
		t.Fatalf("HX-Trigger is not valid JSON: %v", err)
	}
	if _, ok := parsed["someEvent"]; !ok {
		t.Error("expected someEvent key to be preserved after merge")
	}

	toast := decodeToast(t, rec)
	if toast["message"] != "Merged toast" {
		t.Errorf("expected message %q, got %q", "Merged toast", toast["message"])
	}
}

func TestSetToast_OverwritesInvalidExisting(t *testing.T) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Response = rec

	rec.Header().Set("HX-Trigger", "notValidJSON")

	SetToast(e, "error", "Overwritten")

	toast := decodeToast(t, rec)
	if toast["message"] != "Overwritten" {
		t.Errorf("expected message %q, got %q", "Overwritten", toast["message"])
	}
}

func TestErrorToast_SetsHeaderAndReswap(t *testing.T) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Response = rec

	err := ErrorToast(e, http.StatusBadRequest, "Could not generate quotation")
	if err != nil {
		t.Fatalf("ErrorToast returned error: %v", err)
	}

	toast := decodeToast(t, rec)
	if toast["type"] != "error" {
		t.Errorf("expected type 'error', got %q", toast["type"])
	}
	if toast["message"] != "Could not generate quotation" {
		t.Errorf("unexpected message %q", toast["message"])
	}

	if got := rec.Header().Get("HX-Reswap"); got != "none" {
		t.Errorf("expected HX-Reswap 'none', got %q", got)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
	if rec.Body.String() != "Could not generate quotation" {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
}
