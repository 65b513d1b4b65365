package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smartquote/testhelpers"
)

func TestHandleQuoteForm_FullPage(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.SeedDefaultCatalog(t, app)
	handler := HandleQuoteForm(app)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "<!doctype html>") {
		t.Error("expected a full page with doctype")
	}
	testhelpers.AssertHTMLContains(t, body,
		"Wifi Thermostat", "Alexa",
		"One Bedroom Package", "Two Bedroom Package", "Three Bedroom Package",
		"Manual selection",
		`name="qty_0_0"`,
	)
}

func TestHandleQuoteForm_HTMXPartial(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.SeedDefaultCatalog(t, app)
	handler := HandleQuoteForm(app)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	body := rec.Body.String()
	if strings.Contains(body, "<!doctype html>") {
		t.Error("HTMX request should get a fragment, not a full page")
	}
	testhelpers.AssertHTMLContains(t, body, `id="quote-form-wrap"`)
}

func TestHandleQuoteForm_NumRooms(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.SeedDefaultCatalog(t, app)
	handler := HandleQuoteForm(app)

	req := httptest.NewRequest(http.MethodGet, "/?num_rooms=3", nil)
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, "Room 3", `name="qty_2_0"`)
	if strings.Contains(body, "Room 4") {
		t.Error("did not expect a fourth room section")
	}
}

func TestHandleQuoteForm_NumRoomsClamped(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.SeedDefaultCatalog(t, app)
	handler := HandleQuoteForm(app)

	req := httptest.NewRequest(http.MethodGet, "/?num_rooms=99", nil)
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, "Room 20")
	if strings.Contains(body, "Room 21") {
		t.Error("room sections must be capped at 20")
	}
}

// The form must render from the built-in catalog when nothing is seeded.
func TestHandleQuoteForm_EmptyDatabaseFallsBack(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuoteForm(app)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Wifi Thermostat", "Wifi WaterHeater")
}
