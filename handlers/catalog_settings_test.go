package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"smartquote/testhelpers"
)

func TestHandleCatalogSettings_List(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.SeedDefaultCatalog(t, app)
	handler := HandleCatalogSettings(app)

	req := httptest.NewRequest(http.MethodGet, "/settings/catalog", nil)
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Catalog Settings",
		"Wifi Thermostat", "Wifi WaterHeater",
		`value="500"`,
	)
}

func TestHandleCatalogSettingsSave_UpdatesPrice(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	item := testhelpers.CreateCatalogItem(t, app, "Wifi Thermostat", 500, 1)
	handler := HandleCatalogSettingsSave(app)

	req := newFormRequest(t, "/settings/catalog", url.Values{
		"price_" + item.Id: {"750"},
	})
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if rec.Header().Get("HX-Trigger") == "" {
		t.Error("expected a success toast")
	}

	saved, err := app.FindRecordById("catalog_items", item.Id)
	if err != nil {
		t.Fatalf("find record: %v", err)
	}
	if got := saved.GetInt("unit_price"); got != 750 {
		t.Errorf("expected stored price 750, got %d", got)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(), `value="750"`)
}

func TestHandleCatalogSettingsSave_MissingFieldLeavesRow(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	item := testhelpers.CreateCatalogItem(t, app, "Alexa", 600, 1)
	other := testhelpers.CreateCatalogItem(t, app, "Wifi Camera", 350, 2)
	handler := HandleCatalogSettingsSave(app)

	req := newFormRequest(t, "/settings/catalog", url.Values{
		"price_" + item.Id: {"650"},
	})
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	saved, err := app.FindRecordById("catalog_items", other.Id)
	if err != nil {
		t.Fatalf("find record: %v", err)
	}
	if got := saved.GetInt("unit_price"); got != 350 {
		t.Errorf("row without a submitted price changed to %d", got)
	}
}

func TestHandleCatalogSettingsSave_InvalidPrice(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"not a number", "abc"},
		{"negative", "-50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := testhelpers.NewTestApp(t)
			item := testhelpers.CreateCatalogItem(t, app, "Wifi Thermostat", 500, 1)
			handler := HandleCatalogSettingsSave(app)

			req := newFormRequest(t, "/settings/catalog", url.Values{
				"price_" + item.Id: {tt.value},
			})
			rec := httptest.NewRecorder()

			e := newTestRequestEvent(app, req, rec)

			if err := handler(e); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}
			if rec.Header().Get("HX-Reswap") != "none" {
				t.Error("expected HX-Reswap: none on validation failure")
			}

			saved, err := app.FindRecordById("catalog_items", item.Id)
			if err != nil {
				t.Fatalf("find record: %v", err)
			}
			if got := saved.GetInt("unit_price"); got != 500 {
				t.Errorf("price changed to %d on invalid input", got)
			}
		})
	}
}

func TestHandleCatalogSettingsSave_ZeroAllowed(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	item := testhelpers.CreateCatalogItem(t, app, "Wifi Power Socket", 250, 1)
	handler := HandleCatalogSettingsSave(app)

	req := newFormRequest(t, "/settings/catalog", url.Values{
		"price_" + item.Id: {"0"},
	})
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	saved, err := app.FindRecordById("catalog_items", item.Id)
	if err != nil {
		t.Fatalf("find record: %v", err)
	}
	if got := saved.GetInt("unit_price"); got != 0 {
		t.Errorf("expected stored price 0, got %d", got)
	}
}
