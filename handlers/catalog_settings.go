package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"smartquote/templates"
)

// catalogSettingsData loads the editable catalog rows in catalog order.
func catalogSettingsData(app *pocketbase.PocketBase) (templates.CatalogSettingsData, error) {
	var data templates.CatalogSettingsData

	col, err := app.FindCollectionByNameOrId("catalog_items")
	if err != nil {
		return data, err
	}
	records, err := app.FindRecordsByFilter(col, "feature != ''", "sort_order", 0, 0)
	if err != nil {
		return data, err
	}

	for _, r := range records {
		data.Items = append(data.Items, templates.CatalogItemView{
			ID:      r.Id,
			Feature: r.GetString("feature"),
			Price:   r.GetInt("unit_price"),
		})
	}
	return data, nil
}

// HandleCatalogSettings returns a handler that renders the catalog price
// editor.
func HandleCatalogSettings(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := catalogSettingsData(app)
		if err != nil {
			log.Printf("catalog_settings: could not load catalog items: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.CatalogSettingsContent(data)
		} else {
			component = templates.CatalogSettingsPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleCatalogSettingsSave returns a handler that applies submitted unit
// prices. Inputs are named price_{recordId}; missing fields leave the row
// unchanged.
func HandleCatalogSettingsSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return e.String(http.StatusBadRequest, "Invalid form data")
		}

		col, err := app.FindCollectionByNameOrId("catalog_items")
		if err != nil {
			log.Printf("catalog_settings_save: could not find catalog_items collection: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}
		records, err := app.FindRecordsByFilter(col, "feature != ''", "sort_order", 0, 0)
		if err != nil {
			log.Printf("catalog_settings_save: could not query catalog items: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		for _, r := range records {
			val := e.Request.FormValue("price_" + r.Id)
			if val == "" {
				continue
			}
			price, err := strconv.Atoi(val)
			if err != nil || price < 0 {
				return ErrorToast(e, http.StatusBadRequest, "Prices must be whole numbers of 0 or more")
			}
			if price == r.GetInt("unit_price") {
				continue
			}
			r.Set("unit_price", price)
			if err := app.Save(r); err != nil {
				log.Printf("catalog_settings_save: could not save %s: %v", r.Id, err)
				return ErrorToast(e, http.StatusInternalServerError, "Failed to save catalog prices")
			}
		}

		SetToast(e, "success", "Catalog prices updated")

		data, err := catalogSettingsData(app)
		if err != nil {
			log.Printf("catalog_settings_save: could not reload catalog items: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.CatalogSettingsContent(data)
		} else {
			component = templates.CatalogSettingsPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}
