package handlers

import (
	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"smartquote/services"
	"smartquote/templates"
)

// quoteFormData builds the quotation form view model from the current
// catalog for the given manual room count.
func quoteFormData(catalog services.Catalog, numRooms int) templates.QuoteFormData {
	data := templates.QuoteFormData{NumRooms: numRooms}
	for i, entry := range catalog.Entries() {
		data.Options = append(data.Options, templates.CatalogOption{
			Index:   i,
			Feature: entry.Feature,
			Price:   services.FormatAmount(entry.UnitPrice),
		})
	}
	for _, p := range services.Presets() {
		data.Presets = append(data.Presets, templates.PresetOption{Name: p.Name, Label: p.Label})
	}
	return data
}

// HandleQuoteForm returns a handler that renders the quotation form.
// A num_rooms query parameter re-renders the form with that many manual
// room sections; HTMX requests get just the form fragment.
func HandleQuoteForm(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		catalog := services.LoadCatalog(app)
		numRooms := 1
		if v := e.Request.URL.Query().Get("num_rooms"); v != "" {
			numRooms = clampRoomCount(v)
		}

		data := quoteFormData(catalog, numRooms)

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.QuoteFormContent(data)
		} else {
			component = templates.QuoteFormPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}
