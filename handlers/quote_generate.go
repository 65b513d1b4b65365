package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"smartquote/services"
	"smartquote/templates"
)

// HandleQuoteGenerate returns a handler that builds a quotation from the
// submitted form and renders the on-screen breakdown. Wired-system requests
// get the contact-us notice instead of a price.
func HandleQuoteGenerate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return e.String(http.StatusBadRequest, "Invalid form data")
		}

		catalog := services.LoadCatalog(app)
		req := parseQuoteRequest(e.Request, catalog)

		q, err := services.BuildQuotation(req, catalog)
		if err != nil {
			if errors.Is(err, services.ErrWiredSystem) {
				var component templ.Component
				if e.Request.Header.Get("HX-Request") == "true" {
					component = templates.WiredNotice()
				} else {
					component = templates.WiredNoticePage()
				}
				return component.Render(e.Request.Context(), e.Response)
			}
			log.Printf("quote_generate: build failed: %v", err)
			return ErrorToast(e, http.StatusBadRequest, "Could not generate quotation")
		}

		data := quotationViewData(q, services.FormatBreakdown(q), echoFields(req, catalog))

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.QuotationContent(data)
		} else {
			component = templates.QuotationPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}
