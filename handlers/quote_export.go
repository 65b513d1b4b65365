package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"smartquote/services"
)

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// exportFilename builds a download filename from the customer name.
func exportFilename(q *services.Quotation, ext string) string {
	name := q.Customer.Name
	if name == "" {
		name = "Customer"
	}
	return fmt.Sprintf("Quotation_%s_%d.%s", sanitizeFilename(name), time.Now().Year(), ext)
}

// rebuildQuotation re-prices the echoed form fields of an export request.
// Exports carry no server state; the hidden fields are the whole input.
func rebuildQuotation(e *core.RequestEvent, app *pocketbase.PocketBase) (*services.Quotation, error) {
	if err := e.Request.ParseForm(); err != nil {
		return nil, fmt.Errorf("parse form: %w", err)
	}
	catalog := services.LoadCatalog(app)
	req := parseQuoteRequest(e.Request, catalog)
	q, err := services.BuildQuotation(req, catalog)
	if err != nil {
		return nil, fmt.Errorf("build quotation: %w", err)
	}
	return q, nil
}

// HandleQuoteExportPDF returns a handler that generates and downloads the
// quotation as a PDF.
func HandleQuoteExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q, err := rebuildQuotation(e, app)
		if err != nil {
			log.Printf("quote_export_pdf: %v", err)
			return e.String(http.StatusBadRequest, "Could not rebuild quotation")
		}

		pdfBytes, err := services.GenerateQuotePDF(services.NewQuoteDocument(q))
		if err != nil {
			log.Printf("quote_export_pdf: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, exportFilename(q, "pdf")))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleQuoteExportExcel returns a handler that generates and downloads the
// quotation as an Excel workbook.
func HandleQuoteExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q, err := rebuildQuotation(e, app)
		if err != nil {
			log.Printf("quote_export_excel: %v", err)
			return e.String(http.StatusBadRequest, "Could not rebuild quotation")
		}

		xlsxBytes, err := services.GenerateQuoteExcel(services.NewQuoteDocument(q))
		if err != nil {
			log.Printf("quote_export_excel: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, exportFilename(q, "xlsx")))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
