package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"smartquote/collections"
	"smartquote/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed the default catalog on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: catalog seed failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve static files from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// Quotation form and generation
		se.Router.GET("/", handlers.HandleQuoteForm(app))
		se.Router.POST("/quote", handlers.HandleQuoteGenerate(app))

		// Exports rebuild the quotation from echoed form fields
		se.Router.POST("/quote/export/pdf", handlers.HandleQuoteExportPDF(app))
		se.Router.POST("/quote/export/excel", handlers.HandleQuoteExportExcel(app))

		// Catalog price editor
		se.Router.GET("/settings/catalog", handlers.HandleCatalogSettings(app))
		se.Router.POST("/settings/catalog", handlers.HandleCatalogSettingsSave(app))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
