package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"smartquote/services"
)

// Seed populates catalog_items with the built-in WiFi device price list.
// It is safe to call on every startup because it returns early if any
// catalog record already exists.
func Seed(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("catalog_items")
	if err != nil {
		return fmt.Errorf("seed: could not find catalog_items collection: %w", err)
	}

	existing, err := app.FindAllRecords(col)
	if err != nil {
		return fmt.Errorf("seed: could not query catalog_items: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: catalog_items is empty – inserting default price list …")

	for i, entry := range services.DefaultCatalog().Entries() {
		r := core.NewRecord(col)
		r.Set("feature", entry.Feature)
		r.Set("unit_price", entry.UnitPrice)
		r.Set("sort_order", i+1)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: could not save catalog item %q: %w", entry.Feature, err)
		}
	}

	return nil
}
