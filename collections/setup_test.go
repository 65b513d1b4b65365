package collections_test

import (
	"testing"

	"smartquote/collections"
	"smartquote/testhelpers"
)

func TestSetup_CatalogItemsExists(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	col, err := app.FindCollectionByNameOrId("catalog_items")
	if err != nil {
		t.Fatalf("catalog_items not found after Setup(): %v", err)
	}
	if col.Name != "catalog_items" {
		t.Errorf("collection name = %q, want %q", col.Name, "catalog_items")
	}

	for _, field := range []string{"feature", "unit_price", "sort_order", "created", "updated"} {
		if col.Fields.GetByName(field) == nil {
			t.Errorf("catalog_items is missing field %q", field)
		}
	}
}

func TestSetup_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t) // Setup() already called once via NewTestApp

	col, err := app.FindCollectionByNameOrId("catalog_items")
	if err != nil {
		t.Fatalf("catalog_items not found: %v", err)
	}
	firstID := col.Id

	// Run Setup() again; the collection must be reused, not recreated.
	collections.Setup(app)

	col, err = app.FindCollectionByNameOrId("catalog_items")
	if err != nil {
		t.Fatalf("catalog_items missing after second Setup(): %v", err)
	}
	if col.Id != firstID {
		t.Errorf("collection id changed across Setup() runs: %q != %q", col.Id, firstID)
	}
}
