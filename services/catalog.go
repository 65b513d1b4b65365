// Package services implements the quotation core: the price catalog, the
// package presets, the quotation builder and the breakdown formatter, plus
// the PDF and Excel document generators built on top of them.
package services

import (
	"log"

	"github.com/pocketbase/pocketbase"
)

// CatalogEntry is a single priced feature in the catalog.
type CatalogEntry struct {
	Feature   string
	UnitPrice int // AED, whole units
}

// Catalog is an immutable mapping from feature name to unit price.
// Entry order is preserved so the form always lists features the same way.
type Catalog struct {
	entries []CatalogEntry
	prices  map[string]int
}

// NewCatalog builds a catalog from the given entries. When the same feature
// appears more than once the first entry wins.
func NewCatalog(entries []CatalogEntry) Catalog {
	c := Catalog{prices: make(map[string]int, len(entries))}
	for _, e := range entries {
		if _, ok := c.prices[e.Feature]; ok {
			continue
		}
		c.prices[e.Feature] = e.UnitPrice
		c.entries = append(c.entries, e)
	}
	return c
}

// PriceOf returns the unit price for a feature, or 0 when the feature is not
// in the catalog. A selection referencing a feature that was removed from the
// catalog still prices to a displayable quotation, just at zero.
func (c Catalog) PriceOf(feature string) int {
	return c.prices[feature]
}

// Entries returns the catalog entries in display order.
func (c Catalog) Entries() []CatalogEntry {
	return append([]CatalogEntry(nil), c.entries...)
}

// Len returns the number of distinct features in the catalog.
func (c Catalog) Len() int {
	return len(c.entries)
}

// DefaultCatalog returns the built-in WiFi device price list. It is both the
// seed data for the catalog_items collection and the fallback when that
// collection cannot be read.
func DefaultCatalog() Catalog {
	return NewCatalog([]CatalogEntry{
		{Feature: "Wifi Thermostat", UnitPrice: 500},
		{Feature: "Wifi Lights Switch", UnitPrice: 300},
		{Feature: "Wifi Lights Dimmer", UnitPrice: 300},
		{Feature: "Wifi Curtain Switch", UnitPrice: 350},
		{Feature: "Wifi Video Intercom", UnitPrice: 600},
		{Feature: "Wifi Smart Door lock", UnitPrice: 540},
		{Feature: "Wifi Camera", UnitPrice: 350},
		{Feature: "Wifi Power Socket", UnitPrice: 250},
		{Feature: "Alexa", UnitPrice: 600},
		{Feature: "Wifi WaterHeater", UnitPrice: 600},
	})
}

// LoadCatalog reads the catalog_items collection ordered by sort_order.
// Any failure, or an empty collection, falls back to the default catalog so
// a quotation can always be produced.
func LoadCatalog(app *pocketbase.PocketBase) Catalog {
	col, err := app.FindCollectionByNameOrId("catalog_items")
	if err != nil {
		log.Printf("catalog: could not find catalog_items collection: %v", err)
		return DefaultCatalog()
	}

	records, err := app.FindRecordsByFilter(col, "feature != ''", "sort_order", 0, 0)
	if err != nil {
		log.Printf("catalog: could not query catalog_items: %v", err)
		return DefaultCatalog()
	}
	if len(records) == 0 {
		return DefaultCatalog()
	}

	entries := make([]CatalogEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, CatalogEntry{
			Feature:   rec.GetString("feature"),
			UnitPrice: rec.GetInt("unit_price"),
		})
	}
	return NewCatalog(entries)
}
