package templates

// FormField is a hidden name/value pair echoed through the export forms so
// the stateless export handlers can rebuild the exact same quotation.
type FormField struct {
	Name  string
	Value string
}

// CatalogOption is one selectable feature on the quote form.
type CatalogOption struct {
	Index   int // stable index used in quantity input names
	Feature string
	Price   string // display price, e.g. "500 AED"
}

// PresetOption is one package tier on the quote form.
type PresetOption struct {
	Name  string
	Label string
}

// QuoteFormData drives the quotation form page.
type QuoteFormData struct {
	Options  []CatalogOption
	Presets  []PresetOption
	NumRooms int
}

// RoomView is one room's formatted breakdown lines.
type RoomView struct {
	Label string
	Lines []string
}

// QuotationViewData drives the generated-quotation view.
type QuotationViewData struct {
	CustomerName string
	Mobile       string
	Email        string
	Date         string
	SystemType   string
	Rooms        []RoomView
	TotalLine    string
	EchoFields   []FormField
}

// CatalogItemView is one editable price row on the settings page.
type CatalogItemView struct {
	ID      string
	Feature string
	Price   int
}

// CatalogSettingsData drives the catalog settings page.
type CatalogSettingsData struct {
	Items []CatalogItemView
}
