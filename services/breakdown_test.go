package services

import (
	"reflect"
	"testing"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name  string
		input int
		want  string
	}{
		{"zero", 0, "0 AED"},
		{"small", 500, "500 AED"},
		{"thousands", 2440, "2440 AED"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatAmount(tt.input); got != tt.want {
				t.Errorf("FormatAmount(%d) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatBreakdown_TwoRoomScenario(t *testing.T) {
	q, err := BuildQuotation(QuoteRequest{
		SystemType: SystemWiFi,
		Mode:       ModeManual,
		Rooms: []Room{
			{Label: "Room 1", Features: []string{"Wifi Thermostat", "Wifi Thermostat"}},
			{Label: "Room 2"},
		},
	}, testCatalog())
	if err != nil {
		t.Fatalf("BuildQuotation() error = %v", err)
	}

	b := FormatBreakdown(q)

	if len(b.Rooms) != 2 {
		t.Fatalf("breakdown has %d rooms, want 2", len(b.Rooms))
	}

	wantRoom1 := []string{
		"Wifi Thermostat x2: 1000 AED",
		"Subtotal: 1000 AED",
	}
	if !reflect.DeepEqual(b.Rooms[0].Lines, wantRoom1) {
		t.Errorf("Room 1 lines = %q, want %q", b.Rooms[0].Lines, wantRoom1)
	}

	wantRoom2 := []string{
		"- No features selected.",
		"Subtotal: 0 AED",
	}
	if !reflect.DeepEqual(b.Rooms[1].Lines, wantRoom2) {
		t.Errorf("Room 2 lines = %q, want %q", b.Rooms[1].Lines, wantRoom2)
	}

	if b.TotalLine != "Total Estimated Cost: 1000 AED" {
		t.Errorf("TotalLine = %q, want %q", b.TotalLine, "Total Estimated Cost: 1000 AED")
	}
}

func TestFormatBreakdown_SingleCountHasNoSuffix(t *testing.T) {
	q, err := BuildQuotation(QuoteRequest{
		SystemType: SystemWiFi,
		Mode:       ModeManual,
		Rooms: []Room{
			{Label: "Room 1", Features: []string{"Wifi Thermostat", "Wifi Smart Door lock"}},
		},
	}, testCatalog())
	if err != nil {
		t.Fatalf("BuildQuotation() error = %v", err)
	}

	b := FormatBreakdown(q)
	want := []string{
		"Wifi Thermostat: 500 AED",
		"Wifi Smart Door lock: 540 AED",
		"Subtotal: 1040 AED",
	}
	if !reflect.DeepEqual(b.Rooms[0].Lines, want) {
		t.Errorf("lines = %q, want %q", b.Rooms[0].Lines, want)
	}
}

func TestFormatBreakdown_GroupOrderMatchesSelectionOrder(t *testing.T) {
	catalog := NewCatalog([]CatalogEntry{
		{Feature: "A", UnitPrice: 10},
		{Feature: "B", UnitPrice: 20},
	})
	q, err := BuildQuotation(QuoteRequest{
		SystemType: SystemWiFi,
		Mode:       ModeManual,
		Rooms:      []Room{{Label: "Room 1", Features: []string{"A", "B", "A"}}},
	}, catalog)
	if err != nil {
		t.Fatalf("BuildQuotation() error = %v", err)
	}

	b := FormatBreakdown(q)
	want := []string{
		"A x2: 20 AED",
		"B: 20 AED",
		"Subtotal: 40 AED",
	}
	if !reflect.DeepEqual(b.Rooms[0].Lines, want) {
		t.Errorf("lines = %q, want %q", b.Rooms[0].Lines, want)
	}
}

func TestFormatBreakdown_RoomLabelsCarriedOver(t *testing.T) {
	q, err := BuildQuotation(QuoteRequest{
		SystemType: SystemWiFi,
		Mode:       ModePreset,
		PresetName: "two_bedroom",
	}, DefaultCatalog())
	if err != nil {
		t.Fatalf("BuildQuotation() error = %v", err)
	}

	b := FormatBreakdown(q)
	want := []string{"Main Bedroom", "Second Bedroom", "Living Room"}
	for i, label := range want {
		if b.Rooms[i].Label != label {
			t.Errorf("room %d label = %q, want %q", i, b.Rooms[i].Label, label)
		}
	}
}
