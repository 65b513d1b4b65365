package services

import "testing"

func TestPresetByName(t *testing.T) {
	tests := []struct {
		name   string
		lookup string
		found  bool
		rooms  int
	}{
		{"one bedroom", "one_bedroom", true, 1},
		{"two bedroom", "two_bedroom", true, 3},
		{"three bedroom", "three_bedroom", true, 4},
		{"unknown", "studio", false, 0},
		{"empty", "", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := PresetByName(tt.lookup)
			if ok != tt.found {
				t.Fatalf("PresetByName(%q) found = %v, want %v", tt.lookup, ok, tt.found)
			}
			if ok && len(p.Rooms) != tt.rooms {
				t.Errorf("preset %q has %d rooms, want %d", tt.lookup, len(p.Rooms), tt.rooms)
			}
		})
	}
}

func TestPresets_ReturnsAllInOrder(t *testing.T) {
	all := Presets()
	want := []string{"one_bedroom", "two_bedroom", "three_bedroom"}
	if len(all) != len(want) {
		t.Fatalf("Presets() returned %d presets, want %d", len(all), len(want))
	}
	for i, name := range want {
		if all[i].Name != name {
			t.Errorf("Presets()[%d].Name = %q, want %q", i, all[i].Name, name)
		}
		if all[i].Label == "" {
			t.Errorf("preset %q has empty label", name)
		}
	}
}

// Preset totals are fixed against the default catalog: the grand total is
// always the sum over the hand-authored rooms' features.
func TestPresets_TotalsAgainstDefaultCatalog(t *testing.T) {
	tests := []struct {
		preset string
		total  int
	}{
		{"one_bedroom", 2590},
		{"two_bedroom", 3240},
		{"three_bedroom", 4490},
	}

	catalog := DefaultCatalog()
	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			q, err := BuildQuotation(QuoteRequest{
				SystemType: SystemWiFi,
				Mode:       ModePreset,
				PresetName: tt.preset,
			}, catalog)
			if err != nil {
				t.Fatalf("BuildQuotation() error = %v", err)
			}
			if q.GrandTotal != tt.total {
				t.Errorf("GrandTotal = %d, want %d", q.GrandTotal, tt.total)
			}

			var sum int
			for _, r := range q.Rooms {
				sum += r.Subtotal
			}
			if sum != q.GrandTotal {
				t.Errorf("room subtotals sum to %d, grand total is %d", sum, q.GrandTotal)
			}
		})
	}
}

func TestPresets_RoomLabels(t *testing.T) {
	p, ok := PresetByName("three_bedroom")
	if !ok {
		t.Fatal("three_bedroom preset missing")
	}
	want := []string{"Main Bedroom", "Second Bedroom", "Third Bedroom", "Living Room"}
	for i, label := range want {
		if p.Rooms[i].Label != label {
			t.Errorf("room %d label = %q, want %q", i, p.Rooms[i].Label, label)
		}
	}
}

func TestPresets_FeaturesExistInDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()
	for _, p := range Presets() {
		for _, room := range p.Rooms {
			for _, f := range room.Features {
				if catalog.PriceOf(f) == 0 {
					t.Errorf("preset %q room %q references feature %q with no catalog price", p.Name, room.Label, f)
				}
			}
		}
	}
}
