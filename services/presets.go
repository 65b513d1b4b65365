package services

// Preset is a hand-authored package tier: a fixed set of rooms with
// pre-selected features. Prices always come from the live catalog at build
// time, never from the preset itself.
type Preset struct {
	Name  string // request identifier, e.g. "one_bedroom"
	Label string // display label for the form
	Rooms []Room
}

var presets = []Preset{
	{
		Name:  "one_bedroom",
		Label: "One Bedroom Package",
		Rooms: []Room{
			{Label: "Room 1", Features: []string{
				"Wifi Thermostat",
				"Wifi Lights Switch",
				"Wifi Lights Switch",
				"Wifi Curtain Switch",
				"Wifi Smart Door lock",
				"Alexa",
			}},
		},
	},
	{
		Name:  "two_bedroom",
		Label: "Two Bedroom Package",
		Rooms: []Room{
			{Label: "Main Bedroom", Features: []string{
				"Wifi Thermostat",
				"Wifi Lights Switch",
				"Wifi Curtain Switch",
				"Wifi Smart Door lock",
			}},
			{Label: "Second Bedroom", Features: []string{
				"Wifi Lights Switch",
				"Wifi Lights Switch",
			}},
			{Label: "Living Room", Features: []string{
				"Wifi Camera",
				"Alexa",
			}},
		},
	},
	{
		Name:  "three_bedroom",
		Label: "Three Bedroom Package",
		Rooms: []Room{
			{Label: "Main Bedroom", Features: []string{
				"Wifi Thermostat",
				"Wifi Lights Switch",
				"Wifi Curtain Switch",
				"Wifi Smart Door lock",
				"Alexa",
			}},
			{Label: "Second Bedroom", Features: []string{
				"Wifi Lights Switch",
				"Wifi Lights Switch",
			}},
			{Label: "Third Bedroom", Features: []string{
				"Wifi Lights Switch",
				"Wifi Curtain Switch",
			}},
			{Label: "Living Room", Features: []string{
				"Wifi Video Intercom",
				"Wifi Camera",
			}},
		},
	},
}

// Presets returns all package presets in display order.
func Presets() []Preset {
	return append([]Preset(nil), presets...)
}

// PresetByName looks up a preset by its request identifier.
func PresetByName(name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
