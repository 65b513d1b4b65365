package services

import (
	"errors"
	"fmt"
)

// SystemType selects the smart-home product line.
type SystemType string

const (
	SystemWiFi  SystemType = "WiFi Smart Home"
	SystemWired SystemType = "Wired Smart Home"
)

// Mode selects how the rooms of a quotation are sourced.
type Mode string

const (
	ModePreset Mode = "preset"
	ModeManual Mode = "manual"
)

// MaxRooms bounds manual-mode configurations.
const MaxRooms = 20

var (
	// ErrWiredSystem is returned when a wired-system build is requested.
	// There is no price list for wired installations; callers show the
	// contact-us notice instead of a quotation.
	ErrWiredSystem = errors.New("no pricing for wired systems")

	// ErrUnknownPreset is returned for a preset name that does not exist.
	ErrUnknownPreset = errors.New("unknown package preset")

	// ErrRoomCount is returned when a manual request carries no rooms or
	// more than MaxRooms.
	ErrRoomCount = errors.New("invalid room count")

	// ErrUnknownMode is returned for a mode other than preset or manual.
	ErrUnknownMode = errors.New("unknown quotation mode")
)

// Customer identifies who the quotation is for.
type Customer struct {
	Name   string
	Mobile string
	Email  string
}

// Room is one named room with its selected features, in selection order.
// Repeats are allowed and represent multiple identical devices.
type Room struct {
	Label    string
	Features []string
}

// FeatureCount is one grouped breakdown entry: a feature, how many times it
// was selected in the room, and the extended cost of those units.
type FeatureCount struct {
	Feature string
	Count   int
	Cost    int // unit price x Count
}

// QuotedRoom is a priced room inside a finished quotation.
type QuotedRoom struct {
	Label    string
	Features []string
	Groups   []FeatureCount
	Subtotal int
}

// Quotation is the finalized result of one build. It is never mutated after
// construction; every generate action produces a fresh value.
type Quotation struct {
	Customer   Customer
	Date       string
	SystemType SystemType
	Rooms      []QuotedRoom
	GrandTotal int
}

// QuoteRequest carries everything a single build needs. The builder keeps no
// state between calls; even the date string is supplied by the caller.
type QuoteRequest struct {
	Customer   Customer
	Date       string
	SystemType SystemType
	Mode       Mode
	PresetName string // preset mode only
	Rooms      []Room // manual mode only, 1..MaxRooms
}

// BuildQuotation prices a quote request against the given catalog. Identical
// inputs always produce identical quotations.
func BuildQuotation(req QuoteRequest, catalog Catalog) (*Quotation, error) {
	if req.SystemType == SystemWired {
		return nil, ErrWiredSystem
	}

	var rooms []Room
	switch req.Mode {
	case ModePreset:
		preset, ok := PresetByName(req.PresetName)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, req.PresetName)
		}
		rooms = preset.Rooms
	case ModeManual:
		if len(req.Rooms) < 1 || len(req.Rooms) > MaxRooms {
			return nil, fmt.Errorf("%w: got %d, want 1..%d", ErrRoomCount, len(req.Rooms), MaxRooms)
		}
		rooms = req.Rooms
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, req.Mode)
	}

	q := &Quotation{
		Customer:   req.Customer,
		Date:       req.Date,
		SystemType: req.SystemType,
	}
	for _, room := range rooms {
		quoted := quoteRoom(room, catalog)
		q.GrandTotal += quoted.Subtotal
		q.Rooms = append(q.Rooms, quoted)
	}
	return q, nil
}

// quoteRoom groups a room's selections and prices them. An empty selection
// yields subtotal 0 and no groups; the room still appears in the quotation.
func quoteRoom(room Room, catalog Catalog) QuotedRoom {
	quoted := QuotedRoom{
		Label:    room.Label,
		Features: append([]string(nil), room.Features...),
	}
	quoted.Groups = groupFeatures(quoted.Features, catalog)
	for _, g := range quoted.Groups {
		quoted.Subtotal += g.Cost
	}
	return quoted
}

// groupFeatures counts identical selections, preserving the order in which
// distinct features first appear.
func groupFeatures(features []string, catalog Catalog) []FeatureCount {
	var groups []FeatureCount
	index := make(map[string]int, len(features))
	for _, f := range features {
		if i, ok := index[f]; ok {
			groups[i].Count++
			continue
		}
		index[f] = len(groups)
		groups = append(groups, FeatureCount{Feature: f, Count: 1})
	}
	for i := range groups {
		groups[i].Cost = catalog.PriceOf(groups[i].Feature) * groups[i].Count
	}
	return groups
}
