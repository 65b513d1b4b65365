package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"smartquote/services"
	"smartquote/templates"
)

// dateFormat is the display format stamped on every quotation.
const dateFormat = "January 2, 2006"

// clampRoomCount parses a room-count form value and clamps it to 1..MaxRooms.
func clampRoomCount(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	if n > services.MaxRooms {
		return services.MaxRooms
	}
	return n
}

// parseQty parses a quantity input value. Empty, malformed and negative
// values count as zero.
func parseQty(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// parseQuoteRequest reads a submitted quotation form into a QuoteRequest.
// The caller must have called ParseForm already. Quantity inputs are named
// qty_{room}_{entry} where entry is the catalog entry index.
func parseQuoteRequest(r *http.Request, catalog services.Catalog) services.QuoteRequest {
	req := services.QuoteRequest{
		Customer: services.Customer{
			Name:   r.FormValue("name"),
			Mobile: r.FormValue("mobile"),
			Email:  r.FormValue("email"),
		},
		Date:       time.Now().Format(dateFormat),
		SystemType: services.SystemWiFi,
	}
	if r.FormValue("system_type") == string(services.SystemWired) {
		req.SystemType = services.SystemWired
	}

	if preset := r.FormValue("preset"); preset != "" {
		req.Mode = services.ModePreset
		req.PresetName = preset
		return req
	}

	req.Mode = services.ModeManual
	numRooms := clampRoomCount(r.FormValue("num_rooms"))
	entries := catalog.Entries()
	for i := 0; i < numRooms; i++ {
		room := services.Room{Label: fmt.Sprintf("Room %d", i+1)}
		for j, entry := range entries {
			qty := parseQty(r.FormValue(fmt.Sprintf("qty_%d_%d", i, j)))
			for k := 0; k < qty; k++ {
				room.Features = append(room.Features, entry.Feature)
			}
		}
		req.Rooms = append(req.Rooms, room)
	}
	return req
}

// echoFields flattens a quote request back into hidden form fields so the
// export endpoints can rebuild the identical quotation without server state.
func echoFields(req services.QuoteRequest, catalog services.Catalog) []templates.FormField {
	fields := []templates.FormField{
		{Name: "name", Value: req.Customer.Name},
		{Name: "mobile", Value: req.Customer.Mobile},
		{Name: "email", Value: req.Customer.Email},
		{Name: "system_type", Value: string(req.SystemType)},
	}

	if req.Mode == services.ModePreset {
		fields = append(fields, templates.FormField{Name: "preset", Value: req.PresetName})
		return fields
	}

	fields = append(fields, templates.FormField{Name: "num_rooms", Value: strconv.Itoa(len(req.Rooms))})
	entries := catalog.Entries()
	for i, room := range req.Rooms {
		for j, entry := range entries {
			count := 0
			for _, f := range room.Features {
				if f == entry.Feature {
					count++
				}
			}
			if count > 0 {
				fields = append(fields, templates.FormField{
					Name:  fmt.Sprintf("qty_%d_%d", i, j),
					Value: strconv.Itoa(count),
				})
			}
		}
	}
	return fields
}

// quotationViewData maps a built quotation and its formatted breakdown into
// the view model rendered on screen.
func quotationViewData(q *services.Quotation, b services.Breakdown, echo []templates.FormField) templates.QuotationViewData {
	data := templates.QuotationViewData{
		CustomerName: q.Customer.Name,
		Mobile:       q.Customer.Mobile,
		Email:        q.Customer.Email,
		Date:         q.Date,
		SystemType:   string(q.SystemType),
		TotalLine:    b.TotalLine,
		EchoFields:   echo,
	}
	for _, room := range b.Rooms {
		data.Rooms = append(data.Rooms, templates.RoomView{Label: room.Label, Lines: room.Lines})
	}
	return data
}
