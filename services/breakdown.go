package services

import "fmt"

// RoomLines is the rendered breakdown for one room: the grouped feature
// lines (or the empty-selection placeholder) followed by the subtotal line.
type RoomLines struct {
	Label string
	Lines []string
}

// Breakdown is the display form of a quotation. The on-screen view, the PDF
// and the Excel workbook all render these strings unchanged, so the outputs
// can never disagree on wording or numbers.
type Breakdown struct {
	Rooms     []RoomLines
	TotalLine string
}

// FormatAmount renders a whole AED amount, e.g. "2440 AED".
func FormatAmount(n int) string {
	return fmt.Sprintf("%d AED", n)
}

// FormatBreakdown renders a quotation into display lines. Feature lines get
// an " x{count}" suffix only when the feature was selected more than once.
func FormatBreakdown(q *Quotation) Breakdown {
	b := Breakdown{
		TotalLine: "Total Estimated Cost: " + FormatAmount(q.GrandTotal),
	}
	for _, room := range q.Rooms {
		rl := RoomLines{Label: room.Label}
		if len(room.Groups) == 0 {
			rl.Lines = append(rl.Lines, "- No features selected.")
		}
		for _, g := range room.Groups {
			line := g.Feature
			if g.Count > 1 {
				line += fmt.Sprintf(" x%d", g.Count)
			}
			line += ": " + FormatAmount(g.Cost)
			rl.Lines = append(rl.Lines, line)
		}
		rl.Lines = append(rl.Lines, "Subtotal: "+FormatAmount(room.Subtotal))
		b.Rooms = append(b.Rooms, rl)
	}
	return b
}
