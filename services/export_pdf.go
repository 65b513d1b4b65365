package services

import (
	"fmt"
	"os"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// Deploy-time branding assets. Both are optional: a missing file only means
// the PDF is rendered without it.
const (
	logoPath  = "static/logo.png"
	stampPath = "static/stamp_signature.png"
)

// GenerateQuotePDF creates the quotation PDF using maroto/v2 and returns the
// raw PDF bytes.
func GenerateQuotePDF(doc QuoteDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addQuoteHeader(m, doc.Quotation)
	addRoomBreakdown(m, doc.Breakdown)
	addQuoteTotal(m, doc.Breakdown)
	addStamp(m)

	pdf, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return pdf.GetBytes(), nil
}

// addQuoteHeader adds the logo, title, customer block and system type.
func addQuoteHeader(m core.Maroto, q *Quotation) {
	if assetExists(logoPath) {
		m.AddRows(
			row.New(20).Add(
				image.NewFromFileCol(4, logoPath, props.Rect{
					Percent: 100,
					Left:    0,
				}),
				col.New(8),
			),
		)
	}

	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New("Smart Buildings Solutions Quotation", props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	labelText := props.Text{
		Size:  10,
		Style: fontstyle.Bold,
		Align: align.Left,
	}
	rightText := labelText
	rightText.Align = align.Right

	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Customer Name: %s", q.Customer.Name), labelText),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", q.Date), rightText),
			),
		),
	)
	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Mobile: %s", q.Customer.Mobile), labelText),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Email: %s", q.Customer.Email), rightText),
			),
		),
	)

	m.AddRows(row.New(3))
	m.AddRows(
		row.New(9).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("System Type: %s", q.SystemType), props.Text{
					Size:  13,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
	)
}

// addRoomBreakdown renders each room's formatted lines. The strings come
// straight from the shared Breakdown so the PDF matches the screen exactly.
func addRoomBreakdown(m core.Maroto, b Breakdown) {
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New("Room Breakdown", props.Text{
					Size:  11,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
	)
	m.AddRows(
		line.NewRow(2, props.Line{
			Thickness: 0.3,
			Color:     &props.Color{Red: 80, Green: 80, Blue: 80},
		}),
	)

	lineText := props.Text{Size: 10, Align: align.Left}
	subtotalText := props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Left}

	for _, room := range b.Rooms {
		m.AddRows(
			row.New(7).Add(
				col.New(12).Add(
					text.New(room.Label, props.Text{
						Size:  11,
						Style: fontstyle.Bold,
						Align: align.Left,
					}),
				),
			),
		)
		for i, l := range room.Lines {
			// Last line of every room is its subtotal.
			style := lineText
			if i == len(room.Lines)-1 {
				style = subtotalText
			}
			m.AddRows(
				row.New(6).Add(
					col.New(12).Add(text.New(l, style)),
				),
			)
		}
		m.AddRows(row.New(2))
	}
}

// addQuoteTotal renders the grand-total line.
func addQuoteTotal(m core.Maroto, b Breakdown) {
	m.AddRows(row.New(4))
	m.AddRows(
		row.New(10).Add(
			col.New(12).Add(
				text.New(b.TotalLine, props.Text{
					Size:  15,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
	)
}

// addStamp places the company stamp/signature image when it is available.
func addStamp(m core.Maroto) {
	if !assetExists(stampPath) {
		return
	}
	m.AddRows(
		row.New(30).Add(
			col.New(8),
			image.NewFromFileCol(4, stampPath, props.Rect{
				Percent: 90,
				Center:  true,
			}),
		),
	)
}

// assetExists reports whether a branding asset is present on disk.
func assetExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
