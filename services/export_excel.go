package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateQuoteExcel creates an Excel workbook for the quotation and returns
// the file contents as a byte slice. The breakdown rows reuse the same line
// strings as the screen and the PDF.
func GenerateQuoteExcel(doc QuoteDocument) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Quotation"

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	if err := f.SetColWidth(sheetName, "A", "A", 50); err != nil {
		return nil, fmt.Errorf("set col width A: %w", err)
	}
	if err := f.SetColWidth(sheetName, "B", "B", 30); err != nil {
		return nil, fmt.Errorf("set col width B: %w", err)
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	metaStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create meta style: %w", err)
	}

	roomStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create room style: %w", err)
	}

	lineStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 10},
	})
	if err != nil {
		return nil, fmt.Errorf("create line style: %w", err)
	}

	totalStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 13},
	})
	if err != nil {
		return nil, fmt.Errorf("create total style: %w", err)
	}

	// ── Header rows ─────────────────────────────────────────────────────

	q := doc.Quotation

	if err := f.MergeCell(sheetName, "A1", "B1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", "Smart Buildings Solutions Quotation")
	f.SetCellStyle(sheetName, "A1", "B1", titleStyle)

	f.SetCellValue(sheetName, "A2", sanitizeQuoteCell("Customer Name: "+q.Customer.Name))
	f.SetCellValue(sheetName, "B2", sanitizeQuoteCell("Date: "+q.Date))
	f.SetCellValue(sheetName, "A3", sanitizeQuoteCell("Mobile: "+q.Customer.Mobile))
	f.SetCellValue(sheetName, "B3", sanitizeQuoteCell("Email: "+q.Customer.Email))
	f.SetCellValue(sheetName, "A4", "System Type: "+string(q.SystemType))
	f.SetCellStyle(sheetName, "A2", "B4", metaStyle)

	// ── Breakdown rows (starting row 6) ─────────────────────────────────

	rowNum := 6
	for _, room := range doc.Breakdown.Rooms {
		cell := fmt.Sprintf("A%d", rowNum)
		f.SetCellValue(sheetName, cell, sanitizeQuoteCell(room.Label))
		f.SetCellStyle(sheetName, cell, fmt.Sprintf("B%d", rowNum), roomStyle)
		rowNum++

		for _, l := range room.Lines {
			cell := fmt.Sprintf("A%d", rowNum)
			f.SetCellValue(sheetName, cell, sanitizeQuoteCell(l))
			f.SetCellStyle(sheetName, cell, cell, lineStyle)
			rowNum++
		}
	}

	// Blank row, then the grand total.
	rowNum++
	cell := fmt.Sprintf("A%d", rowNum)
	f.SetCellValue(sheetName, cell, doc.Breakdown.TotalLine)
	f.SetCellStyle(sheetName, cell, cell, totalStyle)

	// ── Write to buffer ─────────────────────────────────────────────────

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeQuoteCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +,
// -, @, \t or \r as formulas.
func sanitizeQuoteCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}
