package services

// QuoteDocument bundles a finalized quotation with its formatted breakdown
// for the document generators. Both the PDF and the Excel output are built
// from the same Breakdown strings as the on-screen view.
type QuoteDocument struct {
	Quotation *Quotation
	Breakdown Breakdown
}

// NewQuoteDocument formats the quotation once and pairs the two.
func NewQuoteDocument(q *Quotation) QuoteDocument {
	return QuoteDocument{
		Quotation: q,
		Breakdown: FormatBreakdown(q),
	}
}
