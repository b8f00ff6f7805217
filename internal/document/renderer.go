package document

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	appconfig "github.com/quotedesk/quotedesk/internal/config"
	"github.com/quotedesk/quotedesk/internal/domain/quotation"
	ierr "github.com/quotedesk/quotedesk/internal/errors"
	"github.com/quotedesk/quotedesk/internal/types"
)

// Renderer produces the printable PDF views of a quotation. All methods
// return raw PDF bytes; callers decide whether to register, merge, or
// stream them.
type Renderer struct {
	cfg appconfig.DocumentConfig
}

// NewRenderer creates a renderer with the company letterhead settings.
func NewRenderer(cfg appconfig.DocumentConfig) *Renderer {
	return &Renderer{cfg: cfg}
}

func (r *Renderer) newDocument() core.Maroto {
	cfg := config.NewBuilder().
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
	return maroto.New(cfg)
}

func (r *Renderer) generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to render PDF document").
			Mark(ierr.ErrInternal)
	}
	return doc.GetBytes(), nil
}

// RenderInteriors renders the interiors quotation: the priced interior
// item table with the document's own discount/tax breakdown.
func (r *Renderer) RenderInteriors(q *quotation.Quotation, items []*quotation.InteriorItem, b quotation.Breakdown) ([]byte, error) {
	m := r.newDocument()
	r.addHeader(m, q, "Interiors Quotation")

	addTableHeaderRow(m,
		headerCol{1, "#", align.Center},
		headerCol{2, "Room", align.Left},
		headerCol{3, "Description", align.Left},
		headerCol{1, "Sqft", align.Right},
		headerCol{2, "Finish", align.Left},
		headerCol{1, "Rate", align.Right},
		headerCol{2, "Amount", align.Right},
	)
	for idx, item := range items {
		m.AddRows(
			row.New(6).Add(
				col.New(1).Add(text.New(fmt.Sprintf("%d", idx+1), bodyText(align.Center))),
				col.New(2).Add(text.New(item.RoomType, bodyText(align.Left))),
				col.New(3).Add(text.New(item.Description, bodyText(align.Left))),
				col.New(1).Add(text.New(item.Sqft.StringFixed(2), bodyText(align.Right))),
				col.New(2).Add(text.New(item.FinishMaterial, bodyText(align.Left))),
				col.New(1).Add(text.New(item.UnitPrice.StringFixed(2), bodyText(align.Right))),
				col.New(2).Add(text.New(FormatINR(item.TotalPrice), bodyText(align.Right))),
			),
		)
	}

	r.addBreakdown(m, b)
	return r.generate(m)
}

// RenderFalseCeiling renders the false-ceiling quotation: ceiling items,
// then other items, with the document's own discount/tax breakdown.
func (r *Renderer) RenderFalseCeiling(q *quotation.Quotation, ceilings []*quotation.CeilingItem, others []*quotation.OtherItem, b quotation.Breakdown) ([]byte, error) {
	m := r.newDocument()
	r.addHeader(m, q, "False Ceiling Quotation")

	addTableHeaderRow(m,
		headerCol{1, "#", align.Center},
		headerCol{2, "Room", align.Left},
		headerCol{4, "Description", align.Left},
		headerCol{1, "Area", align.Right},
		headerCol{2, "Rate", align.Right},
		headerCol{2, "Amount", align.Right},
	)
	for idx, item := range ceilings {
		m.AddRows(
			row.New(6).Add(
				col.New(1).Add(text.New(fmt.Sprintf("%d", idx+1), bodyText(align.Center))),
				col.New(2).Add(text.New(item.RoomType, bodyText(align.Left))),
				col.New(4).Add(text.New(item.Description, bodyText(align.Left))),
				col.New(1).Add(text.New(item.Area.StringFixed(2), bodyText(align.Right))),
				col.New(2).Add(text.New(item.UnitRate.StringFixed(2), bodyText(align.Right))),
				col.New(2).Add(text.New(FormatINR(item.LineTotal()), bodyText(align.Right))),
			),
		)
	}

	if len(others) > 0 {
		m.AddRows(row.New(4))
		addTableHeaderRow(m,
			headerCol{1, "#", align.Center},
			headerCol{3, "Item", align.Left},
			headerCol{4, "Description", align.Left},
			headerCol{2, "Qty/Value", align.Right},
			headerCol{2, "Amount", align.Right},
		)
		for idx, item := range others {
			m.AddRows(
				row.New(6).Add(
					col.New(1).Add(text.New(fmt.Sprintf("%d", idx+1), bodyText(align.Center))),
					col.New(3).Add(text.New(item.ItemType, bodyText(align.Left))),
					col.New(4).Add(text.New(item.Description, bodyText(align.Left))),
					col.New(2).Add(text.New(item.Value.StringFixed(2), bodyText(align.Right))),
					col.New(2).Add(text.New(FormatINR(item.Total), bodyText(align.Right))),
				),
			)
		}
	}

	r.addBreakdown(m, b)
	return r.generate(m)
}

// RenderAgreement renders the signed service agreement: project details,
// terms, and the combined payable total.
func (r *Renderer) RenderAgreement(q *quotation.Quotation, combined quotation.Breakdown) ([]byte, error) {
	m := r.newDocument()
	r.addHeader(m, q, "Service Agreement")

	details := [][2]string{
		{"Client", q.ClientName},
		{"Client Address", q.ClientAddress},
		{"Project", q.ProjectName},
		{"Site Address", q.SiteAddress},
		{"Quotation No.", q.QuotationNumber},
		{"Contract Value", FormatINR(combined.FinalTotal)},
	}
	for _, d := range details {
		m.AddRows(
			row.New(7).Add(
				col.New(3).Add(text.New(d[0], props.Text{Size: 9, Style: fontstyle.Bold})),
				col.New(9).Add(text.New(d[1], props.Text{Size: 9})),
			),
		)
	}

	m.AddRows(row.New(6))
	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(text.New("Terms & Conditions", props.Text{Size: 10, Style: fontstyle.Bold})),
		),
	)
	m.AddRows(
		row.New(60).Add(
			col.New(12).Add(text.New(q.Terms, props.Text{Size: 8})),
		),
	)

	m.AddRows(row.New(20))
	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(text.New("For "+r.cfg.CompanyName, props.Text{Size: 9, Style: fontstyle.Bold})),
			col.New(6).Add(text.New("Client Signature", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right})),
		),
	)

	return r.generate(m)
}

// RenderTitlePage renders the transient annexure cover page inserted ahead
// of each annexure's content in the agreement pack. Bytes only; nothing is
// retained after the pack is assembled.
func (r *Renderer) RenderTitlePage(q *quotation.Quotation, section types.DocumentSection) ([]byte, error) {
	m := r.newDocument()

	m.AddRows(row.New(90))
	m.AddRows(
		row.New(16).Add(
			col.New(12).Add(
				text.New("Annexure: "+section.DisplayName(), props.Text{
					Size:  22,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)
	m.AddRows(
		row.New(10).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("%s — %s", q.QuotationNumber, q.ClientName), props.Text{
					Size:  11,
					Align: align.Center,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	return r.generate(m)
}

func (r *Renderer) addHeader(m core.Maroto, q *quotation.Quotation, title string) {
	m.AddRows(
		row.New(10).Add(
			col.New(12).Add(
				text.New(r.cfg.CompanyName, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)
	if r.cfg.CompanyAddress != "" {
		m.AddRows(
			row.New(5).Add(
				col.New(12).Add(
					text.New(r.cfg.CompanyAddress, props.Text{
						Size:  8,
						Align: align.Center,
						Color: &props.Color{Red: 80, Green: 80, Blue: 80},
					}),
				),
			),
		)
	}
	m.AddRows(
		row.New(10).Add(
			col.New(12).Add(
				text.New(title, props.Text{
					Size:  12,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)
	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Quotation: %s", q.QuotationNumber), props.Text{Size: 9}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Client: %s", q.ClientName), props.Text{Size: 9, Align: align.Right}),
			),
		),
	)
	m.AddRows(row.New(4))
}

func (r *Renderer) addBreakdown(m core.Maroto, b quotation.Breakdown) {
	m.AddRows(row.New(4))
	lines := [][2]string{
		{"Subtotal", FormatINR(b.Subtotal)},
		{"Discount", FormatINR(b.DiscountAmount)},
		{"Taxable Amount", FormatINR(b.TaxableAmount)},
		{"GST (18%)", FormatINR(b.Tax)},
		{"Grand Total", FormatINR(b.FinalTotal)},
	}
	for i, line := range lines {
		style := props.Text{Size: 9, Align: align.Right}
		if i == len(lines)-1 {
			style.Style = fontstyle.Bold
			style.Size = 10
		}
		m.AddRows(
			row.New(6).Add(
				col.New(8),
				col.New(2).Add(text.New(line[0], style)),
				col.New(2).Add(text.New(line[1], style)),
			),
		)
	}
	if r.cfg.GSTNumber != "" {
		m.AddRows(
			row.New(5).Add(
				col.New(12).Add(
					text.New("GSTIN: "+r.cfg.GSTNumber, props.Text{
						Size:  7,
						Align: align.Right,
						Color: &props.Color{Red: 120, Green: 120, Blue: 120},
					}),
				),
			),
		)
	}
}

type headerCol struct {
	width int
	label string
	align align.Type
}

func addTableHeaderRow(m core.Maroto, cols ...headerCol) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerCell := props.Cell{BackgroundColor: headerBg}

	rowCols := make([]core.Col, 0, len(cols))
	for _, hc := range cols {
		rowCols = append(rowCols, col.New(hc.width).Add(
			text.New(hc.label, props.Text{
				Size:  8,
				Style: fontstyle.Bold,
				Align: hc.align,
				Color: &props.Color{Red: 255, Green: 255, Blue: 255},
			}),
		).WithStyle(&headerCell))
	}
	m.AddRows(row.New(8).Add(rowCols...))
}

func bodyText(a align.Type) props.Text {
	return props.Text{Size: 8, Align: a}
}
