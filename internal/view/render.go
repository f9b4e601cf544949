package view

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pricecompare/internal/product"
)

// Row is one rendered product with its best deal resolved.
type Row struct {
	Product  product.Product
	BestDeal product.Vendor
}

// Rows turns the state's product list into render rows, in list order.
// Filters are not consulted.
func Rows(s State) []Row {
	rows := make([]Row, 0, len(s.Products))
	for _, p := range s.Products {
		rows = append(rows, Row{Product: p, BestDeal: product.BestDeal(p)})
	}
	return rows
}

// Stars renders floor(rating) stars.
func Stars(rating float64) string {
	n := int(math.Floor(rating))
	if n < 0 {
		n = 0
	}
	return strings.Repeat("⭐", n)
}

type Renderer struct {
	w io.Writer

	title    lipgloss.Style
	muted    lipgloss.Style
	price    lipgloss.Style
	best     lipgloss.Style
	spinner  lipgloss.Style
	bestCard lipgloss.Style
}

// NewRenderer returns a renderer for w. Colour support is detected from w,
// so plain buffers get unstyled text.
func NewRenderer(w io.Writer) *Renderer {
	r := lipgloss.NewRenderer(w)
	return &Renderer{
		w:        w,
		title:    r.NewStyle().Bold(true),
		muted:    r.NewStyle().Faint(true),
		price:    r.NewStyle().Foreground(lipgloss.Color("2")),
		best:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		spinner:  r.NewStyle().Foreground(lipgloss.Color("12")),
		bestCard: r.NewStyle().Bold(true),
	}
}

func (r *Renderer) Render(s State) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", r.title.Render("Search:"), s.Query)
	fmt.Fprintln(&b, r.muted.Render(filterSummary(s.Filters)))

	switch {
	case s.Searching():
		fmt.Fprintln(&b, r.spinner.Render("Searching for products..."))
	case s.LoadingProducts():
		fmt.Fprintln(&b, r.spinner.Render("Loading products..."))
	default:
		if len(s.Products) == 0 && hasQuery(s) {
			fmt.Fprintf(&b, "No products found for %q\n", s.Query)
			fmt.Fprintln(&b, r.muted.Render("Try searching for something else"))
			break
		}
		fmt.Fprintln(&b, r.muted.Render(countLine(s)))
		for _, row := range Rows(s) {
			r.renderRow(&b, row)
		}
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *Renderer) renderRow(b *strings.Builder, row Row) {
	fmt.Fprintf(b, "\n%s\n", r.title.Render(row.Product.Name))
	for _, v := range product.Vendors() {
		o := row.Product.Offer(v)
		name := fmt.Sprintf("%-9s", v.DisplayName())
		if v == row.BestDeal {
			name = r.bestCard.Render(name)
		}
		line := fmt.Sprintf("  %s %s %s %s",
			name,
			r.price.Render(fmt.Sprintf("₹%d", o.Price)),
			Stars(o.Rating),
			o.URL,
		)
		if v == row.BestDeal {
			line += " " + r.best.Render("Best Deal")
		}
		fmt.Fprintln(b, line)
	}
}

func countLine(s State) string {
	n := len(s.Products)
	switch {
	case !hasQuery(s):
		return fmt.Sprintf("Showing all %d products", n)
	case n == 1:
		return fmt.Sprintf("1 product found for %q", s.Query)
	default:
		return fmt.Sprintf("%d products found for %q", n, s.Query)
	}
}

// hasQuery reports whether the list came from a name search. Blank queries
// list everything.
func hasQuery(s State) bool {
	return strings.TrimSpace(s.Query) != ""
}

func filterSummary(f Filters) string {
	parts := make([]string, 0, 3)
	for _, sel := range f.Tags() {
		parts = append(parts, sel.Tag+"="+sel.Value)
	}
	return "Filters: " + strings.Join(parts, " ")
}
