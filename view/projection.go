// Package view projects cart state into its display form. Project is a pure
// function recomputed in full on every state change; there is no diffing.
package view

import (
	"html/template"
	"io"

	"github.com/take-two/storefront/models"
)

// Row is one rendered cart line. Index addresses the row for removal and is
// positional in the current render.
type Row struct {
	Index     int     `json:"index"`
	Image     string  `json:"img"`
	Name      string  `json:"name"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

type CartView struct {
	Rows  []Row   `json:"rows"`
	Badge int     `json:"badge"`
	Total float64 `json:"total"`
}

// Project renders the full cart state. The badge counts total quantity
// across rows, not distinct rows.
func Project(items []models.LineItem) CartView {
	v := CartView{Rows: make([]Row, 0, len(items))}
	for i, it := range items {
		lineTotal := it.Price * float64(it.Quantity)
		v.Rows = append(v.Rows, Row{
			Index:     i,
			Image:     it.Image,
			Name:      it.Name,
			Size:      it.Size,
			Color:     it.Color,
			Quantity:  it.Quantity,
			LineTotal: lineTotal,
		})
		v.Badge += it.Quantity
		v.Total += lineTotal
	}
	return v
}

var cartTemplate = template.Must(template.New("cart").Parse(`<div class="cart-content">
  <span class="cart-count">{{.Badge}}</span>
  <div class="cart-items">
    {{- range .Rows}}
    <div class="cart-item" data-index="{{.Index}}">
      <img src="{{.Image}}" alt="{{.Name}}">
      <div class="cart-item-info">
        <b>{{.Name}}</b><br>
        Size: {{.Size}} | Color: {{.Color}}<br>
        Qty: {{.Quantity}}<br>
        {{printf "%.2f" .LineTotal}} EGP
      </div>
      <span class="cart-item-remove" data-index="{{.Index}}">&#10006;</span>
    </div>
    {{- end}}
  </div>
  <div class="cart-total">{{printf "%.2f" .Total}} EGP</div>
</div>
`))

// Render writes the HTML cart widget for the given view.
func Render(w io.Writer, v CartView) error {
	return cartTemplate.Execute(w, v)
}
