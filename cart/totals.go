package cart

import "techstore/models"

// LineTotal is one resolvable cart line joined against the catalog.
type LineTotal struct {
	Product   models.Product `json:"product"`
	Qty       int            `json:"qty"`
	LineTotal int            `json:"lineTotal"`
}

// Totals is the render model for the cart page. No tax or discounts, so
// the order total equals Subtotal.
type Totals struct {
	Lines    []LineTotal `json:"lines"`
	Subtotal int         `json:"subtotal"`
}

// ComputeTotals joins the document against the catalog. Lines whose
// product id no longer resolves are omitted from the output but are
// left in the persisted document — a later catalog restore makes them
// resolvable again, and dropping them here would be silent data loss.
func ComputeTotals(doc Document, lookup func(id int) (models.Product, bool)) Totals {
	totals := Totals{Lines: []LineTotal{}}

	for _, line := range doc.Items {
		product, ok := lookup(line.ID)
		if !ok {
			continue
		}
		lineTotal := product.Price * line.Qty
		totals.Lines = append(totals.Lines, LineTotal{
			Product:   product,
			Qty:       line.Qty,
			LineTotal: lineTotal,
		})
		totals.Subtotal += lineTotal
	}
	return totals
}

// ProductIndex builds a lookup over a product list for ComputeTotals.
func ProductIndex(products []models.Product) func(id int) (models.Product, bool) {
	byID := make(map[int]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return func(id int) (models.Product, bool) {
		p, ok := byID[id]
		return p, ok
	}
}
