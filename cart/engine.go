package cart

import "encoding/json"

// Engine maintains the cart document invariants over a Slot. It holds
// no state of its own between calls: every operation reloads the
// document from the slot, mutates it, and writes the whole thing back.
// The slot may be shared by other tabs or processes of the same
// profile, so a cached in-memory copy could silently clobber their
// writes.
type Engine struct {
	slot Slot
}

func NewEngine(slot Slot) *Engine {
	return &Engine{slot: slot}
}

// LoadCart is total: an absent, unreadable or malformed slot yields the
// canonical empty document, never an error.
func (e *Engine) LoadCart() Document {
	raw, err := e.slot.Load()
	if err != nil {
		return EmptyDocument()
	}
	return ParseDocument(raw)
}

func (e *Engine) save(doc Document) (Document, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return doc, err
	}
	return doc, e.slot.Save(raw)
}

// AddItem bumps the quantity of an existing line, or appends a new line
// with quantity 1. The id is not checked against the catalog; dangling
// lines are handled at render time by ComputeTotals.
func (e *Engine) AddItem(productID int) (Document, error) {
	doc := e.LoadCart()

	if idx := doc.find(productID); idx != -1 {
		doc.Items[idx].Qty++
		return e.save(doc)
	}

	doc.Items = append(doc.Items, Line{ID: productID, Qty: 1})
	return e.save(doc)
}

// SetQuantity clamps qty to a minimum of 0; 0 removes the line. Setting
// a quantity on a line that does not exist is a no-op — only AddItem
// creates lines.
func (e *Engine) SetQuantity(productID, qty int) (Document, error) {
	doc := e.LoadCart()

	idx := doc.find(productID)
	if idx == -1 {
		return doc, nil
	}

	if qty < 0 {
		qty = 0
	}
	if qty == 0 {
		doc.Items = append(doc.Items[:idx], doc.Items[idx+1:]...)
	} else {
		doc.Items[idx].Qty = qty
	}
	return e.save(doc)
}

func (e *Engine) IncrementQuantity(productID int) (Document, error) {
	return e.SetQuantity(productID, e.currentQty(productID)+1)
}

func (e *Engine) DecrementQuantity(productID int) (Document, error) {
	return e.SetQuantity(productID, e.currentQty(productID)-1)
}

func (e *Engine) RemoveItem(productID int) (Document, error) {
	return e.SetQuantity(productID, 0)
}

func (e *Engine) ClearCart() (Document, error) {
	return e.save(EmptyDocument())
}

// Checkout is a demo no-op: no order is placed anywhere, the cart is
// simply cleared.
func (e *Engine) Checkout() (Document, error) {
	return e.ClearCart()
}

func (e *Engine) currentQty(productID int) int {
	doc := e.LoadCart()
	if idx := doc.find(productID); idx != -1 {
		return doc.Items[idx].Qty
	}
	return 0
}
