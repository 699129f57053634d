package cart

import "encoding/json"

// Line is one product/quantity pair. A product id appears at most once
// per document and Qty is at least 1 while the line exists; a quantity
// that would drop to 0 removes the line instead.
type Line struct {
	ID  int `json:"id"`
	Qty int `json:"qty"`
}

// Document is the whole serialized cart state. `{"items":[]}` is the
// canonical empty form.
type Document struct {
	Items []Line `json:"items"`
}

func EmptyDocument() Document {
	return Document{Items: []Line{}}
}

// ParseDocument never fails: anything that is not a JSON object with an
// `items` array (absent value included) falls back to the empty
// document. Malformed persisted state must not break the client.
func ParseDocument(raw []byte) Document {
	if len(raw) == 0 {
		return EmptyDocument()
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return EmptyDocument()
	}
	if doc.Items == nil {
		return EmptyDocument()
	}
	return doc
}

// ItemCount sums quantities across all lines, 0 for an empty document.
func (d Document) ItemCount() int {
	count := 0
	for _, line := range d.Items {
		count += line.Qty
	}
	return count
}

func (d Document) find(productID int) int {
	for i := range d.Items {
		if d.Items[i].ID == productID {
			return i
		}
	}
	return -1
}
