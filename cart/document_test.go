package cart

import "testing"

func TestParseDocumentFallsBackToEmpty(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"absent", ""},
		{"not json", "{nope"},
		{"json null", "null"},
		{"not an object", `[1,2,3]`},
		{"string value", `"cart"`},
		{"items missing", `{}`},
		{"items null", `{"items":null}`},
		{"items not an array", `{"items":42}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := ParseDocument([]byte(tc.raw))
			if doc.Items == nil {
				t.Fatal("expected canonical empty document, got nil items")
			}
			if len(doc.Items) != 0 {
				t.Fatalf("expected empty items, got %+v", doc.Items)
			}
		})
	}
}

func TestParseDocumentKeepsValidState(t *testing.T) {
	doc := ParseDocument([]byte(`{"items":[{"id":7,"qty":2},{"id":3,"qty":1}]}`))
	if len(doc.Items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(doc.Items))
	}
	if doc.Items[0] != (Line{ID: 7, Qty: 2}) {
		t.Fatalf("unexpected first line: %+v", doc.Items[0])
	}
}

func TestItemCount(t *testing.T) {
	if got := EmptyDocument().ItemCount(); got != 0 {
		t.Fatalf("empty document count = %d, want 0", got)
	}

	doc := Document{Items: []Line{{ID: 1, Qty: 2}, {ID: 9, Qty: 3}}}
	if got := doc.ItemCount(); got != 5 {
		t.Fatalf("count = %d, want 5", got)
	}
}
