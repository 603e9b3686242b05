package entity

// CartLine pairs a snapshot of a book with a quantity. The snapshot is
// taken when the book is added; later catalog edits do not propagate.
type CartLine struct {
	Book
	Quantity int `json:"quantity"`
}

// CartSummary holds the derived totals of a cart. It is recomputed from
// the line set and never mutated independently.
type CartSummary struct {
	TotalItems int `json:"totalItems"`
	TotalPrice int `json:"totalPrice"`
}

// Summarize computes the totals of a line set from scratch.
func Summarize(lines []CartLine) CartSummary {
	var s CartSummary
	for _, l := range lines {
		s.TotalItems += l.Quantity
		s.TotalPrice += l.Price * l.Quantity
	}
	return s
}
