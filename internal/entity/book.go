package entity

// Book is a single catalog entry. IDs are assigned by the catalog store
// and never change once assigned.
type Book struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	Price      int    `json:"price"`
	CoverImage string `json:"coverImage"`
	Category   string `json:"category"`
}
