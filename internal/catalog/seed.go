package catalog

import "bookshop/internal/entity"

// SeedBooks returns the fixed sample set written on first access. A
// fresh slice is returned each call so callers can mutate freely.
func SeedBooks() []entity.Book {
	return []entity.Book{
		{
			ID:         1,
			Title:      "The Memory of Forgotten Things",
			Author:     "Kat Zhang",
			Price:      499,
			CoverImage: "https://images.unsplash.com/photo-1544947950-fa07a98d237f?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=687&q=80",
			Category:   "Fiction",
		},
		{
			ID:         2,
			Title:      "The Silent Patient",
			Author:     "Alex Michaelides",
			Price:      599,
			CoverImage: "https://images.unsplash.com/photo-1603162617003-63eb2fe17ed8?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=764&q=80",
			Category:   "Thriller",
		},
		{
			ID:         3,
			Title:      "Educated",
			Author:     "Tara Westover",
			Price:      750,
			CoverImage: "https://images.unsplash.com/photo-1535398089889-dd807df1dfaa?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=687&q=80",
			Category:   "Memoir",
		},
		{
			ID:         4,
			Title:      "The Song of Achilles",
			Author:     "Madeline Miller",
			Price:      650,
			CoverImage: "https://images.unsplash.com/photo-1629992101753-56d196c8aabb?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=690&q=80",
			Category:   "Historical Fiction",
		},
		{
			ID:         5,
			Title:      "Atomic Habits",
			Author:     "James Clear",
			Price:      450,
			CoverImage: "https://images.unsplash.com/photo-1589998059171-988d887df646?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=1176&q=80",
			Category:   "Self-Help",
		},
		{
			ID:         6,
			Title:      "The House in the Cerulean Sea",
			Author:     "TJ Klune",
			Price:      550,
			CoverImage: "https://images.unsplash.com/photo-1476275466078-4007374efbbe?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=1129&q=80",
			Category:   "Fantasy",
		},
		{
			ID:         7,
			Title:      "The Midnight Library",
			Author:     "Matt Haig",
			Price:      499,
			CoverImage: "https://images.unsplash.com/photo-1512820790803-83ca734da794?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=1098&q=80",
			Category:   "Fiction",
		},
		{
			ID:         8,
			Title:      "Circe",
			Author:     "Madeline Miller",
			Price:      699,
			CoverImage: "https://images.unsplash.com/photo-1633477189729-9290b3261d0a?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=1122&q=80",
			Category:   "Fantasy",
		},
	}
}
