package book

import (
	"crudapi/internal/storage"
)

// Schema maps a Book onto the books table (and the books bolt bucket).
var Schema = storage.Schema[Book]{
	Table:   "books",
	Columns: []string{"title", "author", "genre", "publication_year", "is_available"},
	Values: func(b Book) []any {
		return []any{b.Title, b.Author, b.Genre, b.PublicationYear, b.IsAvailable}
	},
	Fields: func(b *Book) []any {
		return []any{&b.Title, &b.Author, &b.Genre, &b.PublicationYear, &b.IsAvailable}
	},
	ID:    func(b Book) int64 { return b.ID },
	SetID: func(b *Book, id int64) { b.ID = id },
}

// NewRepository returns the book collection of the opened backing store.
func NewRepository(db *storage.DB) (Repository, error) {
	return storage.Collection(db, Schema)
}
