package book

import "crudapi/internal/resource"

// Book represents a book in the library.
type Book struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	Genre           string `json:"genre"`
	PublicationYear int    `json:"publicationYear"`
	IsAvailable     bool   `json:"isAvailable"`
}

// Fields are the sortable book fields, keyed by their JSON names.
var Fields = resource.NewFields[Book]().
	Register("id", resource.Ordered(func(b Book) int64 { return b.ID })).
	Register("title", resource.Ordered(func(b Book) string { return b.Title })).
	Register("author", resource.Ordered(func(b Book) string { return b.Author })).
	Register("genre", resource.Ordered(func(b Book) string { return b.Genre })).
	Register("publicationYear", resource.Ordered(func(b Book) int { return b.PublicationYear })).
	Register("isAvailable", resource.Bool(func(b Book) bool { return b.IsAvailable }))

// Kind describes books to the generic store. Title is the designated text field.
var Kind = resource.Kind[Book]{
	Name:   "book",
	Field:  "title",
	ID:     func(b Book) int64 { return b.ID },
	Text:   func(b Book) string { return b.Title },
	Fields: Fields,
}
