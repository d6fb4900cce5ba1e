package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"crudapi/internal/book"
	"crudapi/internal/config"
	"crudapi/internal/contact"
	"crudapi/internal/storage"

	"github.com/Pallinder/go-randomdata"
)

var genres = []string{"Fiction", "Science Fiction", "History", "Science", "Technology", "Romance", "Mystery", "Biography", "Philosophy", "Art"}

func main() {
	var (
		books    = flag.Int("books", 100, "Number of books to generate")
		contacts = flag.Int("contacts", 100, "Number of contacts to generate")
		reset    = flag.Bool("reset", false, "Delete existing books and contacts first")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Storage.Driver == storage.DriverMemory {
		log.Fatal("Nothing to seed: the memory driver does not persist")
	}

	ctx := context.Background()
	db, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to open %s storage (%s): %v", cfg.Storage.Driver, storage.RedactDSN(cfg.Storage.DSN), err)
	}
	defer db.Close()

	bookRepo, err := book.NewRepository(db)
	if err != nil {
		log.Fatalf("Failed to open books: %v", err)
	}
	contactRepo, err := contact.NewRepository(db)
	if err != nil {
		log.Fatalf("Failed to open contacts: %v", err)
	}

	n, err := seed(ctx, book.NewService(bookRepo), randomBooks(*books), *reset)
	if err != nil {
		log.Fatalf("Failed to insert books: %v", err)
	}
	log.Printf("Successfully inserted %d books", n)

	n, err = seed(ctx, contact.NewService(contactRepo), randomContacts(*contacts), *reset)
	if err != nil {
		log.Fatalf("Failed to insert contacts: %v", err)
	}
	log.Printf("Successfully inserted %d contacts", n)
}

type adder[T any] interface {
	Add(ctx context.Context, item T) (T, error)
	DeleteAll(ctx context.Context) error
}

func seed[T any](ctx context.Context, store adder[T], items []T, reset bool) (int, error) {
	if reset {
		if err := store.DeleteAll(ctx); err != nil {
			return 0, err
		}
	}
	for i, item := range items {
		if _, err := store.Add(ctx, item); err != nil {
			return i, err
		}
		if (i+1)%1000 == 0 {
			log.Printf("Inserted %d/%d", i+1, len(items))
		}
	}
	return len(items), nil
}

func randomBooks(n int) []book.Book {
	books := make([]book.Book, 0, n)
	for i := 0; i < n; i++ {
		books = append(books, book.Book{
			Title:           fmt.Sprintf("The %s %s", randomdata.Adjective(), capitalize(randomdata.Noun())),
			Author:          randomdata.FullName(randomdata.RandomGender),
			Genre:           genres[randomdata.Number(len(genres))],
			PublicationYear: randomdata.Number(1950, 2025),
			IsAvailable:     randomdata.Boolean(),
		})
	}
	return books
}

func randomContacts(n int) []contact.Contact {
	contacts := make([]contact.Contact, 0, n)
	for i := 0; i < n; i++ {
		contacts = append(contacts, contact.Contact{
			Name:        randomdata.FullName(randomdata.RandomGender),
			Email:       randomdata.Email(),
			PhoneNumber: randomdata.PhoneNumber(),
			Address:     randomdata.Street(),
			City:        randomdata.City(),
			Country:     randomdata.Country(randomdata.FullCountry),
		})
	}
	return contacts
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
