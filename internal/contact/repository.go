package contact

import (
	"crudapi/internal/resource"
	"crudapi/internal/storage"
)

// Repository defines the contract for contact data storage.
type Repository = resource.Collection[Contact]

var Schema = storage.Schema[Contact]{
	Table:   "contacts",
	Columns: []string{"name", "email", "phone_number", "address", "city", "country"},
	Values: func(c Contact) []any {
		return []any{c.Name, c.Email, c.PhoneNumber, c.Address, c.City, c.Country}
	},
	Fields: func(c *Contact) []any {
		return []any{&c.Name, &c.Email, &c.PhoneNumber, &c.Address, &c.City, &c.Country}
	},
	ID:    func(c Contact) int64 { return c.ID },
	SetID: func(c *Contact, id int64) { c.ID = id },
}

func NewRepository(db *storage.DB) (Repository, error) {
	return storage.Collection(db, Schema)
}
