package contact

import "crudapi/internal/resource"

// Contact is an address book entry.
type Contact struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Country     string `json:"country"`
}

// Fields are the sortable contact fields.
var Fields = resource.NewFields[Contact]().
	Register("id", resource.Ordered(func(c Contact) int64 { return c.ID })).
	Register("name", resource.Ordered(func(c Contact) string { return c.Name })).
	Register("email", resource.Ordered(func(c Contact) string { return c.Email })).
	Register("phoneNumber", resource.Ordered(func(c Contact) string { return c.PhoneNumber })).
	Register("address", resource.Ordered(func(c Contact) string { return c.Address })).
	Register("city", resource.Ordered(func(c Contact) string { return c.City })).
	Register("country", resource.Ordered(func(c Contact) string { return c.Country }))

var Kind = resource.Kind[Contact]{
	Name:   "contact",
	Field:  "name",
	ID:     func(c Contact) int64 { return c.ID },
	Text:   func(c Contact) string { return c.Name },
	Fields: Fields,
}
