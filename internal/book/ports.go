package book

import "crudapi/internal/resource"

// Repository defines the contract for book data storage.
type Repository = resource.Collection[Book]
