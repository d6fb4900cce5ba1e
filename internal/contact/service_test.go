package contact

import (
	"context"
	"path/filepath"
	"testing"

	"crudapi/internal/resource"
	"crudapi/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testContact = Contact{
	Name:        "Test Contact",
	Email:       "test@example.com",
	PhoneNumber: "555-0100",
	Address:     "1 Main Street",
	City:        "Springfield",
	Country:     "USA",
}

func newTestService(t *testing.T, cfg storage.Config) *Service {
	t.Helper()
	db, err := storage.Open(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo, err := NewRepository(db)
	require.NoError(t, err)
	return NewService(repo)
}

func TestService_RoundTrip(t *testing.T) {
	configs := map[string]storage.Config{
		"memory": {Driver: storage.DriverMemory},
		"sqlite": {Driver: storage.DriverSQLite, DSN: ":memory:"},
		"bolt":   {Driver: storage.DriverBolt, DSN: filepath.Join(t.TempDir(), "contacts.bolt")},
	}
	for name, cfg := range configs {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			service := newTestService(t, cfg)

			added, err := service.Add(ctx, testContact)
			require.NoError(t, err)
			_, err = service.Add(ctx, Contact{Name: "Other Person", City: "Shelbyville"})
			require.NoError(t, err)

			found, err := service.SearchByField(ctx, "Test Contact")
			require.NoError(t, err)
			require.Len(t, found, 1)
			want := testContact
			want.ID = added.ID
			assert.Equal(t, want, found[0])

			updated := added
			updated.City = "Capital City"
			require.NoError(t, service.Update(ctx, updated))
			got, err := service.GetByID(ctx, added.ID)
			require.NoError(t, err)
			assert.Equal(t, "Capital City", got.City)

			byCity, err := service.SortBy(ctx, "CITY", resource.Desc)
			require.NoError(t, err)
			assert.Equal(t, "Other Person", byCity[0].Name)

			require.NoError(t, service.Delete(ctx, added.ID))
			_, err = service.GetByID(ctx, added.ID)
			assert.ErrorIs(t, err, resource.ErrNotFound)

			require.NoError(t, service.DeleteAll(ctx))
			all, err := service.GetAll(ctx)
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

func TestFields_Names(t *testing.T) {
	assert.Equal(t,
		[]string{"id", "name", "email", "phoneNumber", "address", "city", "country"},
		Fields.Names())
	_, ok := Fields.Lookup("phonenumber")
	assert.True(t, ok)
}
