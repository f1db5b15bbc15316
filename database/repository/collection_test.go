// File: database/repository/collection_test.go
package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artisanhub/database"
	"artisanhub/models"
	"artisanhub/utils"
)

func newBookingColl(store database.BlobStore) *collection[models.Booking] {
	return newCollection(store, KeyBookings,
		func(b models.Booking) string { return b.ID }, nil)
}

func mkBooking(id string) models.Booking {
	return models.Booking{
		ID: id, ArtisanID: "a1", UserID: "u1",
		Date: "2024-03-01", Time: "10:00", Service: "test",
		Status: models.BookingPending,
	}
}

func TestCollection_ListAbsentKeyIsEmpty(t *testing.T) {
	coll := newBookingColl(database.NewMemoryBlobStore())

	records, err := coll.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCollection_UpsertKeepsPosition(t *testing.T) {
	ctx := context.Background()
	coll := newBookingColl(database.NewMemoryBlobStore())

	for _, id := range []string{"b1", "b2", "b3"} {
		require.NoError(t, coll.Upsert(ctx, mkBooking(id)))
	}

	// Replacing the middle record twice with different payloads must keep
	// it at index 1.
	updated := mkBooking("b2")
	updated.Service = "changed once"
	require.NoError(t, coll.Upsert(ctx, updated))
	updated.Service = "changed twice"
	require.NoError(t, coll.Upsert(ctx, updated))

	records, err := coll.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "b1", records[0].ID)
	assert.Equal(t, "b2", records[1].ID)
	assert.Equal(t, "changed twice", records[1].Service)
	assert.Equal(t, "b3", records[2].ID)

	// A new id appends at the end.
	require.NoError(t, coll.Upsert(ctx, mkBooking("b4")))
	records, err = coll.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, "b4", records[3].ID)
}

func TestCollection_InsertRunsCheckUnderLock(t *testing.T) {
	ctx := context.Background()
	coll := newBookingColl(database.NewMemoryBlobStore())
	require.NoError(t, coll.Upsert(ctx, mkBooking("b1")))

	// A failing check blocks the append and leaves the collection untouched.
	noDuplicateArtisan := func(existing []models.Booking) error {
		for i := range existing {
			if existing[i].ArtisanID == "a1" {
				return utils.NewConflict("artisan a1 already booked")
			}
		}
		return nil
	}
	err := coll.Insert(ctx, mkBooking("b2"), noDuplicateArtisan)
	assert.True(t, utils.HasCode(err, utils.CodeConflict))

	records, err := coll.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "b1", records[0].ID)

	// With a passing check the record appends at the end.
	other := mkBooking("b2")
	other.ArtisanID = "a2"
	require.NoError(t, coll.Insert(ctx, other, noDuplicateArtisan))
	records, err = coll.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "b2", records[1].ID)
}

func TestCollection_RoundTripPreservesOrder(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryBlobStore()
	coll := newBookingColl(store)

	want := []models.Booking{mkBooking("z"), mkBooking("a"), mkBooking("m")}
	for _, b := range want {
		require.NoError(t, coll.Upsert(ctx, b))
	}

	// A fresh collection over the same blob must yield a deep-equal
	// sequence in the same order.
	reloaded := newBookingColl(store)
	got, err := reloaded.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCollection_DeletePreservesRelativeOrder(t *testing.T) {
	ctx := context.Background()
	coll := newBookingColl(database.NewMemoryBlobStore())

	for _, id := range []string{"b1", "b2", "b3"} {
		require.NoError(t, coll.Upsert(ctx, mkBooking(id)))
	}
	require.NoError(t, coll.Delete(ctx, "b2"))

	records, err := coll.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "b1", records[0].ID)
	assert.Equal(t, "b3", records[1].ID)

	err = coll.Delete(ctx, "b2")
	assert.True(t, utils.HasCode(err, utils.CodeNotFound))
}

func TestCollection_GetByID(t *testing.T) {
	ctx := context.Background()
	coll := newBookingColl(database.NewMemoryBlobStore())
	require.NoError(t, coll.Upsert(ctx, mkBooking("b1")))

	got, err := coll.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "b1", got.ID)

	_, err = coll.GetByID(ctx, "missing")
	assert.True(t, utils.HasCode(err, utils.CodeNotFound))

	_, err = coll.GetByID(ctx, "")
	assert.True(t, utils.HasCode(err, utils.CodeValidation))
}

func TestCollection_EmptyIDRejected(t *testing.T) {
	coll := newBookingColl(database.NewMemoryBlobStore())
	err := coll.Upsert(context.Background(), mkBooking(""))
	assert.True(t, utils.HasCode(err, utils.CodeValidation))
}

func TestCollection_CorruptBlobSurfaces(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryBlobStore()
	require.NoError(t, store.Put(ctx, KeyBookings, []byte("{not json")))

	coll := newBookingColl(store)
	_, err := coll.List(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt collection")
}

func TestCollection_LegacyBareArrayAccepted(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryBlobStore()
	require.NoError(t, store.Put(ctx, KeyBookings,
		[]byte(`[{"id":"old","artisanId":"a1","userId":"u1","date":"2024-01-01","time":"09:00","service":"x","status":"pending"}]`)))

	coll := newBookingColl(store)
	records, err := coll.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "old", records[0].ID)

	// The first write moves the legacy array into the versioned envelope.
	require.NoError(t, coll.Upsert(ctx, mkBooking("new")))
	records, err = coll.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestCollection_VersionConflictDetected(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryBlobStore()
	coll := newBookingColl(store)
	require.NoError(t, coll.Upsert(ctx, mkBooking("b1")))

	records, version, err := coll.load(ctx)
	require.NoError(t, err)

	// Another writer (here: a second handle to the same blob) commits
	// between our load and save.
	other := newBookingColl(store)
	require.NoError(t, other.Upsert(ctx, mkBooking("b2")))

	err = coll.save(ctx, records, version)
	require.ErrorIs(t, err, ErrVersionConflict)
}

func TestCategoryRepo_RegeneratesWhenAbsent(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryBlobStore()
	repo := NewKVCategoryRepo(store)

	categories, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultCategories(), categories)

	// Regeneration persisted the set under its key.
	_, err = store.Get(ctx, KeyCategories)
	require.NoError(t, err)
}

func TestSessionRepo_SlotLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewKVSessionRepo(database.NewMemoryBlobStore())

	current, err := repo.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	account := models.User{ID: "u1", Name: "Sami", Email: "s@x.tn", Role: models.RoleClient}
	require.NoError(t, repo.SetCurrent(ctx, account))

	current, err = repo.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, account, *current)

	require.NoError(t, repo.Clear(ctx))
	require.NoError(t, repo.Clear(ctx)) // idempotent
	current, err = repo.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestSeedDemoData_OnlyFillsAbsentCollections(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryBlobStore()

	// Pre-existing bookings collection, even an empty one, is left alone.
	coll := newBookingColl(store)
	require.NoError(t, coll.Replace(ctx, []models.Booking{}))

	require.NoError(t, SeedDemoData(ctx, store))

	repos := New(store)
	artisans, err := repos.Artisans.GetAll(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, artisans)

	bookings, err := repos.Bookings.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, bookings)

	// Seeded aggregates honor the rating invariant.
	for _, a := range artisans {
		assert.InDelta(t, models.MeanRating(a.Reviews), a.Rating, 1e-9, "artisan %s", a.ID)
	}
}
