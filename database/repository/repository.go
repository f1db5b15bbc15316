package repository

import "artisanhub/database"

// Repositories bundles one repository per collection over a shared blob
// store, so wiring in main and in tests stays a single call.
type Repositories struct {
	Artisans   ArtisanRepository
	Users      UserRepository
	Bookings   BookingRepository
	Categories CategoryRepository
	Session    SessionRepository
}

// New builds all repositories over store.
func New(store database.BlobStore) *Repositories {
	return &Repositories{
		Artisans:   NewKVArtisanRepo(store),
		Users:      NewKVUserRepo(store),
		Bookings:   NewKVBookingRepo(store),
		Categories: NewKVCategoryRepo(store),
		Session:    NewKVSessionRepo(store),
	}
}
