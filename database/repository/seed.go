// File: database/repository/seed.go
package repository

import (
	"context"

	"go.uber.org/zap"

	"artisanhub/database"
	"artisanhub/models"
	"artisanhub/utils"
)

// SeedDemoData populates any collection that is absent from the blob store
// with the demo records. Collections that already exist, even empty ones,
// are left alone.
func SeedDemoData(ctx context.Context, store database.BlobStore) error {
	logger := utils.GetLogger()

	if absent, err := keyAbsent(ctx, store, KeyArtisans); err != nil {
		return err
	} else if absent {
		coll := newCollection(store, KeyArtisans, func(a models.Artisan) string { return a.ID }, nil)
		if err := coll.Replace(ctx, demoArtisans()); err != nil {
			return err
		}
		logger.Info("seeded demo artisans", zap.Int("count", len(demoArtisans())))
	}

	if absent, err := keyAbsent(ctx, store, KeyUsers); err != nil {
		return err
	} else if absent {
		coll := newCollection(store, KeyUsers, func(u models.User) string { return u.ID }, nil)
		if err := coll.Replace(ctx, demoUsers()); err != nil {
			return err
		}
		logger.Info("seeded demo users", zap.Int("count", len(demoUsers())))
	}

	if absent, err := keyAbsent(ctx, store, KeyBookings); err != nil {
		return err
	} else if absent {
		coll := newCollection(store, KeyBookings, func(b models.Booking) string { return b.ID }, nil)
		if err := coll.Replace(ctx, demoBookings()); err != nil {
			return err
		}
		logger.Info("seeded demo bookings", zap.Int("count", len(demoBookings())))
	}

	return nil
}

func keyAbsent(ctx context.Context, store database.BlobStore, key string) (bool, error) {
	_, err := store.Get(ctx, key)
	if err == database.ErrKeyNotFound {
		return true, nil
	}
	return false, err
}

func demoArtisans() []models.Artisan {
	return []models.Artisan{
		{
			ID:          "1",
			Name:        "Ahmed Ben Ali",
			Category:    models.CategoryPlumbing,
			Description: "Plombier professionnel avec plus de 10 ans d'expérience dans la réparation et l'installation de systèmes sanitaires.",
			Skills:      []string{"Installation sanitaire", "Réparation fuites", "Débouchage canalisations"},
			HourlyRate:  25,
			City:        "Tunis",
			Address:     "123 Avenue Habib Bourguiba, Tunis",
			Phone:       "+216 22 333 444",
			Email:       "ahmed.benali@example.com",
			Availability: map[string][]string{
				"Lundi":    {"09:00 - 12:00", "14:00 - 18:00"},
				"Mardi":    {"09:00 - 12:00", "14:00 - 18:00"},
				"Mercredi": {"09:00 - 12:00", "14:00 - 18:00"},
				"Jeudi":    {"09:00 - 12:00", "14:00 - 18:00"},
				"Vendredi": {"09:00 - 12:00"},
				"Samedi":   {"09:00 - 12:00"},
			},
			Rating:   4.75,
			ImageURL: "/placeholder.svg",
			Reviews: []models.Review{
				{ID: "101", UserID: "1001", UserName: "Sami Triki", Rating: 5, Comment: "Excellent travail, rapide et efficace!", Date: "2023-12-15"},
				{ID: "102", UserID: "1002", UserName: "Leila Karoui", Rating: 4.5, Comment: "Très professionnel et ponctuel", Date: "2023-11-22"},
			},
		},
		{
			ID:          "2",
			Name:        "Mohamed Sassi",
			Category:    models.CategoryElectricity,
			Description: "Électricien certifié avec spécialisation en installations résidentielles et dépannage d'urgence.",
			Skills:      []string{"Installation électrique", "Dépannage", "Mise aux normes"},
			HourlyRate:  30,
			City:        "Sfax",
			Address:     "45 Rue Jawhara, Sfax",
			Phone:       "+216 55 666 777",
			Email:       "mohamed.sassi@example.com",
			Availability: map[string][]string{
				"Lundi":    {"08:00 - 17:00"},
				"Mardi":    {"08:00 - 17:00"},
				"Mercredi": {"08:00 - 17:00"},
				"Jeudi":    {"08:00 - 17:00"},
				"Vendredi": {"08:00 - 12:00"},
				"Samedi":   {"09:00 - 12:00"},
			},
			Rating:   5,
			ImageURL: "/placeholder.svg",
			Reviews: []models.Review{
				{ID: "103", UserID: "1003", UserName: "Nour Brahmi", Rating: 5, Comment: "Installation parfaite, je recommande vivement!", Date: "2024-01-05"},
			},
		},
		{
			ID:          "3",
			Name:        "Rania Meddeb",
			Category:    models.CategoryCarpentry,
			Description: "Menuisière passionnée par le travail du bois. Fabrication de meubles sur mesure et réparations soignées.",
			Skills:      []string{"Meubles sur mesure", "Restauration", "Finitions bois"},
			HourlyRate:  35,
			City:        "Sousse",
			Address:     "78 Boulevard du 14 Janvier, Sousse",
			Phone:       "+216 99 123 456",
			Email:       "rania.meddeb@example.com",
			Availability: map[string][]string{
				"Lundi":    {"09:00 - 16:00"},
				"Mardi":    {"09:00 - 16:00"},
				"Mercredi": {"09:00 - 16:00"},
				"Jeudi":    {"09:00 - 16:00"},
				"Vendredi": {"09:00 - 12:00"},
			},
			Rating:   4.9,
			ImageURL: "/placeholder.svg",
			Reviews: []models.Review{
				{ID: "104", UserID: "1004", UserName: "Karim Bennour", Rating: 5, Comment: "Travail exceptionnel, précision et créativité!", Date: "2023-12-28"},
				{ID: "105", UserID: "1005", UserName: "Salma Riahi", Rating: 4.8, Comment: "Très satisfaite du résultat final", Date: "2023-11-15"},
			},
		},
	}
}

func demoUsers() []models.User {
	return []models.User{
		{ID: "1001", Name: "Sami Triki", Email: "sami.triki@example.com", Phone: "+216 55 123 456", Role: models.RoleClient, Bookings: []string{"2001"}, ReviewsGiven: []string{"101"}},
		{ID: "1002", Name: "Leila Karoui", Email: "leila.karoui@example.com", Phone: "+216 22 987 654", Role: models.RoleClient, Bookings: []string{"2002"}, ReviewsGiven: []string{"102"}},
		{ID: "1003", Name: "Nour Brahmi", Email: "nour.brahmi@example.com", Phone: "+216 96 345 678", Role: models.RoleClient, Bookings: []string{"2003"}, ReviewsGiven: []string{"103"}},
		{ID: "1", Name: "Ahmed Ben Ali", Email: "ahmed.benali@example.com", Phone: "+216 22 333 444", Role: models.RoleArtisan},
		{ID: "2", Name: "Mohamed Sassi", Email: "mohamed.sassi@example.com", Phone: "+216 55 666 777", Role: models.RoleArtisan},
	}
}

func demoBookings() []models.Booking {
	return []models.Booking{
		{ID: "2001", ArtisanID: "1", UserID: "1001", Date: "2024-01-20", Time: "10:00", Service: "Réparation fuite robinet", Status: models.BookingCompleted, Notes: "Entrée de l'immeuble: code 2580"},
		{ID: "2002", ArtisanID: "1", UserID: "1002", Date: "2024-02-15", Time: "14:30", Service: "Installation nouvelle douche", Status: models.BookingConfirmed},
		{ID: "2003", ArtisanID: "2", UserID: "1003", Date: "2024-02-18", Time: "09:00", Service: "Installation prises électriques", Status: models.BookingPending, Notes: "Prévoir 3 prises doubles"},
	}
}
