// File: models/artisan.go
package models

// Category is the trade an artisan works in.
type Category string

const (
	CategoryPlumbing    Category = "plumbing"
	CategoryElectricity Category = "electricity"
	CategoryCarpentry   Category = "carpentry"
	CategoryPainting    Category = "painting"
	CategoryMasonry     Category = "masonry"
	CategoryGardening   Category = "gardening"
	CategoryCleaning    Category = "cleaning"
	CategoryOther       Category = "other"
)

// ValidCategory reports whether c is one of the known trade categories.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryPlumbing, CategoryElectricity, CategoryCarpentry, CategoryPainting,
		CategoryMasonry, CategoryGardening, CategoryCleaning, CategoryOther:
		return true
	}
	return false
}

// Artisan represents a service professional's public profile.
// Rating is derived: it always equals the arithmetic mean of the embedded
// reviews' ratings, and 0 when there are no reviews. It is stored only as a
// denormalized cache of the review list and recomputed on every mutation.
type Artisan struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Category     Category            `json:"category"`
	Description  string              `json:"description"`
	Skills       []string            `json:"skills"`
	HourlyRate   float64             `json:"hourlyRate"`
	City         string              `json:"city"`
	Address      string              `json:"address"`
	Phone        string              `json:"phone"`
	Email        string              `json:"email"`
	Availability map[string][]string `json:"availability"` // weekday -> ordered time ranges
	Rating       float64             `json:"rating"`
	ImageURL     string              `json:"imageUrl"`
	Reviews      []Review            `json:"reviews"`
}

// Review is a client's rating of one artisan. Reviews are owned by exactly
// one artisan, appended in chronological order and never edited or deleted.
type Review struct {
	ID       string  `json:"id"`
	UserID   string  `json:"userId"`   // weak reference, not enforced to exist
	UserName string  `json:"userName"` // snapshot at review time, never resynced
	Rating   float64 `json:"rating"`   // individual reviews carry 1..5
	Comment  string  `json:"comment"`
	Date     string  `json:"date"` // ISO calendar date, e.g. "2024-03-15"
}

// MeanRating computes the average rating over reviews, 0 for an empty set.
func MeanRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var total float64
	for _, r := range reviews {
		total += r.Rating
	}
	return total / float64(len(reviews))
}
