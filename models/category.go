// File: models/category.go
package models

// CategoryInfo is static reference data describing one trade category.
// The set is regenerated from defaults whenever it is absent from storage.
type CategoryInfo struct {
	ID   string   `json:"id"`
	Name Category `json:"name"`
	Icon string   `json:"icon"`
}

// DefaultCategories returns the built-in category reference set.
func DefaultCategories() []CategoryInfo {
	return []CategoryInfo{
		{ID: "1", Name: CategoryPlumbing, Icon: "🔧"},
		{ID: "2", Name: CategoryElectricity, Icon: "💡"},
		{ID: "3", Name: CategoryCarpentry, Icon: "🪚"},
		{ID: "4", Name: CategoryPainting, Icon: "🖌️"},
		{ID: "5", Name: CategoryMasonry, Icon: "🧱"},
		{ID: "6", Name: CategoryGardening, Icon: "🌱"},
		{ID: "7", Name: CategoryCleaning, Icon: "🧹"},
		{ID: "8", Name: CategoryOther, Icon: "🛠️"},
	}
}
