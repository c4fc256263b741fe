package models

// User mirrors a profile whose identity lives with the external auth
// provider. ClerkID is that provider's subject.
type User struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"not null"`
	Email   string `json:"email" gorm:"uniqueIndex;not null"`
	ClerkID string `json:"clerk_id" gorm:"uniqueIndex;not null"`
	Phone   string `json:"phone"`
}

func (User) TableName() string {
	return "users"
}

// All lists every model for schema migration.
func All() []any {
	return []any{
		&User{},
		&Restaurant{},
		&Cuisine{},
		&Product{},
		&Offer{},
		&SpecialOffer{},
		&ComboOffer{},
		&Order{},
	}
}
