package models

// Offer is a plain discount record. Discount may legitimately be zero.
type Offer struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	Title        string  `json:"title" gorm:"not null"`
	Image        string  `json:"image"`
	Discount     float64 `json:"discount" gorm:"not null;default:0"`
	RestaurantID *uint   `json:"restaurant_id" gorm:"index"`
}

func (Offer) TableName() string {
	return "offers"
}

type SpecialOffer struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	Name         string  `json:"name" gorm:"not null"`
	Type         string  `json:"type"`
	CuisineID    *uint   `json:"cuisine_id" gorm:"index"`
	RestaurantID uint    `json:"restaurant_id" gorm:"index;not null"`
	Description  string  `json:"description"`
	Discount     float64 `json:"discount" gorm:"not null;default:0"`
	Image        string  `json:"image"`
}

func (SpecialOffer) TableName() string {
	return "special_offers"
}

type ComboOffer struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"not null"`
	Type         string `json:"type"`
	CuisineID    *uint  `json:"cuisine_id" gorm:"index"`
	RestaurantID uint   `json:"restaurant_id" gorm:"index;not null"`
	Description  string `json:"description"`
	Image        string `json:"image"`
}

func (ComboOffer) TableName() string {
	return "combo_offers"
}
