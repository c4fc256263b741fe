package models

// Restaurant is owned by the user whose external identity is UserID.
type Restaurant struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"not null"`
	Address  string `json:"address" gorm:"not null"`
	District string `json:"district"`
	Logo     string `json:"logo"`
	UserID   string `json:"user_id" gorm:"index"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}

type Cuisine struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"not null"`
	Image        string `json:"image"`
	RestaurantID uint   `json:"restaurant_id" gorm:"index;not null"`
}

func (Cuisine) TableName() string {
	return "cuisines"
}

type Product struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	Name         string  `json:"name" gorm:"not null"`
	Price        float64 `json:"price" gorm:"not null"`
	Image        string  `json:"image"`
	RestaurantID uint    `json:"restaurant_id" gorm:"index;not null"`
	CuisineID    uint    `json:"cuisine_id" gorm:"index;not null"`
	OfferID      *uint   `json:"offer_id" gorm:"index"`
	Specialities string  `json:"specialities"`
	Description  string  `json:"description"`
	IsPopular    bool    `json:"is_popular" gorm:"default:false"`
	IsBengali    bool    `json:"is_bengali" gorm:"default:false"`
	IsSpecial    bool    `json:"is_special" gorm:"default:false"`
}

func (Product) TableName() string {
	return "products"
}
