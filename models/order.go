package models

import "time"

// PaymentStatus is the state derived from an order's is_paid flag.
type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "UNPAID"
	PaymentPaid   PaymentStatus = "PAID"
)

// PaymentStatuses lists every payment state in lifecycle order.
var PaymentStatuses = []PaymentStatus{PaymentUnpaid, PaymentPaid}

// PaymentStatusOf maps the stored flag onto the payment state machine.
func PaymentStatusOf(isPaid bool) PaymentStatus {
	if isPaid {
		return PaymentPaid
	}
	return PaymentUnpaid
}

// Order is a snapshot: restaurant and cuisine are stored by name, not by id,
// so renaming a restaurant later does not rewrite past orders.
type Order struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	ProductName    string    `json:"product_name" gorm:"not null"`
	Number         string    `json:"number"`
	Amount         float64   `json:"amount" gorm:"not null"`
	Price          float64   `json:"price" gorm:"not null"`
	Quantity       int       `json:"quantity" gorm:"not null"`
	IsPaid         bool      `json:"is_paid" gorm:"not null;default:false"`
	StudentID      string    `json:"student_id"`
	RestaurantName string    `json:"restaurant_name"`
	CuisineName    string    `json:"cuisine_name"`
	Image          string    `json:"image"`
	UserID         string    `json:"user_id" gorm:"index;not null"`
	CreatedAt      time.Time `json:"created_at" gorm:"index"`
}

func (Order) TableName() string {
	return "orders"
}
