package models

import "time"

// OrderStatusConfirmed is the only status orders ever carry; there is no
// fulfilment workflow behind it.
const OrderStatusConfirmed = "Confirmed"

type Order struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	UserID        uint        `gorm:"index;not null" json:"user_id"`
	Status        string      `gorm:"not null" json:"status"`
	PaymentMethod string      `gorm:"not null" json:"payment_method"`
	CreatedAt     time.Time   `json:"created_at"`
	Items         []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

type OrderItem struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	OrderID  uint `gorm:"index;not null" json:"order_id"`
	ItemID   uint `gorm:"index;not null" json:"item_id"`
	Quantity int  `gorm:"not null" json:"quantity"`
}
