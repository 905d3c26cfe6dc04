package types

import "time"

type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100" json:"email"`
	Phone     string    `gorm:"size:20" json:"phone"`
	Address   string    `gorm:"size:255" json:"address"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	// Orders keep a dangling nullable reference when the customer is removed.
	Orders []Order `gorm:"foreignKey:CustomerID;constraint:OnDelete:SET NULL" json:"orders,omitempty"`
}

func (Customer) TableName() string {
	return "customers"
}
