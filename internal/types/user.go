package types

import "time"

// User is an independent aggregate; it takes no part in the catalog/order
// graph.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Role      string    `gorm:"size:20;not null" json:"role"`
	FullName  string    `gorm:"size:100" json:"full_name"`
	Email     string    `gorm:"size:100" json:"email"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
}

func (User) TableName() string {
	return "users"
}
