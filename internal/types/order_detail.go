package types

import "github.com/shopspring/decimal"

// OrderDetail is a child row of Order. LaptopID is nullable so the line item
// survives removal of the laptop record.
type OrderDetail struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   *uint           `json:"order_id"`
	LaptopID  *uint           `json:"laptop_id"`
	Quantity  int             `gorm:"not null;check:quantity > 0" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,2);check:unit_price >= 0" json:"unit_price"`

	Order  *Order  `json:"order,omitempty"`
	Laptop *Laptop `json:"laptop,omitempty"`
}

func (OrderDetail) TableName() string {
	return "order_details"
}
