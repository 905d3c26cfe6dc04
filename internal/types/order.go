package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is an aggregate root owning its line items. CustomerID is nullable so
// an order survives removal of its customer.
type Order struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	CustomerID  *uint           `json:"customer_id"`
	OrderDate   time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"order_date"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(18,2);check:total_amount >= 0" json:"total_amount"`
	Status      string          `gorm:"size:20;not null;default:'Pending'" json:"status"`
	Notes       string          `gorm:"size:500" json:"notes"`

	Customer *Customer     `json:"customer,omitempty"`
	Details  []OrderDetail `gorm:"foreignKey:OrderID;constraint:OnDelete:SET NULL" json:"details,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

// LineTotal sums quantity times unit price over the loaded line items. It is
// advisory only: TotalAmount is caller-maintained and nothing reconciles the
// two.
func (o Order) LineTotal() decimal.Decimal {
	total := decimal.Zero
	for _, d := range o.Details {
		total = total.Add(d.UnitPrice.Mul(decimal.NewFromInt(int64(d.Quantity))))
	}
	return total
}
