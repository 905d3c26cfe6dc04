package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// LaptopSupplier is the attributed join entity between laptops and suppliers.
// The composite key allows at most one supply relationship per pair.
type LaptopSupplier struct {
	LaptopID    uint            `gorm:"primaryKey;autoIncrement:false" json:"laptop_id"`
	SupplierID  uint            `gorm:"primaryKey;autoIncrement:false" json:"supplier_id"`
	SupplyDate  time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"supply_date"`
	SupplyPrice decimal.Decimal `gorm:"type:decimal(18,2);check:supply_price >= 0" json:"supply_price"`

	Laptop   *Laptop   `gorm:"foreignKey:LaptopID" json:"laptop,omitempty"`
	Supplier *Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}

func (LaptopSupplier) TableName() string {
	return "laptop_suppliers"
}
