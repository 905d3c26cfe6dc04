package types

import "github.com/shopspring/decimal"

// Laptop is the catalog aggregate root. Categories and SupplierLinks stay
// empty on plain lookups and are populated by the eager-loading store reads.
type Laptop struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Brand       string          `gorm:"size:50;not null" json:"brand"`
	Model       string          `gorm:"size:100;not null" json:"model"`
	Processor   string          `gorm:"size:100" json:"processor"`
	RAM         string          `gorm:"size:50;column:ram" json:"ram"`
	Storage     string          `gorm:"size:50" json:"storage"`
	GPU         string          `gorm:"size:100;column:gpu" json:"gpu"`
	Price       decimal.Decimal `gorm:"type:decimal(18,2);not null;check:price >= 0" json:"price"`
	Stock       int             `gorm:"not null;default:0;check:stock >= 0" json:"stock"`
	Description string          `gorm:"size:500" json:"description"`

	Categories    []Category       `gorm:"many2many:laptop_categories;constraint:OnDelete:CASCADE" json:"categories,omitempty"`
	SupplierLinks []LaptopSupplier `gorm:"foreignKey:LaptopID" json:"supplier_links,omitempty"`
	OrderDetails  []OrderDetail    `gorm:"foreignKey:LaptopID;constraint:OnDelete:SET NULL" json:"order_details,omitempty"`
}

func (Laptop) TableName() string {
	return "laptops"
}
