package types

type Supplier struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Name          string `gorm:"size:100;not null" json:"name"`
	ContactPerson string `gorm:"size:100" json:"contact_person"`
	Email         string `gorm:"size:100" json:"email"`
	Phone         string `gorm:"size:20" json:"phone"`
	Address       string `gorm:"size:255" json:"address"`

	LaptopLinks []LaptopSupplier `gorm:"foreignKey:SupplierID" json:"laptop_links,omitempty"`
}

func (Supplier) TableName() string {
	return "suppliers"
}
