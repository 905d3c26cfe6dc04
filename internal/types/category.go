package types

type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`

	Laptops []Laptop `gorm:"many2many:laptop_categories;constraint:OnDelete:CASCADE" json:"laptops,omitempty"`
}

func (Category) TableName() string {
	return "categories"
}
