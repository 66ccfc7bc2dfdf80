package models

// Item is a priced catalog entry, optionally tagged with categories.
type Item struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"not null"`
	Description *string
	Price       float64    `gorm:"not null"`
	Categories  []Category `gorm:"many2many:item_categories;"`
}

func (Item) TableName() string {
	return "items"
}
