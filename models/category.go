package models

// Category groups items under a globally unique name.
type Category struct {
	ID    uint   `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"unique;not null"`
	Items []Item `gorm:"many2many:item_categories;"`
}

func (Category) TableName() string {
	return "categories"
}
