package models

// Category is a review category, managed outside this service.
type Category struct {
	Slug        string `gorm:"column:slug;primaryKey" json:"slug"`
	Description string `gorm:"column:description" json:"description"`
}

func (Category) TableName() string {
	return "categories"
}
