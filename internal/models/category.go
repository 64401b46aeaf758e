package models

// Category groups products. Products reference it by id; clients refer to
// it by its exact name.
type Category struct {
	ID   string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name string `json:"name" gorm:"uniqueIndex;type:varchar(100);not null"`
}
