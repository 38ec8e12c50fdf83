package model

type Category struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:50;not null" json:"name"`
	Path string `gorm:"size:100;not null;uniqueIndex" json:"path"`
}

func (Category) TableName() string {
	return "categories"
}
