package model

type Category struct {
	ID    uint64 `gorm:"primaryKey" json:"id"`
	Title string `gorm:"type:varchar(255);not null" json:"title"`
}

func (Category) TableName() string {
	return "categories"
}
