package model

import "gorm.io/gorm"

// PostCategory 帖子与分类的关联行, 不约束 (post_id, category_id) 唯一
type PostCategory struct {
	ID         uint64 `gorm:"primaryKey" json:"id"`
	PostID     uint64 `gorm:"not null;index:idx_pc_post_id" json:"post_id"`
	CategoryID uint64 `gorm:"not null;index:idx_pc_category_id" json:"category_id"`
	Version    int    `gorm:"not null" json:"version"`

	// 关联关系
	Post     *Post     `gorm:"foreignKey:PostID;references:ID" json:"post,omitempty"`
	Category *Category `gorm:"foreignKey:CategoryID;references:ID" json:"category,omitempty"`
}

func (PostCategory) TableName() string {
	return "post_categories"
}

func (pc *PostCategory) BeforeCreate(_ *gorm.DB) error {
	if pc.Version == 0 {
		pc.Version = 1
	}
	return nil
}

// All 迁移顺序
func All() []any {
	return []any{&User{}, &Category{}, &Post{}, &PostCategory{}}
}
