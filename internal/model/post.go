package model

import (
	"time"

	"gorm.io/gorm"
)

type Post struct {
	ID            uint64    `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"type:varchar(255);not null" json:"title"`
	Description   string    `gorm:"type:text" json:"description"`
	PublishedDate time.Time `gorm:"not null" json:"published_date"`
	UserID        string    `gorm:"type:char(36);not null;index:idx_post_user_id" json:"user_id"`
	Version       int       `gorm:"not null" json:"version"` // 乐观锁版本号, 每次提交 +1
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// 关联关系
	Author         *User          `gorm:"foreignKey:UserID;references:ID" json:"author,omitempty"`
	PostCategories []PostCategory `gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE" json:"post_categories,omitempty"`
}

func (Post) TableName() string {
	return "posts"
}

func (p *Post) BeforeCreate(_ *gorm.DB) error {
	if p.Version == 0 {
		p.Version = 1
	}
	return nil
}
