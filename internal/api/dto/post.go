package dto

import "time"

// CreatePostDTO 新建帖子表单, Categories 中 Selected 的选项即所选分类
type CreatePostDTO struct {
	Title         string         `json:"title" validate:"required,min=1,max=255"`
	Description   string         `json:"description" validate:"required"`
	PublishedDate time.Time      `json:"published_date" validate:"required"`
	Categories    []SelectOption `json:"categories"`
}

// EditPostDTO 编辑帖子表单, Version 为加载时读到的版本号
type EditPostDTO struct {
	ID            uint64    `json:"id"`
	Title         string    `json:"title" validate:"required,min=1,max=255"`
	Description   string    `json:"description" validate:"required"`
	PublishedDate time.Time `json:"published_date" validate:"required"`
	Version       int       `json:"version" validate:"required,min=1"`
}
