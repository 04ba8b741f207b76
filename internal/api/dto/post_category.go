package dto

// PostCategoryDTO 帖子分类关联表单, 新建时不校验 Version
type PostCategoryDTO struct {
	ID         uint64 `json:"id"`
	PostID     uint64 `json:"post_id" validate:"required"`
	CategoryID uint64 `json:"category_id" validate:"required"`
	Version    int    `json:"version" validate:"required,min=1"`
}

// PostCategoryFormDTO 新建/编辑页所需数据
type PostCategoryFormDTO struct {
	PostCategory    *PostCategoryDTO `json:"post_category,omitempty"`
	PostOptions     []SelectOption   `json:"post_options"`
	CategoryOptions []SelectOption   `json:"category_options"`
}
