package dto

type CategoryDTO struct {
	Title string `json:"title" binding:"required" validate:"min=1,max=255"`
}
