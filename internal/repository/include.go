package repository

import "gorm.io/gorm"

// Include 读取时需要一并加载的关联
type Include uint8

const (
	// IncludeAuthor Post.Author
	IncludeAuthor Include = 1 << iota
	// IncludeCategories Post.PostCategories 及其 Category
	IncludeCategories
	// IncludePost PostCategory.Post
	IncludePost
	// IncludeCategory PostCategory.Category
	IncludeCategory
)

const IncludeNone Include = 0

func (i Include) Has(flag Include) bool {
	return i&flag == flag
}

func preloadPost(db *gorm.DB, include Include) *gorm.DB {
	if include.Has(IncludeAuthor) {
		db = db.Preload("Author")
	}
	if include.Has(IncludeCategories) {
		db = db.Preload("PostCategories", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("id")
		}).Preload("PostCategories.Category")
	}
	return db
}

func preloadPostCategory(db *gorm.DB, include Include) *gorm.DB {
	if include.Has(IncludePost) {
		db = db.Preload("Post")
	}
	if include.Has(IncludeCategory) {
		db = db.Preload("Category")
	}
	return db
}
