package repository

import (
	"SimpleBlog/internal/model"
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type PostCategoryRepo interface {
	ListPostCategories(ctx context.Context, include Include) ([]*model.PostCategory, error)
	GetPostCategory(ctx context.Context, id uint64, include Include) (*model.PostCategory, error)
	ExistsPostCategory(ctx context.Context, id uint64) (bool, error)
	CreatePostCategory(ctx context.Context, postCategory *model.PostCategory) error
	UpdatePostCategory(ctx context.Context, postCategory *model.PostCategory) (CommitResult, error)
	DeletePostCategory(ctx context.Context, id uint64) (bool, error)
}

type postCategoryRepoImpl struct {
	db *gorm.DB
}

func NewPostCategoryRepository(db *gorm.DB) PostCategoryRepo {
	return &postCategoryRepoImpl{
		db: db,
	}
}

func (s *postCategoryRepoImpl) ListPostCategories(ctx context.Context, include Include) ([]*model.PostCategory, error) {
	var postCategories []*model.PostCategory
	err := preloadPostCategory(s.db.WithContext(ctx), include).Order("id").Find(&postCategories).Error
	if err != nil {
		return nil, errors.Wrap(err, "list post categories")
	}
	return postCategories, nil
}

func (s *postCategoryRepoImpl) GetPostCategory(ctx context.Context, id uint64, include Include) (*model.PostCategory, error) {
	var postCategory model.PostCategory
	err := preloadPostCategory(s.db.WithContext(ctx), include).First(&postCategory, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "get post category %d", id)
	}
	return &postCategory, nil
}

func (s *postCategoryRepoImpl) ExistsPostCategory(ctx context.Context, id uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.PostCategory{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, errors.Wrapf(err, "count post category %d", id)
	}
	return count > 0, nil
}

func (s *postCategoryRepoImpl) CreatePostCategory(ctx context.Context, postCategory *model.PostCategory) error {
	err := s.db.WithContext(ctx).Omit("Post", "Category").Create(postCategory).Error
	if err != nil {
		return errors.Wrap(err, "create post category")
	}
	return nil
}

func (s *postCategoryRepoImpl) UpdatePostCategory(ctx context.Context, postCategory *model.PostCategory) (CommitResult, error) {
	result := s.db.WithContext(ctx).
		Model(&model.PostCategory{}).
		Where("id = ? AND version = ?", postCategory.ID, postCategory.Version).
		Updates(map[string]any{
			"post_id":     postCategory.PostID,
			"category_id": postCategory.CategoryID,
			"version":     gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return CommitOK, errors.Wrapf(result.Error, "update post category %d", postCategory.ID)
	}
	if result.RowsAffected == 0 {
		exists, err := s.ExistsPostCategory(ctx, postCategory.ID)
		if err != nil {
			return CommitOK, err
		}
		return conflict(exists), nil
	}
	postCategory.Version++
	return CommitOK, nil
}

func (s *postCategoryRepoImpl) DeletePostCategory(ctx context.Context, id uint64) (bool, error) {
	result := s.db.WithContext(ctx).Delete(&model.PostCategory{}, id)
	if result.Error != nil {
		return false, errors.Wrapf(result.Error, "delete post category %d", id)
	}
	return result.RowsAffected > 0, nil
}
