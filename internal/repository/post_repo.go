package repository

import (
	"SimpleBlog/internal/model"
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type PostRepo interface {
	ListPosts(ctx context.Context) ([]*model.Post, error)
	GetPost(ctx context.Context, id uint64, include Include) (*model.Post, error)
	ExistsPost(ctx context.Context, id uint64) (bool, error)
	CreatePost(ctx context.Context, post *model.Post) error
	UpdatePost(ctx context.Context, post *model.Post) (CommitResult, error)
	DeletePost(ctx context.Context, id uint64) (bool, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

func (s *PostRepoImpl) ListPosts(ctx context.Context) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).Order("id").Find(&posts).Error
	if err != nil {
		return nil, errors.Wrap(err, "list posts")
	}
	return posts, nil
}

// GetPost 不存在时返回 nil, nil
func (s *PostRepoImpl) GetPost(ctx context.Context, id uint64, include Include) (*model.Post, error) {
	var post model.Post
	err := preloadPost(s.db.WithContext(ctx), include).First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "get post %d", id)
	}
	return &post, nil
}

func (s *PostRepoImpl) ExistsPost(ctx context.Context, id uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, errors.Wrapf(err, "count post %d", id)
	}
	return count > 0, nil
}

// CreatePost 帖子与 PostCategories 在同一事务中写入, post_id 由插入后回填
func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Author").Create(post).Error; err != nil {
			return errors.Wrap(err, "create post")
		}
		return nil
	})
}

// UpdatePost 按版本号更新, 不修改作者
func (s *PostRepoImpl) UpdatePost(ctx context.Context, post *model.Post) (CommitResult, error) {
	result := s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ? AND version = ?", post.ID, post.Version).
		Updates(map[string]any{
			"title":          post.Title,
			"description":    post.Description,
			"published_date": post.PublishedDate,
			"version":        gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return CommitOK, errors.Wrapf(result.Error, "update post %d", post.ID)
	}
	if result.RowsAffected == 0 {
		exists, err := s.ExistsPost(ctx, post.ID)
		if err != nil {
			return CommitOK, err
		}
		return conflict(exists), nil
	}
	post.Version++
	return CommitOK, nil
}

// DeletePost 返回是否真的删除了数据, 关联行一并删除
func (s *PostRepoImpl) DeletePost(ctx context.Context, id uint64) (bool, error) {
	var deleted bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.PostCategory{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Post{}, id)
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, errors.Wrapf(err, "delete post %d", id)
	}
	return deleted, nil
}
