package service

import (
	"SimpleBlog/internal/api/dto"
	"SimpleBlog/internal/model"
	"SimpleBlog/internal/pkg/util"
	"SimpleBlog/internal/repository"
	"context"
	log "log/slog"
	"strconv"

	"github.com/jinzhu/copier"
)

type PostService interface {
	ListPosts(ctx context.Context) ([]*model.Post, error)
	GetPostDetails(ctx context.Context, id *uint64) (*model.Post, error)
	GetCreateForm(ctx context.Context) (*dto.CreatePostDTO, error)
	CreatePost(ctx context.Context, userID string, req *dto.CreatePostDTO) error
	GetPostForEdit(ctx context.Context, id *uint64) (*model.Post, error)
	UpdatePost(ctx context.Context, id uint64, req *dto.EditPostDTO) error
	GetPostForDelete(ctx context.Context, id *uint64) (*model.Post, error)
	DeletePost(ctx context.Context, id uint64) error
}

type postServiceImpl struct {
	postRepo     repository.PostRepo
	categoryRepo repository.CategoryRepo
}

func NewPostService(postRepo repository.PostRepo, categoryRepo repository.CategoryRepo) PostService {
	return &postServiceImpl{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
	}
}

// ListPosts 全部帖子
func (s *postServiceImpl) ListPosts(ctx context.Context) ([]*model.Post, error) {
	return s.postRepo.ListPosts(ctx)
}

// GetPostDetails 帖子详情, 含作者与分类
func (s *postServiceImpl) GetPostDetails(ctx context.Context, id *uint64) (*model.Post, error) {
	return s.findPost(ctx, id, repository.IncludeAuthor|repository.IncludeCategories)
}

// GetCreateForm 新建页, 列出全部分类供选择
func (s *postServiceImpl) GetCreateForm(ctx context.Context) (*dto.CreatePostDTO, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	options := make([]dto.SelectOption, 0, len(categories))
	for _, category := range categories {
		options = append(options, dto.SelectOption{
			Text:  category.Title,
			Value: util.FormatID(category.ID),
		})
	}
	return &dto.CreatePostDTO{Categories: options}, nil
}

// CreatePost 新建帖子, 每个选中的分类生成一条 PostCategory
func (s *postServiceImpl) CreatePost(ctx context.Context, userID string, req *dto.CreatePostDTO) error {
	if err := util.ValidateDTO(req); err != nil {
		log.WarnContext(ctx, "create post validation failed", "err", err)
		return ErrParamInvalid
	}

	post := &model.Post{}
	if err := copier.Copy(post, req); err != nil {
		return err
	}
	for _, option := range req.Categories {
		if !option.Selected {
			continue
		}
		categoryID, err := strconv.ParseUint(option.Value, 10, 64)
		if err != nil {
			log.WarnContext(ctx, "invalid category option", "value", option.Value)
			return ErrParamInvalid
		}
		post.PostCategories = append(post.PostCategories, model.PostCategory{CategoryID: categoryID})
	}
	post.UserID = userID

	return s.postRepo.CreatePost(ctx, post)
}

// GetPostForEdit 编辑页, 不加载关联
func (s *postServiceImpl) GetPostForEdit(ctx context.Context, id *uint64) (*model.Post, error) {
	return s.findPost(ctx, id, repository.IncludeNone)
}

// UpdatePost 按加载时的版本号提交修改
func (s *postServiceImpl) UpdatePost(ctx context.Context, id uint64, req *dto.EditPostDTO) error {
	if id != req.ID {
		return ErrPostNotFound
	}
	if err := util.ValidateDTO(req); err != nil {
		log.WarnContext(ctx, "edit post validation failed", "post_id", id, "err", err)
		return ErrParamInvalid
	}

	post := &model.Post{}
	if err := copier.Copy(post, req); err != nil {
		return err
	}

	result, err := s.postRepo.UpdatePost(ctx, post)
	if err != nil {
		return err
	}
	if result.Conflict {
		if !result.RowExists {
			return ErrPostNotFound
		}
		log.ErrorContext(ctx, "post concurrency conflict", "post_id", id, "version", req.Version)
		return ErrConcurrencyConflict
	}
	return nil
}

// GetPostForDelete 删除确认页
func (s *postServiceImpl) GetPostForDelete(ctx context.Context, id *uint64) (*model.Post, error) {
	return s.findPost(ctx, id, repository.IncludeAuthor)
}

// DeletePost 幂等删除
func (s *postServiceImpl) DeletePost(ctx context.Context, id uint64) error {
	deleted, err := s.postRepo.DeletePost(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		log.InfoContext(ctx, "post already deleted", "post_id", id)
	}
	return nil
}

func (s *postServiceImpl) findPost(ctx context.Context, id *uint64, include repository.Include) (*model.Post, error) {
	if id == nil {
		return nil, ErrPostNotFound
	}
	post, err := s.postRepo.GetPost(ctx, *id, include)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}
