package service

import (
	"SimpleBlog/internal/api/dto"
	"SimpleBlog/internal/model"
	"SimpleBlog/internal/pkg/util"
	"SimpleBlog/internal/repository"
	"context"
	log "log/slog"

	"github.com/jinzhu/copier"
	"golang.org/x/sync/errgroup"
)

type PostCategoryService interface {
	ListPostCategories(ctx context.Context) ([]*model.PostCategory, error)
	GetPostCategoryDetails(ctx context.Context, id *uint64) (*model.PostCategory, error)
	GetCreateForm(ctx context.Context, current *dto.PostCategoryDTO) (*dto.PostCategoryFormDTO, error)
	CreatePostCategory(ctx context.Context, req *dto.PostCategoryDTO) error
	GetPostCategoryForEdit(ctx context.Context, id *uint64) (*dto.PostCategoryFormDTO, error)
	UpdatePostCategory(ctx context.Context, id uint64, req *dto.PostCategoryDTO) error
	GetPostCategoryForDelete(ctx context.Context, id *uint64) (*model.PostCategory, error)
	DeletePostCategory(ctx context.Context, id uint64) error
}

type postCategoryServiceImpl struct {
	postCategoryRepo repository.PostCategoryRepo
	postRepo         repository.PostRepo
	categoryRepo     repository.CategoryRepo
}

func NewPostCategoryService(postCategoryRepo repository.PostCategoryRepo, postRepo repository.PostRepo, categoryRepo repository.CategoryRepo) PostCategoryService {
	return &postCategoryServiceImpl{
		postCategoryRepo: postCategoryRepo,
		postRepo:         postRepo,
		categoryRepo:     categoryRepo,
	}
}

// ListPostCategories 全部关联, 含帖子与分类
func (s *postCategoryServiceImpl) ListPostCategories(ctx context.Context) ([]*model.PostCategory, error) {
	return s.postCategoryRepo.ListPostCategories(ctx, repository.IncludePost|repository.IncludeCategory)
}

func (s *postCategoryServiceImpl) GetPostCategoryDetails(ctx context.Context, id *uint64) (*model.PostCategory, error) {
	return s.findPostCategory(ctx, id, repository.IncludePost|repository.IncludeCategory)
}

// GetCreateForm 帖子与分类的下拉列表, current 不为空时标记已选中的值
func (s *postCategoryServiceImpl) GetCreateForm(ctx context.Context, current *dto.PostCategoryDTO) (*dto.PostCategoryFormDTO, error) {
	var posts []*model.Post
	var categories []*model.Category

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		posts, err = s.postRepo.ListPosts(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.categoryRepo.ListCategories(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var selectedPost, selectedCategory uint64
	if current != nil {
		selectedPost = current.PostID
		selectedCategory = current.CategoryID
	}

	form := &dto.PostCategoryFormDTO{
		PostCategory:    current,
		PostOptions:     make([]dto.SelectOption, 0, len(posts)),
		CategoryOptions: make([]dto.SelectOption, 0, len(categories)),
	}
	for _, post := range posts {
		form.PostOptions = append(form.PostOptions, dto.SelectOption{
			Text:     post.Title,
			Value:    util.FormatID(post.ID),
			Selected: post.ID == selectedPost,
		})
	}
	for _, category := range categories {
		form.CategoryOptions = append(form.CategoryOptions, dto.SelectOption{
			Text:     category.Title,
			Value:    util.FormatID(category.ID),
			Selected: category.ID == selectedCategory,
		})
	}
	return form, nil
}

func (s *postCategoryServiceImpl) CreatePostCategory(ctx context.Context, req *dto.PostCategoryDTO) error {
	if err := util.ValidateDTOExcept(req, "Version"); err != nil {
		log.WarnContext(ctx, "create post category validation failed", "err", err)
		return ErrParamInvalid
	}
	postCategory := &model.PostCategory{
		PostID:     req.PostID,
		CategoryID: req.CategoryID,
	}
	if err := s.postCategoryRepo.CreatePostCategory(ctx, postCategory); err != nil {
		return err
	}
	req.ID = postCategory.ID
	req.Version = postCategory.Version
	return nil
}

// GetPostCategoryForEdit 编辑页, 返回当前值与下拉列表
func (s *postCategoryServiceImpl) GetPostCategoryForEdit(ctx context.Context, id *uint64) (*dto.PostCategoryFormDTO, error) {
	postCategory, err := s.findPostCategory(ctx, id, repository.IncludeNone)
	if err != nil {
		return nil, err
	}
	current := &dto.PostCategoryDTO{}
	if err = copier.Copy(current, postCategory); err != nil {
		return nil, err
	}
	return s.GetCreateForm(ctx, current)
}

// UpdatePostCategory 按加载时的版本号提交修改
func (s *postCategoryServiceImpl) UpdatePostCategory(ctx context.Context, id uint64, req *dto.PostCategoryDTO) error {
	if id != req.ID {
		return ErrPostCategoryNotFound
	}
	if err := util.ValidateDTO(req); err != nil {
		log.WarnContext(ctx, "edit post category validation failed", "post_category_id", id, "err", err)
		return ErrParamInvalid
	}

	postCategory := &model.PostCategory{}
	if err := copier.Copy(postCategory, req); err != nil {
		return err
	}

	result, err := s.postCategoryRepo.UpdatePostCategory(ctx, postCategory)
	if err != nil {
		return err
	}
	if result.Conflict {
		if !result.RowExists {
			return ErrPostCategoryNotFound
		}
		log.ErrorContext(ctx, "post category concurrency conflict", "post_category_id", id, "version", req.Version)
		return ErrConcurrencyConflict
	}
	req.Version = postCategory.Version
	return nil
}

func (s *postCategoryServiceImpl) GetPostCategoryForDelete(ctx context.Context, id *uint64) (*model.PostCategory, error) {
	return s.findPostCategory(ctx, id, repository.IncludePost|repository.IncludeCategory)
}

// DeletePostCategory 幂等删除
func (s *postCategoryServiceImpl) DeletePostCategory(ctx context.Context, id uint64) error {
	deleted, err := s.postCategoryRepo.DeletePostCategory(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		log.InfoContext(ctx, "post category already deleted", "post_category_id", id)
	}
	return nil
}

func (s *postCategoryServiceImpl) findPostCategory(ctx context.Context, id *uint64, include repository.Include) (*model.PostCategory, error) {
	if id == nil {
		return nil, ErrPostCategoryNotFound
	}
	postCategory, err := s.postCategoryRepo.GetPostCategory(ctx, *id, include)
	if err != nil {
		return nil, err
	}
	if postCategory == nil {
		return nil, ErrPostCategoryNotFound
	}
	return postCategory, nil
}
