package service

import (
	"SimpleBlog/internal/api/dto"
	"SimpleBlog/internal/model"
	"SimpleBlog/internal/pkg/util"
	"SimpleBlog/internal/repository"
	"context"
	"strings"
)

type CategoryService interface {
	ListCategories(ctx context.Context) ([]*model.Category, error)
	CreateCategory(ctx context.Context, req *dto.CategoryDTO) (*model.Category, error)
}

type categoryServiceImpl struct {
	categoryRepo repository.CategoryRepo
}

func NewCategoryService(categoryRepo repository.CategoryRepo) CategoryService {
	return &categoryServiceImpl{
		categoryRepo: categoryRepo,
	}
}

func (s *categoryServiceImpl) ListCategories(ctx context.Context) ([]*model.Category, error) {
	return s.categoryRepo.ListCategories(ctx)
}

func (s *categoryServiceImpl) CreateCategory(ctx context.Context, req *dto.CategoryDTO) (*model.Category, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := util.ValidateDTO(req); err != nil {
		return nil, ErrParamInvalid
	}
	category := &model.Category{Title: req.Title}
	if err := s.categoryRepo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}
