package handler

import (
	"SimpleBlog/internal/api/dto"
	"SimpleBlog/internal/pkg/consts"
	"SimpleBlog/internal/pkg/response"
	"SimpleBlog/internal/pkg/util"
	"SimpleBlog/internal/service"
	"errors"

	"github.com/gin-gonic/gin"
)

type PostCategoryHandler struct {
	postCategorySvc service.PostCategoryService
}

func NewPostCategoryHandler(postCategorySvc service.PostCategoryService) *PostCategoryHandler {
	return &PostCategoryHandler{
		postCategorySvc: postCategorySvc,
	}
}

func (s *PostCategoryHandler) ListPostCategories(c *gin.Context) {
	list, err := s.postCategorySvc.ListPostCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

func (s *PostCategoryHandler) GetPostCategoryDetails(c *gin.Context) {
	postCategory, err := s.postCategorySvc.GetPostCategoryDetails(c.Request.Context(), util.ParseOptionalID(c.Param("id")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, postCategory)
}

func (s *PostCategoryHandler) GetCreateForm(c *gin.Context) {
	form, err := s.postCategorySvc.GetCreateForm(c.Request.Context(), nil)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, form)
}

func (s *PostCategoryHandler) CreatePostCategory(c *gin.Context) {
	var req dto.PostCategoryDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	err := s.postCategorySvc.CreatePostCategory(c.Request.Context(), &req)
	if errors.Is(err, service.ErrParamInvalid) {
		s.redisplay(c, &req)
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Redirect(c, consts.PostCategoryListView)
}

func (s *PostCategoryHandler) GetPostCategoryForEdit(c *gin.Context) {
	form, err := s.postCategorySvc.GetPostCategoryForEdit(c.Request.Context(), util.ParseOptionalID(c.Param("id")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, form)
}

func (s *PostCategoryHandler) UpdatePostCategory(c *gin.Context) {
	id := util.ParseOptionalID(c.Param("id"))
	if id == nil {
		response.Error(c, service.ErrPostCategoryNotFound)
		return
	}

	var req dto.PostCategoryDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	err := s.postCategorySvc.UpdatePostCategory(c.Request.Context(), *id, &req)
	if errors.Is(err, service.ErrParamInvalid) {
		s.redisplay(c, &req)
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Redirect(c, consts.PostCategoryListView)
}

func (s *PostCategoryHandler) GetPostCategoryForDelete(c *gin.Context) {
	postCategory, err := s.postCategorySvc.GetPostCategoryForDelete(c.Request.Context(), util.ParseOptionalID(c.Param("id")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, postCategory)
}

func (s *PostCategoryHandler) DeletePostCategory(c *gin.Context) {
	if id := util.ParseOptionalID(c.Param("id")); id != nil {
		if err := s.postCategorySvc.DeletePostCategory(c.Request.Context(), *id); err != nil {
			response.Error(c, err)
			return
		}
	}
	response.Redirect(c, consts.PostCategoryListView)
}

// redisplay 校验失败, 重新生成下拉列表并带回提交的值
func (s *PostCategoryHandler) redisplay(c *gin.Context, req *dto.PostCategoryDTO) {
	form, err := s.postCategorySvc.GetCreateForm(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Invalid(c, form)
}
