package handler

import (
	"SimpleBlog/internal/api/dto"
	"SimpleBlog/internal/pkg/consts"
	"SimpleBlog/internal/pkg/logger"
	"SimpleBlog/internal/pkg/response"
	"SimpleBlog/internal/pkg/util"
	"SimpleBlog/internal/service"
	"errors"
	log "log/slog"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
	}
}

func (s *PostHandler) ListPosts(c *gin.Context) {
	posts, err := s.postSvc.ListPosts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) GetPostDetails(c *gin.Context) {
	post, err := s.postSvc.GetPostDetails(c.Request.Context(), util.ParseOptionalID(c.Param("id")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) GetCreateForm(c *gin.Context) {
	form, err := s.postSvc.GetCreateForm(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, form)
}

// CreatePost 表单无效时不保存, 直接回到列表
func (s *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetString(logger.UserIDKey)

	var req dto.CreatePostDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.WarnContext(c.Request.Context(), "create post bind failed", "err", err)
		response.Redirect(c, consts.PostListView)
		return
	}

	err := s.postSvc.CreatePost(c.Request.Context(), userID, &req)
	if err != nil && !errors.Is(err, service.ErrParamInvalid) {
		response.Error(c, err)
		return
	}
	response.Redirect(c, consts.PostListView)
}

func (s *PostHandler) GetPostForEdit(c *gin.Context) {
	post, err := s.postSvc.GetPostForEdit(c.Request.Context(), util.ParseOptionalID(c.Param("id")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) UpdatePost(c *gin.Context) {
	id := util.ParseOptionalID(c.Param("id"))
	if id == nil {
		response.Error(c, service.ErrPostNotFound)
		return
	}

	var req dto.EditPostDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	err := s.postSvc.UpdatePost(c.Request.Context(), *id, &req)
	if errors.Is(err, service.ErrParamInvalid) {
		response.Invalid(c, &req)
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Redirect(c, consts.PostListView)
}

func (s *PostHandler) GetPostForDelete(c *gin.Context) {
	post, err := s.postSvc.GetPostForDelete(c.Request.Context(), util.ParseOptionalID(c.Param("id")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) DeletePost(c *gin.Context) {
	if id := util.ParseOptionalID(c.Param("id")); id != nil {
		if err := s.postSvc.DeletePost(c.Request.Context(), *id); err != nil {
			response.Error(c, err)
			return
		}
	}
	response.Redirect(c, consts.PostListView)
}
