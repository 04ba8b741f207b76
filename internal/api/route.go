package api

import (
	"SimpleBlog/internal/api/config"
	"SimpleBlog/internal/api/middleware"
	"SimpleBlog/internal/pkg/logger"
	"SimpleBlog/internal/pkg/security"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, cfg *config.Config, revocations security.RevocationList) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.Server.AllowedOrigins))
	logger.SetupGin(r)

	auth := middleware.AuthMiddleware(revocations)
	authOpt := middleware.AuthOptionalMiddleware(revocations)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/user")
		{
			// 无需登录即可访问的接口
			userGroup.POST("/login", group.UserHandler.Login)
			userGroup.POST("/register", group.UserHandler.Register)

			authGroup := userGroup.Group("")
			authGroup.Use(auth)
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.GET("/info", group.UserHandler.GetUserInfo)
			}
		}

		categoryGroup := apiGroup.Group("/categories")
		{
			categoryGroup.GET("", authOpt, group.CategoryHandler.ListCategories)
			categoryGroup.POST("", auth, group.CategoryHandler.CreateCategory)
		}

		// 帖子管理全部需要登录
		postGroup := apiGroup.Group("/posts")
		postGroup.Use(auth)
		{
			postGroup.GET("", group.PostHandler.ListPosts)
			postGroup.GET("/:id", group.PostHandler.GetPostDetails)
			postGroup.GET("/create", group.PostHandler.GetCreateForm)
			postGroup.POST("/create", group.PostHandler.CreatePost)
			postGroup.GET("/edit/:id", group.PostHandler.GetPostForEdit)
			postGroup.POST("/edit/:id", group.PostHandler.UpdatePost)
			postGroup.GET("/delete/:id", group.PostHandler.GetPostForDelete)
			postGroup.POST("/delete/:id", group.PostHandler.DeletePost)
		}

		postCategoryGroup := apiGroup.Group("/post-categories")
		{
			publicGroup := postCategoryGroup.Group("")
			publicGroup.Use(authOpt)
			{
				publicGroup.GET("", group.PostCategoryHandler.ListPostCategories)
				publicGroup.GET("/:id", group.PostCategoryHandler.GetPostCategoryDetails)
			}

			authGroup := postCategoryGroup.Group("")
			authGroup.Use(auth)
			{
				authGroup.GET("/create", group.PostCategoryHandler.GetCreateForm)
				authGroup.POST("/create", group.PostCategoryHandler.CreatePostCategory)
				authGroup.GET("/edit/:id", group.PostCategoryHandler.GetPostCategoryForEdit)
				authGroup.POST("/edit/:id", group.PostCategoryHandler.UpdatePostCategory)
				authGroup.GET("/delete/:id", group.PostCategoryHandler.GetPostCategoryForDelete)
				authGroup.POST("/delete/:id", group.PostCategoryHandler.DeletePostCategory)
			}
		}
	}

	return r
}
