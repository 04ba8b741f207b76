package wire

import (
	"SimpleBlog/internal/api"
	"SimpleBlog/internal/api/config"
	"SimpleBlog/internal/api/handler"
	"SimpleBlog/internal/pkg/security"
	"SimpleBlog/internal/repository"
	"SimpleBlog/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router *gin.Engine
	DB     *gorm.DB
}

// BuildApplication 组装 repository -> service -> handler -> router
func BuildApplication(db *gorm.DB, cfg *config.Config, revocations security.RevocationList) *ApplicationContainer {
	userRepo := repository.NewUserRepo(db)
	categoryRepo := repository.NewCategoryRepository(db)
	postRepo := repository.NewPostRepository(db)
	postCategoryRepo := repository.NewPostCategoryRepository(db)

	userService := service.NewUserService(userRepo, revocations)
	categoryService := service.NewCategoryService(categoryRepo)
	postService := service.NewPostService(postRepo, categoryRepo)
	postCategoryService := service.NewPostCategoryService(postCategoryRepo, postRepo, categoryRepo)

	handlers := &api.HandlersGroup{
		UserHandler:         handler.NewUserHandler(userService),
		CategoryHandler:     handler.NewCategoryHandler(categoryService),
		PostHandler:         handler.NewPostHandler(postService),
		PostCategoryHandler: handler.NewPostCategoryHandler(postCategoryService),
	}

	router := api.SetupRouter(handlers, cfg, revocations)

	return &ApplicationContainer{
		Router: router,
		DB:     db,
	}
}
