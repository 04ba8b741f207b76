package service

import (
	"SimpleBlog/internal/api/dto"
	"SimpleBlog/internal/model"
	"SimpleBlog/internal/pkg/database"
	"SimpleBlog/internal/pkg/security"
	"SimpleBlog/internal/pkg/util"
	"SimpleBlog/internal/repository"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type testEnv struct {
	db           *gorm.DB
	posts        PostService
	postCategory PostCategoryService
	categories   CategoryService
	users        UserService
	revocations  *security.MemoryRevocationList
}

func newTestEnv(t *testing.T) *testEnv {
	db := database.CreateTempDB(t)
	postRepo := repository.NewPostRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	postCategoryRepo := repository.NewPostCategoryRepository(db)
	revocations := security.NewMemoryRevocationList()
	security.SetPasswordCost(bcrypt.MinCost)
	return &testEnv{
		db:           db,
		posts:        NewPostService(postRepo, categoryRepo),
		postCategory: NewPostCategoryService(postCategoryRepo, postRepo, categoryRepo),
		categories:   NewCategoryService(categoryRepo),
		users:        NewUserService(repository.NewUserRepo(db), revocations),
		revocations:  revocations,
	}
}

func (e *testEnv) user(t *testing.T, name string) string {
	ctx := context.Background()
	require.NoError(t, e.users.Register(ctx, &dto.CredentialDTO{Username: name, Password: "secret123"}))
	var u model.User
	require.NoError(t, e.db.Where("username = ?", name).First(&u).Error)
	return u.ID
}

func (e *testEnv) category(t *testing.T, title string) *model.Category {
	c, err := e.categories.CreateCategory(context.Background(), &dto.CategoryDTO{Title: title})
	require.NoError(t, err)
	return c
}

// createPost 通过新建页表单创建帖子, selected 为选中的分类
func (e *testEnv) createPost(t *testing.T, userID, title string, selected ...*model.Category) *model.Post {
	ctx := context.Background()
	form, err := e.posts.GetCreateForm(ctx)
	require.NoError(t, err)
	for i := range form.Categories {
		for _, c := range selected {
			if form.Categories[i].Value == util.FormatID(c.ID) {
				form.Categories[i].Selected = true
			}
		}
	}
	form.Title = title
	form.Description = "World"
	form.PublishedDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, e.posts.CreatePost(ctx, userID, form))

	posts, err := e.posts.ListPosts(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, posts)
	return posts[len(posts)-1]
}

func (e *testEnv) count(t *testing.T, m any) int64 {
	var n int64
	require.NoError(t, e.db.Model(m).Count(&n).Error)
	return n
}

func editOf(p *model.Post, title string) *dto.EditPostDTO {
	return &dto.EditPostDTO{
		ID:            p.ID,
		Title:         title,
		Description:   p.Description,
		PublishedDate: p.PublishedDate,
		Version:       p.Version,
	}
}

func TestPostLoadsReturnNotFoundForMissingIds(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, id := range []*uint64{nil, util.PtrUint64(1), util.PtrUint64(12345)} {
		_, err := env.posts.GetPostDetails(ctx, id)
		assert.ErrorIs(t, err, ErrPostNotFound)
		_, err = env.posts.GetPostForEdit(ctx, id)
		assert.ErrorIs(t, err, ErrPostNotFound)
		_, err = env.posts.GetPostForDelete(ctx, id)
		assert.ErrorIs(t, err, ErrPostNotFound)
	}
}

func TestCreatePostHelloWorld(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	u := env.user(t, "writer")
	c1 := env.category(t, "Go")
	c2 := env.category(t, "Databases")

	post := env.createPost(t, u, "Hello", c1, c2)

	posts, err := env.posts.ListPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 1)

	details, err := env.posts.GetPostDetails(ctx, &post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello", details.Title)
	assert.Equal(t, "World", details.Description)
	require.NotNil(t, details.Author)
	assert.Equal(t, u, details.Author.ID)
	assert.Len(t, details.PostCategories, 2)
}

func TestCreatePostWithNCategories(t *testing.T) {
	env := newTestEnv(t)
	u := env.user(t, "writer")

	var selected []*model.Category
	for _, title := range []string{"a", "b", "c", "d"} {
		selected = append(selected, env.category(t, title))
	}
	post := env.createPost(t, u, "many", selected...)

	assert.Equal(t, int64(1), env.count(t, &model.Post{}))
	var rows []model.PostCategory
	require.NoError(t, env.db.Where("post_id = ?", post.ID).Find(&rows).Error)
	require.Len(t, rows, len(selected))
	for _, row := range rows {
		assert.NotZero(t, row.CategoryID)
	}

	env.createPost(t, u, "none")
	assert.Equal(t, int64(len(selected)), env.count(t, &model.PostCategory{}))
}

func TestCreatePostCategoryRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	u := env.user(t, "writer")
	a := env.category(t, "A")
	b := env.category(t, "B")
	env.category(t, "C")

	post := env.createPost(t, u, "round trip", b, a)

	details, err := env.posts.GetPostDetails(context.Background(), &post.ID)
	require.NoError(t, err)
	var got []uint64
	for _, pc := range details.PostCategories {
		require.NotNil(t, pc.Category)
		got = append(got, pc.Category.ID)
	}
	assert.ElementsMatch(t, []uint64{a.ID, b.ID}, got)
}

func TestCreatePostInvalidDoesNotPersist(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	u := env.user(t, "writer")

	err := env.posts.CreatePost(ctx, u, &dto.CreatePostDTO{Description: "no title", PublishedDate: time.Now()})
	assert.ErrorIs(t, err, ErrParamInvalid)

	err = env.posts.CreatePost(ctx, u, &dto.CreatePostDTO{
		Title:         "bad option",
		Description:   "d",
		PublishedDate: time.Now(),
		Categories:    []dto.SelectOption{{Text: "x", Value: "abc", Selected: true}},
	})
	assert.ErrorIs(t, err, ErrParamInvalid)

	assert.Zero(t, env.count(t, &model.Post{}))
}

func TestCreatePostUnknownCategoryRejected(t *testing.T) {
	env := newTestEnv(t)
	u := env.user(t, "writer")

	err := env.posts.CreatePost(context.Background(), u, &dto.CreatePostDTO{
		Title:         "dangling",
		Description:   "d",
		PublishedDate: time.Now(),
		Categories:    []dto.SelectOption{{Value: "77", Selected: true}},
	})
	assert.ErrorIs(t, err, gorm.ErrForeignKeyViolated)
	assert.Zero(t, env.count(t, &model.Post{}))
	assert.Zero(t, env.count(t, &model.PostCategory{}))
}

func TestDeletePostIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	u := env.user(t, "writer")
	post := env.createPost(t, u, "keep")

	require.NoError(t, env.posts.DeletePost(ctx, post.ID+100))
	assert.Equal(t, int64(1), env.count(t, &model.Post{}))

	require.NoError(t, env.posts.DeletePost(ctx, post.ID))
	require.NoError(t, env.posts.DeletePost(ctx, post.ID))
	assert.Zero(t, env.count(t, &model.Post{}))
}

func TestUpdatePostIdMismatch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	u := env.user(t, "writer")
	post := env.createPost(t, u, "first draft")

	err := env.posts.UpdatePost(ctx, post.ID+1, editOf(post, "spoofed"))
	assert.ErrorIs(t, err, ErrPostNotFound)

	loaded, err := env.posts.GetPostForEdit(ctx, &post.ID)
	require.NoError(t, err)
	assert.Equal(t, "first draft", loaded.Title)
	assert.Equal(t, 1, loaded.Version)
}

func TestUpdatePost(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	u := env.user(t, "writer")
	post := env.createPost(t, u, "before")

	loaded, err := env.posts.GetPostForEdit(ctx, &post.ID)
	require.NoError(t, err)

	invalid := editOf(loaded, "")
	assert.ErrorIs(t, env.posts.UpdatePost(ctx, post.ID, invalid), ErrParamInvalid)

	require.NoError(t, env.posts.UpdatePost(ctx, post.ID, editOf(loaded, "after")))

	details, err := env.posts.GetPostDetails(ctx, &post.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", details.Title)
	assert.Equal(t, 2, details.Version)
	assert.Equal(t, u, details.Author.ID)
}

func TestConcurrentEditsConflict(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	u := env.user(t, "writer")
	post := env.createPost(t, u, "shared")

	first, err := env.posts.GetPostForEdit(ctx, &post.ID)
	require.NoError(t, err)
	second, err := env.posts.GetPostForEdit(ctx, &post.ID)
	require.NoError(t, err)

	require.NoError(t, env.posts.UpdatePost(ctx, post.ID, editOf(first, "first wins")))
	err = env.posts.UpdatePost(ctx, post.ID, editOf(second, "second loses"))
	assert.ErrorIs(t, err, ErrConcurrencyConflict)

	loaded, err := env.posts.GetPostForEdit(ctx, &post.ID)
	require.NoError(t, err)
	assert.Equal(t, "first wins", loaded.Title)
}

func TestEditAfterDeleteIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	u := env.user(t, "writer")
	post := env.createPost(t, u, "vanishing")

	loaded, err := env.posts.GetPostForEdit(ctx, &post.ID)
	require.NoError(t, err)
	require.NoError(t, env.posts.DeletePost(ctx, post.ID))

	err = env.posts.UpdatePost(ctx, post.ID, editOf(loaded, "too late"))
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestPostCategoryService(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	u := env.user(t, "writer")
	a := env.category(t, "A")
	b := env.category(t, "B")
	post := env.createPost(t, u, "tagged")

	form, err := env.postCategory.GetCreateForm(ctx, nil)
	require.NoError(t, err)
	assert.Nil(t, form.PostCategory)
	require.Len(t, form.PostOptions, 1)
	assert.Equal(t, "tagged", form.PostOptions[0].Text)
	assert.Len(t, form.CategoryOptions, 2)

	assert.ErrorIs(t, env.postCategory.CreatePostCategory(ctx, &dto.PostCategoryDTO{PostID: post.ID}), ErrParamInvalid)

	req := &dto.PostCategoryDTO{PostID: post.ID, CategoryID: a.ID}
	require.NoError(t, env.postCategory.CreatePostCategory(ctx, req))
	require.NotZero(t, req.ID)

	list, err := env.postCategory.ListPostCategories(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "tagged", list[0].Post.Title)
	assert.Equal(t, "A", list[0].Category.Title)

	edit, err := env.postCategory.GetPostCategoryForEdit(ctx, &req.ID)
	require.NoError(t, err)
	require.NotNil(t, edit.PostCategory)
	assert.Equal(t, 1, edit.PostCategory.Version)
	for _, option := range edit.CategoryOptions {
		assert.Equal(t, option.Value == util.FormatID(a.ID), option.Selected)
	}

	stale := *edit.PostCategory
	changed := *edit.PostCategory
	changed.CategoryID = b.ID
	require.NoError(t, env.postCategory.UpdatePostCategory(ctx, req.ID, &changed))
	assert.ErrorIs(t, env.postCategory.UpdatePostCategory(ctx, req.ID, &stale), ErrConcurrencyConflict)
	assert.ErrorIs(t, env.postCategory.UpdatePostCategory(ctx, req.ID+1, &changed), ErrPostCategoryNotFound)

	details, err := env.postCategory.GetPostCategoryDetails(ctx, &req.ID)
	require.NoError(t, err)
	assert.Equal(t, "B", details.Category.Title)

	confirm, err := env.postCategory.GetPostCategoryForDelete(ctx, &req.ID)
	require.NoError(t, err)
	assert.NotNil(t, confirm.Post)

	require.NoError(t, env.postCategory.DeletePostCategory(ctx, req.ID))
	require.NoError(t, env.postCategory.DeletePostCategory(ctx, req.ID))

	assert.ErrorIs(t, env.postCategory.UpdatePostCategory(ctx, req.ID, &changed), ErrPostCategoryNotFound)
	for _, id := range []*uint64{nil, &req.ID} {
		_, err = env.postCategory.GetPostCategoryDetails(ctx, id)
		assert.ErrorIs(t, err, ErrPostCategoryNotFound)
		_, err = env.postCategory.GetPostCategoryForEdit(ctx, id)
		assert.ErrorIs(t, err, ErrPostCategoryNotFound)
		_, err = env.postCategory.GetPostCategoryForDelete(ctx, id)
		assert.ErrorIs(t, err, ErrPostCategoryNotFound)
	}
}

func TestUserService(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	security.Configure("test-secret", "SimpleBlog", time.Hour)

	cred := &dto.CredentialDTO{Username: "reader", Password: "secret123"}
	require.NoError(t, env.users.Register(ctx, cred))
	assert.ErrorIs(t, env.users.Register(ctx, &dto.CredentialDTO{Username: "reader", Password: "secret123"}), ErrUserExist)
	assert.ErrorIs(t, env.users.Register(ctx, &dto.CredentialDTO{Username: "x", Password: "secret123"}), ErrParamInvalid)

	_, err := env.users.Login(ctx, &dto.CredentialDTO{Username: "nobody", Password: "secret123"})
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = env.users.Login(ctx, &dto.CredentialDTO{Username: "reader", Password: "wrong-pass"})
	assert.ErrorIs(t, err, ErrPasswordIncorrect)

	token, err := env.users.Login(ctx, cred)
	require.NoError(t, err)
	claims, err := security.ValidateToken(token)
	require.NoError(t, err)

	user, err := env.users.GetUserById(ctx, claims.UserID)
	require.NoError(t, err)
	assert.Equal(t, "reader", user.Username)

	require.NoError(t, env.users.Logout(ctx, token))
	signature, err := security.ExtractSignature(token)
	require.NoError(t, err)
	revoked, err := env.revocations.IsRevoked(ctx, signature)
	require.NoError(t, err)
	assert.True(t, revoked)

	assert.ErrorIs(t, env.users.Logout(ctx, "not-a-token"), UnauthorizedError)
}

func TestUpdatePostCategoryWithoutVersionIsInvalid(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	u := env.user(t, "writer")
	a := env.category(t, "A")
	b := env.category(t, "B")
	post := env.createPost(t, u, "versioned")

	req := &dto.PostCategoryDTO{PostID: post.ID, CategoryID: a.ID}
	require.NoError(t, env.postCategory.CreatePostCategory(ctx, req))

	missingVersion := &dto.PostCategoryDTO{ID: req.ID, PostID: post.ID, CategoryID: b.ID}
	err := env.postCategory.UpdatePostCategory(ctx, req.ID, missingVersion)
	assert.ErrorIs(t, err, ErrParamInvalid)

	details, err := env.postCategory.GetPostCategoryDetails(ctx, &req.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, details.CategoryID)
	assert.Equal(t, 1, details.Version)
}

func TestDuplicateAssociationsAreKept(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	u := env.user(t, "writer")
	a := env.category(t, "A")
	post := env.createPost(t, u, "twice")

	for i := 0; i < 2; i++ {
		require.NoError(t, env.postCategory.CreatePostCategory(ctx, &dto.PostCategoryDTO{PostID: post.ID, CategoryID: a.ID}))
	}
	details, err := env.posts.GetPostDetails(ctx, &post.ID)
	require.NoError(t, err)
	require.Len(t, details.PostCategories, 2)
	for _, pc := range details.PostCategories {
		assert.Equal(t, a.ID, pc.CategoryID)
	}

	// 同一分类在新建表单中出现两次
	option := dto.SelectOption{Text: a.Title, Value: util.FormatID(a.ID), Selected: true}
	require.NoError(t, env.posts.CreatePost(ctx, u, &dto.CreatePostDTO{
		Title:         "selected twice",
		Description:   "d",
		PublishedDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Categories:    []dto.SelectOption{option, option},
	}))
	posts, err := env.posts.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	details, err = env.posts.GetPostDetails(ctx, &posts[1].ID)
	require.NoError(t, err)
	assert.Len(t, details.PostCategories, 2)
}
