package consts

const (
	// TokenRevokedKey 已注销 Token 的签名
	TokenRevokedKey = "token:revoked:"
)

const (
	PostListView         = "/api/posts"
	PostCategoryListView = "/api/post-categories"
)
