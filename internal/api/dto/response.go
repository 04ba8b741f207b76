package dto

// Response 统一返回结构
type Response struct {
	Code    int         `json:"Code"`
	Message string      `json:"Message"`
	Data    interface{} `json:"Data"`
}

// RedirectDTO 提交成功后前端应跳转的视图
type RedirectDTO struct {
	Redirect string `json:"redirect"`
}
