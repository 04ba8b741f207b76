package response

import (
	"SimpleBlog/internal/api/dto"
	"SimpleBlog/internal/service"
	stdjson "encoding/json"
	"errors"
	"io"
	log "log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"gorm.io/gorm"
)

const (
	Ok                  = 200
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

// Success 成功返回封装
func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, dto.Response{
		Code:    Ok,
		Message: "success",
		Data:    data,
	})
}

// Redirect 提交完成, 通知前端跳转到指定视图
func Redirect(ctx *gin.Context, view string) {
	Success(ctx, dto.RedirectDTO{Redirect: view})
}

// Invalid 校验未通过, 带回需要重新展示的表单
func Invalid(ctx *gin.Context, form interface{}) {
	ctx.JSON(http.StatusOK, dto.Response{
		Code:    BadRequest,
		Message: service.ErrParamInvalid.Error(),
		Data:    form,
	})
}

// Fail 失败返回封装
func Fail(c *gin.Context, businessCode int, message string) {
	c.JSON(http.StatusOK, dto.Response{
		Code:    businessCode,
		Message: message,
		Data:    nil,
	})
}

// Error 处理错误
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, BadRequest, "参数错误")
		return
	}

	if isJSONError(err) {
		Fail(c, BadRequest, "Json错误")
		return
	}

	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		Fail(c, BadRequest, "关联数据不存在")
		return
	}

	code, ok := service.ErrorMap[err]
	if !ok {
		code = InternalServerError
		log.ErrorContext(c.Request.Context(), "Error", "err", err)
		Fail(c, code, service.UnExpectedError.Error())
		return
	}
	if code == InternalServerError {
		log.ErrorContext(c.Request.Context(), "Error", "err", err)
	}
	Fail(c, code, err.Error())
}

// isJSONError gin 默认使用标准库解码, 以 go_json 标签编译时使用 goccy
func isJSONError(err error) bool {
	var unmarshalTypeError *json.UnmarshalTypeError
	var stdUnmarshalTypeError *stdjson.UnmarshalTypeError
	var syntaxError *json.SyntaxError
	var stdSyntaxError *stdjson.SyntaxError
	var timeParseError *time.ParseError
	return errors.As(err, &unmarshalTypeError) ||
		errors.As(err, &stdUnmarshalTypeError) ||
		errors.As(err, &syntaxError) ||
		errors.As(err, &stdSyntaxError) ||
		errors.As(err, &timeParseError) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF)
}
