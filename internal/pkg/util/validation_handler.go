package util

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateDTO 返回第一条校验失败的字段与规则
func ValidateDTO(dto any) error {
	return firstError(validate.Struct(dto))
}

// ValidateDTOExcept 跳过指定字段的校验
func ValidateDTOExcept(dto any, fields ...string) error {
	return firstError(validate.StructExcept(dto, fields...))
}

func firstError(err error) error {
	if err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			fe := vErrs[0]
			return fmt.Errorf("字段 [%s] 校验失败，规则 [%s]", fe.Field(), fe.Tag())
		}
		return err
	}
	return nil
}
