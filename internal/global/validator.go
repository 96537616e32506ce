package global

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// isrcPattern theo chuẩn ISRC: 2 ký tự quốc gia, 3 ký tự registrant, 2 số năm, 5 số thứ tự.
var isrcPattern = regexp.MustCompile(`^[A-Z]{2}[A-Z0-9]{3}[0-9]{7}$`)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
	_ = Validate.RegisterValidation("isrc", validateISRC)
	_ = Validate.RegisterValidation("slug", validateSlug)
}

// validateNoXSS kiểm tra các pattern XSS phổ biến trong input text
func validateNoXSS(fl validator.FieldLevel) bool {
	value := strings.ToLower(fl.Field().String())
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"eval(",
		"document.cookie",
		"<iframe",
	}
	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

// validateISRC kiểm tra định dạng mã ISRC (cho phép rỗng - field optional)
func validateISRC(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return isrcPattern.MatchString(strings.ToUpper(strings.ReplaceAll(value, "-", "")))
}

// validateSlug kiểm tra slug chỉ chứa chữ thường, số và dấu gạch ngang
func validateSlug(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	for _, r := range value {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' {
			return false
		}
	}
	return !strings.HasPrefix(value, "-") && !strings.HasSuffix(value, "-")
}
