package utility

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseIntSafe parse chuỗi thành int, trả về fallback nếu chuỗi rỗng hoặc không hợp lệ.
// Dùng cho các field số trong CSV báo cáo doanh thu (quantity, share %).
func ParseIntSafe(s string, fallback int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}

// ParseMoneySafe parse chuỗi tiền tệ thành decimal.Decimal, trả về fallback nếu không hợp lệ.
// Chấp nhận ký hiệu $ và dấu phẩy ngăn cách hàng nghìn ("$1,234.56").
func ParseMoneySafe(s string, fallback decimal.Decimal) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "$")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fallback
	}
	return d
}
