package common

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// HTTP Status Code Constants
const (
	// Success Codes (2xx)
	StatusOK        = 200 // Thành công
	StatusCreated   = 201 // Tạo mới thành công
	StatusNoContent = 204 // Thành công nhưng không có nội dung trả về

	// Client Error Codes (4xx)
	StatusBadRequest      = 400 // Yêu cầu không hợp lệ
	StatusUnauthorized    = 401 // Chưa xác thực
	StatusForbidden       = 403 // Không có quyền truy cập
	StatusNotFound        = 404 // Không tìm thấy tài nguyên
	StatusConflict        = 409 // Xung đột dữ liệu
	StatusTooManyRequests = 429 // Quá nhiều yêu cầu

	// Server Error Codes (5xx)
	StatusInternalServerError = 500 // Lỗi server
	StatusServiceUnavailable  = 503 // Dịch vụ không khả dụng
)

// Response Messages
const (
	// Success Messages
	MsgSuccess = "Thao tác thành công"
	MsgCreated = "Tạo mới thành công"

	// Error Messages
	MsgBadRequest      = "Yêu cầu không hợp lệ"
	MsgUnauthorized    = "Vui lòng đăng nhập"
	MsgForbidden       = "Không có quyền truy cập"
	MsgNotFound        = "Không tìm thấy tài nguyên"
	MsgInternalError   = "Lỗi hệ thống"
	MsgValidationError = "Dữ liệu không hợp lệ"
	MsgDatabaseError   = "Lỗi tương tác với cơ sở dữ liệu"
	MsgInvalidFormat   = "Định dạng dữ liệu không hợp lệ"

	// Token Messages
	MsgTokenMissing = "Thiếu token xác thực"
	MsgTokenInvalid = "Token không hợp lệ"
	MsgTokenExpired = "Token đã hết hạn"
)

// ErrorCode định nghĩa mã lỗi chi tiết
type ErrorCode struct {
	Code        string // Mã lỗi (ví dụ: AUTH_001)
	Category    string // Phân loại lỗi (ví dụ: Authentication)
	SubCategory string // Phân loại con (ví dụ: Token)
	Description string // Mô tả chi tiết
}

// Định nghĩa các mã lỗi theo hệ thống phân cấp
var (
	// System Errors (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "Lỗi hệ thống nội bộ",
	}

	// Authentication Errors (AUTH_xxx)
	ErrCodeAuthToken = ErrorCode{
		Code:        "AUTH_001",
		Category:    "Authentication",
		SubCategory: "Token",
		Description: "Lỗi liên quan đến token",
	}

	// Validation Errors (VAL_xxx)
	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "Lỗi dữ liệu đầu vào",
	}

	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "Lỗi định dạng dữ liệu",
	}

	// Database Errors (DB_xxx)
	ErrCodeDatabase = ErrorCode{
		Code:        "DB",
		Category:    "Database",
		SubCategory: "General",
		Description: "Lỗi cơ sở dữ liệu chung",
	}

	ErrCodeDatabaseConnection = ErrorCode{
		Code:        "DB_001",
		Category:    "Database",
		SubCategory: "Connection",
		Description: "Lỗi kết nối cơ sở dữ liệu",
	}

	ErrCodeDatabaseQuery = ErrorCode{
		Code:        "DB_002",
		Category:    "Database",
		SubCategory: "Query",
		Description: "Lỗi truy vấn dữ liệu",
	}

	// Business Logic Errors (BIZ_xxx)
	ErrCodeBusinessState = ErrorCode{
		Code:        "BIZ_001",
		Category:    "Business",
		SubCategory: "State",
		Description: "Lỗi trạng thái nghiệp vụ",
	}

	// Revenue Report Errors (RPT_xxx)
	ErrCodeReportParse = ErrorCode{
		Code:        "RPT_001",
		Category:    "Report",
		SubCategory: "Parse",
		Description: "Lỗi đọc file báo cáo doanh thu (CSV)",
	}

	ErrCodeReportNotFound = ErrorCode{
		Code:        "RPT_002",
		Category:    "Report",
		SubCategory: "Registry",
		Description: "Không tìm thấy file báo cáo doanh thu",
	}
)

// Error định nghĩa cấu trúc lỗi chi tiết
type Error struct {
	Code       ErrorCode // Mã lỗi chi tiết
	Message    string    // Thông báo lỗi
	StatusCode int       // HTTP status code
	Details    any       // Thông tin chi tiết thêm về lỗi
}

// Error trả về message của lỗi
func (e *Error) Error() string {
	return e.Message
}

// Is kiểm tra xem error có phải là target error không (hỗ trợ errors.Is)
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if targetErr, ok := target.(*Error); ok {
		return e.Code.Code == targetErr.Code.Code && e.Message == targetErr.Message
	}
	return false
}

// NewError tạo một error mới với đầy đủ thông tin
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Custom errors
var (
	// Authentication Errors
	ErrTokenExpired = NewError(ErrCodeAuthToken, MsgTokenExpired, StatusUnauthorized, nil)
	ErrTokenInvalid = NewError(ErrCodeAuthToken, MsgTokenInvalid, StatusUnauthorized, nil)
	ErrTokenMissing = NewError(ErrCodeAuthToken, MsgTokenMissing, StatusUnauthorized, nil)

	// Validation Errors
	ErrInvalidInput  = NewError(ErrCodeValidationInput, "Dữ liệu đầu vào không hợp lệ", StatusBadRequest, nil)
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, MsgInvalidFormat, StatusBadRequest, nil)
	ErrRequiredField = NewError(ErrCodeValidationInput, "Thiếu thông tin bắt buộc", StatusBadRequest, nil)

	// Database Errors
	ErrNotFound   = NewError(ErrCodeDatabaseQuery, "Không tìm thấy dữ liệu", StatusNotFound, nil)
	ErrDuplicate  = NewError(ErrCodeDatabaseQuery, "Dữ liệu đã tồn tại", StatusConflict, nil)
	ErrConnection = NewError(ErrCodeDatabaseConnection, "Lỗi kết nối cơ sở dữ liệu", StatusServiceUnavailable, nil)

	// Revenue Report Errors
	ErrReportNotFound = NewError(ErrCodeReportNotFound, "Không tìm thấy file báo cáo doanh thu", StatusNotFound, nil)
)

// MongoDB Error Messages
const (
	MsgMongoConnection = "Lỗi kết nối MongoDB"
	MsgMongoNetwork    = "Lỗi mạng khi kết nối MongoDB"
	MsgMongoTimeout    = "Kết nối MongoDB bị timeout"
	MsgMongoAuth       = "Lỗi xác thực MongoDB"
	MsgMongoQuery      = "Lỗi truy vấn MongoDB"
	MsgMongoWrite      = "Lỗi ghi dữ liệu MongoDB"
	MsgMongoDuplicate  = "Dữ liệu trùng lặp trong MongoDB"
	MsgMongoSystem     = "Lỗi hệ thống MongoDB"
)

// MongoDB Specific Errors
var (
	ErrMongoConnection = NewError(ErrCodeDatabaseConnection, MsgMongoConnection, StatusServiceUnavailable, nil)
	ErrMongoNetwork    = NewError(ErrCodeDatabaseConnection, MsgMongoNetwork, StatusServiceUnavailable, nil)
	ErrMongoTimeout    = NewError(ErrCodeDatabaseConnection, MsgMongoTimeout, StatusServiceUnavailable, nil)
	ErrMongoAuth       = NewError(ErrCodeAuthToken, MsgMongoAuth, StatusUnauthorized, nil)
	ErrMongoQuery      = NewError(ErrCodeDatabaseQuery, MsgMongoQuery, StatusInternalServerError, nil)
	ErrMongoWrite      = NewError(ErrCodeDatabaseQuery, MsgMongoWrite, StatusInternalServerError, nil)
	ErrMongoDuplicate  = NewError(ErrCodeDatabaseQuery, MsgMongoDuplicate, StatusConflict, nil)
	ErrMongoSystem     = NewError(ErrCodeDatabase, MsgMongoSystem, StatusInternalServerError, nil)
)

// ConvertMongoError chuyển đổi lỗi MongoDB sang lỗi hệ thống
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	// ErrNotFound không convert - giữ nguyên để caller xử lý 404
	if errors.Is(err, ErrNotFound) {
		return err
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}

	// Kiểm tra các loại lỗi MongoDB cụ thể theo dải mã lệnh
	var mongoErr mongo.CommandError
	if errors.As(err, &mongoErr) {
		switch {
		case mongoErr.Code >= 100 && mongoErr.Code < 200:
			return ErrMongoConnection
		case mongoErr.Code >= 200 && mongoErr.Code < 300:
			return ErrMongoAuth
		case mongoErr.Code >= 300 && mongoErr.Code < 400:
			return ErrMongoQuery
		case mongoErr.Code >= 400 && mongoErr.Code < 500:
			return ErrMongoWrite
		case mongoErr.Code >= 500:
			return ErrMongoSystem
		}
	}

	// Các lỗi MongoDB khác
	if mongo.IsDuplicateKeyError(err) {
		return ErrMongoDuplicate
	}
	if mongo.IsNetworkError(err) {
		return ErrMongoNetwork
	}
	if mongo.IsTimeout(err) {
		return ErrMongoTimeout
	}

	// Nếu không nhận diện được lỗi cụ thể, trả về lỗi hệ thống chung
	return NewError(ErrCodeDatabase, MsgDatabaseError, StatusInternalServerError, err)
}
