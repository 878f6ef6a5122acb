// Package common - Test taxonomy lỗi và convert lỗi MongoDB.
package common

import (
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestNewError_GiuDayDuThongTin(t *testing.T) {
	err := NewError(ErrCodeAuthRole, "Không có quyền truy cập", StatusForbidden, nil)
	e, ok := err.(*Error)
	if !ok {
		t.Fatalf("NewError phải trả về *Error, got %T", err)
	}
	if e.Code.Code != "AUTH_003" {
		t.Errorf("Code = %q, muốn AUTH_003", e.Code.Code)
	}
	if e.StatusCode != StatusForbidden {
		t.Errorf("StatusCode = %d, muốn %d", e.StatusCode, StatusForbidden)
	}
	if e.Error() != "Không có quyền truy cập" {
		t.Errorf("Error() = %q", e.Error())
	}
}

func TestErrNotFound_ErrorsIs(t *testing.T) {
	err := NewError(ErrCodeDatabaseQuery, "Không tìm thấy dữ liệu", StatusNotFound, nil)
	if !errors.Is(err, ErrNotFound) {
		t.Error("lỗi cùng code và message phải match ErrNotFound qua errors.Is")
	}
}

func TestConvertMongoError_GiuNguyenErrNotFound(t *testing.T) {
	if got := ConvertMongoError(ErrNotFound); !errors.Is(got, ErrNotFound) {
		t.Errorf("ErrNotFound không được convert sang lỗi khác, got %v", got)
	}
	wrapped := fmt.Errorf("%w", ErrNotFound)
	if got := ConvertMongoError(wrapped); !errors.Is(got, ErrNotFound) {
		t.Errorf("wrapped ErrNotFound phải giữ nguyên, got %v", got)
	}
}

func TestConvertMongoError_Nil(t *testing.T) {
	if got := ConvertMongoError(nil); got != nil {
		t.Errorf("ConvertMongoError(nil) = %v, muốn nil", got)
	}
}

func TestConvertMongoError_LoiKhongXacDinh(t *testing.T) {
	got := ConvertMongoError(errors.New("socket chết"))
	e, ok := got.(*Error)
	if !ok {
		t.Fatalf("lỗi không xác định phải được bọc thành *Error, got %T", got)
	}
	if e.StatusCode != StatusInternalServerError {
		t.Errorf("StatusCode = %d, muốn %d", e.StatusCode, StatusInternalServerError)
	}
}

func TestConvertMongoError_CommandError(t *testing.T) {
	got := ConvertMongoError(mongo.CommandError{Code: 150, Message: "connection refused"})
	if !errors.Is(got, ErrMongoConnection) {
		t.Errorf("CommandError code 1xx phải map sang ErrMongoConnection, got %v", got)
	}
}
