// Package basehdl - Test phân quyền dữ liệu theo owner.
package basehdl

import (
	"errors"
	"testing"

	"folk_crm/internal/common"
)

func TestOwnerAccessError_DungOwner_TraVeNil(t *testing.T) {
	if err := ownerAccessError("uid-1", "uid-1", false); err != nil {
		t.Errorf("owner truy cập dữ liệu của mình phải được phép, got %v", err)
	}
}

func TestOwnerAccessError_KhacOwner_TraVe404(t *testing.T) {
	err := ownerAccessError("uid-1", "uid-2", false)
	if err == nil {
		t.Fatal("user khác owner phải bị từ chối")
	}
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("dữ liệu của user khác phải trả về ErrNotFound (404, không lộ sự tồn tại), got %v", err)
	}
}

func TestOwnerAccessError_Admin_TraVeNil(t *testing.T) {
	if err := ownerAccessError("uid-1", "uid-2", true); err != nil {
		t.Errorf("admin phải truy cập được mọi document, got %v", err)
	}
}

func TestOwnerAccessError_KhongCoOwner_TraVeNil(t *testing.T) {
	if err := ownerAccessError("", "uid-2", false); err != nil {
		t.Errorf("document không có assignedUserId phải truy cập được, got %v", err)
	}
}
