// Package notifsvc - Test gom danh sách người nhận thông báo.
package notifsvc

import (
	"reflect"
	"testing"
)

func TestBuildRecipients_NguoiTaoKhacNguoiDuocGan_HaiNguoiNhan(t *testing.T) {
	got := BuildRecipients("assignee", "creator")
	want := []string{"assignee", "creator"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildRecipients = %v, muốn %v", got, want)
	}
}

func TestBuildRecipients_NguoiTaoTuGan_MotNguoiNhan(t *testing.T) {
	got := BuildRecipients("creator", "creator")
	want := []string{"creator"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("người tạo tự gán cho mình phải nhận đúng 1 thông báo, got %v, muốn %v", got, want)
	}
}

func TestBuildRecipients_LoaiUIDRong(t *testing.T) {
	got := BuildRecipients("", "user-a", "")
	want := []string{"user-a"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildRecipients = %v, muốn %v", got, want)
	}
}

func TestBuildRecipients_GiuNguyenThuTu(t *testing.T) {
	got := BuildRecipients("user-c", "user-a", "user-c", "user-b")
	want := []string{"user-c", "user-a", "user-b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildRecipients = %v, muốn %v", got, want)
	}
}
