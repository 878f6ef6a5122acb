// Package models - Test tên hiển thị của khách hàng.
package models

import "testing"

func TestCustomerDisplayName_UuTienTenCongTy(t *testing.T) {
	c := Customer{Name: "山田太郎", CompanyName: "ACME株式会社"}
	if got := c.DisplayName(); got != "ACME株式会社" {
		t.Errorf("DisplayName = %q, muốn %q", got, "ACME株式会社")
	}
}

func TestCustomerDisplayName_KhongCoCongTy_DungTenLienHe(t *testing.T) {
	c := Customer{Name: "山田太郎"}
	if got := c.DisplayName(); got != "山田太郎" {
		t.Errorf("DisplayName = %q, muốn %q", got, "山田太郎")
	}
}
