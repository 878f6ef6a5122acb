// Package global - Test custom validator và rule của DTO CRM.
package global

import (
	"testing"

	crmdto "folk_crm/internal/api/crm/dto"
)

func TestValidate_CustomerThieuName_Loi(t *testing.T) {
	InitValidator()
	input := crmdto.CustomerCreateInput{CompanyName: "ACME株式会社"}
	if err := Validate.Struct(input); err == nil {
		t.Error("khách hàng không có name phải bị từ chối")
	}
}

func TestValidate_CustomerKhongCoCongTy_Hople(t *testing.T) {
	InitValidator()
	input := crmdto.CustomerCreateInput{Name: "山田太郎"}
	if err := Validate.Struct(input); err != nil {
		t.Errorf("companyName là tùy chọn, Validate lỗi: %v", err)
	}
}

func TestValidateNoXSS_ChanScript(t *testing.T) {
	InitValidator()
	input := crmdto.CustomerCreateInput{Name: "山田太郎", ContactMemo: "<script>alert(1)</script>"}
	if err := Validate.Struct(input); err == nil {
		t.Error("contactMemo chứa script phải bị từ chối")
	}
}
