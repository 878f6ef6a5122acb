// Package crmhdl - Test helper dùng chung cho các handler mutation.
package crmhdl

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	models "folk_crm/internal/api/crm/models"
)

func TestBuildUpdateSet_ChiLayFieldCoGiaTri(t *testing.T) {
	model := &models.Customer{
		CompanyName: "ACME株式会社",
		Status:      "提案中",
	}
	body := []byte(`{"companyName":"ACME株式会社","status":"提案中"}`)
	set, err := buildUpdateSet(model, body)
	if err != nil {
		t.Fatalf("buildUpdateSet lỗi: %v", err)
	}
	if set["companyName"] != "ACME株式会社" {
		t.Errorf("set thiếu companyName, got %v", set)
	}
	if set["status"] != "提案中" {
		t.Errorf("set thiếu status, got %v", set)
	}
	// Field không có trong payload thì giữ nguyên, không vào $set
	for _, key := range []string{"email", "phone", "assignedUserId", "createdAt", "updatedAt"} {
		if _, ok := set[key]; ok {
			t.Errorf("field %q không có trong payload, không được nằm trong $set, got %v", key, set)
		}
	}
}

func TestBuildUpdateSet_XoaMemoBangChuoiRong(t *testing.T) {
	model := &models.Customer{}
	body := []byte(`{"contactMemo":""}`)
	set, err := buildUpdateSet(model, body)
	if err != nil {
		t.Fatalf("buildUpdateSet lỗi: %v", err)
	}
	v, ok := set["contactMemo"]
	if !ok {
		t.Fatalf("contactMemo có trong payload phải vào $set để xóa được memo, got %v", set)
	}
	if v != "" {
		t.Errorf("contactMemo = %v, muốn chuỗi rỗng", v)
	}
}

func TestBuildUpdateSet_DatAmountVeKhong(t *testing.T) {
	model := &models.Sale{}
	body := []byte(`{"amount":0,"dueDate":0}`)
	set, err := buildUpdateSet(model, body)
	if err != nil {
		t.Fatalf("buildUpdateSet lỗi: %v", err)
	}
	if _, ok := set["amount"]; !ok {
		t.Errorf("amount = 0 có trong payload phải vào $set, got %v", set)
	}
	if _, ok := set["dueDate"]; !ok {
		t.Errorf("dueDate = 0 có trong payload phải vào $set, got %v", set)
	}
}

func TestBuildUpdateSet_FieldBaoVeKhongBiXoa(t *testing.T) {
	model := &models.Customer{}
	body := []byte(`{"name":"","status":"","assignedUserId":""}`)
	set, err := buildUpdateSet(model, body)
	if err != nil {
		t.Fatalf("buildUpdateSet lỗi: %v", err)
	}
	for _, key := range []string{"name", "status", "assignedUserId"} {
		if _, ok := set[key]; ok {
			t.Errorf("field bắt buộc %q không được xóa về rỗng qua update, got %v", key, set)
		}
	}
}

func TestBuildUpdateSet_ObjectIDRongKhongVaoSet(t *testing.T) {
	model := &models.Task{Title: "見積もり"}
	body := []byte(`{"title":"見積もり","customerId":""}`)
	set, err := buildUpdateSet(model, body)
	if err != nil {
		t.Fatalf("buildUpdateSet lỗi: %v", err)
	}
	if _, ok := set["customerId"]; ok {
		t.Errorf("customerId rỗng không được vào $set, got %v", set)
	}
	if set["title"] != "見積もり" {
		t.Errorf("set thiếu title, got %v", set)
	}
}

func TestModelSnapshot_TraVeBsonM(t *testing.T) {
	snapshot := modelSnapshot(models.Customer{CompanyName: "ACME", Status: "見込み"})
	if snapshot == nil {
		t.Fatal("modelSnapshot trả về nil")
	}
	if snapshot["companyName"] != "ACME" {
		t.Errorf("snapshot thiếu companyName, got %v", snapshot)
	}
}

func TestUpdateAction_DoiStatus(t *testing.T) {
	before := bson.M{"status": "見込み"}
	set := map[string]interface{}{"status": "契約済"}
	if got := updateAction(before, set); got != models.ActivityActionStatusChanged {
		t.Errorf("updateAction = %q, muốn %q", got, models.ActivityActionStatusChanged)
	}
}

func TestUpdateAction_StatusKhongDoi(t *testing.T) {
	before := bson.M{"status": "見込み"}
	set := map[string]interface{}{"status": "見込み", "contactMemo": "x"}
	if got := updateAction(before, set); got != models.ActivityActionUpdated {
		t.Errorf("updateAction = %q, muốn %q", got, models.ActivityActionUpdated)
	}
}

func TestUpdateAction_KhongSetStatus(t *testing.T) {
	before := bson.M{"status": "見込み"}
	set := map[string]interface{}{"companyName": "ACME"}
	if got := updateAction(before, set); got != models.ActivityActionUpdated {
		t.Errorf("updateAction = %q, muốn %q", got, models.ActivityActionUpdated)
	}
}
