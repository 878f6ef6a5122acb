// Package basehdl - Test transform DTO sang model cho các input CRM.
package basehdl

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	crmdto "folk_crm/internal/api/crm/dto"
	crmmodels "folk_crm/internal/api/crm/models"
)

func TestTransformStructToModel_TaskThieuCustomerID_Loi(t *testing.T) {
	input := crmdto.TaskCreateInput{Title: "見積もり送付"}
	model := new(crmmodels.Task)
	if err := transformStructToModel(&input, model); err == nil {
		t.Error("task không có customerId phải bị từ chối khi transform")
	}
}

func TestTransformStructToModel_TaskCoCustomerID(t *testing.T) {
	oid := primitive.NewObjectID()
	input := crmdto.TaskCreateInput{Title: "見積もり送付", CustomerID: oid.Hex()}
	model := new(crmmodels.Task)
	if err := transformStructToModel(&input, model); err != nil {
		t.Fatalf("transformStructToModel lỗi: %v", err)
	}
	if model.CustomerID != oid {
		t.Errorf("CustomerID = %v, muốn %v", model.CustomerID, oid)
	}
}

func TestTransformStructToModel_TaskSalesIDRong_BoQua(t *testing.T) {
	oid := primitive.NewObjectID()
	input := crmdto.TaskCreateInput{Title: "見積もり送付", CustomerID: oid.Hex()}
	model := new(crmmodels.Task)
	if err := transformStructToModel(&input, model); err != nil {
		t.Fatalf("transformStructToModel lỗi: %v", err)
	}
	if !model.SalesID.IsZero() {
		t.Errorf("SalesID rỗng (optional) phải giữ zero ObjectID, got %v", model.SalesID)
	}
}
