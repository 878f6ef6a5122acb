// Package basesvc - Test engine default tag và parse quan hệ restrict-delete.
package basesvc

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "folk_crm/internal/api/auth/models"
)

type defaultTagModel struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Status string             `bson:"status" default:"見込み"`
	Active bool               `bson:"active" default:"true"`
	Count  int64              `bson:"count" default:"10"`
	Memo   string             `bson:"memo"`
}

func TestApplyInsertDefaultsToModel_ChiSetFieldZero(t *testing.T) {
	m := &defaultTagModel{Status: "契約済"}
	applyInsertDefaultsToModel(m)

	if m.Status != "契約済" {
		t.Errorf("field đã có giá trị không được ghi đè, Status = %q", m.Status)
	}
	if !m.Active {
		t.Error("Active phải được set default true")
	}
	if m.Count != 10 {
		t.Errorf("Count = %d, muốn default 10", m.Count)
	}
	if m.Memo != "" {
		t.Errorf("field không có tag default phải giữ nguyên zero, Memo = %q", m.Memo)
	}
}

func TestGetInsertDefaultsFromModelType(t *testing.T) {
	defaults := getInsertDefaultsFromModelType(reflect.TypeOf(defaultTagModel{}))
	if defaults["status"] != "見込み" {
		t.Errorf("defaults[status] = %v, muốn 見込み", defaults["status"])
	}
	if defaults["active"] != true {
		t.Errorf("defaults[active] = %v, muốn true", defaults["active"])
	}
	if defaults["count"] != int64(10) {
		t.Errorf("defaults[count] = %v, muốn int64(10)", defaults["count"])
	}
	if _, ok := defaults["memo"]; ok {
		t.Error("field không có tag default không được xuất hiện trong defaults")
	}
}

func TestGetInsertDefaultsFromModelType_User(t *testing.T) {
	// Hồ sơ user mới phải mặc định active và role user
	defaults := getInsertDefaultsFromModelType(reflect.TypeOf(authmodels.User{}))
	if defaults["isActive"] != true {
		t.Errorf("defaults[isActive] = %v, muốn true (user mới không được ở trạng thái vô hiệu hóa)", defaults["isActive"])
	}
	if defaults["role"] != "user" {
		t.Errorf("defaults[role] = %v, muốn user", defaults["role"])
	}
}

func TestParseDefaultValue_ChuoiSai(t *testing.T) {
	if got := parseDefaultValue("abc", reflect.TypeOf(int64(0))); got != int64(0) {
		t.Errorf("parseDefaultValue int64 sai định dạng = %v, muốn 0", got)
	}
	if got := parseDefaultValue("abc", reflect.TypeOf(false)); got != false {
		t.Errorf("parseDefaultValue bool sai định dạng = %v, muốn false", got)
	}
}

type restrictDeleteModel struct {
	_Relationships struct{}           `relationship:"collection:crm_sales,field:customerId,message:顧客に紐づく商談が%d件あるため削除できません。|collection:crm_tasks,field:customerId"`
	ID             primitive.ObjectID `bson:"_id,omitempty"`
}

func TestParseRelationshipTag(t *testing.T) {
	rels := ParseRelationshipTag(reflect.TypeOf(restrictDeleteModel{}))
	if len(rels) != 2 {
		t.Fatalf("số quan hệ = %d, muốn 2", len(rels))
	}
	if rels[0].CollectionName != "crm_sales" || rels[0].FieldName != "customerId" {
		t.Errorf("quan hệ đầu sai: %+v", rels[0])
	}
	if rels[0].ErrorMessage != "顧客に紐づく商談が%d件あるため削除できません。" {
		t.Errorf("message sai: %q", rels[0].ErrorMessage)
	}
	// Không có message thì dùng message mặc định
	if rels[1].ErrorMessage == "" {
		t.Error("quan hệ không có message phải có message mặc định")
	}
}

func TestGetIDFromModel(t *testing.T) {
	oid := primitive.NewObjectID()
	id, ok := getIDFromModel(defaultTagModel{ID: oid})
	if !ok || id != oid {
		t.Errorf("getIDFromModel = (%v, %v), muốn (%v, true)", id, ok, oid)
	}
	if _, ok := getIDFromModel(struct{ Name string }{"x"}); ok {
		t.Error("struct không có field ID phải trả về ok=false")
	}
}
