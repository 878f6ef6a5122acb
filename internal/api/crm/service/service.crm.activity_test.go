// Package crmsvc - Test builder description cho activity (diff trước/sau).
package crmsvc

import (
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "folk_crm/internal/api/crm/models"
)

func TestBuildCreateDescription(t *testing.T) {
	got := BuildCreateDescription(models.ActivityTargetCustomer, "ACME株式会社")
	want := "顧客「ACME株式会社」を作成しました"
	if got != want {
		t.Errorf("BuildCreateDescription = %q, muốn %q", got, want)
	}
}

func TestBuildDeleteDescription(t *testing.T) {
	got := BuildDeleteDescription(models.ActivityTargetTask, "見積もり送付")
	want := "タスク「見積もり送付」を削除しました"
	if got != want {
		t.Errorf("BuildDeleteDescription = %q, muốn %q", got, want)
	}
}

func TestBuildUpdateDescription_KhongCoThayDoi_TraVeRong(t *testing.T) {
	before := bson.M{"companyName": "ACME", "status": "見込み"}
	set := map[string]interface{}{
		"companyName": "ACME",
		"status":      "見込み",
		"updatedAt":   int64(1700000000000),
	}
	if got := BuildUpdateDescription(models.ActivityTargetCustomer, "ACME", before, set); got != "" {
		t.Errorf("không có thay đổi nhưng description = %q, muốn chuỗi rỗng", got)
	}
}

func TestBuildUpdateDescription_MotFieldThayDoi(t *testing.T) {
	before := bson.M{"status": "見込み"}
	set := map[string]interface{}{"status": "契約済"}
	got := BuildUpdateDescription(models.ActivityTargetSale, "A社案件", before, set)
	want := "商談「A社案件」を更新しました\n- ステータス: 見込み → 契約済"
	if got != want {
		t.Errorf("BuildUpdateDescription = %q, muốn %q", got, want)
	}
}

func TestBuildUpdateDescription_NhieuField_SortTheoKey(t *testing.T) {
	before := bson.M{"status": "見込み", "amount": float64(1000000)}
	set := map[string]interface{}{
		"status": "提案中",
		"amount": float64(2000000),
	}
	got := BuildUpdateDescription(models.ActivityTargetSale, "A社案件", before, set)
	// amount < status theo thứ tự key, description phải ổn định
	amountIdx := strings.Index(got, "金額")
	statusIdx := strings.Index(got, "ステータス")
	if amountIdx < 0 || statusIdx < 0 {
		t.Fatalf("description thiếu field: %q", got)
	}
	if amountIdx > statusIdx {
		t.Errorf("các dòng diff không sort theo key: %q", got)
	}
	if !strings.Contains(got, "金額: 1000000 → 2000000") {
		t.Errorf("dòng amount sai: %q", got)
	}
}

func TestBuildUpdateDescription_GiaTriCuRong(t *testing.T) {
	before := bson.M{}
	set := map[string]interface{}{"memo": "電話済み"}
	got := BuildUpdateDescription(models.ActivityTargetTask, "フォロー", before, set)
	if !strings.Contains(got, "メモ: 未設定 → 電話済み") {
		t.Errorf("giá trị cũ rỗng phải hiển thị 未設定, got %q", got)
	}
}

func TestBuildUpdateDescription_FieldKhongCoNhan_DungKey(t *testing.T) {
	before := bson.M{"customField": "a"}
	set := map[string]interface{}{"customField": "b"}
	got := BuildUpdateDescription(models.ActivityTargetCustomer, "ACME", before, set)
	if !strings.Contains(got, "customField: a → b") {
		t.Errorf("field không có nhãn phải fallback về key, got %q", got)
	}
}

func TestBuildUpdateDescription_BoQuaTimestampVaID(t *testing.T) {
	before := bson.M{"updatedAt": int64(1), "createdAt": int64(1)}
	set := map[string]interface{}{
		"updatedAt": int64(2),
		"createdAt": int64(2),
		"_id":       primitive.NewObjectID(),
	}
	if got := BuildUpdateDescription(models.ActivityTargetCustomer, "ACME", before, set); got != "" {
		t.Errorf("updatedAt/createdAt/_id không được tính là thay đổi, got %q", got)
	}
}

func TestFormatActivityValue(t *testing.T) {
	oid := primitive.NewObjectID()
	cases := []struct {
		name  string
		value interface{}
		want  string
	}{
		{"nil", nil, "未設定"},
		{"chuỗi rỗng", "", "未設定"},
		{"chuỗi thường", "ACME", "ACME"},
		{"ObjectID zero", primitive.NilObjectID, "未設定"},
		{"ObjectID", oid, oid.Hex()},
		{"float64 nguyên", float64(1000000), "1000000"},
		{"float64 lẻ", float64(1.5), "1.5"},
		{"int64", int64(42), "42"},
	}
	for _, tc := range cases {
		if got := formatActivityValue(tc.value); got != tc.want {
			t.Errorf("%s: formatActivityValue(%v) = %q, muốn %q", tc.name, tc.value, got, tc.want)
		}
	}
}
