// Package crmsvc - Test tổng hợp doanh số theo trạng thái.
package crmsvc

import (
	"reflect"
	"testing"

	crmdto "folk_crm/internal/api/crm/dto"
)

func TestBuildStatusSummary_CoCountVaTongTien(t *testing.T) {
	rows := []salesStatusRow{
		{Status: "見込み", Count: 3, TotalAmount: 600},
		{Status: "契約済", Count: 1, TotalAmount: 1000000},
	}
	got := buildStatusSummary(rows)
	want := []crmdto.SalesSummaryStatusItem{
		{Status: "見込み", Count: 3, TotalAmount: 600},
		{Status: "契約済", Count: 1, TotalAmount: 1000000},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("buildStatusSummary = %v, muốn %v", got, want)
	}
}

func TestBuildStatusSummary_KhongCoThuongVu_TraVeSliceRong(t *testing.T) {
	got := buildStatusSummary(nil)
	if got == nil {
		t.Fatal("buildStatusSummary phải trả về slice rỗng, không phải nil (JSON: [] thay vì null)")
	}
	if len(got) != 0 {
		t.Errorf("buildStatusSummary = %v, muốn slice rỗng", got)
	}
}
