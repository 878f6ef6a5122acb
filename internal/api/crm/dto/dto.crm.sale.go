package dto

import (
	models "folk_crm/internal/api/crm/models"
)

// SaleCreateInput đầu vào tạo thương vụ.
// CustomerID là hex ObjectID của khách hàng (phải tồn tại trong crm_customers),
// DueDate là Unix ms (0 = không có hạn).
type SaleCreateInput struct {
	DealName       string  `json:"dealName" validate:"required,max=200"`
	CustomerID     string  `json:"customerId" validate:"required,len=24,exists=crm_customers" transform:"str_objectid,map=CustomerID,required"`
	Amount         float64 `json:"amount" validate:"gte=0"`
	Status         string  `json:"status" validate:"omitempty,oneof=見込み 提案中 交渉中 契約済 失注"`
	DueDate        int64   `json:"dueDate" validate:"omitempty,gte=0"`
	Notes          string  `json:"notes" validate:"omitempty,max=2000,no_xss"`
	AssignedUserID string  `json:"assignedUserId" validate:"omitempty,max=128"`
}

// SaleUpdateInput đầu vào cập nhật thương vụ (partial update).
type SaleUpdateInput struct {
	DealName       string  `json:"dealName" validate:"omitempty,max=200"`
	CustomerID     string  `json:"customerId" validate:"omitempty,len=24,exists=crm_customers" transform:"str_objectid,map=CustomerID,optional"`
	Amount         float64 `json:"amount" validate:"omitempty,gte=0"`
	Status         string  `json:"status" validate:"omitempty,oneof=見込み 提案中 交渉中 契約済 失注"`
	DueDate        int64   `json:"dueDate" validate:"omitempty,gte=0"`
	Notes          string  `json:"notes" validate:"omitempty,max=2000,no_xss"`
	AssignedUserID string  `json:"assignedUserId" validate:"omitempty,max=128"`
}

// SalesSummaryStatusItem số lượng và tổng tiền thương vụ theo một trạng thái.
type SalesSummaryStatusItem struct {
	Status      string  `json:"status"`
	Count       int64   `json:"count"`
	TotalAmount float64 `json:"totalAmount"`
}

// SalesSummaryCustomerItem tổng doanh số theo khách hàng trong summary.
type SalesSummaryCustomerItem struct {
	CustomerID  string  `json:"customerId"`
	CompanyName string  `json:"companyName"`
	TotalAmount float64 `json:"totalAmount"`
	DealCount   int64   `json:"dealCount"`
}

// SalesSummaryResponse kết quả GET /sales/summary, tính trong phạm vi dữ liệu của người gọi.
type SalesSummaryResponse struct {
	TotalSales       float64                    `json:"totalSales"`
	TotalDeals       int64                      `json:"totalDeals"`
	AverageDealValue float64                    `json:"averageDealValue"`
	StatusSummary    []SalesSummaryStatusItem   `json:"statusSummary"`
	CustomerSales    []SalesSummaryCustomerItem `json:"customerSales"`
	UpcomingDeals    []models.Sale              `json:"upcomingDeals"`
}
