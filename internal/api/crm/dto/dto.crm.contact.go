package dto

// ContactCreateInput đầu vào tạo lịch sử đối ứng.
// ContactName, ContactEmail và Content bắt buộc (400 khi thiếu).
// Dùng chung cho form công khai (POST /public/contacts) và route có xác thực.
type ContactCreateInput struct {
	CustomerID     string `json:"customerId" validate:"omitempty,len=24,exists=crm_customers" transform:"str_objectid,map=CustomerID,optional"`
	CustomerName   string `json:"customerName" validate:"omitempty,max=100"`
	ContactName    string `json:"contactName" validate:"required,max=100"`
	ContactEmail   string `json:"contactEmail" validate:"required,email,max=254"`
	ContactPhone   string `json:"contactPhone" validate:"omitempty,max=30"`
	Content        string `json:"content" validate:"required,max=2000,no_xss"`
	ResponseStatus string `json:"responseStatus" validate:"omitempty,oneof=未対応 対応中 対応済み"`
	Memo           string `json:"memo" validate:"omitempty,max=2000,no_xss"`
	AssignedUserID string `json:"assignedUserId" validate:"omitempty,max=128"`
}

// ContactUpdateInput đầu vào cập nhật lịch sử đối ứng (partial update).
// Đổi AssignedUserID chỉ admin mới được phép.
type ContactUpdateInput struct {
	CustomerName   string `json:"customerName" validate:"omitempty,max=100"`
	ContactName    string `json:"contactName" validate:"omitempty,max=100"`
	ContactEmail   string `json:"contactEmail" validate:"omitempty,email,max=254"`
	ContactPhone   string `json:"contactPhone" validate:"omitempty,max=30"`
	Content        string `json:"content" validate:"omitempty,max=2000,no_xss"`
	ResponseStatus string `json:"responseStatus" validate:"omitempty,oneof=未対応 対応中 対応済み"`
	Memo           string `json:"memo" validate:"omitempty,max=2000,no_xss"`
	AssignedUserID string `json:"assignedUserId" validate:"omitempty,max=128"`
}
