package dto

// TaskCreateInput đầu vào tạo công việc.
// CustomerID bắt buộc (task luôn gắn với một khách hàng), SalesID tùy chọn.
// AssignedUserID rỗng sẽ được gán bằng UID của người gọi; CreatedBy luôn là người gọi.
type TaskCreateInput struct {
	Title          string `json:"title" validate:"required,max=200"`
	Description    string `json:"description" validate:"omitempty,max=2000,no_xss"`
	Status         string `json:"status" validate:"omitempty,oneof=todo in_progress done"`
	DueDate        int64  `json:"dueDate" validate:"omitempty,gte=0"`
	AssignedUserID string `json:"assignedUserId" validate:"omitempty,max=128"`
	CustomerID     string `json:"customerId" validate:"required,len=24,exists=crm_customers" transform:"str_objectid,map=CustomerID,required"`
	SalesID        string `json:"salesId" validate:"omitempty,len=24,exists=crm_sales" transform:"str_objectid,map=SalesID,optional"`
}

// TaskUpdateInput đầu vào cập nhật công việc (partial update).
// Chỉ người tạo, người được gán hoặc admin mới được cập nhật.
type TaskUpdateInput struct {
	Title          string `json:"title" validate:"omitempty,max=200"`
	Description    string `json:"description" validate:"omitempty,max=2000,no_xss"`
	Status         string `json:"status" validate:"omitempty,oneof=todo in_progress done"`
	DueDate        int64  `json:"dueDate" validate:"omitempty,gte=0"`
	AssignedUserID string `json:"assignedUserId" validate:"omitempty,max=128"`
	CustomerID     string `json:"customerId" validate:"omitempty,len=24,exists=crm_customers" transform:"str_objectid,map=CustomerID,optional"`
	SalesID        string `json:"salesId" validate:"omitempty,len=24,exists=crm_sales" transform:"str_objectid,map=SalesID,optional"`
}
