// Package dto - DTO cho domain CRM.
package dto

// CustomerCreateInput đầu vào tạo khách hàng.
// Name (tên người liên hệ) bắt buộc, CompanyName tùy chọn.
// AssignedUserID rỗng sẽ được gán bằng UID của người gọi.
type CustomerCreateInput struct {
	Name           string `json:"name" validate:"required,max=100"`
	CompanyName    string `json:"companyName" validate:"omitempty,max=200"`
	Email          string `json:"email" validate:"omitempty,email"`
	Phone          string `json:"phone" validate:"omitempty,max=30"`
	Status         string `json:"status" validate:"omitempty,oneof=見込み 提案中 契約済 失注"`
	ContactMemo    string `json:"contactMemo" validate:"omitempty,max=2000,no_xss"`
	AssignedUserID string `json:"assignedUserId" validate:"omitempty,max=128"`
}

// CustomerUpdateInput đầu vào cập nhật khách hàng (partial update).
type CustomerUpdateInput struct {
	Name           string `json:"name" validate:"omitempty,max=100"`
	CompanyName    string `json:"companyName" validate:"omitempty,max=200"`
	Email          string `json:"email" validate:"omitempty,email"`
	Phone          string `json:"phone" validate:"omitempty,max=30"`
	Status         string `json:"status" validate:"omitempty,oneof=見込み 提案中 契約済 失注"`
	ContactMemo    string `json:"contactMemo" validate:"omitempty,max=2000,no_xss"`
	AssignedUserID string `json:"assignedUserId" validate:"omitempty,max=128"`
}
