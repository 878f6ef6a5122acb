// Package models - Customer thuộc domain CRM (crm_customers).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer lưu thông tin khách hàng (crm_customers).
// Name là tên người liên hệ (bắt buộc), CompanyName là tên công ty (tùy chọn).
// Restrict-delete: không xóa được khi còn sale/task/contact tham chiếu (409).
type Customer struct {
	_Relationships struct{} `relationship:"collection:crm_sales,field:customerId,message:顧客に紐づく商談が%d件あるため削除できません。先に商談を削除してください。|collection:crm_tasks,field:customerId,message:顧客に紐づくタスクが%d件あるため削除できません。先にタスクを削除してください。|collection:crm_contacts,field:customerId,message:顧客に紐づく対応履歴が%d件あるため削除できません。先に対応履歴を削除してください。"`

	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	CompanyName string             `json:"companyName" bson:"companyName" index:"single:1"`
	Email       string             `json:"email,omitempty" bson:"email,omitempty"`
	Phone       string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Status      string             `json:"status" bson:"status" default:"見込み" index:"single:1"`
	ContactMemo string             `json:"contactMemo,omitempty" bson:"contactMemo,omitempty"`

	// Phân quyền dữ liệu: Firebase UID của user phụ trách
	AssignedUserID string `json:"assignedUserId" bson:"assignedUserId" index:"single:1,compound:crm_customer_assigned_created"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:-1,compound:crm_customer_assigned_created,order:-1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// DisplayName trả về tên hiển thị của khách hàng: ưu tiên tên công ty,
// không có thì dùng tên người liên hệ.
func (c Customer) DisplayName() string {
	if c.CompanyName != "" {
		return c.CompanyName
	}
	return c.Name
}
