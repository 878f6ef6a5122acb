// Package models - Contact thuộc domain CRM (crm_contacts).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact lưu lịch sử liên hệ / đối ứng với khách hàng (crm_contacts).
// CustomerID và AssignedUserID có thể rỗng: form công khai cho phép gửi
// không cần đăng nhập và không gắn với khách hàng nào.
type Contact struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CustomerID     primitive.ObjectID `json:"customerId,omitempty" bson:"customerId,omitempty" index:"single:1,compound:crm_contact_customer_created"`
	CustomerName   string             `json:"customerName,omitempty" bson:"customerName,omitempty"`
	ContactName    string             `json:"contactName" bson:"contactName"`
	ContactEmail   string             `json:"contactEmail" bson:"contactEmail"`
	ContactPhone   string             `json:"contactPhone,omitempty" bson:"contactPhone,omitempty"`
	Content        string             `json:"content" bson:"content"`
	ResponseStatus string             `json:"responseStatus" bson:"responseStatus" default:"未対応" index:"single:1"`
	Memo           string             `json:"memo,omitempty" bson:"memo,omitempty"`

	// Phân quyền dữ liệu: Firebase UID của user phụ trách đối ứng
	AssignedUserID string `json:"assignedUserId,omitempty" bson:"assignedUserId,omitempty" index:"single:1"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:-1,compound:crm_contact_customer_created,order:-1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
