// Package models - Task thuộc domain CRM (crm_tasks).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task lưu công việc (crm_tasks).
// CreatedBy là Firebase UID của người tạo; chỉ người tạo hoặc người được gán
// (hoặc admin) mới được cập nhật.
type Task struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Status      string             `json:"status" bson:"status" default:"todo" index:"single:1"`
	DueDate     int64              `json:"dueDate,omitempty" bson:"dueDate,omitempty" index:"single:1"`

	// Phân quyền dữ liệu: Firebase UID của user được gán việc
	AssignedUserID string `json:"assignedUserId" bson:"assignedUserId" index:"single:1"`
	CreatedBy      string `json:"createdBy" bson:"createdBy" index:"single:1"`

	// Task luôn gắn với một khách hàng; thương vụ là tham chiếu tùy chọn
	CustomerID primitive.ObjectID `json:"customerId" bson:"customerId" index:"single:1"`
	SalesID    primitive.ObjectID `json:"salesId,omitempty" bson:"salesId,omitempty" index:"single:1"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
