// Package models - Sale thuộc domain CRM (crm_sales).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sale lưu thương vụ bán hàng (crm_sales).
// DueDate là Unix ms, 0 = chưa đặt hạn (bị loại khỏi upcomingDeals).
type Sale struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	DealName   string             `json:"dealName" bson:"dealName"`
	CustomerID primitive.ObjectID `json:"customerId" bson:"customerId" index:"single:1"`
	Amount     float64            `json:"amount" bson:"amount"`
	Status     string             `json:"status" bson:"status" default:"見込み" index:"single:1"`
	DueDate    int64              `json:"dueDate,omitempty" bson:"dueDate,omitempty" index:"single:1,compound:crm_sale_assigned_due"`
	Notes      string             `json:"notes,omitempty" bson:"notes,omitempty"`

	// Phân quyền dữ liệu: Firebase UID của user phụ trách
	AssignedUserID string `json:"assignedUserId" bson:"assignedUserId" index:"single:1,compound:crm_sale_assigned_due"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
