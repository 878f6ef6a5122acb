// Package models - Notification trong ứng dụng (crm_notifications).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification là thông báo in-app cho một user (crm_notifications).
// TargetUser là Firebase UID của người nhận.
type Notification struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	TargetUser string             `json:"targetUser" bson:"targetUser" index:"single:1,compound:crm_notification_target_created"`
	Message    string             `json:"message" bson:"message"`

	// Task liên quan (fan-out khi tạo/xóa task)
	RelatedTask primitive.ObjectID `json:"relatedTask,omitempty" bson:"relatedTask,omitempty" index:"single:1"`

	IsRead    bool  `json:"isRead" bson:"isRead" index:"single:1"`
	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:-1,compound:crm_notification_target_created,order:-1"`
}
