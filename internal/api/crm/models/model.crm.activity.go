// Package models - Activity thuộc domain CRM (crm_activities).
package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Activity lưu nhật ký hoạt động trên dữ liệu CRM (crm_activities).
// Ghi best-effort: lỗi ghi activity không được làm fail request gốc.
type Activity struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	// Actor: Firebase UID của user thực hiện thao tác
	UserID string `json:"userId" bson:"userId" index:"single:1"`

	Action      string             `json:"action" bson:"action" index:"single:1"` // created | updated | deleted | commented | status_changed
	TargetModel string             `json:"targetModel" bson:"targetModel"`        // Customer | Sale | Task | Contact
	TargetID    primitive.ObjectID `json:"targetId" bson:"targetId" index:"single:1"`
	Description string             `json:"description" bson:"description"`

	// Tham chiếu dư thừa để query feed theo đối tượng
	CustomerID primitive.ObjectID `json:"customerId,omitempty" bson:"customerId,omitempty" index:"single:1"`
	SalesID    primitive.ObjectID `json:"salesId,omitempty" bson:"salesId,omitempty" index:"single:1"`
	TaskID     primitive.ObjectID `json:"taskId,omitempty" bson:"taskId,omitempty" index:"single:1"`

	// Owner của đối tượng tại thời điểm ghi (cho feed theo phạm vi user)
	AssignedUserID string `json:"assignedUserId,omitempty" bson:"assignedUserId,omitempty" index:"single:1"`

	// Snapshot trước/sau thao tác (phục vụ kiểm tra lại)
	Before bson.M `json:"before,omitempty" bson:"before,omitempty"`
	After  bson.M `json:"after,omitempty" bson:"after,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:-1"`
}

// ActivityWithActor là activity kèm thông tin hiển thị của actor (join từ crm_users).
type ActivityWithActor struct {
	Activity `bson:",inline"`

	Actor *ActivityActor `json:"actor,omitempty" bson:"actor,omitempty"`
}

// ActivityActor thông tin hiển thị của actor trong feed.
type ActivityActor struct {
	FirebaseUID string `json:"firebaseUid" bson:"firebaseUid"`
	DisplayName string `json:"displayName" bson:"displayName"`
	PhotoURL    string `json:"photoURL" bson:"photoURL"`
}
