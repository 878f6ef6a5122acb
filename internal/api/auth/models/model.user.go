// Package models - model người dùng (User) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User định nghĩa hồ sơ người dùng local, mirror từ tài khoản Firebase.
// FirebaseUID là khóa liên kết với Firebase Auth (token.UID).
// Role quyết định phạm vi truy cập dữ liệu: "admin" thấy tất cả, "user" chỉ
// thấy dữ liệu có assignedUserId là UID của mình.
type User struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	FirebaseUID string             `json:"firebaseUid" bson:"firebaseUid" index:"unique"`
	Email       string             `json:"email,omitempty" bson:"email,omitempty" index:"unique,sparse"`
	DisplayName string             `json:"displayName" bson:"displayName"`
	PhotoURL    string             `json:"photoURL" bson:"photoURL"`
	Role        string             `json:"role" bson:"role" default:"user"`

	// IsActive = false khi admin vô hiệu hóa tài khoản (đồng bộ với trạng thái
	// disabled bên Firebase). User bị vô hiệu hóa không đăng nhập được.
	IsActive bool `json:"isActive" bson:"isActive" default:"true"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// UserPaginateResult đại diện cho kết quả phân trang User
type UserPaginateResult struct {
	Page      int64  `json:"page" bson:"page"`
	Limit     int64  `json:"limit" bson:"limit"`
	ItemCount int64  `json:"itemCount" bson:"itemCount"`
	Items     []User `json:"items" bson:"items"`
}
