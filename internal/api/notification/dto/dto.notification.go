package dto

// NotificationCreateInput đầu vào tạo thông báo (chỉ dùng nội bộ / admin).
type NotificationCreateInput struct {
	TargetUser  string `json:"targetUser" validate:"required,max=128"`
	Message     string `json:"message" validate:"required,max=1000"`
	RelatedTask string `json:"relatedTask" validate:"omitempty,len=24" transform:"str_objectid,map=RelatedTask,optional"`
}

// NotificationUpdateInput đầu vào cập nhật thông báo.
type NotificationUpdateInput struct {
	IsRead bool `json:"isRead"`
}
