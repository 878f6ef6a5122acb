package authdto

// UserRegisterInput đầu vào đăng ký hồ sơ người dùng.
// UID và email lấy từ token đã verify, body chỉ bổ sung displayName/photoURL
// khi token không mang đủ thông tin (ví dụ đăng nhập bằng số điện thoại).
type UserRegisterInput struct {
	DisplayName string `json:"displayName" validate:"omitempty,max=100"`
	PhotoURL    string `json:"photoURL" validate:"omitempty,max=500"`
}

// UserCreateInput đầu vào tạo người dùng (CRUD admin).
type UserCreateInput struct {
	FirebaseUID string `json:"firebaseUid" validate:"required,max=128"`
	Email       string `json:"email" validate:"omitempty,email"`
	DisplayName string `json:"displayName" validate:"omitempty,max=100"`
	PhotoURL    string `json:"photoURL" validate:"omitempty,max=500"`
	Role        string `json:"role" validate:"omitempty,oneof=user admin"`
}

// UserSetDisabledInput đầu vào bật/tắt vô hiệu hóa tài khoản (chỉ admin).
// Dùng con trỏ để phân biệt "thiếu field" với "disabled: false".
type UserSetDisabledInput struct {
	Disabled *bool `json:"disabled" validate:"required"`
}

// UserUpdateInput đầu vào cập nhật người dùng (CRUD admin).
type UserUpdateInput struct {
	Email       string `json:"email" validate:"omitempty,email"`
	DisplayName string `json:"displayName" validate:"omitempty,max=100"`
	PhotoURL    string `json:"photoURL" validate:"omitempty,max=500"`
	Role        string `json:"role" validate:"omitempty,oneof=user admin"`
}
