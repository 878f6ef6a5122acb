package main

import (
	"context"

	authsvc "folk_crm/internal/api/auth/service"
	"folk_crm/internal/global"
	"folk_crm/internal/logger"
)

// InitDefaultData khởi tạo dữ liệu mặc định: nâng quyền admin cho user
// được chỉ định qua FIREBASE_ADMIN_UID (nếu có).
func InitDefaultData() {
	log := logger.GetAppLogger()

	adminUID := global.MongoDB_ServerConfig.FirebaseAdminUID
	if adminUID == "" {
		log.Info("FIREBASE_ADMIN_UID not set, bỏ qua bootstrap admin")
		return
	}

	userService, err := authsvc.NewUserService()
	if err != nil {
		log.Fatalf("Failed to create user service: %v", err)
	}

	// User phải đăng ký hồ sơ trước (POST /auth/register); khi đó
	// EnsureAdminByUID chỉ warn và lần chạy sau sẽ nâng quyền.
	if err := userService.EnsureAdminByUID(context.TODO(), adminUID); err != nil {
		log.Warnf("Failed to ensure admin user from Firebase UID: %v", err)
		return
	}
	log.Info("Admin user ensured from FIREBASE_ADMIN_UID")
}
