// Package router đăng ký các route thuộc domain auth: hồ sơ người dùng và system.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "folk_crm/internal/api/auth/handler"
	basehdl "folk_crm/internal/api/base/handler"
	"folk_crm/internal/api/middleware"
	apirouter "folk_crm/internal/api/router"
)

// Register đăng ký tất cả route auth (users, system) lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerSystemRoutes(v1); err != nil {
		return err
	}
	if err := registerUserRoutes(v1, r); err != nil {
		return err
	}
	return nil
}

func registerSystemRoutes(router fiber.Router) error {
	systemHandler, err := basehdl.NewSystemHandler()
	if err != nil {
		return fmt.Errorf("failed to create system handler: %w", err)
	}
	router.Get("/system/health", systemHandler.HandleHealth)
	return nil
}

func registerUserRoutes(router fiber.Router, r *apirouter.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}

	// Đăng ký hồ sơ: chỉ cần token hợp lệ, chưa cần hồ sơ local.
	// Để prefix riêng /auth: middleware gắn qua group.Use áp dụng theo prefix,
	// nếu đặt dưới /users thì AuthMiddleware(true) của các route bên dưới cũng chạy.
	registerMiddleware := middleware.AuthMiddleware(false)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "POST", "/register", []fiber.Handler{registerMiddleware}, userHandler.HandleRegister)

	authMiddleware := middleware.AuthMiddleware(true)
	apirouter.RegisterRouteWithMiddleware(router, "/users", "GET", "/me", []fiber.Handler{authMiddleware}, userHandler.HandleGetMe)
	apirouter.RegisterRouteWithMiddleware(router, "/users", "GET", "", []fiber.Handler{authMiddleware}, userHandler.HandleListUsers)

	// CRUD quản trị (đổi role, sửa hồ sơ): chỉ admin
	adminChain := []fiber.Handler{middleware.AuthMiddleware(true), middleware.RequireAdmin()}
	r.RegisterCRUDRoutes(router, "/admin/users", userHandler, apirouter.ReadWriteConfig, adminChain)

	// Vô hiệu hóa / kích hoạt lại tài khoản theo Firebase UID: chỉ admin
	apirouter.RegisterRouteWithMiddleware(router, "/admin/users", "PUT", "/:id/disabled", adminChain, userHandler.HandleSetDisabled)

	return nil
}
