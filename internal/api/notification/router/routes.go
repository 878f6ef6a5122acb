// Package router đăng ký các route thuộc domain Notification.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"folk_crm/internal/api/middleware"
	notifhdl "folk_crm/internal/api/notification/handler"
	apirouter "folk_crm/internal/api/router"
)

// Register đăng ký tất cả route notification lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	notificationHandler, err := notifhdl.NewNotificationHandler()
	if err != nil {
		return fmt.Errorf("create notification handler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware(true)
	chain := []fiber.Handler{authMiddleware}

	// GET /notifications: thông báo chưa đọc của user đang gọi
	apirouter.RegisterRouteWithMiddleware(v1, "/notifications", "GET", "", chain, notificationHandler.HandleListUnread)
	// PUT /notifications/:id/read: đánh dấu đã đọc (idempotent)
	apirouter.RegisterRouteWithMiddleware(v1, "/notifications", "PUT", "/:id/read", chain, notificationHandler.HandleMarkAsRead)
	return nil
}
