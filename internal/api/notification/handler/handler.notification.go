// Package notifhdl - handler cho thông báo in-app.
package notifhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "folk_crm/internal/api/base/handler"
	notifdto "folk_crm/internal/api/notification/dto"
	models "folk_crm/internal/api/notification/models"
	notifsvc "folk_crm/internal/api/notification/service"
	"folk_crm/internal/common"
	"folk_crm/internal/utility"
)

// NotificationHandler xử lý request liên quan đến thông báo
type NotificationHandler struct {
	*basehdl.BaseHandler[models.Notification, notifdto.NotificationCreateInput, notifdto.NotificationUpdateInput]
	notificationService *notifsvc.NotificationService
}

// NewNotificationHandler tạo mới NotificationHandler
func NewNotificationHandler() (*NotificationHandler, error) {
	notificationService, err := notifsvc.NewNotificationService()
	if err != nil {
		return nil, fmt.Errorf("failed to create notification service: %w", err)
	}

	handler := &NotificationHandler{
		notificationService: notificationService,
	}
	handler.BaseHandler = basehdl.NewBaseHandler[models.Notification, notifdto.NotificationCreateInput, notifdto.NotificationUpdateInput](notificationService)
	return handler, nil
}

// HandleListUnread trả về thông báo chưa đọc của user đang gọi, mới nhất trước.
// GET /notifications
func (h *NotificationHandler) HandleListUnread(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		data, err := h.notificationService.ListUnread(c.Context(), basehdl.GetCallerUID(c))
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleMarkAsRead đánh dấu một thông báo đã đọc (idempotent).
// PUT /notifications/:id/read
func (h *NotificationHandler) HandleMarkAsRead(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if !primitive.IsValidObjectID(id) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		data, err := h.notificationService.MarkAsRead(c.Context(), utility.String2ObjectID(id), basehdl.GetCallerUID(c))
		h.HandleResponse(c, data, err)
		return nil
	})
}
