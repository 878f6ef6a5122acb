package crmhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "folk_crm/internal/api/base/handler"
	models "folk_crm/internal/api/crm/models"
	crmsvc "folk_crm/internal/api/crm/service"
	"folk_crm/internal/common"
	"folk_crm/internal/utility"
)

// ActivityHandler xử lý request đọc nhật ký hoạt động.
// Activity chỉ được ghi nội bộ từ các handler mutation, không có API tạo/sửa.
type ActivityHandler struct {
	*basehdl.BaseHandler[models.Activity, models.Activity, models.Activity]
	activityService *crmsvc.ActivityService
}

// NewActivityHandler tạo mới ActivityHandler
func NewActivityHandler() (*ActivityHandler, error) {
	activityService, err := crmsvc.NewActivityService()
	if err != nil {
		return nil, fmt.Errorf("failed to create activity service: %w", err)
	}

	handler := &ActivityHandler{
		activityService: activityService,
	}
	handler.BaseHandler = basehdl.NewBaseHandler[models.Activity, models.Activity, models.Activity](activityService)
	return handler, nil
}

// parseObjectIDParam đọc một param ObjectID từ URL, 400 khi không hợp lệ.
func (h *ActivityHandler) parseObjectIDParam(c fiber.Ctx, name string) (primitive.ObjectID, error) {
	raw := c.Params(name)
	if !primitive.IsValidObjectID(raw) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("%s '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", name, raw),
			common.StatusBadRequest,
			nil,
		)
	}
	return utility.String2ObjectID(raw), nil
}

// HandleListMine trả về feed của user đang gọi (tối đa 50, mới nhất trước).
// GET /activities
func (h *ActivityHandler) HandleListMine(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		data, err := h.activityService.ListMine(c.Context(), basehdl.GetCallerUID(c))
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleListAll trả về feed toàn hệ thống (tối đa 100). Route đã gắn RequireAdmin.
// GET /activities/all
func (h *ActivityHandler) HandleListAll(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		data, err := h.activityService.ListAll(c.Context())
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleListForTask trả về activity của một task kèm thông tin actor.
// GET /activities/task/:taskId
func (h *ActivityHandler) HandleListForTask(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		taskID, err := h.parseObjectIDParam(c, "taskId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.activityService.ListForTask(c.Context(), taskID)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleListForCustomer trả về activity của một khách hàng trong phạm vi người gọi.
// GET /activities/customer/:customerId
func (h *ActivityHandler) HandleListForCustomer(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		customerID, err := h.parseObjectIDParam(c, "customerId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.activityService.ListForCustomer(c.Context(), customerID, basehdl.GetCallerUID(c), basehdl.IsAdmin(c))
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleListForSales trả về activity của một thương vụ trong phạm vi người gọi.
// GET /activities/sales/:salesId
func (h *ActivityHandler) HandleListForSales(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		salesID, err := h.parseObjectIDParam(c, "salesId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.activityService.ListForSales(c.Context(), salesID, basehdl.GetCallerUID(c), basehdl.IsAdmin(c))
		h.HandleResponse(c, data, err)
		return nil
	})
}
