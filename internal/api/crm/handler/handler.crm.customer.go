package crmhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "folk_crm/internal/api/base/handler"
	basesvc "folk_crm/internal/api/base/service"
	crmdto "folk_crm/internal/api/crm/dto"
	models "folk_crm/internal/api/crm/models"
	crmsvc "folk_crm/internal/api/crm/service"
	"folk_crm/internal/common"
	"folk_crm/internal/logger"
	"folk_crm/internal/utility"
)

// CustomerHandler xử lý request liên quan đến khách hàng
type CustomerHandler struct {
	*basehdl.BaseHandler[models.Customer, crmdto.CustomerCreateInput, crmdto.CustomerUpdateInput]
	customerService *crmsvc.CustomerService
	activityService *crmsvc.ActivityService
}

// NewCustomerHandler tạo mới CustomerHandler
func NewCustomerHandler() (*CustomerHandler, error) {
	customerService, err := crmsvc.NewCustomerService()
	if err != nil {
		return nil, fmt.Errorf("failed to create customer service: %w", err)
	}
	activityService, err := crmsvc.NewActivityService()
	if err != nil {
		return nil, fmt.Errorf("failed to create activity service: %w", err)
	}

	handler := &CustomerHandler{
		customerService: customerService,
		activityService: activityService,
	}
	handler.BaseHandler = basehdl.NewBaseHandler[models.Customer, crmdto.CustomerCreateInput, crmdto.CustomerUpdateInput](customerService)
	return handler, nil
}

// InsertOne tạo khách hàng mới, ghi activity created sau khi tạo thành công.
func (h *CustomerHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input crmdto.CustomerCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		model, err := h.TransformCreateInputToModel(&input)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Lỗi transform dữ liệu: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		if err := h.ValidateAssignedUser(c, model.AssignedUserID); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.SetAssignedUser(model, basehdl.GetCallerUID(c))

		data, err := h.BaseService.InsertOne(c.Context(), *model)
		if err == nil {
			h.activityService.Record(c.Context(), models.Activity{
				UserID:         basehdl.GetCallerUID(c),
				Action:         models.ActivityActionCreated,
				TargetModel:    models.ActivityTargetCustomer,
				TargetID:       data.ID,
				Description:    crmsvc.BuildCreateDescription(models.ActivityTargetCustomer, data.DisplayName()),
				CustomerID:     data.ID,
				AssignedUserID: data.AssignedUserID,
				After:          modelSnapshot(data),
			})
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// UpdateById cập nhật khách hàng theo ID (partial update), ghi activity với diff
// trước/sau. Không có thay đổi thực sự thì không ghi activity.
func (h *CustomerHandler) UpdateById(c fiber.Ctx) error {
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

		if err := h.ValidateOwnerAccess(c, id); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		before, err := h.BaseService.FindOneById(c.Context(), utility.String2ObjectID(id))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input crmdto.CustomerUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		model, err := h.TransformUpdateInputToModel(&input)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Lỗi transform dữ liệu: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		if err := h.ValidateAssignedUser(c, model.AssignedUserID); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		set, err := buildUpdateSet(model, c.Body())
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Lỗi convert model sang map: %v", err),
				common.StatusInternalServerError,
				err,
			))
			return nil
		}

		data, err := h.BaseService.UpdateById(c.Context(), utility.String2ObjectID(id), &basesvc.UpdateData{Set: set})
		if err == nil {
			beforeSnapshot := modelSnapshot(before)
			description := crmsvc.BuildUpdateDescription(models.ActivityTargetCustomer, data.DisplayName(), beforeSnapshot, set)
			if description != "" {
				h.activityService.Record(c.Context(), models.Activity{
					UserID:         basehdl.GetCallerUID(c),
					Action:         updateAction(beforeSnapshot, set),
					TargetModel:    models.ActivityTargetCustomer,
					TargetID:       data.ID,
					Description:    description,
					CustomerID:     data.ID,
					AssignedUserID: data.AssignedUserID,
					Before:         beforeSnapshot,
					After:          modelSnapshot(data),
				})
			}
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// DeleteById xóa khách hàng theo ID.
// Còn sale/task/contact tham chiếu → 409 (restrict-delete ở service layer).
func (h *CustomerHandler) DeleteById(c fiber.Ctx) error {
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

		if err := h.ValidateOwnerAccess(c, id); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		before, err := h.BaseService.FindOneById(c.Context(), utility.String2ObjectID(id))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.BaseService.DeleteById(c.Context(), utility.String2ObjectID(id))
		if err == nil {
			h.activityService.Record(c.Context(), models.Activity{
				UserID:         basehdl.GetCallerUID(c),
				Action:         models.ActivityActionDeleted,
				TargetModel:    models.ActivityTargetCustomer,
				TargetID:       before.ID,
				Description:    crmsvc.BuildDeleteDescription(models.ActivityTargetCustomer, before.DisplayName()),
				CustomerID:     before.ID,
				AssignedUserID: before.AssignedUserID,
				Before:         modelSnapshot(before),
			})
			logger.LogCRUD("delete", "customer", id, c, nil)
		}
		h.HandleResponse(c, nil, err)
		return nil
	})
}
