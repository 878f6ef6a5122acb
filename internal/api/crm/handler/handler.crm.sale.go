package crmhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
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

// SaleHandler xử lý request liên quan đến thương vụ
type SaleHandler struct {
	*basehdl.BaseHandler[models.Sale, crmdto.SaleCreateInput, crmdto.SaleUpdateInput]
	saleService     *crmsvc.SaleService
	activityService *crmsvc.ActivityService
}

// NewSaleHandler tạo mới SaleHandler
func NewSaleHandler() (*SaleHandler, error) {
	saleService, err := crmsvc.NewSaleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create sale service: %w", err)
	}
	activityService, err := crmsvc.NewActivityService()
	if err != nil {
		return nil, fmt.Errorf("failed to create activity service: %w", err)
	}

	handler := &SaleHandler{
		saleService:     saleService,
		activityService: activityService,
	}
	handler.BaseHandler = basehdl.NewBaseHandler[models.Sale, crmdto.SaleCreateInput, crmdto.SaleUpdateInput](saleService)
	return handler, nil
}

// HandleSummary trả về tổng hợp doanh số trong phạm vi của người gọi.
// Admin thấy toàn hệ thống, user thường chỉ thấy thương vụ được gán cho mình.
// GET /sales/summary
func (h *SaleHandler) HandleSummary(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		scope := bson.M{}
		if !basehdl.IsAdmin(c) {
			scope["assignedUserId"] = basehdl.GetCallerUID(c)
		}
		data, err := h.saleService.Summary(c.Context(), scope)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// InsertOne tạo thương vụ mới, ghi activity created sau khi tạo thành công.
func (h *SaleHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input crmdto.SaleCreateInput
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
				TargetModel:    models.ActivityTargetSale,
				TargetID:       data.ID,
				Description:    crmsvc.BuildCreateDescription(models.ActivityTargetSale, data.DealName),
				CustomerID:     data.CustomerID,
				SalesID:        data.ID,
				AssignedUserID: data.AssignedUserID,
				After:          modelSnapshot(data),
			})
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// UpdateById cập nhật thương vụ theo ID (partial update), ghi activity với diff.
// Đổi status → action status_changed.
func (h *SaleHandler) UpdateById(c fiber.Ctx) error {
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

		var input crmdto.SaleUpdateInput
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
			description := crmsvc.BuildUpdateDescription(models.ActivityTargetSale, data.DealName, beforeSnapshot, set)
			if description != "" {
				h.activityService.Record(c.Context(), models.Activity{
					UserID:         basehdl.GetCallerUID(c),
					Action:         updateAction(beforeSnapshot, set),
					TargetModel:    models.ActivityTargetSale,
					TargetID:       data.ID,
					Description:    description,
					CustomerID:     data.CustomerID,
					SalesID:        data.ID,
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

// DeleteById xóa thương vụ theo ID, ghi activity deleted với snapshot trước khi xóa.
func (h *SaleHandler) DeleteById(c fiber.Ctx) error {
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
				TargetModel:    models.ActivityTargetSale,
				TargetID:       before.ID,
				Description:    crmsvc.BuildDeleteDescription(models.ActivityTargetSale, before.DealName),
				CustomerID:     before.CustomerID,
				SalesID:        before.ID,
				AssignedUserID: before.AssignedUserID,
				Before:         modelSnapshot(before),
			})
			logger.LogCRUD("delete", "sale", id, c, nil)
		}
		h.HandleResponse(c, nil, err)
		return nil
	})
}
