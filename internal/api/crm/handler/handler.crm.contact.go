package crmhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basehdl "folk_crm/internal/api/base/handler"
	basesvc "folk_crm/internal/api/base/service"
	crmdto "folk_crm/internal/api/crm/dto"
	models "folk_crm/internal/api/crm/models"
	crmsvc "folk_crm/internal/api/crm/service"
	"folk_crm/internal/common"
	"folk_crm/internal/logger"
	"folk_crm/internal/utility"
)

// ContactHandler xử lý request liên quan đến lịch sử đối ứng.
// Khác các collection khác, contact dùng route REST trực tiếp
// (POST /contacts, GET /contacts?customerId=...) thay vì bộ route CRUD chung.
type ContactHandler struct {
	*basehdl.BaseHandler[models.Contact, crmdto.ContactCreateInput, crmdto.ContactUpdateInput]
	contactService  *crmsvc.ContactService
	activityService *crmsvc.ActivityService
}

// NewContactHandler tạo mới ContactHandler
func NewContactHandler() (*ContactHandler, error) {
	contactService, err := crmsvc.NewContactService()
	if err != nil {
		return nil, fmt.Errorf("failed to create contact service: %w", err)
	}
	activityService, err := crmsvc.NewActivityService()
	if err != nil {
		return nil, fmt.Errorf("failed to create activity service: %w", err)
	}

	handler := &ContactHandler{
		contactService:  contactService,
		activityService: activityService,
	}
	handler.BaseHandler = basehdl.NewBaseHandler[models.Contact, crmdto.ContactCreateInput, crmdto.ContactUpdateInput](contactService)
	return handler, nil
}

// HandleCreate tạo lịch sử đối ứng mới.
// contactName và content bắt buộc (400 khi thiếu).
// POST /contacts
func (h *ContactHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input crmdto.ContactCreateInput
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
				TargetModel:    models.ActivityTargetContact,
				TargetID:       data.ID,
				Description:    crmsvc.BuildCreateDescription(models.ActivityTargetContact, data.ContactName),
				CustomerID:     data.CustomerID,
				AssignedUserID: data.AssignedUserID,
				After:          modelSnapshot(data),
			})
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandlePublicCreate nhận đối ứng từ form công khai, KHÔNG yêu cầu đăng nhập.
// Không gán assignedUserId (nhân viên nhận xử lý sau) và không ghi activity
// vì không có actor.
// POST /public/contacts
func (h *ContactHandler) HandlePublicCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input crmdto.ContactCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		// Form công khai không được tự gán người phụ trách
		input.AssignedUserID = ""

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

		data, err := h.BaseService.InsertOne(c.Context(), *model)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleList liệt kê lịch sử đối ứng, mới nhất trước.
// Query param customerId để lọc theo khách hàng (400 khi không phải ObjectID hợp lệ).
// User thường chỉ thấy contact được gán cho mình.
// GET /contacts?customerId=...
func (h *ContactHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter := bson.M{}
		if customerID := c.Query("customerId", ""); customerID != "" {
			if !primitive.IsValidObjectID(customerID) {
				h.HandleResponse(c, nil, common.NewError(
					common.ErrCodeValidationFormat,
					fmt.Sprintf("customerId '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", customerID),
					common.StatusBadRequest,
					nil,
				))
				return nil
			}
			filter["customerId"] = utility.String2ObjectID(customerID)
		}

		filter = h.ApplyOwnerFilter(c, filter)

		opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
		data, err := h.BaseService.Find(c.Context(), filter, opts)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleUpdate cập nhật lịch sử đối ứng theo ID (partial update).
// User thường chỉ sửa được contact của mình; gán sang user khác chỉ admin.
// PUT /contacts/:id
func (h *ContactHandler) HandleUpdate(c fiber.Ctx) error {
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

		var input crmdto.ContactUpdateInput
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
			description := crmsvc.BuildUpdateDescription(models.ActivityTargetContact, data.ContactName, beforeSnapshot, set)
			if description != "" {
				h.activityService.Record(c.Context(), models.Activity{
					UserID:         basehdl.GetCallerUID(c),
					Action:         updateAction(beforeSnapshot, set),
					TargetModel:    models.ActivityTargetContact,
					TargetID:       data.ID,
					Description:    description,
					CustomerID:     data.CustomerID,
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

// HandleDelete xóa lịch sử đối ứng theo ID.
// User thường chỉ xóa được contact của mình.
// DELETE /contacts/:id
func (h *ContactHandler) HandleDelete(c fiber.Ctx) error {
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
				TargetModel:    models.ActivityTargetContact,
				TargetID:       before.ID,
				Description:    crmsvc.BuildDeleteDescription(models.ActivityTargetContact, before.ContactName),
				CustomerID:     before.CustomerID,
				AssignedUserID: before.AssignedUserID,
				Before:         modelSnapshot(before),
			})
			logger.LogCRUD("delete", "contact", id, c, nil)
		}
		h.HandleResponse(c, nil, err)
		return nil
	})
}
