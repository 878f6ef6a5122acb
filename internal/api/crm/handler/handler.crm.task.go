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
	notifsvc "folk_crm/internal/api/notification/service"
	"folk_crm/internal/common"
	"folk_crm/internal/logger"
	"folk_crm/internal/utility"
)

// TaskHandler xử lý request liên quan đến công việc.
// Tạo/xóa task fan-out thông báo cho người được gán và người tạo
// (loại trùng khi là cùng một người); cập nhật task KHÔNG tạo thông báo.
type TaskHandler struct {
	*basehdl.BaseHandler[models.Task, crmdto.TaskCreateInput, crmdto.TaskUpdateInput]
	taskService         *crmsvc.TaskService
	activityService     *crmsvc.ActivityService
	notificationService *notifsvc.NotificationService
}

// NewTaskHandler tạo mới TaskHandler
func NewTaskHandler() (*TaskHandler, error) {
	taskService, err := crmsvc.NewTaskService()
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}
	activityService, err := crmsvc.NewActivityService()
	if err != nil {
		return nil, fmt.Errorf("failed to create activity service: %w", err)
	}
	notificationService, err := notifsvc.NewNotificationService()
	if err != nil {
		return nil, fmt.Errorf("failed to create notification service: %w", err)
	}

	handler := &TaskHandler{
		taskService:         taskService,
		activityService:     activityService,
		notificationService: notificationService,
	}
	handler.BaseHandler = basehdl.NewBaseHandler[models.Task, crmdto.TaskCreateInput, crmdto.TaskUpdateInput](taskService)
	return handler, nil
}

// loadTaskForModify lấy task theo ID và kiểm tra quyền sửa/xóa:
// chỉ người tạo, người được gán hoặc admin. Không tồn tại → 404 trước, sai quyền → 403.
func (h *TaskHandler) loadTaskForModify(c fiber.Ctx, id string) (*models.Task, error) {
	task, err := h.BaseService.FindOneById(c.Context(), utility.String2ObjectID(id))
	if err != nil {
		return nil, err
	}
	if !h.taskService.CanModify(&task, basehdl.GetCallerUID(c), basehdl.IsAdmin(c)) {
		return nil, common.NewError(
			common.ErrCodeAuthRole,
			"Không có quyền truy cập",
			common.StatusForbidden,
			nil,
		)
	}
	return &task, nil
}

// InsertOne tạo task mới: CreatedBy luôn là người gọi, ghi activity created
// và fan-out thông báo cho người được gán + người tạo (loại trùng).
func (h *TaskHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input crmdto.TaskCreateInput
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
		model.CreatedBy = basehdl.GetCallerUID(c)

		data, err := h.BaseService.InsertOne(c.Context(), *model)
		if err == nil {
			actorUID := basehdl.GetCallerUID(c)
			h.activityService.Record(c.Context(), models.Activity{
				UserID:         actorUID,
				Action:         models.ActivityActionCreated,
				TargetModel:    models.ActivityTargetTask,
				TargetID:       data.ID,
				Description:    crmsvc.BuildCreateDescription(models.ActivityTargetTask, data.Title),
				CustomerID:     data.CustomerID,
				SalesID:        data.SalesID,
				TaskID:         data.ID,
				AssignedUserID: data.AssignedUserID,
				After:          modelSnapshot(data),
			})

			recipients := notifsvc.BuildRecipients(data.AssignedUserID, data.CreatedBy)
			message := fmt.Sprintf("%sさんがタスク「%s」を作成しました", actorDisplayName(c), data.Title)
			h.notificationService.FanOut(c.Context(), recipients, message, data.ID)
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// UpdateById cập nhật task theo ID (partial update).
// Chỉ người tạo, người được gán hoặc admin; KHÔNG fan-out thông báo.
func (h *TaskHandler) UpdateById(c fiber.Ctx) error {
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

		before, err := h.loadTaskForModify(c, id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input crmdto.TaskUpdateInput
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
			description := crmsvc.BuildUpdateDescription(models.ActivityTargetTask, data.Title, beforeSnapshot, set)
			if description != "" {
				h.activityService.Record(c.Context(), models.Activity{
					UserID:         basehdl.GetCallerUID(c),
					Action:         updateAction(beforeSnapshot, set),
					TargetModel:    models.ActivityTargetTask,
					TargetID:       data.ID,
					Description:    description,
					CustomerID:     data.CustomerID,
					SalesID:        data.SalesID,
					TaskID:         data.ID,
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

// DeleteById xóa task theo ID, ghi activity deleted và fan-out thông báo.
func (h *TaskHandler) DeleteById(c fiber.Ctx) error {
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

		before, err := h.loadTaskForModify(c, id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.BaseService.DeleteById(c.Context(), utility.String2ObjectID(id))
		if err == nil {
			actorUID := basehdl.GetCallerUID(c)
			h.activityService.Record(c.Context(), models.Activity{
				UserID:         actorUID,
				Action:         models.ActivityActionDeleted,
				TargetModel:    models.ActivityTargetTask,
				TargetID:       before.ID,
				Description:    crmsvc.BuildDeleteDescription(models.ActivityTargetTask, before.Title),
				CustomerID:     before.CustomerID,
				SalesID:        before.SalesID,
				TaskID:         before.ID,
				AssignedUserID: before.AssignedUserID,
				Before:         modelSnapshot(before),
			})

			recipients := notifsvc.BuildRecipients(before.AssignedUserID, before.CreatedBy)
			message := fmt.Sprintf("%sさんがタスク「%s」を削除しました", actorDisplayName(c), before.Title)
			h.notificationService.FanOut(c.Context(), recipients, message, before.ID)
			logger.LogCRUD("delete", "task", id, c, nil)
		}
		h.HandleResponse(c, nil, err)
		return nil
	})
}
