package crmsvc

import (
	"fmt"

	basesvc "folk_crm/internal/api/base/service"
	models "folk_crm/internal/api/crm/models"
	"folk_crm/internal/common"
	"folk_crm/internal/global"
)

// TaskService là cấu trúc chứa các phương thức liên quan đến công việc
type TaskService struct {
	*basesvc.BaseServiceMongoImpl[models.Task]
}

// NewTaskService tạo mới TaskService
func NewTaskService() (*TaskService, error) {
	taskCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Tasks)
	if !exist {
		return nil, fmt.Errorf("failed to get tasks collection: %v", common.ErrNotFound)
	}

	return &TaskService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Task](taskCollection),
	}, nil
}

// CanModify kiểm tra quyền sửa task: người tạo, người được gán hoặc admin
func (s *TaskService) CanModify(task *models.Task, callerUID string, isAdmin bool) bool {
	if isAdmin {
		return true
	}
	return task.CreatedBy == callerUID || task.AssignedUserID == callerUID
}
