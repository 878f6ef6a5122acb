package crmsvc

import (
	"fmt"

	basesvc "folk_crm/internal/api/base/service"
	models "folk_crm/internal/api/crm/models"
	"folk_crm/internal/common"
	"folk_crm/internal/global"
)

// ContactService là cấu trúc chứa các phương thức liên quan đến lịch sử đối ứng
type ContactService struct {
	*basesvc.BaseServiceMongoImpl[models.Contact]
}

// NewContactService tạo mới ContactService
func NewContactService() (*ContactService, error) {
	contactCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Contacts)
	if !exist {
		return nil, fmt.Errorf("failed to get contacts collection: %v", common.ErrNotFound)
	}

	return &ContactService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Contact](contactCollection),
	}, nil
}
