// Package crmsvc - service cho domain CRM.
package crmsvc

import (
	"fmt"

	models "folk_crm/internal/api/crm/models"
	basesvc "folk_crm/internal/api/base/service"
	"folk_crm/internal/common"
	"folk_crm/internal/global"
)

// CustomerService là cấu trúc chứa các phương thức liên quan đến khách hàng
type CustomerService struct {
	*basesvc.BaseServiceMongoImpl[models.Customer]
}

// NewCustomerService tạo mới CustomerService
func NewCustomerService() (*CustomerService, error) {
	customerCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Customers)
	if !exist {
		return nil, fmt.Errorf("failed to get customers collection: %v", common.ErrNotFound)
	}

	return &CustomerService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Customer](customerCollection),
	}, nil
}
