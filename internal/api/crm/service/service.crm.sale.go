package crmsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "folk_crm/internal/api/base/service"
	crmdto "folk_crm/internal/api/crm/dto"
	models "folk_crm/internal/api/crm/models"
	"folk_crm/internal/common"
	"folk_crm/internal/global"
)

// salesStatusRow là một dòng kết quả của pipeline group theo trạng thái
type salesStatusRow struct {
	Status      string  `bson:"_id"`
	Count       int64   `bson:"count"`
	TotalAmount float64 `bson:"totalAmount"`
}

// buildStatusSummary chuyển kết quả group theo trạng thái sang DTO.
// Mỗi trạng thái mang cả số thương vụ lẫn tổng tiền.
func buildStatusSummary(rows []salesStatusRow) []crmdto.SalesSummaryStatusItem {
	items := make([]crmdto.SalesSummaryStatusItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, crmdto.SalesSummaryStatusItem{
			Status:      row.Status,
			Count:       row.Count,
			TotalAmount: row.TotalAmount,
		})
	}
	return items
}

// SaleService là cấu trúc chứa các phương thức liên quan đến thương vụ
type SaleService struct {
	*basesvc.BaseServiceMongoImpl[models.Sale]
	customerService *basesvc.BaseServiceMongoImpl[models.Customer]
}

// NewSaleService tạo mới SaleService
func NewSaleService() (*SaleService, error) {
	saleCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Sales)
	if !exist {
		return nil, fmt.Errorf("failed to get sales collection: %v", common.ErrNotFound)
	}
	customerCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Customers)
	if !exist {
		return nil, fmt.Errorf("failed to get customers collection: %v", common.ErrNotFound)
	}

	return &SaleService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Sale](saleCollection),
		customerService:      basesvc.NewBaseServiceMongo[models.Customer](customerCollection),
	}, nil
}

// Summary tính tổng hợp doanh số trong phạm vi scope (bson.M{} = toàn bộ, admin).
// - totalSales / totalDeals / averageDealValue (0 khi chưa có thương vụ)
// - statusSummary: số thương vụ và tổng tiền theo từng trạng thái
// - customerSales: tổng theo khách hàng, gắn tên hiển thị của khách
// - upcomingDeals: dueDate trong [hôm nay 00:00, +7 ngày], bỏ thương vụ không có hạn, sort tăng dần
func (s *SaleService) Summary(ctx context.Context, scope bson.M) (*crmdto.SalesSummaryResponse, error) {
	if scope == nil {
		scope = bson.M{}
	}

	result := &crmdto.SalesSummaryResponse{
		StatusSummary: []crmdto.SalesSummaryStatusItem{},
		CustomerSales: []crmdto.SalesSummaryCustomerItem{},
		UpcomingDeals: []models.Sale{},
	}

	// Tổng doanh số + số thương vụ
	totalPipeline := mongo.Pipeline{
		{{Key: "$match", Value: scope}},
		{{Key: "$group", Value: bson.M{
			"_id":        nil,
			"totalSales": bson.M{"$sum": "$amount"},
			"totalDeals": bson.M{"$sum": 1},
		}}},
	}
	cursor, err := s.Collection().Aggregate(ctx, totalPipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	var totals []struct {
		TotalSales float64 `bson:"totalSales"`
		TotalDeals int64   `bson:"totalDeals"`
	}
	if err := cursor.All(ctx, &totals); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if len(totals) > 0 {
		result.TotalSales = totals[0].TotalSales
		result.TotalDeals = totals[0].TotalDeals
		if result.TotalDeals > 0 {
			result.AverageDealValue = result.TotalSales / float64(result.TotalDeals)
		}
	}

	// Số thương vụ và tổng tiền theo trạng thái, sort theo trạng thái cho ổn định
	statusPipeline := mongo.Pipeline{
		{{Key: "$match", Value: scope}},
		{{Key: "$group", Value: bson.M{
			"_id":         "$status",
			"count":       bson.M{"$sum": 1},
			"totalAmount": bson.M{"$sum": "$amount"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
	cursor, err = s.Collection().Aggregate(ctx, statusPipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	var statusRows []salesStatusRow
	if err := cursor.All(ctx, &statusRows); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	result.StatusSummary = buildStatusSummary(statusRows)

	// Tổng theo khách hàng, sort tổng giảm dần
	customerPipeline := mongo.Pipeline{
		{{Key: "$match", Value: scope}},
		{{Key: "$group", Value: bson.M{
			"_id":         "$customerId",
			"totalAmount": bson.M{"$sum": "$amount"},
			"dealCount":   bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "totalAmount", Value: -1}}}},
	}
	cursor, err = s.Collection().Aggregate(ctx, customerPipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	var customerRows []struct {
		CustomerID  primitive.ObjectID `bson:"_id"`
		TotalAmount float64            `bson:"totalAmount"`
		DealCount   int64              `bson:"dealCount"`
	}
	if err := cursor.All(ctx, &customerRows); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	// Gắn companyName cho từng khách hàng
	if len(customerRows) > 0 {
		customerIDs := make([]primitive.ObjectID, 0, len(customerRows))
		for _, row := range customerRows {
			customerIDs = append(customerIDs, row.CustomerID)
		}
		customers, err := s.customerService.FindManyByIds(ctx, customerIDs)
		if err != nil {
			return nil, err
		}
		nameByID := make(map[primitive.ObjectID]string, len(customers))
		for _, customer := range customers {
			nameByID[customer.ID] = customer.DisplayName()
		}
		for _, row := range customerRows {
			companyName := nameByID[row.CustomerID]
			if companyName == "" {
				companyName = "不明な顧客"
			}
			result.CustomerSales = append(result.CustomerSales, crmdto.SalesSummaryCustomerItem{
				CustomerID:  row.CustomerID.Hex(),
				CompanyName: companyName,
				TotalAmount: row.TotalAmount,
				DealCount:   row.DealCount,
			})
		}
	}

	// Thương vụ sắp đến hạn trong 7 ngày tới (từ 00:00 hôm nay), không có hạn thì bỏ qua
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	rangeStart := startOfDay.UnixMilli()
	rangeEnd := startOfDay.AddDate(0, 0, 7).UnixMilli()

	upcomingFilter := bson.M{"dueDate": bson.M{"$gte": rangeStart, "$lte": rangeEnd}}
	for k, v := range scope {
		upcomingFilter[k] = v
	}
	upcomingOpts := options.Find().SetSort(bson.D{{Key: "dueDate", Value: 1}})
	upcoming, err := s.Find(ctx, upcomingFilter, upcomingOpts)
	if err != nil {
		return nil, err
	}
	result.UpcomingDeals = upcoming

	return result, nil
}
