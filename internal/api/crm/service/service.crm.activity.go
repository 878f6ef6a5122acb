package crmsvc

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	authmodels "folk_crm/internal/api/auth/models"
	basesvc "folk_crm/internal/api/base/service"
	models "folk_crm/internal/api/crm/models"
	"folk_crm/internal/common"
	"folk_crm/internal/global"
	"folk_crm/internal/logger"
)

// Giới hạn số activity trả về cho từng feed
const (
	activityFeedLimitMine = 50
	activityFeedLimitAll  = 100
)

// Nhãn tiếng Nhật cho từng field trong description của activity update
var activityFieldLabels = map[string]string{
	"name":           "名前",
	"companyName":    "会社名",
	"contactName":    "担当者名",
	"email":          "メール",
	"phone":          "電話番号",
	"contactMemo":    "対応メモ",
	"status":         "ステータス",
	"assignedUserId": "担当者",
	"dealName":       "案件名",
	"customerId":     "顧客",
	"salesId":        "商談",
	"amount":         "金額",
	"dueDate":        "期日",
	"notes":          "メモ",
	"memo":           "メモ",
	"title":          "タイトル",
	"description":    "詳細",
	"content":        "内容",
	"contactEmail":   "メールアドレス",
	"contactPhone":   "電話番号",
	"customerName":   "顧客名",
	"responseStatus": "対応状況",
	"createdBy":      "作成者",
}

// Nhãn tiếng Nhật cho targetModel
var activityTargetLabels = map[string]string{
	models.ActivityTargetCustomer: "顧客",
	models.ActivityTargetSale:     "商談",
	models.ActivityTargetTask:     "タスク",
	models.ActivityTargetContact:  "対応履歴",
}

// ActivityService là cấu trúc chứa các phương thức liên quan đến nhật ký hoạt động
type ActivityService struct {
	*basesvc.BaseServiceMongoImpl[models.Activity]
	userService *basesvc.BaseServiceMongoImpl[authmodels.User]
}

// NewActivityService tạo mới ActivityService
func NewActivityService() (*ActivityService, error) {
	activityCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Activities)
	if !exist {
		return nil, fmt.Errorf("failed to get activities collection: %v", common.ErrNotFound)
	}
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &ActivityService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Activity](activityCollection),
		userService:          basesvc.NewBaseServiceMongo[authmodels.User](userCollection),
	}, nil
}

// Record ghi một activity, best-effort: lỗi chỉ được log vào error logger,
// KHÔNG trả về để không làm fail request gốc.
func (s *ActivityService) Record(ctx context.Context, activity models.Activity) {
	if activity.CreatedAt == 0 {
		activity.CreatedAt = time.Now().UnixMilli()
	}
	if _, err := s.Collection().InsertOne(ctx, activity); err != nil {
		logger.GetErrorLogger().WithFields(logrus.Fields{
			"action":       activity.Action,
			"target_model": activity.TargetModel,
			"target_id":    activity.TargetID.Hex(),
			"error":        err.Error(),
		}).Error("Record: Lỗi khi ghi activity, bỏ qua")
	}
}

// BuildCreateDescription tạo mô tả cho activity created, ví dụ: 顧客「ACME」を作成しました
func BuildCreateDescription(targetModel, displayName string) string {
	return fmt.Sprintf("%s「%s」を作成しました", activityTargetLabels[targetModel], displayName)
}

// BuildDeleteDescription tạo mô tả cho activity deleted
func BuildDeleteDescription(targetModel, displayName string) string {
	return fmt.Sprintf("%s「%s」を削除しました", activityTargetLabels[targetModel], displayName)
}

// BuildUpdateDescription tạo mô tả cho activity updated từ diff giữa trước/sau.
// Mỗi field đổi giá trị thành một dòng 「ラベル: 旧値 → 新値」, nối bằng "\n- ".
// Trả về chuỗi rỗng khi không có thay đổi nào (caller KHÔNG được ghi activity).
func BuildUpdateDescription(targetModel, displayName string, before bson.M, set map[string]interface{}) string {
	clauses := buildDiffClauses(before, set)
	if len(clauses) == 0 {
		return ""
	}
	desc := fmt.Sprintf("%s「%s」を更新しました", activityTargetLabels[targetModel], displayName)
	for _, clause := range clauses {
		desc += "\n- " + clause
	}
	return desc
}

// buildDiffClauses so sánh map $set với document trước đó, trả về danh sách thay đổi.
// updatedAt/createdAt/_id không tính là thay đổi nghiệp vụ.
func buildDiffClauses(before bson.M, set map[string]interface{}) []string {
	skip := map[string]bool{"updatedAt": true, "createdAt": true, "_id": true}

	// Sort key để description ổn định (map Go không có thứ tự)
	keys := make([]string, 0, len(set))
	for k := range set {
		if !skip[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var clauses []string
	for _, key := range keys {
		newValue := set[key]
		var oldValue interface{}
		if before != nil {
			oldValue = before[key]
		}
		if activityValuesEqual(oldValue, newValue) {
			continue
		}
		label := activityFieldLabels[key]
		if label == "" {
			label = key
		}
		clauses = append(clauses, fmt.Sprintf("%s: %s → %s", label, formatActivityValue(oldValue), formatActivityValue(newValue)))
	}
	return clauses
}

// activityValuesEqual so sánh giá trị cũ/mới qua biểu diễn chuỗi
// (giá trị đi qua BSON nên type có thể lệch: int32/int64/float64)
func activityValuesEqual(oldValue, newValue interface{}) bool {
	return formatActivityValue(oldValue) == formatActivityValue(newValue)
}

// formatActivityValue format một giá trị để hiển thị trong description
func formatActivityValue(value interface{}) string {
	if value == nil {
		return "未設定"
	}
	switch v := value.(type) {
	case string:
		if v == "" {
			return "未設定"
		}
		return v
	case primitive.ObjectID:
		if v.IsZero() {
			return "未設定"
		}
		return v.Hex()
	case float64:
		// Số nguyên thì bỏ phần thập phân
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%v", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ListMine trả về feed của người gọi: activity mà caller là owner hoặc actor,
// sort createdAt giảm dần, tối đa 50 bản ghi.
func (s *ActivityService) ListMine(ctx context.Context, callerUID string) ([]models.Activity, error) {
	filter := bson.M{"$or": []bson.M{
		{"assignedUserId": callerUID},
		{"userId": callerUID},
	}}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(activityFeedLimitMine)
	return s.Find(ctx, filter, opts)
}

// ListAll trả về feed toàn hệ thống (chỉ admin), tối đa 100 bản ghi.
func (s *ActivityService) ListAll(ctx context.Context) ([]models.Activity, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(activityFeedLimitAll)
	return s.Find(ctx, bson.D{}, opts)
}

// ListForTask trả về activity của một task, kèm thông tin hiển thị của actor
// (join từ crm_users theo Firebase UID).
func (s *ActivityService) ListForTask(ctx context.Context, taskID primitive.ObjectID) ([]models.ActivityWithActor, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	activities, err := s.Find(ctx, bson.M{"taskId": taskID}, opts)
	if err != nil {
		return nil, err
	}
	return s.attachActors(ctx, activities)
}

// ListForCustomer trả về activity của một khách hàng trong scope của người gọi.
func (s *ActivityService) ListForCustomer(ctx context.Context, customerID primitive.ObjectID, callerUID string, isAdmin bool) ([]models.Activity, error) {
	filter := bson.M{"customerId": customerID}
	if !isAdmin {
		filter["$or"] = []bson.M{
			{"assignedUserId": callerUID},
			{"userId": callerUID},
		}
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(activityFeedLimitMine)
	return s.Find(ctx, filter, opts)
}

// ListForSales trả về activity của một thương vụ trong scope của người gọi.
func (s *ActivityService) ListForSales(ctx context.Context, salesID primitive.ObjectID, callerUID string, isAdmin bool) ([]models.Activity, error) {
	filter := bson.M{"salesId": salesID}
	if !isAdmin {
		filter["$or"] = []bson.M{
			{"assignedUserId": callerUID},
			{"userId": callerUID},
		}
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(activityFeedLimitMine)
	return s.Find(ctx, filter, opts)
}

// attachActors join thông tin hiển thị của actor vào danh sách activity
func (s *ActivityService) attachActors(ctx context.Context, activities []models.Activity) ([]models.ActivityWithActor, error) {
	result := make([]models.ActivityWithActor, 0, len(activities))
	if len(activities) == 0 {
		return result, nil
	}

	// Gom UID duy nhất rồi query 1 lần
	uidSet := make(map[string]bool)
	for _, activity := range activities {
		if activity.UserID != "" {
			uidSet[activity.UserID] = true
		}
	}
	uids := make([]string, 0, len(uidSet))
	for uid := range uidSet {
		uids = append(uids, uid)
	}

	users, err := s.userService.Find(ctx, bson.M{"firebaseUid": bson.M{"$in": uids}}, nil)
	if err != nil {
		return nil, err
	}
	actorByUID := make(map[string]*models.ActivityActor, len(users))
	for _, user := range users {
		actorByUID[user.FirebaseUID] = &models.ActivityActor{
			FirebaseUID: user.FirebaseUID,
			DisplayName: user.DisplayName,
			PhotoURL:    user.PhotoURL,
		}
	}

	for _, activity := range activities {
		result = append(result, models.ActivityWithActor{
			Activity: activity,
			Actor:    actorByUID[activity.UserID],
		})
	}
	return result, nil
}
