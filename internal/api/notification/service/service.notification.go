// Package notifsvc - service cho thông báo in-app.
package notifsvc

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "folk_crm/internal/api/base/service"
	models "folk_crm/internal/api/notification/models"
	"folk_crm/internal/common"
	"folk_crm/internal/global"
	"folk_crm/internal/logger"
)

// NotificationService là cấu trúc chứa các phương thức liên quan đến thông báo
type NotificationService struct {
	*basesvc.BaseServiceMongoImpl[models.Notification]
}

// NewNotificationService tạo mới NotificationService
func NewNotificationService() (*NotificationService, error) {
	notificationCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Notifications)
	if !exist {
		return nil, fmt.Errorf("failed to get notifications collection: %v", common.ErrNotFound)
	}

	return &NotificationService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Notification](notificationCollection),
	}, nil
}

// BuildRecipients gom danh sách người nhận từ các UID liên quan, loại trùng.
// Người tạo tự gán cho mình vẫn nhận đúng 1 thông báo (không loại actor).
func BuildRecipients(candidateUIDs ...string) []string {
	seen := make(map[string]bool)
	recipients := make([]string, 0, len(candidateUIDs))
	for _, uid := range candidateUIDs {
		if uid == "" || seen[uid] {
			continue
		}
		seen[uid] = true
		recipients = append(recipients, uid)
	}
	return recipients
}

// FanOut tạo thông báo cho từng người nhận, best-effort:
// lỗi chỉ được log, không làm fail request gốc.
func (s *NotificationService) FanOut(ctx context.Context, recipients []string, message string, relatedTask primitive.ObjectID) {
	if len(recipients) == 0 {
		return
	}
	now := time.Now().UnixMilli()
	notifications := make([]interface{}, 0, len(recipients))
	for _, uid := range recipients {
		notifications = append(notifications, models.Notification{
			TargetUser:  uid,
			Message:     message,
			RelatedTask: relatedTask,
			IsRead:      false,
			CreatedAt:   now,
		})
	}
	if _, err := s.Collection().InsertMany(ctx, notifications); err != nil {
		logger.GetErrorLogger().WithFields(logrus.Fields{
			"recipients": len(recipients),
			"error":      err.Error(),
		}).Error("FanOut: Lỗi khi tạo thông báo, bỏ qua")
	}
}

// ListUnread trả về thông báo chưa đọc của một user, mới nhất trước.
func (s *NotificationService) ListUnread(ctx context.Context, targetUserUID string) ([]models.Notification, error) {
	filter := bson.M{
		"targetUser": targetUserUID,
		"isRead":     false,
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Find(ctx, filter, opts)
}

// MarkAsRead đánh dấu một thông báo đã đọc.
// Thứ tự kiểm tra: không tồn tại → 404 trước, sai người nhận → 403 sau.
// Idempotent: gọi lại trên thông báo đã đọc vẫn thành công.
func (s *NotificationService) MarkAsRead(ctx context.Context, id primitive.ObjectID, callerUID string) (*models.Notification, error) {
	notification, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}

	if notification.TargetUser != callerUID {
		return nil, common.NewError(
			common.ErrCodeAuthRole,
			"Không có quyền truy cập thông báo này",
			common.StatusForbidden,
			nil,
		)
	}

	if notification.IsRead {
		return &notification, nil
	}

	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{"isRead": true},
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
