// Package database - Index bổ sung cho CRM (compound có hướng sắp xếp) không thể định nghĩa qua model tags.
package database

import (
	"context"
	"strings"

	"folk_crm/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateCrmAdditionalIndexes tạo các index bổ sung cho CRM.
// Gọi sau CreateIndexes cho từng collection CRM.
func CreateCrmAdditionalIndexes(ctx context.Context, db *mongo.Database) error {
	// crm_activities: (assignedUserId, createdAt desc) — feed hoạt động theo phạm vi user
	activities := db.Collection(global.MongoDB_ColNames.Activities)
	if _, err := activities.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "assignedUserId", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("crm_activity_owner_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// crm_activities: (userId, createdAt desc) — feed theo actor
	if _, err := activities.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("crm_activity_actor_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// crm_activities: (taskId, createdAt desc) sparse — lịch sử của một task
	if _, err := activities.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "taskId", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("crm_activity_task_created").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// crm_notifications: (targetUser, isRead, createdAt desc) — danh sách thông báo chưa đọc
	notifications := db.Collection(global.MongoDB_ColNames.Notifications)
	if _, err := notifications.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "targetUser", Value: 1},
			{Key: "isRead", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("crm_notification_target_unread"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// crm_sales: (assignedUserId, dueDate) sparse — upcoming deals trong sales summary
	sales := db.Collection(global.MongoDB_ColNames.Sales)
	if _, err := sales.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "assignedUserId", Value: 1},
			{Key: "dueDate", Value: 1},
		},
		Options: options.Index().SetName("crm_sale_owner_due").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// crm_contacts: (customerId, createdAt desc) — lọc lịch sử liên hệ theo khách hàng
	contacts := db.Collection(global.MongoDB_ColNames.Contacts)
	if _, err := contacts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "customerId", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("crm_contact_customer_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
