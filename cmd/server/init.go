package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"folk_crm/config"
	authmodels "folk_crm/internal/api/auth/models"
	crmmodels "folk_crm/internal/api/crm/models"
	notifmodels "folk_crm/internal/api/notification/models"
	"folk_crm/internal/database"
	"folk_crm/internal/global"
	"folk_crm/internal/utility"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
	initFirebase()         // Khởi tạo Firebase Admin SDK
}

// Hàm khởi tạo validator (global.InitValidator đăng ký các custom validator)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database và index cho các collection CRM
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo db và collections nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections")

	// Khởi tạo index từ struct tag `index` của từng model
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Users), authmodels.User{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Customers), crmmodels.Customer{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Sales), crmmodels.Sale{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Tasks), crmmodels.Task{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Contacts), crmmodels.Contact{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Activities), crmmodels.Activity{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Notifications), notifmodels.Notification{})

	// Index compound có hướng sắp xếp (không khai báo được qua model tag)
	if err := database.CreateCrmAdditionalIndexes(context.TODO(), db); err != nil {
		logrus.Errorf("Failed to create additional CRM indexes: %v", err)
	}
}

// initFirebase khởi tạo Firebase Admin SDK để verify ID token
func initFirebase() {
	cfg := global.MongoDB_ServerConfig

	if cfg.FirebaseProjectID == "" || cfg.FirebaseCredentialsPath == "" {
		logrus.Warn("Firebase config không đầy đủ, bỏ qua khởi tạo Firebase")
		return
	}

	if err := utility.InitFirebase(cfg.FirebaseProjectID, cfg.FirebaseCredentialsPath); err != nil {
		// Không fatal: server vẫn chạy được, các route cần auth sẽ trả lỗi
		logrus.Errorf("Failed to initialize Firebase: %v", err)
		return
	}

	logrus.Info("Firebase initialized successfully")
}
