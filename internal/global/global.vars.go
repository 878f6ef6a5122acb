package global

import (
	"folk_crm/config"
	"folk_crm/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_Crm_CollectionName chứa tên các collection trong MongoDB
type MongoDB_Crm_CollectionName struct {
	Users         string // Tên collection cho hồ sơ người dùng (mirror từ Firebase)
	Customers     string // Tên collection cho khách hàng
	Sales         string // Tên collection cho thương vụ bán hàng
	Tasks         string // Tên collection cho công việc
	Contacts      string // Tên collection cho lịch sử liên hệ / đối ứng
	Activities    string // Tên collection cho nhật ký hoạt động
	Notifications string // Tên collection cho thông báo
}

// Các biến toàn cục
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration // Cấu hình của server
var MongoDB_ColNames = MongoDB_Crm_CollectionName{
	Users:         "crm_users",
	Customers:     "crm_customers",
	Sales:         "crm_sales",
	Tasks:         "crm_tasks",
	Contacts:      "crm_contacts",
	Activities:    "crm_activities",
	Notifications: "crm_notifications",
}

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
