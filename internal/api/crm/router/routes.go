// Package router đăng ký các route thuộc domain CRM: customers, sales, tasks, contacts, activities.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	crmhdl "folk_crm/internal/api/crm/handler"
	"folk_crm/internal/api/middleware"
	apirouter "folk_crm/internal/api/router"
)

// crmConfig giới hạn bộ route CRUD chung về các thao tác trên từng document:
// mọi mutation phải đi qua InsertOne/UpdateById/DeleteById (có ghi activity),
// không mở các thao tác bulk/atomic bỏ qua nhật ký.
var crmConfig = apirouter.CRUDConfig{
	InsOne: true,
	Find:   true, FindOne: true, FindById: true,
	FindIds: true, Paginate: true,
	UpdById: true,
	DelById: true,
	Count:   true, Distinct: true, Exists: true,
}

// Register đăng ký tất cả route CRM lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	authMiddleware := middleware.AuthMiddleware(true)
	chain := []fiber.Handler{authMiddleware}
	adminChain := []fiber.Handler{middleware.AuthMiddleware(true), middleware.RequireAdmin()}

	// Customers
	customerHandler, err := crmhdl.NewCustomerHandler()
	if err != nil {
		return fmt.Errorf("create customer handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/customers", customerHandler, crmConfig, chain)

	// Sales
	saleHandler, err := crmhdl.NewSaleHandler()
	if err != nil {
		return fmt.Errorf("create sale handler: %w", err)
	}
	// GET /sales/summary: tổng hợp doanh số trong phạm vi người gọi
	apirouter.RegisterRouteWithMiddleware(v1, "/sales", "GET", "/summary", chain, saleHandler.HandleSummary)
	r.RegisterCRUDRoutes(v1, "/sales", saleHandler, crmConfig, chain)

	// Tasks
	taskHandler, err := crmhdl.NewTaskHandler()
	if err != nil {
		return fmt.Errorf("create task handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/tasks", taskHandler, crmConfig, chain)

	// Contacts: route REST trực tiếp, lọc theo customerId qua query param
	contactHandler, err := crmhdl.NewContactHandler()
	if err != nil {
		return fmt.Errorf("create contact handler: %w", err)
	}
	// Form công khai: prefix /public/contacts để middleware auth trên /contacts
	// (match theo prefix) không chặn request không đăng nhập
	apirouter.RegisterRouteWithMiddleware(v1, "/public/contacts", "POST", "", nil, contactHandler.HandlePublicCreate)
	apirouter.RegisterRouteWithMiddleware(v1, "/contacts", "POST", "", chain, contactHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(v1, "/contacts", "GET", "", chain, contactHandler.HandleList)
	apirouter.RegisterRouteWithMiddleware(v1, "/contacts", "PUT", "/:id", chain, contactHandler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(v1, "/contacts", "DELETE", "/:id", chain, contactHandler.HandleDelete)

	// Activities: chỉ đọc, ghi nội bộ từ các handler mutation
	activityHandler, err := crmhdl.NewActivityHandler()
	if err != nil {
		return fmt.Errorf("create activity handler: %w", err)
	}
	apirouter.RegisterRouteWithMiddleware(v1, "/activities", "GET", "", chain, activityHandler.HandleListMine)
	// Prefix riêng /activities/all để RequireAdmin không dính sang các route khác
	apirouter.RegisterRouteWithMiddleware(v1, "/activities/all", "GET", "", adminChain, activityHandler.HandleListAll)
	apirouter.RegisterRouteWithMiddleware(v1, "/activities", "GET", "/task/:taskId", chain, activityHandler.HandleListForTask)
	apirouter.RegisterRouteWithMiddleware(v1, "/activities", "GET", "/customer/:customerId", chain, activityHandler.HandleListForCustomer)
	apirouter.RegisterRouteWithMiddleware(v1, "/activities", "GET", "/sales/:salesId", chain, activityHandler.HandleListForSales)

	return nil
}
