// Package models - model thuộc domain CRM (customers, sales, tasks, contacts, activities).
package models

// Trạng thái khách hàng (crm_customers.status)
var CustomerStatuses = []string{"見込み", "提案中", "契約済", "失注"}

// Trạng thái thương vụ (crm_sales.status) - có thêm 交渉中 so với khách hàng
var SaleStatuses = []string{"見込み", "提案中", "交渉中", "契約済", "失注"}

// Trạng thái công việc (crm_tasks.status)
var TaskStatuses = []string{"todo", "in_progress", "done"}

// Trạng thái đối ứng (crm_contacts.responseStatus)
var ContactResponseStatuses = []string{"未対応", "対応中", "対応済み"}

// Action của activity (crm_activities.action)
const (
	ActivityActionCreated       = "created"
	ActivityActionUpdated       = "updated"
	ActivityActionDeleted       = "deleted"
	ActivityActionCommented     = "commented"
	ActivityActionStatusChanged = "status_changed"
)

// TargetModel của activity
const (
	ActivityTargetCustomer = "Customer"
	ActivityTargetSale     = "Sale"
	ActivityTargetTask     = "Task"
	ActivityTargetContact  = "Contact"
)
