// Package crmhdl - handler cho domain CRM.
// Các handler mutation (insert/update/delete) override base handler để ghi
// activity; lỗi ghi activity không làm fail request gốc.
package crmhdl

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "folk_crm/internal/api/auth/models"
	basehdl "folk_crm/internal/api/base/handler"
	models "folk_crm/internal/api/crm/models"
	"folk_crm/internal/utility"
)

// modelSnapshot chuyển model sang bson.M để lưu vào activity before/after
func modelSnapshot(model interface{}) bson.M {
	m, err := utility.ToMap(model)
	if err != nil {
		return nil
	}
	return bson.M(m)
}

// updateProtectedKeys là các field không được xóa về rỗng qua partial update:
// owner/enum/field bắt buộc chỉ vào $set khi client gửi giá trị thực sự.
var updateProtectedKeys = map[string]bool{
	"assignedUserId": true,
	"createdBy":      true,
	"status":         true,
	"responseStatus": true,
	"name":           true,
	"dealName":       true,
	"title":          true,
	"contactName":    true,
	"content":        true,
}

// buildUpdateSet gom các field của model vào map $set theo payload của request:
// field có mặt trong body JSON thì được set kể cả khi giá trị là rỗng/0
// (xóa memo, đặt amount = 0), field không gửi thì giữ nguyên.
// Ngoại lệ: các key trong updateProtectedKeys và ObjectID rỗng không bị xóa.
func buildUpdateSet(model interface{}, body []byte) (map[string]interface{}, error) {
	modelMap, err := utility.ToMap(model)
	if err != nil {
		return nil, err
	}

	present := make(map[string]bool)
	if len(body) > 0 {
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(body, &raw); err != nil {
			return nil, err
		}
		for k := range raw {
			present[k] = true
		}
	}

	skip := map[string]bool{"_id": true, "createdAt": true, "updatedAt": true}
	set := make(map[string]interface{})
	for k, v := range modelMap {
		if skip[k] {
			continue
		}
		rv := reflect.ValueOf(v)
		if rv.IsValid() && !rv.IsZero() {
			set[k] = v
			continue
		}
		// Giá trị zero: chỉ set khi client chủ động gửi field và field cho phép xóa
		if !present[k] || updateProtectedKeys[k] {
			continue
		}
		if oid, ok := v.(primitive.ObjectID); ok && oid.IsZero() {
			continue
		}
		set[k] = v
	}

	// Field bị bson omitempty loại khỏi modelMap khi zero (memo, dueDate...):
	// client gửi field đó với giá trị rỗng thì vẫn phải vào $set
	for k := range present {
		if _, inMap := modelMap[k]; inMap {
			continue
		}
		if skip[k] || updateProtectedKeys[k] {
			continue
		}
		zero, ok := zeroValueForBSONKey(model, k)
		if !ok {
			continue // key lạ trong payload, bỏ qua
		}
		if oid, isOID := zero.(primitive.ObjectID); isOID && oid.IsZero() {
			continue
		}
		set[k] = zero
	}

	return set, nil
}

// zeroValueForBSONKey trả về giá trị zero của field model có bson key tương ứng
func zeroValueForBSONKey(model interface{}, key string) (interface{}, bool) {
	val := reflect.ValueOf(model)
	for val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil, false
	}
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		bsonTag := typ.Field(i).Tag.Get("bson")
		if bsonTag == "" {
			continue
		}
		if strings.Split(bsonTag, ",")[0] == key {
			return reflect.Zero(typ.Field(i).Type).Interface(), true
		}
	}
	return nil, false
}

// actorDisplayName lấy tên hiển thị của user đang gọi từ profile trong context,
// fallback về UID khi profile không có tên.
func actorDisplayName(c fiber.Ctx) string {
	if profile, ok := c.Locals("user_profile").(authmodels.User); ok && profile.DisplayName != "" {
		return profile.DisplayName
	}
	return basehdl.GetCallerUID(c)
}

// updateAction xác định action của activity update: đổi status → status_changed
func updateAction(before bson.M, set map[string]interface{}) string {
	newStatus, ok := set["status"]
	if !ok {
		return models.ActivityActionUpdated
	}
	var oldStatus interface{}
	if before != nil {
		oldStatus = before["status"]
	}
	if oldStatus == newStatus {
		return models.ActivityActionUpdated
	}
	return models.ActivityActionStatusChanged
}
