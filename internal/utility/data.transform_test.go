// Package utility - Test parse tag transform và convert giá trị DTO → Model.
package utility

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseTransformTag_DayDuOption(t *testing.T) {
	config, err := parseTransformTag("str_objectid,map=CustomerID,optional")
	if err != nil {
		t.Fatalf("parseTransformTag lỗi: %v", err)
	}
	if config.Type != "str_objectid" {
		t.Errorf("Type = %q, muốn str_objectid", config.Type)
	}
	if config.MapTo != "CustomerID" {
		t.Errorf("MapTo = %q, muốn CustomerID", config.MapTo)
	}
	if !config.Optional {
		t.Error("Optional phải là true")
	}
}

func TestParseTransformTag_TagRong(t *testing.T) {
	config, err := parseTransformTag("")
	if err != nil {
		t.Fatalf("parseTransformTag lỗi: %v", err)
	}
	if config.Type != "" {
		t.Errorf("tag rỗng thì không transform, Type = %q", config.Type)
	}
}

func TestTransformFieldValue_StrObjectID(t *testing.T) {
	config, _ := parseTransformTag("str_objectid")
	oid := primitive.NewObjectID()

	got, err := TransformFieldValue(oid.Hex(), config, reflect.TypeOf(primitive.ObjectID{}))
	if err != nil {
		t.Fatalf("TransformFieldValue lỗi: %v", err)
	}
	if got != oid {
		t.Errorf("TransformFieldValue = %v, muốn %v", got, oid)
	}
}

func TestTransformFieldValue_StrObjectID_HexSai(t *testing.T) {
	config, _ := parseTransformTag("str_objectid")
	if _, err := TransformFieldValue("khong-phai-hex", config, reflect.TypeOf(primitive.ObjectID{})); err == nil {
		t.Error("hex không hợp lệ phải trả về lỗi")
	}
}

func TestTransformFieldValue_Optional_GiaTriRong(t *testing.T) {
	config, _ := parseTransformTag("str_objectid,optional")
	got, err := TransformFieldValue("", config, reflect.TypeOf(primitive.ObjectID{}))
	if err != nil {
		t.Fatalf("TransformFieldValue lỗi: %v", err)
	}
	if got != nil {
		t.Errorf("optional + giá trị rỗng phải trả về nil, got %v", got)
	}
}

func TestTransformFieldValue_Required_GiaTriRong(t *testing.T) {
	config, _ := parseTransformTag("str_objectid,required")
	if _, err := TransformFieldValue("", config, reflect.TypeOf(primitive.ObjectID{})); err == nil {
		t.Error("required + giá trị rỗng phải trả về lỗi")
	}
}
