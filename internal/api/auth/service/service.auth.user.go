// Package authsvc - service người dùng (User).
package authsvc

import (
	"context"
	"errors"
	"fmt"

	"firebase.google.com/go/v4/auth"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	authdto "folk_crm/internal/api/auth/dto"
	models "folk_crm/internal/api/auth/models"
	basesvc "folk_crm/internal/api/base/service"
	"folk_crm/internal/common"
	"folk_crm/internal/global"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// Register đăng ký hồ sơ local cho user Firebase đã verify token.
// Idempotent: nếu hồ sơ đã tồn tại thì trả về hồ sơ hiện có, không tạo mới.
// Thông tin lấy từ token claims (email, name, picture), body chỉ bổ sung khi thiếu.
func (s *UserService) Register(ctx context.Context, token *auth.Token, input *authdto.UserRegisterInput) (*models.User, error) {
	// Kiểm tra hồ sơ đã tồn tại chưa
	existing, err := s.FindOne(ctx, bson.M{"firebaseUid": token.UID}, nil)
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	user := models.User{
		FirebaseUID: token.UID,
		Email:       claimString(token, "email"),
		DisplayName: claimString(token, "name"),
		PhotoURL:    claimString(token, "picture"),
	}
	if user.DisplayName == "" && input != nil {
		user.DisplayName = input.DisplayName
	}
	if user.PhotoURL == "" && input != nil {
		user.PhotoURL = input.PhotoURL
	}
	if user.DisplayName == "" && user.Email != "" {
		user.DisplayName = user.Email
	}

	created, err := s.InsertOne(ctx, user)
	if err != nil {
		// Hai request đăng ký song song: request thua race tìm lại hồ sơ vừa tạo
		if errors.Is(err, common.ErrMongoDuplicate) {
			if found, findErr := s.FindOne(ctx, bson.M{"firebaseUid": token.UID}, nil); findErr == nil {
				return &found, nil
			}
		}
		logrus.WithFields(logrus.Fields{"firebase_uid": token.UID, "error": err.Error()}).Error("Register: Lỗi khi tạo hồ sơ người dùng")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"firebase_uid": created.FirebaseUID, "email": created.Email}).Info("Register: Đã tạo hồ sơ người dùng mới")
	return &created, nil
}

// ListUsers trả về danh sách người dùng cho picker gán việc (mọi user đã đăng nhập đều xem được).
// Chỉ trả các field hiển thị, sắp xếp theo displayName.
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	opts := options.Find().
		SetProjection(bson.M{"firebaseUid": 1, "displayName": 1, "photoURL": 1, "email": 1, "role": 1}).
		SetSort(bson.D{{Key: "displayName", Value: 1}})
	return s.Find(ctx, bson.D{}, opts)
}

// EnsureAdminByUID nâng quyền admin cho user có Firebase UID cho trước (dùng trong init).
// Không lỗi khi user chưa đăng ký hồ sơ - sẽ được nâng ở lần init sau.
func (s *UserService) EnsureAdminByUID(ctx context.Context, firebaseUID string) error {
	user, err := s.FindOne(ctx, bson.M{"firebaseUid": firebaseUID}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			logrus.WithField("firebase_uid", firebaseUID).Warn("EnsureAdminByUID: User chưa đăng ký hồ sơ, bỏ qua nâng quyền admin")
			return nil
		}
		return err
	}
	if user.Role == "admin" {
		return nil
	}
	update := &basesvc.UpdateData{Set: map[string]interface{}{"role": "admin"}}
	_, err = s.UpdateById(ctx, user.ID, update)
	if err != nil {
		return err
	}
	logrus.WithField("firebase_uid", firebaseUID).Info("EnsureAdminByUID: Đã nâng quyền admin")
	return nil
}

// SetActiveByUID cập nhật cờ isActive của hồ sơ local theo Firebase UID.
// Hồ sơ chưa đăng ký thì bỏ qua (trạng thái disabled bên Firebase vẫn có hiệu lực),
// trả về nil, nil trong trường hợp đó.
func (s *UserService) SetActiveByUID(ctx context.Context, firebaseUID string, active bool) (*models.User, error) {
	user, err := s.FindOne(ctx, bson.M{"firebaseUid": firebaseUID}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			logrus.WithField("firebase_uid", firebaseUID).Warn("SetActiveByUID: User chưa đăng ký hồ sơ local, bỏ qua cập nhật isActive")
			return nil, nil
		}
		return nil, err
	}

	update := &basesvc.UpdateData{Set: map[string]interface{}{"isActive": active}}
	updated, err := s.UpdateById(ctx, user.ID, update)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// claimString đọc một claim kiểu string từ Firebase token, thiếu thì trả chuỗi rỗng
func claimString(token *auth.Token, key string) string {
	if token.Claims == nil {
		return ""
	}
	if v, ok := token.Claims[key].(string); ok {
		return v
	}
	return ""
}
