package middleware

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	models "folk_crm/internal/api/auth/models"
	authsvc "folk_crm/internal/api/auth/service"
	"folk_crm/internal/common"
	"folk_crm/internal/logger"
	"folk_crm/internal/utility"
)

// AuthManager quản lý xác thực người dùng qua Firebase và hồ sơ local (crm_users)
type AuthManager struct {
	UserCRUD *authsvc.UserService
	Cache    *utility.Cache
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		var err error
		authManagerInstance, err = newAuthManager()
		if err != nil {
			panic(err)
		}
	})
	return authManagerInstance
}

// newAuthManager khởi tạo một instance mới của AuthManager (private constructor)
func newAuthManager() (*AuthManager, error) {
	newManager := new(AuthManager)

	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	newManager.UserCRUD = userService

	// Khởi tạo cache với thời gian sống 5 phút và thời gian dọn dẹp 10 phút
	newManager.Cache = utility.NewCache(5*time.Minute, 10*time.Minute)

	return newManager, nil
}

// getUserProfile lấy hồ sơ local của user từ cache hoặc database theo Firebase UID
func (am *AuthManager) getUserProfile(ctx context.Context, firebaseUID string) (*models.User, error) {
	cacheKey := "user_profile:" + firebaseUID

	// Kiểm tra cache trước để tối ưu hiệu suất
	if cached, found := am.Cache.Get(cacheKey); found {
		if user, ok := cached.(models.User); ok {
			return &user, nil
		}
	}

	user, err := am.UserCRUD.FindOne(ctx, bson.M{"firebaseUid": firebaseUID}, nil)
	if err != nil {
		return nil, err
	}

	// Chỉ cache kết quả tìm thấy, không cache "not found"
	// (user vừa đăng ký hồ sơ phải thấy hồ sơ ngay ở request tiếp theo)
	am.Cache.Set(cacheKey, user)
	return &user, nil
}

// InvalidateUserProfile xóa hồ sơ user khỏi cache (gọi khi hồ sơ thay đổi, ví dụ đổi role)
func (am *AuthManager) InvalidateUserProfile(firebaseUID string) {
	am.Cache.Set("user_profile:"+firebaseUID, nil)
}

// AuthMiddleware middleware xác thực Firebase ID token cho Fiber.
// requireProfile=false chỉ dùng cho route đăng ký hồ sơ (/users/register),
// các route còn lại PHẢI có hồ sơ local trong crm_users (404 nếu chưa đăng ký).
func AuthMiddleware(requireProfile bool) fiber.Handler {
	// Sử dụng singleton instance của AuthManager
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			// Chỉ log khi thiếu token (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [AUTH] Missing Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		idToken := parts[1]

		// Verify token với Firebase Admin SDK
		token, err := utility.VerifyIDToken(c.Context(), idToken)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("❌ [AUTH] Firebase ID token verification failed")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Lưu thông tin xác thực vào context
		c.Locals("user_id", token.UID)
		c.Locals("firebase_token", token)

		// Lấy hồ sơ local từ crm_users
		profile, err := authManager.getUserProfile(c.Context(), token.UID)
		if err != nil {
			if !requireProfile {
				// Route đăng ký: cho phép đi tiếp khi chưa có hồ sơ
				return c.Next()
			}
			logger.GetAppLogger().WithFields(logrus.Fields{
				"firebase_uid": token.UID,
				"path":         c.Path(),
			}).Warn("❌ [AUTH] User has no local profile")
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthCredentials,
				"Chưa có hồ sơ người dùng. Vui lòng đăng ký hồ sơ trước khi sử dụng hệ thống.",
				common.StatusNotFound,
				nil,
			))
			return nil
		}

		// Tài khoản bị admin vô hiệu hóa: chặn ngay cả khi token còn hiệu lực
		// (Firebase chỉ thu hồi token khi refresh, cờ isActive chặn sớm hơn)
		if !profile.IsActive {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"firebase_uid": token.UID,
				"path":         c.Path(),
			}).Warn("❌ [AUTH] Disabled user attempted access")
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthRole,
				"Tài khoản đã bị vô hiệu hóa. Vui lòng liên hệ quản trị viên.",
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		c.Locals("user_profile", *profile)
		c.Locals("user_role", profile.Role)

		return c.Next()
	}
}

// RequireAdmin middleware chỉ cho phép user có role admin đi tiếp.
// Phải được đăng ký SAU AuthMiddleware (cần user_role trong context).
func RequireAdmin() fiber.Handler {
	return func(c fiber.Ctx) error {
		role, _ := c.Locals("user_role").(string)
		if role != "admin" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"user_id": c.Locals("user_id"),
				"path":    c.Path(),
				"role":    role,
			}).Warn("❌ [AUTH] Non-admin user attempted admin-only route")
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthRole,
				"Chỉ quản trị viên mới có quyền truy cập chức năng này",
				common.StatusForbidden,
				nil,
			))
			return nil
		}
		return c.Next()
	}
}
