package authhdl

import (
	"fmt"

	"firebase.google.com/go/v4/auth"
	"github.com/gofiber/fiber/v3"

	authdto "folk_crm/internal/api/auth/dto"
	models "folk_crm/internal/api/auth/models"
	authsvc "folk_crm/internal/api/auth/service"
	basehdl "folk_crm/internal/api/base/handler"
	"folk_crm/internal/api/middleware"
	"folk_crm/internal/common"
	"folk_crm/internal/logger"
	"folk_crm/internal/utility"
)

// UserHandler xử lý các request liên quan đến hồ sơ người dùng
type UserHandler struct {
	*basehdl.BaseHandler[models.User, authdto.UserCreateInput, authdto.UserUpdateInput]
	userService *authsvc.UserService
}

// NewUserHandler tạo instance mới của UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.User, authdto.UserCreateInput, authdto.UserUpdateInput](userService)
	return &UserHandler{
		BaseHandler: baseHandler,
		userService: userService,
	}, nil
}

// HandleRegister đăng ký hồ sơ local cho user Firebase (idempotent).
// Đây là route duy nhất chạy với AuthMiddleware(false): token đã verify
// nhưng chưa cần hồ sơ trong crm_users.
func (h *UserHandler) HandleRegister(c fiber.Ctx) error {
	token, ok := c.Locals("firebase_token").(*auth.Token)
	if !ok || token == nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeAuth, "User not authenticated", common.StatusUnauthorized, nil))
		return nil
	}

	// Body là optional (thông tin chính lấy từ token claims)
	var input authdto.UserRegisterInput
	if len(c.Body()) > 0 {
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
	}

	user, err := h.userService.Register(c.Context(), token, &input)
	if err == nil {
		logger.LogAuth("register", c, map[string]interface{}{
			"firebase_uid": token.UID,
		})
	}
	h.HandleResponse(c, user, err)
	return nil
}

// HandleGetMe trả về hồ sơ của user đang đăng nhập
func (h *UserHandler) HandleGetMe(c fiber.Ctx) error {
	profile, ok := c.Locals("user_profile").(models.User)
	if !ok {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeAuth, "User not authenticated", common.StatusUnauthorized, nil))
		return nil
	}
	h.HandleResponse(c, profile, nil)
	return nil
}

// HandleListUsers trả về danh sách user cho picker gán việc
func (h *UserHandler) HandleListUsers(c fiber.Ctx) error {
	users, err := h.userService.ListUsers(c.Context())
	h.HandleResponse(c, users, err)
	return nil
}

// HandleSetDisabled bật/tắt vô hiệu hóa tài khoản (chỉ admin).
// :id là Firebase UID. Cập nhật trạng thái disabled bên Firebase trước,
// sau đó mirror vào cờ isActive của hồ sơ local và xóa cache hồ sơ.
// PUT /admin/users/:id/disabled
func (h *UserHandler) HandleSetDisabled(c fiber.Ctx) error {
	firebaseUID := c.Params("id")
	if firebaseUID == "" {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Firebase UID không được để trống", common.StatusBadRequest, nil))
		return nil
	}

	var input authdto.UserSetDisabledInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	disabled := *input.Disabled
	if err := utility.SetUserDisabled(c.Context(), firebaseUID, disabled); err != nil {
		h.HandleResponse(c, nil, common.NewError(
			common.ErrCodeAuth,
			"Lỗi khi cập nhật trạng thái tài khoản Firebase",
			common.StatusInternalServerError,
			err,
		))
		return nil
	}

	user, err := h.userService.SetActiveByUID(c.Context(), firebaseUID, !disabled)
	if err == nil {
		middleware.GetAuthManager().InvalidateUserProfile(firebaseUID)
		logger.LogAuth("set_disabled", c, map[string]interface{}{
			"firebase_uid": firebaseUID,
			"disabled":     disabled,
		})
	}
	h.HandleResponse(c, user, err)
	return nil
}
