package utility

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

var (
	firebaseApp  *firebase.App
	firebaseAuth *auth.Client
)

// findRootDir tìm thư mục gốc của project (thư mục chứa config/env)
func findRootDir() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return currentDir, nil
		}

		// Đi lên thư mục cha
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", fmt.Errorf("không tìm thấy thư mục gốc của project")
		}
		currentDir = parentDir
	}
}

// InitFirebase khởi tạo Firebase Admin SDK
func InitFirebase(projectID, credentialsPath string) error {
	// Resolve đường dẫn credentials: absolute dùng trực tiếp, relative resolve từ thư mục gốc
	if !filepath.IsAbs(credentialsPath) {
		rootDir, err := findRootDir()
		if err != nil {
			return fmt.Errorf("không tìm thấy thư mục gốc của project: %v", err)
		}
		credentialsPath = filepath.Join(rootDir, credentialsPath)
	}

	// Kiểm tra file credentials tồn tại
	if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
		return fmt.Errorf("firebase credentials file not found: %s", credentialsPath)
	}

	// Tạo Firebase app
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(context.Background(), &firebase.Config{
		ProjectID: projectID,
	}, opt)

	if err != nil {
		return fmt.Errorf("failed to initialize Firebase app: %v", err)
	}

	firebaseApp = app

	// Tạo Auth client
	authClient, err := app.Auth(context.Background())
	if err != nil {
		return fmt.Errorf("failed to get Firebase Auth client: %v", err)
	}

	firebaseAuth = authClient
	return nil
}

// GetFirebaseAuth trả về Firebase Auth client
func GetFirebaseAuth() *auth.Client {
	return firebaseAuth
}

// VerifyIDToken verify Firebase ID token và trả về user info
func VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	if firebaseAuth == nil {
		return nil, fmt.Errorf("firebase auth not initialized")
	}

	token, err := firebaseAuth.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("failed to verify ID token: %v", err)
	}

	return token, nil
}

// GetUserByUID lấy thông tin user từ Firebase bằng UID
func GetUserByUID(ctx context.Context, uid string) (*auth.UserRecord, error) {
	if firebaseAuth == nil {
		return nil, fmt.Errorf("firebase auth not initialized")
	}

	user, err := firebaseAuth.GetUser(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %v", err)
	}

	return user, nil
}

// SetUserDisabled bật/tắt trạng thái disabled của tài khoản Firebase.
// Tài khoản disabled không đăng nhập được và token hiện có sẽ hết hiệu lực khi refresh.
func SetUserDisabled(ctx context.Context, uid string, disabled bool) error {
	if firebaseAuth == nil {
		return fmt.Errorf("firebase auth not initialized")
	}

	params := (&auth.UserToUpdate{}).Disabled(disabled)
	if _, err := firebaseAuth.UpdateUser(ctx, uid, params); err != nil {
		return fmt.Errorf("failed to update user disabled status: %v", err)
	}
	return nil
}
