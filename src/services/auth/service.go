package auth

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"survey-api/src/models"
	"survey-api/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRefresh     = errors.New("invalid refresh token")
)

const refreshTokenTTL = 7 * 24 * time.Hour

type Service struct {
	admins *mongo.Collection
}

func NewAuthService(db *mongo.Database) *Service {
	return &Service{admins: db.Collection("admins")}
}

// Login ตรวจรหัสผ่านด้วย bcrypt แล้วออก access + refresh token
func (s *Service) Login(ctx context.Context, email, password string) (*models.TokenResponse, error) {
	var admin models.Admin
	if err := s.admins.FindOne(ctx, bson.M{"email": email}).Decode(&admin); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := utils.GenerateJWT(admin.ID.Hex(), admin.Email, "admin")
	if err != nil {
		return nil, err
	}

	refreshToken := utils.GenerateRandomString(64)
	if err := utils.StoreRefreshToken(admin.ID.Hex(), refreshToken, refreshTokenTTL); err != nil {
		return nil, err
	}

	return &models.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		AdminID:      admin.ID.Hex(),
		Email:        admin.Email,
	}, nil
}

// Refresh แลก refresh token เป็น access token ใหม่
func (s *Service) Refresh(ctx context.Context, adminID, refreshToken string) (*models.TokenResponse, error) {
	ok, err := utils.ValidateRefreshToken(adminID, refreshToken)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidRefresh
	}

	objID, err := primitive.ObjectIDFromHex(adminID)
	if err != nil {
		return nil, ErrInvalidRefresh
	}

	var admin models.Admin
	if err := s.admins.FindOne(ctx, bson.M{"_id": objID}).Decode(&admin); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrInvalidRefresh
		}
		return nil, err
	}

	accessToken, err := utils.GenerateJWT(admin.ID.Hex(), admin.Email, "admin")
	if err != nil {
		return nil, err
	}

	return &models.TokenResponse{
		AccessToken: accessToken,
		AdminID:     admin.ID.Hex(),
		Email:       admin.Email,
	}, nil
}

// Logout ลบ refresh token และ blacklist access token ที่เหลืออายุอยู่
func (s *Service) Logout(adminID, accessToken string) error {
	if err := utils.DeleteRefreshToken(adminID); err != nil {
		return err
	}
	return utils.BlacklistToken(accessToken, 24*time.Hour)
}

// EnsureDefaultAdmin สร้าง admin ตั้งต้นจาก ENV ถ้ายังไม่มี
// ใช้ตอน deploy ครั้งแรก ไม่มี ENV ก็ข้ามไป
func (s *Service) EnsureDefaultAdmin(ctx context.Context) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		log.Println("⚠️ ADMIN_EMAIL/ADMIN_PASSWORD not set. Skipping default admin seed.")
		return nil
	}

	count, err := s.admins.CountDocuments(ctx, bson.M{"email": adminEmail})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = s.admins.InsertOne(ctx, models.Admin{
		Email:        adminEmail,
		Name:         "Administrator",
		PasswordHash: string(hash),
	})
	if err != nil {
		return err
	}

	log.Println("✅ Default admin created:", adminEmail)
	return nil
}
