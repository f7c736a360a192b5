package utils

import (
	"context"
	"fmt"
	"time"

	DB "survey-api/src/database"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

// ไม่มี Redis (dev mode) → ทุกฟังก์ชันข้ามการทำงานแบบไม่ error

// StoreRefreshToken เก็บ refresh token ของ admin ใน Redis พร้อม expiration
func StoreRefreshToken(adminID, refreshToken string, expiresIn time.Duration) error {
	if DB.RedisClient == nil {
		return nil
	}

	key := fmt.Sprintf("refresh_token:%s", adminID)
	if err := DB.RedisClient.Set(Ctx, key, refreshToken, expiresIn).Err(); err != nil {
		return fmt.Errorf("failed to store refresh token: %v", err)
	}
	return nil
}

// ValidateRefreshToken ตรวจสอบว่า refresh token ตรงกับที่เก็บไว้หรือไม่
func ValidateRefreshToken(adminID, refreshToken string) (bool, error) {
	if DB.RedisClient == nil {
		return true, nil // dev mode ข้ามการตรวจสอบ
	}

	key := fmt.Sprintf("refresh_token:%s", adminID)
	storedToken, err := DB.RedisClient.Get(Ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get refresh token: %v", err)
	}

	return storedToken == refreshToken, nil
}

// DeleteRefreshToken ลบ refresh token (ใช้ตอน logout)
func DeleteRefreshToken(adminID string) error {
	if DB.RedisClient == nil {
		return nil
	}

	key := fmt.Sprintf("refresh_token:%s", adminID)
	if err := DB.RedisClient.Del(Ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete refresh token: %v", err)
	}
	return nil
}

// BlacklistToken เพิ่ม access token เข้า blacklist (ใช้ตอน logout)
func BlacklistToken(token string, expiresIn time.Duration) error {
	if DB.RedisClient == nil {
		return nil
	}

	key := fmt.Sprintf("blacklist:%s", token)
	if err := DB.RedisClient.Set(Ctx, key, "1", expiresIn).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token: %v", err)
	}
	return nil
}

// IsTokenBlacklisted ตรวจสอบว่า token ถูก blacklist ไปแล้วหรือไม่
func IsTokenBlacklisted(token string) (bool, error) {
	if DB.RedisClient == nil {
		return false, nil
	}

	key := fmt.Sprintf("blacklist:%s", token)
	if _, err := DB.RedisClient.Get(Ctx, key).Result(); err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to check blacklist: %v", err)
	}
	return true, nil
}
