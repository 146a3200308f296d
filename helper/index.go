package helper

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"planetarium_api/constants"
	"planetarium_api/database"
	"planetarium_api/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// jwtSecret đọc tại thời điểm gọi, sau khi .env đã được load
func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetUserByEmail(e string) (*model.User, error) {
	db := database.DB
	var user model.User
	if err := db.Where(&model.User{Email: e}).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["email"] = tokenClaim.Email
	claims["userId"] = tokenClaim.UserId
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	t, err := token.SignedString(jwtSecret())
	return t, err
}

func GenerateRefreshToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["email"] = tokenClaim.Email
	claims["userId"] = tokenClaim.UserId
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	t, err := token.SignedString(jwtSecret())
	return t, err
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})

	return token, err
}

// GetInfoUserFromToken đọc claim từ token đã qua middleware.Protected,
// trả về claim + cờ admin. User bị xóa/deactive coi như không hợp lệ
func GetInfoUserFromToken(c *fiber.Ctx) (model.TokenClaim, bool, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}, false, errors.New("missing token in context")
	}
	tokenClaim, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, false, errors.New("invalid token claims")
	}

	userIdFloat, ok := tokenClaim["userId"].(float64)
	if !ok {
		return model.TokenClaim{}, false, errors.New("token missing userId claim")
	}
	email, _ := tokenClaim["email"].(string)

	var user model.User
	db := database.DB
	if err := db.First(&user, uint(userIdFloat)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("user not found: id=%d", uint(userIdFloat))
			return model.TokenClaim{}, false, errors.New("user does not exist")
		}
		return model.TokenClaim{}, false, err
	}
	if !user.Active {
		return model.TokenClaim{}, false, errors.New("user is deactivated")
	}

	claim := model.TokenClaim{
		UserId: user.ID,
		Email:  email,
	}
	return claim, user.Role == constants.ROLE_ADMIN, nil
}
