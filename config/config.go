package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config đọc biến môi trường, ưu tiên file .env nếu có
func Config(key string) string {
	// .env là tùy chọn — production dùng env thật
	_ = godotenv.Load(".env")
	return os.Getenv(key)
}
