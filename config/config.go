package config

import (
	"os"
	"strconv"
)

type Config struct {
	DBHost             string
	DBPort             int
	DBUser             string
	DBPassword         string
	DBName             string
	JWTSecret          string
	ServerAddr         string
	BackupDir          string
	StorageType        string
	S3Bucket           string
	BackupReminderDays int
}

func LoadConfig() *Config {
	dbPort, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	reminderDays, _ := strconv.Atoi(getEnv("BACKUP_REMINDER_DAYS", "7"))
	return &Config{
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             dbPort,
		DBUser:             os.Getenv("DB_USER"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBName:             os.Getenv("DB_NAME"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		ServerAddr:         getEnv("SERVER_ADDR", ":8080"),
		BackupDir:          getEnv("BACKUP_DIR", "./backups"),
		StorageType:        getEnv("STORAGE_TYPE", "local"),
		S3Bucket:           os.Getenv("S3_BUCKET"),
		BackupReminderDays: reminderDays,
	}
}

// getEnv retrieves an environment variable or returns a default value if not set.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
