package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server
	AppPort string `yaml:"APP_PORT"`
	AppURL  string `yaml:"APP_URL"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// JWT
	JWTSecret string `yaml:"JWT_SECRET"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}

	os.Setenv("JWT_SECRET", config.JWTSecret)
	os.Setenv("AWS_S3_BUCKET", config.AWSS3Bucket)
	os.Setenv("AWS_S3_REGION", config.AWSS3Region)
	os.Setenv("AWS_ACCESS_KEY", config.AWSAccessKey)
	os.Setenv("AWS_SECRET_KEY", config.AWSSecretKey)
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		return withEnvFallback(config.AppPort, "APP_PORT")
	case "APP_URL":
		return withEnvFallback(config.AppURL, "APP_URL")
	case "DB_USER":
		return withEnvFallback(config.DBUser, "DB_USER")
	case "DB_NAME":
		return withEnvFallback(config.DBName, "DB_NAME")
	case "DB_PASSWORD":
		return withEnvFallback(config.DBPassword, "DB_PASSWORD")
	case "DB_PORT":
		return withEnvFallback(config.DBPort, "DB_PORT")
	case "DB_HOST":
		return withEnvFallback(config.DBHost, "DB_HOST")
	case "JWT_SECRET":
		return withEnvFallback(config.JWTSecret, "JWT_SECRET")
	case "SMTP_HOST":
		return withEnvFallback(config.SMTPHost, "SMTP_HOST")
	case "SMTP_PORT":
		return withEnvFallback(config.SMTPPort, "SMTP_PORT")
	case "SMTP_SENDER_NAME":
		return withEnvFallback(config.SMTPSenderName, "SMTP_SENDER_NAME")
	case "SMTP_AUTH_EMAIL":
		return withEnvFallback(config.SMTPAuthEmail, "SMTP_AUTH_EMAIL")
	case "SMTP_AUTH_PASSWORD":
		return withEnvFallback(config.SMTPAuthPassword, "SMTP_AUTH_PASSWORD")
	case "AWS_S3_BUCKET":
		return withEnvFallback(config.AWSS3Bucket, "AWS_S3_BUCKET")
	case "AWS_S3_REGION":
		return withEnvFallback(config.AWSS3Region, "AWS_S3_REGION")
	case "AWS_ACCESS_KEY":
		return withEnvFallback(config.AWSAccessKey, "AWS_ACCESS_KEY")
	case "AWS_SECRET_KEY":
		return withEnvFallback(config.AWSSecretKey, "AWS_SECRET_KEY")
	default:
		return ""
	}
}

func withEnvFallback(value, envKey string) string {
	if value != "" {
		return value
	}
	return os.Getenv(envKey)
}
