package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	yaml "gopkg.in/yaml.v2"
)

var (
	JwtSecret     string
	Issuer        string
	DbHost        string
	DbPort        string
	DbUser        string
	DbPassword    string
	DbName        string
	ServerPort    string
	WebhookSecret string
	ClientDataDir string
)

// fileConfig mirrors the optional config.yaml; env vars win over it.
type fileConfig struct {
	JwtSecret     string `yaml:"jwt_secret"`
	Issuer        string `yaml:"issuer"`
	DbHost        string `yaml:"db_host"`
	DbPort        string `yaml:"db_port"`
	DbUser        string `yaml:"db_user"`
	DbPassword    string `yaml:"db_password"`
	DbName        string `yaml:"db_name"`
	ServerPort    string `yaml:"server_port"`
	WebhookSecret string `yaml:"webhook_secret"`
	ClientDataDir string `yaml:"client_data_dir"`
}

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	fc := loadFileConfig("config.yaml")

	JwtSecret = getEnv("JWT_SECRET", fc.JwtSecret, "defaultsecret")
	Issuer = getEnv("ISSUER", fc.Issuer, "tracker")
	DbHost = getEnv("DB_HOST", fc.DbHost, "localhost")
	DbPort = getEnv("DB_PORT", fc.DbPort, "5432")
	DbUser = getEnv("DB_USER", fc.DbUser, "postgres")
	DbPassword = getEnv("DB_PASSWORD", fc.DbPassword, "password")
	DbName = getEnv("DB_NAME", fc.DbName, "tracker")
	ServerPort = getEnv("SERVER_PORT", fc.ServerPort, "8080")
	WebhookSecret = getEnv("WEBHOOK_SECRET", fc.WebhookSecret, "")
	ClientDataDir = getEnv("CLIENT_DATA_DIR", fc.ClientDataDir, "")
}

func loadFileConfig(path string) fileConfig {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		log.Printf("Ignoring malformed %s: %v", path, err)
		return fileConfig{}
	}
	return fc
}

func getEnv(key string, fallbacks ...string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	for _, fb := range fallbacks {
		if fb != "" {
			return fb
		}
	}
	return ""
}
