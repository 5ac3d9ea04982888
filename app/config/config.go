package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB          *sql.DB
	Listen      string
	JWTSecret   string
	EmailDomain string
}

var AppConfig *Config

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Init loads environment configuration and opens the database connection.
func Init() {
	_ = godotenv.Load()

	var psqlInfo string
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		psqlInfo = dsn
	} else {
		host := getenv("DB_HOST", "localhost")
		port := getenv("DB_PORT", "5432")
		user := getenv("DB_USER", "postgres")
		password := os.Getenv("DB_PASSWORD")
		dbname := getenv("DB_NAME", "campusconnect")
		psqlInfo = fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable", host, port, user, dbname)
		if password != "" {
			psqlInfo += " password=" + password
		}
	}

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	log.Println("Connected to PostgreSQL database")

	AppConfig = &Config{
		DB:          db,
		Listen:      getenv("LISTEN_ADDR", ":3000"),
		JWTSecret:   getenv("JWT_SECRET", "campus-connect-secret-key"),
		EmailDomain: getenv("INSTITUTION_EMAIL_DOMAIN", "@bmsce.ac.in"),
	}
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

// EmailDomain returns the institutional email suffix required for
// student registration and login.
func EmailDomain() string {
	return AppConfig.EmailDomain
}

func JWTSecret() []byte {
	return []byte(AppConfig.JWTSecret)
}
