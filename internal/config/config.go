package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers.
const (
	StorePocketBase = "pocketbase"
	StoreFirestore  = "firestore"
	StoreMongo      = "mongo"
	StoreMemory     = "memory"
)

// Cache drivers.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

const defaultSessionSecret = "physiocare-dev-secret"

type Config struct {
	HTTP struct {
		Addr string
	}
	Store struct {
		Driver string
	}
	Firebase struct {
		CredentialsFile string
		ProjectID       string
	}
	Mongo struct {
		URI      string
		Database string
	}
	Cache struct {
		Driver string
		TTL    time.Duration
	}
	Redis struct {
		Addr     string
		Password string
		DB       int
	}
	Session struct {
		Secret       string
		SecureCookie bool
	}
	FCM struct {
		Enabled bool
		Topic   string
	}
	Log struct {
		Level  string
		Format string
	}
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.HTTP.Addr = getEnv("HTTP_ADDR", "127.0.0.1:8090")

	cfg.Store.Driver = getEnv("STORE_DRIVER", StorePocketBase)

	cfg.Firebase.CredentialsFile = getEnv("FIREBASE_CREDENTIALS", "")
	cfg.Firebase.ProjectID = getEnv("FIREBASE_PROJECT_ID", "")

	cfg.Mongo.URI = getEnv("MONGO_URI", "mongodb://localhost:27017")
	cfg.Mongo.Database = getEnv("MONGO_DATABASE", "physiocare")

	cfg.Cache.Driver = getEnv("CACHE_DRIVER", CacheNone)
	cfg.Cache.TTL = time.Duration(parseInt(getEnv("CACHE_TTL_SECONDS", "60"), 60)) * time.Second

	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = parseInt(getEnv("REDIS_DB", "0"), 0)

	cfg.Session.Secret = getEnv("SESSION_SECRET", defaultSessionSecret)
	cfg.Session.SecureCookie = parseBool(getEnv("SESSION_SECURE_COOKIE", "false"))

	cfg.FCM.Enabled = parseBool(getEnv("FCM_ENABLED", "false"))
	cfg.FCM.Topic = getEnv("FCM_TOPIC", "clinic-admins")

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	return cfg
}

// UsingDefaultSecret reports whether sessions are signed with the built-in
// development secret.
func (c *Config) UsingDefaultSecret() bool {
	return c.Session.Secret == defaultSessionSecret
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(s)
	return err == nil && b
}
