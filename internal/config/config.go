package config

import (
	"os"
	"strconv"
)

type Config struct {
	AppEnv   string
	HTTPAddr string

	UpstreamBaseURL    string
	UpstreamTimeoutSec int

	RedisURL string
	CartKey  string

	JWTIssuer         string
	JWTAccessSecret   string
	AccessTokenTTLMin int

	AdminEmail        string
	AdminPasswordHash string

	StoreName    string
	StoreAddress string
	StorePhone   string
}

func Load() Config {
	return Config{
		AppEnv:   get("APP_ENV", "dev"),
		HTTPAddr: get("HTTP_ADDR", ":8080"),

		UpstreamBaseURL:    get("UPSTREAM_BASE_URL", "https://srivelkanistore.site/api"),
		UpstreamTimeoutSec: getInt("UPSTREAM_TIMEOUT_SEC", 15),

		RedisURL: get("REDIS_URL", "redis://localhost:6379/0"),
		CartKey:  get("CART_KEY", "velkani:admin:cart"),

		JWTIssuer:         get("JWT_ISSUER", "velkani-admin"),
		JWTAccessSecret:   get("JWT_ACCESS_SECRET", ""),
		AccessTokenTTLMin: getInt("ACCESS_TOKEN_TTL_MIN", 60),

		AdminEmail:        get("ADMIN_EMAIL", ""),
		AdminPasswordHash: get("ADMIN_PASSWORD_HASH", ""),

		StoreName:    get("STORE_NAME", "Sri Velkani Store"),
		StoreAddress: get("STORE_ADDRESS", ""),
		StorePhone:   get("STORE_PHONE", ""),
	}
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
