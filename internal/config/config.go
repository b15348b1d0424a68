package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// ProxyUserAgent is sent upstream by the reverse proxy instead of the caller's user agent.
const ProxyUserAgent = "KittenGames-Proxy/1.0"

// ProxyAcceptLanguage is used when the caller sends no accept-language header.
const ProxyAcceptLanguage = "nl,en;q=0.8"

// Browser identity used by the site instance probe, matching the azuretls Chrome fingerprint.
const (
	ChromeUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"
	ChromeSecChUa   = `"Google Chrome";v="131", "Chromium";v="131", "Not_A Brand";v="24"`
)

const (
	DefaultPrimaryModel  = "x-ai/grok-4-fast:free"
	DefaultFallbackModel = "deepseek/deepseek-chat-v3.1:free"
	DefaultAIBaseURL     = "https://openrouter.ai/api/v1/"
)

type Config struct {
	Addr      string
	DataDir   string
	DBPath    string
	StaticDir string
	LogLevel  string
	LogFormat string

	LibraryDir      string
	ProxySitesPath  string
	ProxyDailyLimit int
	OutboundProxy   string

	AIProvider      string
	AIAPIKey        string
	AIBaseURL       string
	AIPrimaryModel  string
	AIFallbackModel string
	AIRateLimit     int
	SiteURL         string

	AdminPasswordHash string
	JWTSecret         string

	EnableSwagger        bool
	HousekeepingInterval time.Duration
}

func Load() Config {
	dataDir := envOr("KITTEN_DATA_DIR", "data")

	dbPath := os.Getenv("KITTEN_DB_PATH")
	if dbPath == "" {
		dbPath = filepath.Join(dataDir, "kitten.db")
	}

	staticDir := os.Getenv("KITTEN_STATIC_DIR")
	if staticDir == "" {
		staticDir = detectStaticDir()
	}

	siteURL := os.Getenv("KITTEN_SITE_URL")
	if siteURL == "" {
		siteURL = os.Getenv("NEXT_PUBLIC_SITE_URL")
	}

	apiKey := os.Getenv("OPENROUTER_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("KITTEN_AI_API_KEY")
	}

	return Config{
		Addr:      envOr("KITTEN_ADDR", ":8080"),
		DataDir:   dataDir,
		DBPath:    filepath.Clean(dbPath),
		StaticDir: filepath.Clean(staticDir),
		LogLevel:  envOr("KITTEN_LOG_LEVEL", "info"),
		LogFormat: envOr("KITTEN_LOG_FORMAT", "text"),

		LibraryDir:      filepath.Clean(envOr("KITTEN_LIBRARY_DIR", "./KittenGames-gamelibrary-main")),
		ProxySitesPath:  os.Getenv("KITTEN_PROXY_SITES"),
		ProxyDailyLimit: envInt("KITTEN_PROXY_DAILY_LIMIT", 25),
		OutboundProxy:   os.Getenv("KITTEN_OUTBOUND_PROXY"),

		AIProvider:      strings.ToLower(envOr("KITTEN_AI_PROVIDER", "openrouter")),
		AIAPIKey:        apiKey,
		AIBaseURL:       envOr("KITTEN_AI_BASE_URL", DefaultAIBaseURL),
		AIPrimaryModel:  envOr("KITTEN_AI_PRIMARY_MODEL", DefaultPrimaryModel),
		AIFallbackModel: envOr("KITTEN_AI_FALLBACK_MODEL", DefaultFallbackModel),
		AIRateLimit:     envInt("KITTEN_AI_RATE_LIMIT", 60),
		SiteURL:         siteURL,

		AdminPasswordHash: os.Getenv("KITTEN_ADMIN_PASSWORD_HASH"),
		JWTSecret:         os.Getenv("KITTEN_JWT_SECRET"),

		EnableSwagger:        envBool("KITTEN_ENABLE_SWAGGER", false),
		HousekeepingInterval: envDuration("KITTEN_HOUSEKEEPING_INTERVAL", 15*time.Minute),
	}
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func envBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func detectStaticDir() string {
	candidates := []string{
		"./frontend/out",
		"../frontend/out",
	}
	for _, candidate := range candidates {
		indexPath := filepath.Join(candidate, "index.html")
		if info, err := os.Stat(indexPath); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return "./frontend/out"
}
