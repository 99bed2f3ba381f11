package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const devJWTSecret = "dev-insecure-secret-change"

// Config is read from the environment once at startup.
type Config struct {
	Port           string
	JWTSecret      string
	APIKeyHash     string // bcrypt hash, see cmd/hash_key
	UploadBase     string
	MaxUploadMB    int
	TokenTTL       time.Duration
	OCRLangs       []string
	TessdataPrefix string
	OCRAdaptive    bool
}

func loadConfig() Config {
	cfg := Config{
		Port:           getEnv("PORT", "8081"),
		JWTSecret:      getEnv("JWT_SECRET", devJWTSecret),
		APIKeyHash:     os.Getenv("API_KEY_HASH"),
		UploadBase:     getEnv("UPLOAD_BASE", "uploads"),
		MaxUploadMB:    getEnvAsInt("MAX_UPLOAD_MB", 5),
		TokenTTL:       getEnvAsDuration("TOKEN_TTL", 24*time.Hour),
		OCRLangs:       strings.Split(getEnv("OCR_LANGS", "eng"), "+"),
		TessdataPrefix: os.Getenv("TESSDATA_PREFIX"),
		OCRAdaptive:    getEnvAsBool("OCR_ADAPTIVE", false),
	}
	if cfg.MaxUploadMB <= 0 {
		cfg.MaxUploadMB = 5
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvAsInt(key string, def int) int {
	if n, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return n
	}
	return def
}

func getEnvAsBool(key string, def bool) bool {
	if b, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return b
	}
	return def
}

func getEnvAsDuration(key string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(getEnv(key, "")); err == nil && d > 0 {
		return d
	}
	return def
}

// loadDotEnv loads key=value pairs from path into the environment without
// overwriting variables that are already set. Lines starting with # are ignored.
func loadDotEnv(path string) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return // no .env file
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		eq := strings.IndexByte(line, '=')
		if eq <= 0 {
			continue
		}
		key := strings.TrimSpace(line[:eq])
		val := strings.Trim(strings.TrimSpace(line[eq+1:]), `"'`)
		if _, exists := os.LookupEnv(key); !exists {
			_ = os.Setenv(key, val)
		}
	}
}
