package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Model backends.
const (
	BackendONNX   = "onnx"
	BackendRemote = "remote"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string

	// TLS/mTLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string
	TLSCAFile   string // CA for verifying client certs (mTLS)

	// Model
	ModelBackend      string // "onnx" or "remote"
	ModelDir          string // defaults to <cwd>/model
	ModelFile         string
	ModelMetadataFile string
	ONNXRuntimeLib    string // path to the onnxruntime shared library, empty for the system default

	// Remote model server (MODEL_BACKEND=remote)
	ModelServiceURL     string
	ModelServiceTimeout time.Duration

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Rate limiting
	RateLimitMax      int
	RateLimitRedisURL string // Shared limiter storage, in-memory when empty

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "Crop Recommendation"
	SiteTagline string // env: SITE_TAGLINE
	SiteFooter  string // env: SITE_FOOTER
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:        getEnv("ENV", "development"),
		ServerAddr: getEnv("SERVER_ADDR", ":5000"),

		TLSEnabled:  getEnv("TLS_ENABLED", "") != "",
		TLSCertFile: getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:  getEnv("TLS_KEY_FILE", ""),
		TLSCAFile:   getEnv("TLS_CA_FILE", ""),

		ModelBackend:      getEnv("MODEL_BACKEND", BackendONNX),
		ModelDir:          getEnv("MODEL_DIR", defaultModelDir()),
		ModelFile:         getEnv("MODEL_FILE", "crop_recommendation_model.onnx"),
		ModelMetadataFile: getEnv("MODEL_METADATA_FILE", "crop_recommendation_model.yaml"),
		ONNXRuntimeLib:    getEnv("ONNXRUNTIME_LIB", ""),

		ModelServiceURL:     getEnv("MODEL_SERVICE_URL", "http://localhost:8000"),
		ModelServiceTimeout: getDuration("MODEL_SERVICE_TIMEOUT", 10*time.Second),

		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		RateLimitMax:      getInt("RATE_LIMIT_MAX", 100),
		RateLimitRedisURL: getEnv("RATE_LIMIT_REDIS_URL", ""),

		SiteTitle:   getEnv("SITE_TITLE", "Crop Recommendation"),
		SiteTagline: getEnv("SITE_TAGLINE", "Find the crop that suits your soil and climate"),
		SiteFooter:  getEnv("SITE_FOOTER", "Crop Recommendation - soil and climate based suggestions"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

// defaultModelDir resolves the model directory against the working directory.
func defaultModelDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return "model"
	}
	return filepath.Join(wd, "model")
}

// ModelPath returns the full path of the model artifact.
func (c *Config) ModelPath() string {
	return filepath.Join(c.ModelDir, c.ModelFile)
}

// MetadataPath returns the full path of the model metadata file.
func (c *Config) MetadataPath() string {
	return filepath.Join(c.ModelDir, c.ModelMetadataFile)
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsMTLSEnabled returns true if mTLS is configured with a CA file.
func (c *Config) IsMTLSEnabled() bool {
	return c.TLSEnabled && c.TLSCAFile != ""
}

// IsRemoteModel returns true if predictions are served by a remote model server.
func (c *Config) IsRemoteModel() bool {
	return c.ModelBackend == BackendRemote
}
