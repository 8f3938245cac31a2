package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"resume-match/internal/match"
)

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	ObjectStoreType string
	LocalStoreDir   string
	AWSRegion       string
	S3Bucket        string
	S3Prefix        string
	SSEKMSKeyID     string
	UploadsBucket   string
	UploadsPrefix   string
	DatabaseURL     string
	Env             string

	// Analysis tunables. Zero values fall back to match.DefaultConfig.
	MatchVocabCap          int
	MatchNGramMin          int
	MatchNGramMax          int
	MatchKeywordNGramMax   int
	MatchMissingKeywordCap int
	MatchTechBoost         float64
	MatchMaxInputBytes     int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	_ = godotenv.Load(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")

	if env == "production" && dbURL == "" {
		log.Printf("DATABASE_URL is required in production")
	}

	def := match.DefaultConfig()

	return Config{
		Port:            getEnv("PORT", "8080"),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		ObjectStoreType: normalizeStoreType(getEnv("OBJECT_STORE", "local")),
		LocalStoreDir:   getEnv("LOCAL_STORE_DIR", "./data"),
		AWSRegion:       getEnv("AWS_REGION", ""),
		S3Bucket:        getEnv("S3_BUCKET", ""),
		S3Prefix:        getEnv("S3_PREFIX", ""),
		SSEKMSKeyID:     getEnv("SSE_KMS_KEY_ID", ""),
		UploadsBucket:   getEnv("UPLOADS_S3_BUCKET", ""),
		UploadsPrefix:   getEnv("UPLOADS_S3_PREFIX", "documents/"),
		DatabaseURL:     dbURL,
		Env:             env,

		MatchVocabCap:          getEnvInt("MATCH_VOCAB_CAP", def.VocabCap),
		MatchNGramMin:          getEnvInt("MATCH_NGRAM_MIN", def.NGramMin),
		MatchNGramMax:          getEnvInt("MATCH_NGRAM_MAX", def.NGramMax),
		MatchKeywordNGramMax:   getEnvInt("MATCH_KEYWORD_NGRAM_MAX", def.KeywordNGramMax),
		MatchMissingKeywordCap: getEnvInt("MATCH_MISSING_KEYWORD_CAP", def.MissingKeywordCap),
		MatchTechBoost:         getEnvFloat("MATCH_TECH_BOOST", def.TechBoost),
		MatchMaxInputBytes:     getEnvInt("MATCH_MAX_INPUT_BYTES", def.MaxInputBytes),
	}
}

// MatchConfig translates the env-driven tunables into an analyzer config.
func (c Config) MatchConfig() match.Config {
	cfg := match.DefaultConfig()
	cfg.VocabCap = c.MatchVocabCap
	cfg.NGramMin = c.MatchNGramMin
	cfg.NGramMax = c.MatchNGramMax
	cfg.KeywordNGramMax = c.MatchKeywordNGramMax
	cfg.MissingKeywordCap = c.MatchMissingKeywordCap
	cfg.TechBoost = c.MatchTechBoost
	cfg.MaxInputBytes = c.MatchMaxInputBytes
	return cfg
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("config: %s invalid int %q, using default %d", key, raw, def)
		return def
	}
	return val
}

func getEnvFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("config: %s invalid float %q, using default %g", key, raw, def)
		return def
	}
	return val
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}
