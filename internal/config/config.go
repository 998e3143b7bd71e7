package config

import "os"

type Config struct {
	HTTPAddr        string
	DBPath          string
	GelfAddr        string
	ScoringStrategy string
	LogLevel        string
	SMTPHost        string
	SMTPPort        int
	SMTPUser        string
	SMTPPass        string
	EmailFrom       string
	BaseURL         string
}

func Load() *Config {
	return &Config{
		HTTPAddr:        getEnv("CYBERCHECK_ADDR", ":8080"),
		DBPath:          getEnv("CYBERCHECK_DB", "data/cybercheck.db"),
		GelfAddr:        getEnv("CYBERCHECK_GELF_ADDR", ""),
		ScoringStrategy: getEnv("CYBERCHECK_SCORING", "position"),
		LogLevel:        getEnv("CYBERCHECK_LOG_LEVEL", "info"),
		SMTPHost:        getEnv("CYBERCHECK_SMTP_HOST", ""),
		SMTPPort:        getEnvInt("CYBERCHECK_SMTP_PORT", 587),
		SMTPUser:        getEnv("CYBERCHECK_SMTP_USER", ""),
		SMTPPass:        getEnv("CYBERCHECK_SMTP_PASS", ""),
		EmailFrom:       getEnv("CYBERCHECK_EMAIL_FROM", "reports@gocybercheck.com"),
		BaseURL:         getEnv("CYBERCHECK_BASE_URL", "http://localhost:8080"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n := 0
	for _, c := range v {
		if c < '0' || c > '9' {
			return fallback
		}
		n = n*10 + int(c-'0')
	}
	return n
}
