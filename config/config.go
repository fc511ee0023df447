package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port              string
	Timezone          string
	DBPath            string
	UndoWindowSeconds int
	UpcomingLimit     int
	CareProfileCSV    string
	CareProfileXLSX   string
	TipsAllowedHosts  string
	TipsMaxPageBytes  int
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getInt := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				return n
			}
			log.Printf("[cfg] ignoring bad %s=%q, using %d", k, v, def)
		}
		return def
	}
	cfg := AppConfig{
		Port:              get("PORT", "8080"),
		Timezone:          get("TZ", "Europe/Helsinki"),
		DBPath:            get("DB_PATH", "plantbuddy.db"),
		UndoWindowSeconds: getInt("UNDO_WINDOW_SECONDS", 5),
		UpcomingLimit:     getInt("UPCOMING_LIMIT", 5),
		CareProfileCSV:    get("CARE_PROFILE_CSV", ""),
		CareProfileXLSX:   get("CARE_PROFILE_XLSX", ""),
		TipsAllowedHosts:  get("TIPS_ALLOWED_DOMAINS", ""),
		TipsMaxPageBytes:  getInt("TIPS_MAX_BYTES_PER_PAGE", 1500000),
	}
	log.Printf("[cfg] %+v", cfg)
	return cfg
}
