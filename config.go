package debtbook

import "os"

// defaultDataDir is where the book lives unless configured otherwise.
const defaultDataDir = ".debtbook"

// Config holds runtime configuration sourced from environment variables.
type Config struct {
	DataDir  string // DEBTBOOK_DATA
	Currency string // DEBTBOOK_CURRENCY
	LogLevel string // LOG_LEVEL
}

// LoadConfig reads configuration from the environment, applying defaults
// and validating the reporting currency.
func LoadConfig() (Config, error) {
	cfg := Config{
		DataDir:  getEnv("DEBTBOOK_DATA", defaultDataDir),
		Currency: getEnv("DEBTBOOK_CURRENCY", DefaultCurrency),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
	if err := ValidateCurrency(cfg.Currency); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultVal
}
