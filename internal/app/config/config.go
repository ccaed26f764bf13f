package config

import "os"

type Config struct {
	StoreName  string
	Currency   string
	ReceiptDir string
}

// Load reads configuration from the environment. Every key has a default,
// so the binary runs with zero setup.
func Load() Config {
	return Config{
		StoreName:  env("STORE_NAME", "SUPERMARKET BILLING SYSTEM"),
		Currency:   env("CURRENCY", "$"),
		ReceiptDir: env("RECEIPT_DIR", ""),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
