package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// DefaultRPCEndpoint is the public Sui devnet fullnode.
const DefaultRPCEndpoint = "https://fullnode.devnet.sui.io:443"

type Config struct {
	Addr          string
	RPCEndpoint   string
	LogLevel      string
	LogFormat     string
	PoolCacheSize int
	PoolCacheTTL  time.Duration
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		Addr:        getenv("ADDR", ":1337"),
		RPCEndpoint: getenv("SUI_RPC_URL", DefaultRPCEndpoint),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		LogFormat:   getenv("LOG_FORMAT", "text"),
	}

	size, err := strconv.Atoi(getenv("POOL_CACHE_SIZE", "128"))
	if err != nil || size < 0 {
		return nil, fmt.Errorf("%w: POOL_CACHE_SIZE=%q", ErrInvalidValue, os.Getenv("POOL_CACHE_SIZE"))
	}
	cfg.PoolCacheSize = size

	ttl, err := time.ParseDuration(getenv("POOL_CACHE_TTL", "5s"))
	if err != nil || ttl < 0 {
		return nil, fmt.Errorf("%w: POOL_CACHE_TTL=%q", ErrInvalidValue, os.Getenv("POOL_CACHE_TTL"))
	}
	cfg.PoolCacheTTL = ttl

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
