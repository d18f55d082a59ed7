package env_config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"hiring-stream/pkg/commtypes"
)

var (
	DEBUG_CHECK = checkDebug()
)

func checkDebug() bool {
	debugStr := os.Getenv("DEBUG_CHECK")
	return debugStr == "true" || debugStr == "1"
}

func BoolFromEnv(name string, defaultVal bool) bool {
	str := os.Getenv(name)
	if str == "" {
		return defaultVal
	}
	return str == "true" || str == "1"
}

func StringFromEnv(name string, defaultVal string) string {
	str := os.Getenv(name)
	if str == "" {
		return defaultVal
	}
	return str
}

func Uint8FromEnv(name string, defaultVal uint8) uint8 {
	str := os.Getenv(name)
	if str == "" {
		return defaultVal
	}
	v, err := strconv.ParseUint(str, 10, 8)
	if err != nil {
		return defaultVal
	}
	return uint8(v)
}

func DurationFromEnv(name string, defaultVal time.Duration) time.Duration {
	str := os.Getenv(name)
	if str == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(str)
	if err != nil {
		return defaultVal
	}
	return d
}

// RedisAddr returns the configured Redis endpoints, one per shard.
// An empty list selects the in-memory event log.
func RedisAddr() []string {
	rawAddr := os.Getenv("REDIS_ADDR")
	if rawAddr == "" {
		return nil
	}
	return strings.Split(rawAddr, ",")
}

func SerdeFormatFromEnv(name string, defaultVal commtypes.SerdeFormat) commtypes.SerdeFormat {
	switch strings.ToLower(os.Getenv(name)) {
	case "json":
		return commtypes.JSON
	case "msgp":
		return commtypes.MSGP
	default:
		return defaultVal
	}
}
