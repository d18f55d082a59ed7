package redis_client

import (
	"github.com/go-redis/redis/v9"

	"hiring-stream/pkg/env_config"
)

func GetRedisClients() []*redis.Client {
	addrArr := env_config.RedisAddr()
	rdbArr := make([]*redis.Client, len(addrArr))
	for i := 0; i < len(addrArr); i++ {
		rdbArr[i] = redis.NewClient(&redis.Options{
			Addr:     addrArr[i],
			Password: "", // no password set
			DB:       0,  // use default DB
		})
	}
	return rdbArr
}
