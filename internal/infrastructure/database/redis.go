package database

import "github.com/redis/go-redis/v9"

type Redis struct{ Client *redis.Client }

func NewRedis(addr, password string, db int) *Redis {
	return &Redis{Client: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}
