// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"solmar/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionCacheClient holds in-progress booking sessions.
	SessionCacheClient *redis.Client
	// ChargeGuardClient is the dedicated client for charge in-flight flags
	// and orphan-charge markers.
	ChargeGuardClient *redis.Client
)

// InitSessionCache initializes the Redis client for booking sessions.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SessionCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Sessions): %v", err)
	}
}

// GetSessionCacheClient returns the booking session client.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}

// InitChargeGuard initializes the Redis client for charge guards.
func InitChargeGuard() {
	ChargeGuardClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisChargeDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := ChargeGuardClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Charge Guard): %v", err)
	}
}

// GetChargeGuardClient returns the Redis client for charge guards.
func GetChargeGuardClient() *redis.Client {
	if ChargeGuardClient == nil {
		InitChargeGuard()
	}
	return ChargeGuardClient
}
