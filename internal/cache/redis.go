package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/Nishat-Ahmad/CRITiQUE/internal/config"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// key del contador de versión del catálogo (ver CatalogVersion)
const catalogVersionKey = "catalog:ver"

func InitRedis(cfg *config.Config) {
	client = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("❌ Error conectando a Redis: %v", err)
	}

	log.Println("✅ Redis OK.")
}

// =======================================================
//  Helpers JSON para usar desde los servicios
// =======================================================

// GetJSON lee una key de Redis, si existe deserializa el JSON en `dest`.
func GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if client == nil {
		return false, nil
	}

	val, err := client.Get(ctx, key).Result()
	if err == redis.Nil {
		// no existe la clave
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON serializa `value` a JSON y lo guarda en Redis con TTL en segundos.
func SetJSON(ctx context.Context, key string, value any, ttlSeconds int) error {
	if client == nil {
		return nil
	}

	b, err := json.Marshal(value)
	if err != nil {
		return err
	}

	ttl := time.Duration(ttlSeconds) * time.Second
	return client.Set(ctx, key, b, ttl).Err()
}

// =======================================================
//  Versionado del catálogo (invalidación de recomendaciones)
// =======================================================

// CatalogVersion devuelve la versión actual del catálogo. Las keys de
// cache de recomendaciones la incluyen, así cualquier escritura sobre
// places/reviews invalida lo cacheado sin borrar nada a mano.
func CatalogVersion(ctx context.Context) int64 {
	if client == nil {
		return 0
	}
	v, err := client.Get(ctx, catalogVersionKey).Int64()
	if err != nil {
		// sin contador todavía: versión 0
		return 0
	}
	return v
}

// BumpCatalogVersion incrementa el contador. Se llama en cada alta/baja/
// edición de lugares o reviews.
func BumpCatalogVersion(ctx context.Context) {
	if client == nil {
		return
	}
	if err := client.Incr(ctx, catalogVersionKey).Err(); err != nil {
		log.Printf("error incrementando %s: %v", catalogVersionKey, err)
	}
}
