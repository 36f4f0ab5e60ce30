package cache

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/foodtruck-storefront/internal/config"
)

// TTL curto o suficiente para o verdict não ficar defasado além de um
// minuto na vitrine pública.
const StorefrontTTL = 60 * time.Second

type Cache struct {
	client *redis.Client
}

func New(cfg *config.Config) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		// Cache indisponível não derruba a API; seguimos sem ele.
		log.Printf("redis indisponível (%v), respostas públicas sem cache", err)
		return &Cache{}
	}

	return &Cache{client: client}
}

func storefrontKey(slug string) string {
	return "storefront:" + slug
}

func (c *Cache) GetStorefront(ctx context.Context, slug string) ([]byte, bool) {
	if c.client == nil {
		return nil, false
	}

	b, err := c.client.Get(ctx, storefrontKey(slug)).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

func (c *Cache) SetStorefront(ctx context.Context, slug string, payload []byte) {
	if c.client == nil {
		return
	}
	c.client.Set(ctx, storefrontKey(slug), payload, StorefrontTTL)
}

// InvalidateStorefront é chamado em toda escrita de agenda/cardápio
// para a vitrine refletir a mudança na hora.
func (c *Cache) InvalidateStorefront(ctx context.Context, slug string) {
	if c.client == nil {
		return
	}
	c.client.Del(ctx, storefrontKey(slug))
}
