package cache

import (
	"time"

	"github.com/coocood/freecache"

	"github.com/earthart/aether/base/ctx"
	"github.com/earthart/aether/service/redis"
)

type local struct {
	cache *freecache.Cache
}

// NewLocal is an in-process provider of sizeMB megabytes
func NewLocal(sizeMB int) Provider {
	return &local{freecache.NewCache(sizeMB * 1024 * 1024)}
}

func (l *local) Get(c ctx.Ctx, key string) ([]byte, error) {
	val, err := l.cache.Get([]byte(key))
	if err == freecache.ErrNotFound {
		return nil, ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).Error("freecache.Get failed")
		return nil, err
	}
	return val, nil
}

func (l *local) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	if err := l.cache.Set([]byte(key), value, int(ttl.Seconds())); err != nil {
		c.WithField("err", err).WithField("key", key).Error("freecache.Set failed")
		return err
	}
	return nil
}

func (l *local) Del(c ctx.Ctx, key string) error {
	l.cache.Del([]byte(key))
	return nil
}

type remote struct {
	redis redis.Service
}

// NewRedis stores values in redis
func NewRedis(r redis.Service) Provider {
	return &remote{r}
}

func (r *remote) Get(c ctx.Ctx, key string) ([]byte, error) {
	val, err := r.redis.Get(c, key)
	if err == redis.ErrNotFound {
		return nil, ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).Error("redis.Get failed")
		return nil, err
	}
	return val, nil
}

func (r *remote) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	return r.redis.Set(c, key, value, ttl)
}

func (r *remote) Del(c ctx.Ctx, key string) error {
	return r.redis.Del(c, key)
}
