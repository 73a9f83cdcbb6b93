package redis

import (
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/earthart/aether/base/ctx"
	"github.com/earthart/aether/base/metrics"
	"github.com/earthart/aether/domain/keys"
)

const (
	// retTTLNoKey is the return value of TTL when the key does not exist
	retTTLNoKey = -2
	// retTTLNoExpire is the return value of TTL when the key has no expire
	retTTLNoExpire = -1
)

var (
	ErrNotFound = errors.New("redis: key not found")
	ErrNoTTL    = errors.New("redis: key has no ttl")
)

// Service is the subset of redis commands the cache layer needs
type Service interface {
	Get(c ctx.Ctx, key string) ([]byte, error)
	Set(c ctx.Ctx, key string, val []byte, expire time.Duration) error
	TTL(c ctx.Ctx, key string) (int, error)
	Del(c ctx.Ctx, key string) error
	Ping(c ctx.Ctx) error
}

type impl struct {
	name string
	met  metrics.Service
	pool *redis.Pool
}

func New(name string, met metrics.Service, pool *redis.Pool) Service {
	return &impl{
		name: name,
		met:  met,
		pool: pool,
	}
}

func (r *impl) do(c ctx.Ctx, commandName string, args ...interface{}) (interface{}, error) {
	conn, err := r.pool.GetContext(c)
	if err != nil {
		r.met.BumpSum("getconn.err", 1, "cluster", r.name)
		return nil, err
	}
	reply, err := conn.Do(commandName, args...)
	// release asap so the pool does not grow under load
	if err := conn.Close(); err != nil {
		r.met.BumpSum("conn.Close.err", 1, "cluster", r.name)
	}
	return reply, err
}

func (r *impl) tags(fn, key string) []string {
	return []string{"func", fn, "cluster", r.name, "prefix", keys.GetPrefix(key)}
}

func (r *impl) Get(c ctx.Ctx, key string) ([]byte, error) {
	tags := r.tags("get", key)
	defer r.met.BumpTime("time", tags...).End()

	val, err := redis.Bytes(r.do(c, "GET", key))
	if err == redis.ErrNil {
		return nil, ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("GET redis failed")
		return nil, err
	}
	r.met.BumpHistogram("bytes", float64(len(val)), tags...)
	return val, nil
}

func (r *impl) Set(c ctx.Ctx, key string, val []byte, expire time.Duration) error {
	tags := r.tags("set", key)
	defer r.met.BumpTime("time", tags...).End()
	r.met.BumpHistogram("bytes", float64(len(val)), tags...)

	args := []interface{}{key, val}
	if expire > 0 {
		args = append(args, "PX", int64(expire/time.Millisecond))
	}
	if _, err := r.do(c, "SET", args...); err != nil {
		c.WithField("err", err).Error("SET redis failed")
		return err
	}
	return nil
}

func (r *impl) TTL(c ctx.Ctx, key string) (int, error) {
	defer r.met.BumpTime("time", r.tags("ttl", key)...).End()

	res, err := redis.Int(r.do(c, "TTL", key))
	if err != nil {
		c.WithField("err", err).Error("TTL redis failed")
		return 0, err
	}
	switch res {
	case retTTLNoKey:
		return res, ErrNotFound
	case retTTLNoExpire:
		return res, ErrNoTTL
	}
	return res, nil
}

func (r *impl) Del(c ctx.Ctx, key string) error {
	defer r.met.BumpTime("time", r.tags("del", key)...).End()

	if _, err := r.do(c, "DEL", key); err != nil {
		c.WithField("err", err).Error("DEL redis failed")
		return err
	}
	return nil
}

func (r *impl) Ping(c ctx.Ctx) error {
	_, err := r.do(c, "PING")
	return err
}
