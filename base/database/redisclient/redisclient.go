package redisclient

import (
	"context"
	"runtime"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/earthart/aether/base/backoff"
	"github.com/earthart/aether/base/log"
)

const (
	dialTimeout  = 2 * time.Second
	readTimeout  = 1500 * time.Millisecond
	writeTimeout = 1500 * time.Millisecond

	retryCount    = 3
	retryDelay    = time.Second
	retryMaxDelay = 8 * time.Second
)

// RedisParam is the optional param for redis connection
type RedisParam struct {
	PoolMultiplier float64
	Retry          bool
}

// NewPool builds a pool without dialing
func NewPool(uri, password string, param ...RedisParam) *redis.Pool {
	maxIdle := 16
	maxActive := 64
	if len(param) > 0 && param[0].PoolMultiplier > 0 {
		cpu := float64(runtime.NumCPU())
		// allowing 25% idle connection
		maxIdle = int(cpu * param[0].PoolMultiplier / 4)
		maxActive = int(cpu * param[0].PoolMultiplier)
	}

	opts := []redis.DialOption{
		redis.DialConnectTimeout(dialTimeout),
		redis.DialReadTimeout(readTimeout),
		redis.DialWriteTimeout(writeTimeout),
	}
	if password != "" {
		opts = append(opts, redis.DialPassword(password))
	}
	return &redis.Pool{
		MaxIdle:     maxIdle,
		MaxActive:   maxActive,
		Wait:        true,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", uri, opts...)
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			// No need to test if it's been recycled less than 1 sec.
			if time.Since(t) < time.Second {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}
}

// ConnectRedis builds a pool and pings it, retrying when param.Retry is set
func ConnectRedis(uri, password string, param ...RedisParam) (*redis.Pool, error) {
	p := NewPool(uri, password, param...)
	retry := len(param) > 0 && param[0].Retry

	var err error
	b := backoff.NewExponential(retryDelay, retryMaxDelay)
	for i := 0; i <= retryCount; i++ {
		if i > 0 {
			if !retry {
				break
			}
			if err := b.Wait(context.Background()); err != nil {
				break
			}
		}
		if err = ping(p); err == nil {
			log.Log().WithField("redisURI", uri).Info("redis connected")
			return p, nil
		}
		log.Log().WithFields(log.Fields{
			"redisURI": uri,
			"err":      err,
			"retry":    i,
		}).Error("fail to dial Redis")
	}
	p.Close()
	return nil, err
}

// MustConnectRedis connects to one redis uri
// NOTE This function panics if the connection fails.
func MustConnectRedis(uri, password string, param ...RedisParam) *redis.Pool {
	p, err := ConnectRedis(uri, password, param...)
	if err != nil {
		log.Log().WithFields(log.Fields{"redisURI": uri, "err": err}).Panic("fail to dial Redis")
	}
	return p
}

func ping(p *redis.Pool) error {
	c := p.Get()
	defer c.Close()
	_, err := c.Do("PING")
	return err
}
