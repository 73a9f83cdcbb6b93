package redisclient

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPoolSize(t *testing.T) {
	p := NewPool("localhost:6379", "", RedisParam{PoolMultiplier: 8})
	defer p.Close()
	cpu := runtime.NumCPU()
	assert.Equal(t, cpu*8, p.MaxActive)
	assert.Equal(t, cpu*2, p.MaxIdle)

	d := NewPool("localhost:6379", "")
	defer d.Close()
	assert.Equal(t, 64, d.MaxActive)
}

func TestConnectRedisUnreachable(t *testing.T) {
	// nothing listens on port 1
	_, err := ConnectRedis("127.0.0.1:1", "", RedisParam{Retry: false})
	assert.Error(t, err)
}
