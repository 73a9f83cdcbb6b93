package cache

import (
	"errors"
	"time"

	"github.com/earthart/aether/base/ctx"
)

var (
	ErrNotFound = errors.New("Cache not found")
)

// Getter loads the value on a miss. It must return a pointer.
type Getter func() (interface{}, error)

type Serializer func(interface{}) ([]byte, error)

type Deserializer func([]byte, interface{}) error

// Service stores typed values under a prefix
type Service interface {
	GetByFunc(c ctx.Ctx, key string, container interface{}, getter Getter) error
	Get(c ctx.Ctx, key string, container interface{}) error
	Set(c ctx.Ctx, key string, value interface{}) error
	Del(c ctx.Ctx, key string) error
}

// Provider is a raw byte store
type Provider interface {
	Get(c ctx.Ctx, key string) ([]byte, error)
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
	Del(c ctx.Ctx, key string) error
}

type ServiceConfig struct {
	Ttl         time.Duration
	Pfx         string
	Provider    Provider
	Serialize   Serializer
	Deserialize Deserializer
}
