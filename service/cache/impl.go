package cache

import (
	"encoding/json"
	"reflect"
	"time"

	"github.com/earthart/aether/base/ctx"
	"github.com/earthart/aether/domain/keys"
)

type impl struct {
	ttl         time.Duration
	pfx         string
	provider    Provider
	serialize   Serializer
	deserialize Deserializer
}

func New(config ServiceConfig) Service {
	if config.Serialize == nil {
		config.Serialize = json.Marshal
	}

	if config.Deserialize == nil {
		config.Deserialize = json.Unmarshal
	}

	return &impl{
		ttl:         config.Ttl,
		pfx:         config.Pfx,
		provider:    config.Provider,
		serialize:   config.Serialize,
		deserialize: config.Deserialize,
	}
}

func (im *impl) GetByFunc(c ctx.Ctx, key string, container interface{}, getter Getter) error {
	return getByFunc(im, c, key, container, getter)
}

func (im *impl) Get(c ctx.Ctx, key string, container interface{}) error {
	key = keys.RedisKey(im.pfx, key)

	val, err := im.provider.Get(c, key)
	if err == ErrNotFound {
		return ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).Error("provider.Get failed")
		return err
	}
	if err := im.deserialize(val, container); err != nil {
		c.WithField("err", err).WithField("key", key).Error("deserialize failed")
		return err
	}
	return nil
}

func (im *impl) Set(c ctx.Ctx, key string, value interface{}) error {
	key = keys.RedisKey(im.pfx, key)

	val, err := im.serialize(value)
	if err != nil {
		c.WithField("err", err).WithField("key", key).Error("serialize failed")
		return err
	}
	if err := im.provider.Set(c, key, val, im.ttl); err != nil {
		c.WithField("err", err).WithField("key", key).Error("provider.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	key = keys.RedisKey(im.pfx, key)

	if err := im.provider.Del(c, key); err != nil {
		c.WithField("err", err).WithField("key", key).Error("provider.Del failed")
		return err
	}
	return nil
}

// getByFunc reads through s, calling getter and filling s on a miss.
// A failed fill is logged only, the loaded value is still returned.
func getByFunc(s Service, c ctx.Ctx, key string, container interface{}, getter Getter) error {
	err := s.Get(c, key, container)
	if err == nil {
		return nil
	} else if err != ErrNotFound {
		c.WithField("err", err).WithField("key", key).Error("Get failed")
		return err
	}

	val, err := getter()
	if err != nil {
		return err
	}

	if err := s.Set(c, key, val); err != nil {
		c.WithField("err", err).WithField("key", key).Error("Set failed")
	}

	reflect.ValueOf(container).Elem().Set(reflect.ValueOf(val).Elem())
	return nil
}
