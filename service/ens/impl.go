package ens

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	goens "github.com/wealdtech/go-ens/v3"
	"golang.org/x/xerrors"

	"github.com/earthart/aether/base/ctx"
	"github.com/earthart/aether/base/ethereum"
	"github.com/earthart/aether/base/log"
	"github.com/earthart/aether/domain"
	"github.com/earthart/aether/domain/keys"
	"github.com/earthart/aether/service/cache"
	"github.com/earthart/aether/service/redis"
)

const (
	localTtl  = 5 * time.Minute
	remoteTtl = 7 * 24 * time.Hour

	maxInFlight = 4
	rpcTimeout  = 5 * time.Second
)

type reverseFunc func(common.Address) (string, error)

type impl struct {
	reverse reverseFunc
	cache   cache.Service
}

// New dials an Ethereum mainnet rpc. redisSvc may be nil, lookups are then
// cached in process only.
func New(c ctx.Ctx, rpcURL string, redisSvc redis.Service) (domain.NameResolver, error) {
	// ens lookups carry no context, the http client timeout bounds each call
	rpcClient, err := rpc.DialHTTPWithClient(rpcURL, &http.Client{Timeout: rpcTimeout})
	if err != nil {
		return nil, xerrors.Errorf("dial ens rpc: %w", err)
	}
	client := ethclient.NewClient(rpcClient)
	backend := ethereum.NewThrottledClient(client, maxInFlight)
	c.WithField("redis", redisSvc != nil).Info("ens resolver ready")
	return newResolver(func(addr common.Address) (string, error) {
		return goens.ReverseResolve(backend, addr)
	}, redisSvc), nil
}

func newResolver(reverse reverseFunc, redisSvc redis.Service) *impl {
	layers := []cache.Service{
		cache.New(cache.ServiceConfig{
			Ttl:      localTtl,
			Pfx:      keys.PfxEns,
			Provider: cache.NewLocal(16),
		}),
	}
	if redisSvc != nil {
		layers = append(layers, cache.New(cache.ServiceConfig{
			Ttl:      remoteTtl,
			Pfx:      keys.PfxEns,
			Provider: cache.NewRedis(redisSvc),
		}))
	}
	return &impl{
		reverse: reverse,
		cache:   cache.NewLayered(layers...),
	}
}

func (im *impl) ReverseResolve(c ctx.Ctx, address domain.Address) (string, error) {
	if !common.IsHexAddress(string(address)) {
		return "", domain.ErrInvalidAddress
	}

	res := ""
	key := keys.RedisKey("reverse", address.ToLowerStr())
	err := im.cache.GetByFunc(c, key, &res, func() (interface{}, error) {
		name, err := im.reverse(common.HexToAddress(string(address)))
		if isUnregistered(err) {
			empty := ""
			return &empty, nil
		}
		if err != nil {
			c.WithFields(log.Fields{
				"err":     err,
				"address": address,
			}).Error("failed to goens.ReverseResolve")
			return nil, err
		}
		return &name, nil
	})
	if err != nil {
		return "", err
	}
	return res, nil
}

func isUnregistered(err error) bool {
	if err == nil {
		return false
	}
	switch fmt.Sprint(err) {
	case "not a resolver", "no resolution", "unregistered name":
		return true
	}
	return false
}
