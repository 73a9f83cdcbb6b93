package main

import (
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/earthart/aether/base/ctx"
	"github.com/earthart/aether/base/database/redisclient"
	"github.com/earthart/aether/base/explorer"
	"github.com/earthart/aether/base/log"
	"github.com/earthart/aether/base/metrics"
	bValidator "github.com/earthart/aether/base/validator"
	"github.com/earthart/aether/domain"
	mmiddleware "github.com/earthart/aether/middleware"
	"github.com/earthart/aether/service/ens"
	"github.com/earthart/aether/service/redis"
	"github.com/earthart/aether/service/subgraph"
	collector_delivery "github.com/earthart/aether/stores/collector/delivery/http"
	collector_repository "github.com/earthart/aether/stores/collector/repository"
	collector_usecase "github.com/earthart/aether/stores/collector/usecase"
	hc_delivery "github.com/earthart/aether/stores/healthcheck/delivery/http"
	hc_repo "github.com/earthart/aether/stores/healthcheck/repository"
	hc_usecase "github.com/earthart/aether/stores/healthcheck/usecase"
	page_delivery "github.com/earthart/aether/stores/page/delivery/http"

	_ "github.com/earthart/aether/app/web/docs"
)

var configFile = pflag.String("config", "infra/configs/config.yaml", "path of the yaml config")

func init() {
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	viper.SetEnvPrefix("aether")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("subgraph.timeout", 10*time.Second)
	viper.SetDefault("feed.renderTimeout", 5*time.Second)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if err := log.Init(viper.GetBool(`debug`)); err != nil {
		panic(err)
	}
	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

//	@title			Aether API
//	@version		1.0
//	@description	Collector feed of the Earth NFT on Optimism.
func main() {
	defer log.Sync()

	// init echo
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())
	e.Renderer = page_delivery.NewRenderer()

	context := ctx.Background()

	// init Redis service, optional
	var redisCache redis.Service
	if redisCacheURI := viper.GetString("redis_cache.uri"); redisCacheURI != "" {
		context.Info("init redis cache")
		redisCacheName := viper.GetString("redis_cache.name")
		redisCachePool := redisclient.MustConnectRedis(redisCacheURI, viper.GetString("redis_cache.password"), redisclient.RedisParam{
			PoolMultiplier: viper.GetFloat64("redis_cache.poolMultiplier"),
			Retry:          true,
		})
		redisCache = redis.New(redisCacheName, metrics.New(redisCacheName), redisCachePool)
	}

	// init subgraph client
	subgraphCfg := subgraph.DefaultConfig()
	if err := viper.UnmarshalKey("subgraph", &subgraphCfg); err != nil {
		context.WithField("err", err).Panic("failed to read subgraph config")
	}
	subgraphClient, err := subgraph.NewClient(&subgraph.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    viper.GetDuration("subgraph.timeout"),
		Subgraph:   subgraphCfg,
	})
	if err != nil {
		context.WithField("err", err).Panic("failed to subgraph.NewClient")
	}

	// init ens resolver, optional
	var resolver domain.NameResolver
	if rpcUrl := viper.GetString("ens.rpcUrl"); rpcUrl != "" {
		resolver, err = ens.New(context, rpcUrl, redisCache)
		if err != nil {
			context.WithField("err", err).Panic("failed to ens.New")
		}
	}

	collectorRepo := collector_repository.New(subgraphClient)
	collector := collector_usecase.New(&collector_usecase.CollectorUseCaseCfg{
		Repo:      collectorRepo,
		Formatter: explorer.New(viper.GetString("explorer.url"), viper.GetString("explorer.txPath")),
		Resolver:  resolver,
	})
	hc := hc_usecase.New(hc_repo.New(subgraphClient, redisCache))

	renderTimeout := viper.GetDuration("feed.renderTimeout")
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	hc_delivery.New(e, hc)
	collector_delivery.New(e, collector, renderTimeout)
	page_delivery.New(e, collector, renderTimeout, viper.GetString("static.dir"))

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
