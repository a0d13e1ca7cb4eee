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
	"go.mongodb.org/mongo-driver/bson"

	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/base/database/mongoclient"
	"github.com/x-xyz/royaltymarket/base/database/redisclient"
	"github.com/x-xyz/royaltymarket/base/log"
	"github.com/x-xyz/royaltymarket/base/metrics"
	"github.com/x-xyz/royaltymarket/base/priceformatter"
	bValidator "github.com/x-xyz/royaltymarket/base/validator"
	"github.com/x-xyz/royaltymarket/domain"
	"github.com/x-xyz/royaltymarket/domain/authority"
	mmiddleware "github.com/x-xyz/royaltymarket/middleware"
	"github.com/x-xyz/royaltymarket/service/mutex"
	"github.com/x-xyz/royaltymarket/service/query"
	"github.com/x-xyz/royaltymarket/service/redis"
	asset_delivery "github.com/x-xyz/royaltymarket/stores/asset/delivery/http"
	asset_repository "github.com/x-xyz/royaltymarket/stores/asset/repository"
	asset_usecase "github.com/x-xyz/royaltymarket/stores/asset/usecase"
	auth_delivery "github.com/x-xyz/royaltymarket/stores/auth/delivery/http"
	auth_middleware "github.com/x-xyz/royaltymarket/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/x-xyz/royaltymarket/stores/auth/usecase"
	authority_delivery "github.com/x-xyz/royaltymarket/stores/authority/delivery/http"
	authority_repository "github.com/x-xyz/royaltymarket/stores/authority/repository"
	authority_usecase "github.com/x-xyz/royaltymarket/stores/authority/usecase"
	counter_repository "github.com/x-xyz/royaltymarket/stores/counter/repository"
	event_delivery "github.com/x-xyz/royaltymarket/stores/event/delivery/http"
	event_repository "github.com/x-xyz/royaltymarket/stores/event/repository"
	event_usecase "github.com/x-xyz/royaltymarket/stores/event/usecase"
	hc_delivery "github.com/x-xyz/royaltymarket/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/royaltymarket/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/royaltymarket/stores/healthcheck/usecase"
	ledger_delivery "github.com/x-xyz/royaltymarket/stores/ledger/delivery/http"
	ledger_repository "github.com/x-xyz/royaltymarket/stores/ledger/repository"
	ledger_usecase "github.com/x-xyz/royaltymarket/stores/ledger/usecase"
	listing_delivery "github.com/x-xyz/royaltymarket/stores/listing/delivery/http"
	listing_repository "github.com/x-xyz/royaltymarket/stores/listing/repository"
	listing_usecase "github.com/x-xyz/royaltymarket/stores/listing/usecase"
	purchase_delivery "github.com/x-xyz/royaltymarket/stores/purchase/delivery/http"
	purchase_usecase "github.com/x-xyz/royaltymarket/stores/purchase/usecase"
	royalty_delivery "github.com/x-xyz/royaltymarket/stores/royalty/delivery/http"
	royalty_repository "github.com/x-xyz/royaltymarket/stores/royalty/repository"
	royalty_usecase "github.com/x-xyz/royaltymarket/stores/royalty/usecase"

	_ "github.com/x-xyz/royaltymarket/app/api/docs"
)

var configFile = pflag.String("config", "infra/configs/config.yaml", "path of the yaml config")

func init() {
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}

	if err := log.Init(viper.GetBool("debug")); err != nil {
		panic(err)
	}
	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

// indexes backs every unique key the repositories rely on. They have to exist
// before the first transaction, mongo can not create collections inside one.
var indexes = []mongoclient.Index{
	{Collection: string(domain.TableRoyaltyTables), Keys: bson.D{{Key: "collection", Value: 1}, {Key: "tokenId", Value: 1}}, Unique: true},
	{Collection: string(domain.TableRoyaltyManagers), Keys: bson.D{{Key: "address", Value: 1}}, Unique: true},
	{Collection: string(domain.TableListings), Keys: bson.D{{Key: "listingId", Value: 1}}, Unique: true},
	{Collection: string(domain.TableListings), Keys: bson.D{{Key: "seller", Value: 1}, {Key: "sold", Value: 1}}},
	{Collection: string(domain.TableAssets), Keys: bson.D{{Key: "collection", Value: 1}, {Key: "tokenId", Value: 1}}, Unique: true},
	{Collection: string(domain.TableBalances), Keys: bson.D{{Key: "address", Value: 1}}, Unique: true},
	{Collection: string(domain.TableLedgerTransfers), Keys: bson.D{{Key: "payer", Value: 1}, {Key: "createdAt", Value: -1}}},
	{Collection: string(domain.TableLedgerTransfers), Keys: bson.D{{Key: "recipient", Value: 1}, {Key: "createdAt", Value: -1}}},
	{Collection: string(domain.TableEvents), Keys: bson.D{{Key: "seq", Value: 1}}, Unique: true},
	{Collection: string(domain.TableCounters), Keys: bson.D{{Key: "name", Value: 1}}, Unique: true},
}

//	@title			Royalty Marketplace API
//	@version		1.0
//	@description	Listings, purchases and royalty tables of the royalty marketplace.

// main
//
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description				retrieve token from #/auth/post_auth_sign and apply with `bearer {token}`
func main() {
	defer log.Sync()

	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	mongoClient := mongoclient.MustConnectMongoClient(mongoclient.Config{
		URI:            viper.GetString("mongo.uri"),
		AuthDBName:     viper.GetString("mongo.authDBName"),
		DBName:         viper.GetString("mongo.dbName"),
		EnableSSL:      viper.GetBool("mongo.enableSSL"),
		PoolMultiplier: viper.GetFloat64("mongo.poolMultiplier"),
	})
	if err := mongoClient.EnsureIndexes(context, indexes); err != nil {
		context.WithField("err", err).Panic("mongoClient.EnsureIndexes failed")
	}
	q := query.New(mongoClient, viper.GetBool("mongo.checkIndex"))

	// init redis, it holds the listing locks and the event channel
	context.Info("init redis")
	redisName := viper.GetString("redis.name")
	redisPool := redisclient.MustConnectRedis(redisclient.Config{
		URI:            viper.GetString("redis.uri"),
		Password:       viper.GetString("redis.password"),
		PoolMultiplier: viper.GetFloat64("redis.poolMultiplier"),
		DialRetries:    viper.GetInt("redis.dialRetries"),
	})
	redisService := redis.New(redisName, metrics.New(redisName), redisPool)
	mutexService := mutex.New(&mutex.Config{
		Redis:      redisService,
		TTL:        viper.GetDuration("marketplace.lockTTL"),
		MaxWait:    viper.GetDuration("marketplace.lockWait"),
		RetryStart: 20 * time.Millisecond,
		RetryLimit: 200 * time.Millisecond,
	})

	adminAddress := domain.Address(viper.GetString("admin.address"))
	if adminAddress.IsEmpty() {
		context.Panic("admin.address is required")
	}
	gate := authority.NewGate(adminAddress)

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisService)
	counterRepo := counter_repository.New(q)
	authorityRepo := authority_repository.New(q)
	royaltyRepo := royalty_repository.New(q)
	assetRepo := asset_repository.New(q)
	ledgerRepo := ledger_repository.New(q)
	eventRepo := event_repository.New(q, counterRepo)
	listingRepo := listing_repository.New(q, counterRepo)

	hc := hc_usecase.New(hcRepo)
	authorityUC := authority_usecase.New(&authority_usecase.AuthorityUseCaseCfg{
		Repo:       authorityRepo,
		Gate:       gate,
		Transactor: q,
	})
	royaltyUC := royalty_usecase.New(&royalty_usecase.RoyaltyUseCaseCfg{
		Repo:       royaltyRepo,
		Authority:  authorityUC,
		Gate:       gate,
		Transactor: q,
	})
	assetUC := asset_usecase.New(&asset_usecase.AssetUseCaseCfg{
		Repo:       assetRepo,
		Royalty:    royaltyUC,
		Gate:       gate,
		Transactor: q,
	})
	ledgerUC := ledger_usecase.New(&ledger_usecase.LedgerUseCaseCfg{
		Repo:       ledgerRepo,
		Gate:       gate,
		Transactor: q,
	})
	eventUC := event_usecase.New(&event_usecase.EventUseCaseCfg{
		Repo:      eventRepo,
		Publisher: redisService,
		Channel:   viper.GetString("marketplace.eventChannel"),
	})
	listingUC := listing_usecase.New(&listing_usecase.ListingUseCaseCfg{
		Repo:           listingRepo,
		Registry:       assetUC,
		Event:          eventUC,
		Transactor:     q,
		PriceFormatter: priceformatter.NewPriceFormatter(viper.GetInt32("marketplace.decimals")),
		Operator:       domain.Address(viper.GetString("marketplace.operator")).ToLower(),
	})
	purchaseUC := purchase_usecase.New(&purchase_usecase.PurchaseUseCaseCfg{
		Listing:    listingUC,
		Royalty:    royaltyUC,
		Ledger:     ledgerUC,
		Registry:   assetUC,
		Event:      eventUC,
		Mutex:      mutexService,
		Transactor: q,
	})
	authUC := auth_usecase.New(&auth_usecase.AuthUseCaseCfg{
		JwtSecret:   viper.GetString("jwt.secret"),
		TTL:         viper.GetDuration("jwt.ttl"),
		SignMessage: viper.GetString("auth.signMessage"),
	})

	authMiddleware := auth_middleware.New(authUC, authorityUC, gate)

	api := e.Group("/api/v1")
	hc_delivery.New(api, hc)
	auth_delivery.New(api, authUC)
	authority_delivery.New(api, authorityUC, authMiddleware)
	royalty_delivery.New(api, royaltyUC, authMiddleware)
	asset_delivery.New(api, assetUC, authMiddleware)
	ledger_delivery.New(api, ledgerUC, authMiddleware)
	listing_delivery.New(api, listingUC, authMiddleware)
	purchase_delivery.New(api, purchaseUC, authMiddleware)
	event_delivery.New(api, eventUC)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
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
	if err := mongoClient.Disconnect(ctx); err != nil {
		log.Log().WithField("err", err).Warn("mongoClient.Disconnect failed")
	}
	if err := redisPool.Close(); err != nil {
		log.Log().WithField("err", err).Warn("redisPool.Close failed")
	}
}
