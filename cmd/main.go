package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/storefront-order-service/docs"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/app"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/broker"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/config"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/gateway"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/handler"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/postgres"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/repo"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/service"
	"github.com/SergeyBogomolovv/storefront-order-service/pkg/cache"
	"github.com/SergeyBogomolovv/storefront-order-service/pkg/idempotency"
	"github.com/SergeyBogomolovv/storefront-order-service/pkg/trm"

	"github.com/joho/godotenv"
	"github.com/razorpay/razorpay-go"
	"github.com/redis/go-redis/v9"
	stripeclient "github.com/stripe/stripe-go/v76/client"
)

// @title           Storefront Order Service API
// @version         1.0
// @description     Документация HTTP API
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	panicIfErr("failed to migrate db", postgres.Migrate(context.Background(), db))

	orderRepo := repo.NewPostgresRepo(db)
	cartsRepo := repo.NewCartsRepo(db)
	txManager := trm.NewManager(db)

	stripeAPI := stripeclient.New(conf.Payments.Stripe.SecretKey, nil)
	checkout := gateway.NewStripe(logger, stripeAPI.CheckoutSessions, gateway.StripeOptions{
		WebhookSecret:         conf.Payments.Stripe.WebhookSecret,
		AllowUnsignedWebhooks: conf.Payments.Stripe.AllowUnsignedWebhooks,
	})
	if conf.Payments.Stripe.AllowUnsignedWebhooks {
		logger.Warn("unsigned checkout notifications are accepted")
	}

	razorpayAPI := razorpay.NewClient(conf.Payments.Razorpay.KeyID, conf.Payments.Razorpay.KeySecret)
	signer := gateway.NewRazorpay(logger, razorpayAPI.Order, conf.Payments.Razorpay.KeySecret)

	publisher := broker.NewPublisher(logger, conf.Kafka)

	app := app.New(logger, conf)

	var dedup service.Deduper
	if conf.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     conf.Redis.Addr,
			Password: conf.Redis.Password,
			DB:       conf.Redis.DB,
		})
		panicIfErr("failed to connect to redis", rdb.Ping(context.Background()).Err())
		logger.Info("redis connected")

		dedup = idempotency.NewRedisStore(rdb, conf.Dedup.ClaimTTL, conf.Dedup.TTL)
		app.SetClosers(rdb)
	} else {
		// одна реплика: дедупликация в памяти
		lru := cache.NewLRUCache(conf.Dedup.Capacity, conf.Dedup.TTL)
		dedup = idempotency.NewMemoryStore(lru, conf.Dedup.ClaimTTL)
		app.SetStarters(lru)
	}

	orderService := service.NewOrderService(
		logger,
		service.Config{
			Currency:         conf.Payments.Currency,
			DeliveryCharge:   conf.Payments.DeliveryCharge,
			CheckoutOrderTTL: conf.Payments.CheckoutOrderTTL,
		},
		txManager,
		orderRepo,
		cartsRepo,
		checkout,
		signer,
		publisher,
		dedup,
	)
	sweeper := service.NewExpirySweeper(logger, orderRepo, publisher, conf.Payments.ExpirySweepInterval)

	service.RegisterMetrics()
	handler.RegisterMetrics()

	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, orderService)
	httpHandler := handler.NewHTTPHandler(logger, orderService)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(sweeper)
	app.SetClosers(publisher)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
