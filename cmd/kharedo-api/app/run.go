package app

import (
	"context"
	"errors"
	nethttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/UmmeHabiba1312/Kharedo-api/configs"
	"github.com/UmmeHabiba1312/Kharedo-api/internal/adapter/cache"
	"github.com/UmmeHabiba1312/Kharedo-api/internal/adapter/http"
	"github.com/UmmeHabiba1312/Kharedo-api/internal/adapter/kafka"
	"github.com/UmmeHabiba1312/Kharedo-api/internal/adapter/oracle"
	"github.com/UmmeHabiba1312/Kharedo-api/internal/adapter/queue"
	"github.com/UmmeHabiba1312/Kharedo-api/internal/adapter/repo"
	"github.com/UmmeHabiba1312/Kharedo-api/internal/intent"
	"github.com/UmmeHabiba1312/Kharedo-api/internal/logging"
	"github.com/UmmeHabiba1312/Kharedo-api/internal/session"
	"github.com/UmmeHabiba1312/Kharedo-api/internal/usecase"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

// Run wires the application and blocks until shutdown.
func Run(cfg configs.Config) error {
	logging.Init(cfg.App.Name, cfg.App.LogFile)
	l := logging.New("app")

	catalog := repo.DefaultCatalog()
	ledger := repo.NewMemoryOrderLedger()

	// redis-backed stores when configured, in-memory otherwise
	var (
		sessions    session.Store = session.NewMemoryStore()
		idem        usecase.IdempotencyStore
		statusCache usecase.StatusCache
		rdb         *redis.Client
	)
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       0,
		})
		pctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := rdb.Ping(pctx).Err()
		cancel()
		if err != nil {
			return err
		}
		sessions = cache.NewRedisSessionStore(rdb, cfg.Session.TTL)
		idem = cache.NewRedisIdempotencyStore(rdb, cfg.Idempotency.TTL)
		statusCache = cache.NewRedisStatusCache(rdb, cfg.Session.TTL)
		defer rdb.Close()
	}

	// outbound notifications: rabbitmq when configured, log-only otherwise
	var notifier usecase.Notifier = queue.NewLogNotifier()
	if cfg.Rabbit.URL != "" {
		conn, err := amqp.Dial(cfg.Rabbit.URL)
		if err != nil {
			return err
		}
		defer conn.Close()
		ch, err := conn.Channel()
		if err != nil {
			return err
		}
		notifier, err = queue.NewRabbitNotifier(ch)
		if err != nil {
			return err
		}
	}

	opts := []usecase.ServiceOption{
		usecase.WithOwnerPhone(cfg.Notify.OwnerPhone),
		usecase.WithNotifyTimeout(cfg.Notify.Timeout),
	}
	if statusCache != nil {
		opts = append(opts, usecase.WithStatusCache(statusCache))
	}
	svc := usecase.NewOrderService(catalog, ledger, notifier, opts...)

	router := intent.NewRouter(svc)
	orc := oracle.NewOpenAIClient(cfg.Oracle.BaseURL, cfg.Oracle.APIKey, cfg.Oracle.Model, cfg.Oracle.Timeout)

	chatH := http.NewChatHandler(orc, router, sessions, cfg.Session.Window)
	orderH := http.NewOrderHandler(svc, idem)
	catalogH := http.NewCatalogHandler(svc)
	engine := http.NewRouter(chatH, orderH, catalogH, cfg.App.AllowOrigin)

	srv := &nethttp.Server{
		Addr:         cfg.App.HTTPAddr,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			return err
		}
		return nil
	})

	// delivery receipt consumer
	if len(cfg.Kafka.Brokers) > 0 {
		grp, err := kafka.NewGroup(cfg.Kafka.Brokers, cfg.Kafka.GroupID)
		if err != nil {
			return err
		}
		defer grp.Close()
		h := kafka.NewDeliveryReceiptHandler(statusCache)
		consumer := kafka.NewConsumer(grp, []string{cfg.Kafka.ReceiptsTopic}, h.Handle)
		g.Go(func() error {
			err := consumer.Start(ctx)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		l.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(sctx)
	})

	return g.Wait()
}
