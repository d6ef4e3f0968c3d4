package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/storefront/internal/cfg"
	v1Http "github.com/DRSN-tech/storefront/internal/delivery/v1/http"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/infrastructure/escuelajs"
	"github.com/DRSN-tech/storefront/internal/infrastructure/kafka"
	minioInfra "github.com/DRSN-tech/storefront/internal/infrastructure/minio"
	s3Repo "github.com/DRSN-tech/storefront/internal/repository/minio"
	"github.com/DRSN-tech/storefront/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/storefront/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/storefront/internal/repository/redis"
	redisConv "github.com/DRSN-tech/storefront/internal/repository/redis/converter"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/clients"
	"github.com/DRSN-tech/storefront/pkg/closer"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/DRSN-tech/storefront/pkg/postgres"
	"github.com/DRSN-tech/storefront/pkg/telemetry"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const (
	startupTimeout  = 10 * time.Second
	shutdownTimeout = 10 * time.Second
	cleanupTimeout  = 5 * time.Second
)

// App держит собранные зависимости и порядок их закрытия.
type App struct {
	cfg          *config.Config
	logger       logger.Logger
	closer       *closer.Closer
	httpSrv      *v1Http.Server
	outboxWorker *kafka.OutboxWorker
	// Отменяется при остановке: прерывает фоновые задачи (очистку MinIO, воркер outbox).
	shutdownCtx    context.Context
	shutdownCancel context.CancelFunc
}

// NewApp подключает Postgres, Redis, MinIO и Kafka и собирает HTTP-сервер.
// При ошибке уже открытые ресурсы закрываются.
func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	shutdownCtx, shutdownCancel := context.WithCancel(context.Background())
	a := &App{
		cfg:            cfg,
		logger:         log,
		closer:         closer.NewCloser(0),
		shutdownCtx:    shutdownCtx,
		shutdownCancel: shutdownCancel,
	}

	if err := a.init(); err != nil {
		shutdownCancel()
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if cerr := a.closer.Close(closeCtx); cerr != nil {
			log.Warnf("close after failed start: %v", cerr)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return a, nil
}

func (a *App) init() error {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	tp, err := telemetry.Setup(a.cfg.Telemetry, os.Stdout)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	a.closer.Add("telemetry", tp.Shutdown)

	db, err := initPGDB(ctx, a.logger, a.cfg)
	if err != nil {
		return err
	}
	a.closer.AddSimple("postgres", db.Close)

	redisClient := clients.NewRedisClient(a.cfg.Redis)
	a.closer.Add("redis", func(context.Context) error { return redisClient.Close() })
	if err := redisClient.Ping(ctx); err != nil {
		a.logger.Errorf(err, "failed to connect to redis")
		return err
	}

	minioClient, err := clients.NewMinIOClient(a.cfg.Minio)
	if err != nil {
		a.logger.Errorf(err, "failed to initialize minio client")
		return err
	}
	if err := clients.EnsureBucket(ctx, minioClient, a.cfg.Minio.BucketName); err != nil {
		a.logger.Errorf(err, "failed to initialize MinIO bucket")
		return err
	}

	producer, err := kafka.NewProducer(a.logger, a.cfg.Kafka)
	if err != nil {
		a.logger.Errorf(err, "failed to initialize kafka producer")
		return err
	}
	a.closer.Add("kafka producer", func(context.Context) error { return producer.Close() })
	if err := producer.EnsureTopic(startupTimeout); err != nil {
		a.logger.Errorf(err, "failed to ensure kafka topic")
		return err
	}

	// Репозитории
	storageRepo := redis.NewStorageRepo(redisClient, a.cfg.Redis, a.logger)
	cacheRepo := redis.NewCacheRepo(redisClient, redisConv.CatalogConverter{}, a.cfg.Redis, a.logger)
	eventBus := redis.NewEventBus(redisClient, a.logger)
	orderRepo := pgdb.NewOrderRepo(db.Pool, pgdbConv.OrderConverter{})
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, pgdbConv.OutboxEventConverter{})
	transactor := pgdb.NewTransactor(db.Pool)
	imageRepo := s3Repo.NewImageRepo(minioClient, a.cfg.Minio)

	// Инфраструктура
	api, err := escuelajs.NewClient(a.cfg.Api, a.logger)
	if err != nil {
		a.logger.Errorf(err, "failed to initialize api client")
		return err
	}
	imagesInfra := minioInfra.NewMinioInfrastructure(imageRepo, a.cfg.Minio, a.logger, a.shutdownCtx)
	a.closer.Add("minio cleanup", imagesInfra.WaitForCleanup)

	imagePolicy := domain.NewImagePolicy(a.cfg.Api.ImageAllowedHosts, a.cfg.Api.ImagePlaceholder)

	// Бизнес-логика
	catalogUC := usecase.NewCatalogUC(api, cacheRepo, imagePolicy, a.logger)
	cartUC := usecase.NewCartUC(storageRepo, catalogUC, eventBus, a.logger)
	authUC := usecase.NewAuthUC(api, storageRepo, cartUC, eventBus, a.logger)
	checkoutUC := usecase.NewCheckoutUC(storageRepo, cartUC, orderRepo, outboxRepo, transactor, a.logger)
	favoriteUC := usecase.NewFavoriteUC(storageRepo, catalogUC, a.logger)
	profileUC := usecase.NewProfileUC(api, storageRepo, eventBus, a.logger)
	adminUC := usecase.NewAdminUC(api, imagesInfra, catalogUC, imagePolicy, a.logger)
	eventsUC := usecase.NewEventsUC(storageRepo, eventBus)

	a.outboxWorker = kafka.NewOutboxWorker(outboxRepo, a.logger, producer, db.Dsn)
	a.closer.AddSimple("outbox worker", a.outboxWorker.Stop)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, v1Http.NewSessions(a.cfg.Session), a.cfg.Http.StaticDir, a.cfg.Telemetry.ServiceName, a.logger)
	router.Init(v1Http.UseCases{
		Catalog:  catalogUC,
		Auth:     authUC,
		Cart:     cartUC,
		Checkout: checkoutUC,
		Favorite: favoriteUC,
		Profile:  profileUC,
		Admin:    adminUC,
		Events:   eventsUC,
	})

	a.httpSrv = v1Http.NewServer(r, a.cfg.Http)
	// HTTP-сервер останавливается первым.
	a.closer.Add("http server", a.httpSrv.Stop)

	return nil
}

// Run запускает воркер outbox и HTTP-сервер и блокируется до сигнала или фатальной ошибки сервера.
func (a *App) Run() error {
	a.outboxWorker.Start(a.shutdownCtx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Даём фоновой очистке MinIO время до отмены shutdownCtx.
	time.AfterFunc(cleanupTimeout, a.shutdownCancel)

	if err := a.closer.Close(ctx); err != nil {
		a.logger.Errorf(err, "shutdown finished with errors")
		if appErr == nil {
			appErr = err
		}
	}
	a.shutdownCancel()

	a.logger.Infof("Application shutdown complete")
	return appErr
}

func initPGDB(ctx context.Context, logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(ctx, cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		db.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
