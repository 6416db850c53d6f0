package deps

import (
	"context"
	"fmt"
	"signup/internal/config"
	"signup/internal/core/domain/account"
	dl "signup/internal/core/domain/logging"
	drl "signup/internal/core/domain/rate_limiter"
	accountclient "signup/internal/implementations/account_client"
	emailregistry "signup/internal/implementations/email_registry"
	"signup/internal/implementations/logging"
	ratelimiter "signup/internal/implementations/rate_limiter"
	"signup/internal/implementations/tracing"
	"sync"
	"time"

	"github.com/go-redis/redis/v9"
)

const shutdownTimeout = 5 * time.Second

type Deps struct {
	Config  *config.Config
	Logger  dl.Logger
	Tracing *tracing.Provider
	Redis   *redis.Client

	Now func() time.Time

	AccountCreator account.Creator
	EmailRegistry  account.EmailRegistry
	RateLimiter    drl.RateLimiter
}

// InitDeps builds every collaborator from cfg. The returned function releases
// them and must be called once the application stops.
func InitDeps(cfg *config.Config) (*Deps, func(), error) {
	deps := &Deps{Config: cfg}

	closeLogger, err := deps.initLogger()
	if err != nil {
		return nil, nil, err
	}
	closeTracing, err := deps.initTracing()
	if err != nil {
		closeLogger()
		return nil, nil, err
	}
	closeRedisClient, err := deps.initRedisClient()
	if err != nil {
		closeTracing()
		closeLogger()
		return nil, nil, err
	}

	deps.Now = func() time.Time { return time.Now().UTC() }
	deps.RateLimiter = deps.initRateLimiter()
	deps.AccountCreator = accountclient.New(
		deps.Logger,
		deps.Tracing.Tracer(),
		cfg.APIURL,
		cfg.RequestTimeout,
	)
	deps.EmailRegistry = emailregistry.NewInMemory(cfg.DevEmailTTL)

	return deps, func() {
		closeFuncs := []func(){
			closeTracing,
			closeRedisClient,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
		closeLogger()
	}, nil
}

func (deps *Deps) initLogger() (func(), error) {
	logger, err := logging.NewZapLogger(deps.Config.LogFile)
	if err != nil {
		return nil, err
	}
	deps.Logger = logger
	return func() { logger.Sync() }, nil
}

func (deps *Deps) initTracing() (func(), error) {
	provider, err := tracing.NewProvider(tracing.Config{FilePath: deps.Config.TraceFile})
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not init tracing.", dl.Entry("err", err))
		return nil, fmt.Errorf("could not init tracing: %w", err)
	}
	deps.Tracing = provider
	if !provider.Enabled() {
		deps.Logger.Info(context.Background(), "Tracing is disabled.")
		return func() {}, nil
	}

	deps.Logger.Info(context.Background(), "Tracing has been initialized.", dl.Entry("file", deps.Config.TraceFile))
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := provider.Shutdown(ctx); err != nil {
			deps.Logger.Error(ctx, "Could not flush spans.", dl.Entry("err", err))
			return
		}
		deps.Logger.Info(ctx, "Spans flushed.")
	}, nil
}

func (deps *Deps) initRedisClient() (func(), error) {
	if deps.Config.DevRedisURL == "" {
		return func() {}, nil
	}
	redisOpt, err := redis.ParseURL(deps.Config.DevRedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		return nil, fmt.Errorf("invalid Redis URL: %w", err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}, nil
}

func (deps *Deps) initRateLimiter() drl.RateLimiter {
	if deps.Redis != nil {
		return ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)
	}
	return ratelimiter.NewInMemory(deps.Now)
}
