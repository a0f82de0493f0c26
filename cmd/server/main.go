// Package main is the entry point for the flight disruption service.
//
//	@title						Flight Disruption Alternatives API
//	@version					1.0.0
//	@description				Searches surrounding travel dates after a flight disruption and returns ranked rebooking alternatives grouped by date proximity.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/autorescue/flight-disruption-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/autorescue/flight-disruption-service/docs"

	disruptionhttp "github.com/autorescue/flight-disruption-service/internal/adapter/http"
	"github.com/autorescue/flight-disruption-service/internal/adapter/http/middleware"
	"github.com/autorescue/flight-disruption-service/internal/adapter/passenger"
	"github.com/autorescue/flight-disruption-service/internal/adapter/provider/amadeus"
	"github.com/autorescue/flight-disruption-service/internal/adapter/secrets"
	"github.com/autorescue/flight-disruption-service/internal/cache"
	"github.com/autorescue/flight-disruption-service/internal/config"
	"github.com/autorescue/flight-disruption-service/internal/domain"
	"github.com/autorescue/flight-disruption-service/internal/infrastructure/logger"
	"github.com/autorescue/flight-disruption-service/internal/infrastructure/timeutil"
	"github.com/autorescue/flight-disruption-service/internal/metrics"
	"github.com/autorescue/flight-disruption-service/internal/ratelimit"
	"github.com/autorescue/flight-disruption-service/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	logger.SetGlobal(log)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	// Credential supplier for the Amadeus API
	creds, err := buildCredentialSupplier(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize credential supplier")
	}

	// Shared instrumentation and provider throttling
	m := metrics.New()
	limiter := ratelimit.NewProviderLimiter(ratelimit.Config{
		RequestsPerSecond: cfg.Amadeus.RateLimitRPS,
		BurstSize:         cfg.Amadeus.RateLimitBurst,
	})

	provider := amadeus.New(creds, limiter, m, log, amadeus.Config{
		BaseURL:      cfg.Amadeus.BaseURL,
		CurrencyCode: cfg.Amadeus.CurrencyCode,
	})

	// Search result cache; falls back to a no-op when disabled
	offerCache := buildCache(cfg, log)
	defer offerCache.Close()

	// Use cases
	analyzer := usecase.NewDisruptionAnalyzer(provider, &usecase.AnalyzerConfig{
		AnalyzeTimeout:   cfg.Timeouts.GlobalSearch,
		PerDateTimeout:   cfg.Timeouts.PerDate,
		AlternateOffsets: cfg.Disruption.AlternateOffsets,
		MaxOffersPerDate: cfg.Disruption.MaxOffersPerDate,
	}, m, log)
	search := usecase.NewFlightSearchUseCase(provider, offerCache, cfg.Timeouts.GlobalSearch, log)
	pricing := usecase.NewOfferPricingUseCase(provider, cfg.Timeouts.Pricing, log)

	// Passenger profile store for booking confirmations
	passengers, err := buildPassengerSupplier(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize passenger supplier")
	}
	booking := usecase.NewBookingUseCase(passengers, timeutil.NewRealClock(), cfg.Booking.Timeout, log)

	handler := disruptionhttp.NewDisruptionHandler(analyzer, search, pricing, booking)

	// HTTP server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)

	// Request metrics cover the API surface only; /health and /metrics
	// stay unobserved so probes do not skew the series.
	disruptionhttp.RegisterRoutesWithMiddleware(e, handler, m.Middleware())
	e.GET("/metrics", m.Handler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// buildCredentialSupplier selects the credential source configured for the
// Amadeus provider.
func buildCredentialSupplier(cfg *config.Config) (secrets.CredentialSupplier, error) {
	switch cfg.Amadeus.CredentialsSource {
	case "secretsmanager":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return secrets.NewManagerSupplier(ctx, secrets.ManagerConfig{
			SecretName: cfg.Amadeus.SecretName,
			Region:     cfg.Amadeus.AWSRegion,
			TTL:        cfg.Amadeus.SecretTTL,
		})
	default:
		return secrets.NewStaticSupplier(cfg.Amadeus.ClientID, cfg.Amadeus.ClientSecret), nil
	}
}

// buildPassengerSupplier selects the traveler profile source configured
// for booking confirmations.
func buildPassengerSupplier(cfg *config.Config) (domain.PassengerInfoSupplier, error) {
	switch cfg.Booking.PassengerSource {
	case "s3":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return passenger.NewS3Supplier(ctx, passenger.S3Config{
			Bucket: cfg.Booking.PersonalInfoBucket,
			Key:    cfg.Booking.PersonalInfoKey,
			Region: cfg.Amadeus.AWSRegion,
			TTL:    cfg.Booking.PersonalInfoTTL,
		})
	default:
		return passenger.NewStaticSupplier(domain.PassengerInfo{
			FirstName: cfg.Booking.PassengerFirstName,
			LastName:  cfg.Booking.PassengerLastName,
			Email:     cfg.Booking.PassengerEmail,
			Phone:     cfg.Booking.PassengerPhone,
		}), nil
	}
}

// buildCache connects to Redis when enabled. A connection failure degrades
// to the no-op cache so the service still starts.
func buildCache(cfg *config.Config, log *logger.Logger) cache.OfferCache {
	if !cfg.Redis.Enabled {
		return cache.NewNoOpCache()
	}

	redisCache, err := cache.NewRedisCache(cache.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TTL:      cfg.Redis.TTL,
	})
	if err != nil {
		log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis unavailable, caching disabled")
		return cache.NewNoOpCache()
	}

	log.Info().Str("addr", cfg.Redis.Addr).Msg("Redis cache connected")
	return redisCache
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
