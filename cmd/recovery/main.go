package main

import (
	"context"
	"errors"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	recoveryhandler "github.com/aliskhannn/charge-recovery/internal/api/handlers/recovery"
	"github.com/aliskhannn/charge-recovery/internal/api/router"
	"github.com/aliskhannn/charge-recovery/internal/api/server"
	"github.com/aliskhannn/charge-recovery/internal/config"
	"github.com/aliskhannn/charge-recovery/internal/lock"
	campaignrepo "github.com/aliskhannn/charge-recovery/internal/repository/campaign"
	chargerepo "github.com/aliskhannn/charge-recovery/internal/repository/charge"
	ledgerrepo "github.com/aliskhannn/charge-recovery/internal/repository/ledger"
	settingsrepo "github.com/aliskhannn/charge-recovery/internal/repository/settings"
	recoverysvc "github.com/aliskhannn/charge-recovery/internal/service/recovery"
	"github.com/aliskhannn/charge-recovery/internal/service/sweeper"
	"github.com/aliskhannn/charge-recovery/internal/worker"
	"github.com/aliskhannn/charge-recovery/pkg/email"
	"github.com/aliskhannn/charge-recovery/pkg/whatsapp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	smtpPort, err := strconv.Atoi(cfg.Email.SMTPPort)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse email smtp port")
	}

	emailClient := email.NewClient(
		cfg.Email.SMTPHost,
		smtpPort,
		cfg.Email.Username,
		cfg.Email.Password,
		cfg.Email.From,
		cfg.Email.Subject,
	)
	whatsappClient := whatsapp.NewClient(cfg.WhatsApp.APIURL, cfg.WhatsApp.Token)

	notifiers := map[string]recoverysvc.Notifier{
		"whatsapp": whatsappClient,
		"email":    emailClient,
	}

	charges := chargerepo.NewRepository(db)
	campaigns := campaignrepo.NewRepository(db)
	settings := settingsrepo.NewRepository(db)
	messages := ledgerrepo.NewRepository(db)

	sweep := sweeper.NewService(charges)
	locker := lock.NewRedis(rdb)

	service := recoverysvc.NewService(
		charges, campaigns, settings, messages,
		sweep, locker, rdb, notifiers,
		cfg.Scheduler.Workers, cfg.Scheduler.LockTTL,
	)

	handler := recoveryhandler.NewHandler(service, val, cfg)
	scheduler := worker.NewScheduler(service)

	go scheduler.Run(ctx, cfg.Retry, cfg.Scheduler.Interval)

	r := router.New(handler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, slave := range db.Slaves {
		if err := slave.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}

	if err := rdb.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close redis client")
	}
}
