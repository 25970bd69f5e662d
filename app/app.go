package app

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/edmarfarias/library-api/config"
	"github.com/edmarfarias/library-api/internal/handler"
	"github.com/edmarfarias/library-api/internal/notify"
	"github.com/edmarfarias/library-api/internal/repository"
	"github.com/edmarfarias/library-api/internal/scheduler"
	"github.com/edmarfarias/library-api/internal/server"
	"github.com/edmarfarias/library-api/internal/service"
	"github.com/edmarfarias/library-api/migrations"
	"github.com/edmarfarias/library-api/pkg/kafka"
	"github.com/edmarfarias/library-api/pkg/logger"
	"github.com/edmarfarias/library-api/pkg/postgres"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "library")

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	defer db.Close()

	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	var enq service.Enqueuer = kafka.NopEnqueuer{}
	if len(cfg.Kafka.Addrs) > 0 {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		defer producer.Close() //nolint:errcheck
		enq = kafka.NewEnqueuer(producer)
	}

	svc := service.NewService(repo, repo, enq, log)
	mailer := notify.NewMailer(cfg.Mail, log)
	sched := scheduler.New(cfg.Scheduler, svc, mailer, log)

	h := handler.New(svc, svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return sched.Run(gCtx)
	})
	g.Go(func() error {
		if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Debug("Graceful shutdown")
		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("run", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
}
