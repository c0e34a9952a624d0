package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ghbundles/fulfillment-service/internal/app"
	"github.com/ghbundles/fulfillment-service/internal/config"
	"github.com/ghbundles/fulfillment-service/internal/fulfillment"
	"github.com/ghbundles/fulfillment-service/internal/handler"
	"github.com/ghbundles/fulfillment-service/internal/postgres"
	"github.com/ghbundles/fulfillment-service/internal/provider/datahubnet"
	"github.com/ghbundles/fulfillment-service/internal/provider/hubnet"
	"github.com/ghbundles/fulfillment-service/internal/repo"
	"github.com/ghbundles/fulfillment-service/pkg/trm"

	"github.com/joho/godotenv"
)

func main() {
	conf, err := config.New()
	panicIfErr("invalid config", err)
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	itemRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)

	httpClient := &http.Client{Timeout: conf.Fulfillment.CallTimeout}
	hubnetClient := hubnet.NewClient(conf.Hubnet, httpClient)
	datahubnetClient := datahubnet.NewClient(conf.Datahubnet, httpClient)

	svc := fulfillment.NewService(logger, txManager, itemRepo, hubnetClient, datahubnetClient, fulfillment.Config{
		Hubnet:      conf.Hubnet,
		Datahubnet:  conf.Datahubnet,
		Fulfillment: conf.Fulfillment,
	})

	dispatcher := fulfillment.NewDispatcher(logger, svc, conf.Fulfillment.DispatchInterval, conf.Fulfillment.CallTimeout)

	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, svc)
	httpHandler := handler.NewHTTPHandler(logger, svc, conf.Hubnet.WebhookSecret)
	handler.RegisterMetrics()

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetRunners(dispatcher)

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
