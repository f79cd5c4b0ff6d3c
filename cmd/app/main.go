package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/configs"
	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/board"
	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/chat"
	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/kafka"
	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/message"
	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/migrate"
	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/piece"
	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/ratelimit"
	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/redisx"
	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/shared/db"
	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/shared/httpx"
	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/user"
	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/userpiece"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

func initOTEL(ctx context.Context) func(context.Context) error {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		endpoint = "otel-collector:4318"
	}
	exp, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpoint(endpoint), otlptracehttp.WithInsecure())
	if err != nil {
		log.Fatalf("otel exporter: %v", err)
	}
	res, _ := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName("piecetrade"),
		attribute.String("deployment.environment", os.Getenv("ENV")),
	))
	ratio := 1.0
	if s := os.Getenv("OTEL_TRACES_SAMPLER_ARG"); s != "" {
		if f, e := strconv.ParseFloat(s, 64); e == nil && f >= 0 && f <= 1 {
			ratio = f
		}
	}
	tp := trace.NewTracerProvider(
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(ratio))),
		trace.WithBatcher(exp),
		trace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))
	return tp.Shutdown
}

func main() {
	ctx := context.Background()
	shutdown := initOTEL(ctx)
	defer func() {
		c, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		_ = shutdown(c)
	}()

	cfg := configs.LoadConfig()

	// Postgres
	store, err := db.Open(cfg.DSN())
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	if cfg.AutoMigrate {
		if err := migrate.AutoMigrateAll(store); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}

	// Redis: reference-data cache + rate limiting
	rds := redisx.NewClient(cfg.RedisAddr())
	limiter := ratelimit.New(rds)

	// Kafka producer for message events
	kWriter := kafka.NewWriter(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer kWriter.Close()

	// Wire repos & services
	userRepo := user.NewRepository(store)
	userSvc := user.NewService(userRepo)

	chatRepo := chat.NewRepository(store)
	msgRepo := message.NewRepository(store)
	chatSvc := chat.NewService(chatRepo, msgRepo)
	msgSvc := message.NewService(msgRepo, chatSvc, kWriter)

	pieceSvc := piece.NewService(piece.NewRepository(store), rds)
	boardSvc := board.NewService(store, rds)
	upSvc := userpiece.NewService(userpiece.NewRepository(store))

	uh := user.NewHandler(userSvc)
	ch := chat.NewHandler(chatSvc, userSvc)
	mh := message.NewHandler(msgSvc, userSvc)
	ph := piece.NewHandler(pieceSvc)
	bh := board.NewHandler(boardSvc)
	uph := userpiece.NewHandler(upSvc, userSvc)

	// HTTP
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	protect := func(pattern string, h http.Handler) {
		mux.Handle(pattern, httpx.AuthMiddleware(h))
	}

	// Users
	protect("POST /users", httpx.Wrap(uh.Provision))
	protect("GET /whoami", httpx.Wrap(uh.Whoami))

	// Chats
	mux.Handle("GET /chats", httpx.Wrap(ch.ListMine))
	mux.Handle("POST /chats", httpx.Wrap(ch.Create))
	mux.Handle("GET /chats/{chat_id}", httpx.Wrap(ch.GetByID))

	// Messages (rate limited per sender)
	protect("POST /messages", limiter.LimitHTTP(30, time.Minute, httpx.SubjectFromCtx, httpx.Wrap(mh.Send)))

	// Catalog
	mux.Handle("GET /pieces", httpx.Wrap(ph.List))
	mux.Handle("GET /pieces/{id}", httpx.Wrap(ph.GetByID))
	mux.Handle("GET /pieces/{id}/users", httpx.Wrap(ph.Holders))
	mux.Handle("GET /boards", httpx.Wrap(bh.List))

	// User collections
	mux.Handle("GET /user-pieces", httpx.Wrap(uph.ListMine))
	protect("POST /user-pieces", httpx.Wrap(uph.Add))
	protect("PUT /user-pieces", httpx.Wrap(uph.Update))
	protect("DELETE /user-pieces", httpx.Wrap(uph.Remove))

	srv := &http.Server{
		Addr:              cfg.AppPort,
		Handler:           otelhttp.NewHandler(mux, "http.server"),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       90 * time.Second,
	}
	log.Printf("piecetrade listening on %s", cfg.AppPort)
	log.Fatal(srv.ListenAndServe())
}
