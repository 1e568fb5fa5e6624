// Package main is the entry point for the fitgateway edge gateway. It loads
// configuration (env + YAML), builds the service registry, the gRPC backend
// transport and the failover invoker, wraps the solo workout-start path in the
// circuit breaker, wires the dispatcher, the redis-backed session store, the
// session hub and the HTTP/websocket handlers, and serves them through echo.
// On SIGINT/SIGTERM it shuts echo down gracefully with a bounded timeout.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitgateway/adapters/grpcbackend"
	"fitgateway/adapters/myredis"
	"fitgateway/domain"
	"fitgateway/handlers"
	"fitgateway/interfaces"
	"fitgateway/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// main is the fitgateway entry point: loads config (LoadConfig), builds registry, transport, failover invoker, breaker, dispatcher, session store, hub and handlers, then serves HTTP+websocket on SERVICE_PORT_HTTP until SIGINT/SIGTERM.
//
// Parameters and return: none (exits via os.Exit(1) on config/startup error).
//
// Called when the binary is started.
func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	level.Info(logger).Log("msg", "starting fitgateway")

	cfg, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "failed to load configuration", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log(
		"msg", "configuration loaded",
		"service_port_http", cfg.HTTPPort,
		"redis_addr", cfg.Redis.Addr,
		"user_instances", len(cfg.Topology.Services[domain.ServiceUser]),
		"activity_instances", len(cfg.Topology.Services[domain.ServiceActivity]),
	)

	registry, err := service.NewServiceRegistry(cfg.Topology)
	if err != nil {
		level.Error(logger).Log("msg", "invalid service topology", "err", err)
		os.Exit(1)
	}

	transport := grpcbackend.NewTransport(func(inst domain.ServiceInstance) (*grpc.ClientConn, error) {
		return grpc.NewClient(inst.Address(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	})
	defer transport.Close()

	invoker := service.NewFailoverInvoker(registry, transport, cfg.Failover, logger)
	guarded := service.NewBreakerInvoker("activity-start-workout", invoker, cfg.Breaker, logger)
	dispatcher := service.NewDispatcher(invoker, guarded)

	var store interfaces.SessionStore
	{
		redisClient, err := myredis.NewRedisUniversalClient(cfg.Redis.Addr)
		if err != nil {
			level.Error(logger).Log("msg", "failed to create redis client", "err", err)
			os.Exit(1)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			level.Error(logger).Log("msg", "failed to connect to redis", "err", err)
			os.Exit(1)
		}
		level.Info(logger).Log("msg", "connected to redis")
		store = myredis.NewSessionStore(redisClient)
	}

	hub := service.NewSessionHub(store, logger)

	e := echo.New()
	e.HideBanner = true
	service.RegisterErrorHandler(e, logger)
	handlers.RegisterRoutes(e, handlers.NewHTTPServer(dispatcher, logger), handlers.NewWSHandler(hub, logger))

	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		level.Info(logger).Log("msg", "listening", "addr", addr)
		if err := e.Start(addr); err != nil {
			level.Info(logger).Log("msg", "server stopped", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	level.Info(logger).Log("msg", "shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		level.Error(logger).Log("msg", "graceful shutdown failed", "err", err)
		_ = e.Close()
	}
}
