// Package transport exposes share intake over gRPC.
package transport

import (
	"context"
	"fmt"
	"net"

	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// Config holds the gRPC listener settings.
type Config struct {
	Addr string `long:"grpc-addr" env:"GRPC_ADDR" description:"gRPC listen address" default:":9090"`
}

// NewServer builds a gRPC server with ShareService and the health service registered.
func NewServer(handler ShareServiceServer, logger *zap.Logger) (*grpc.Server, *health.Server) {
	recovery := grpcRecovery.WithRecoveryHandler(func(p any) error {
		logger.Error("grpc handler panicked", zap.Any("panic", p))
		return status.Error(codes.Internal, "internal error")
	})
	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(recovery),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	server := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)

	RegisterShareServiceServer(server, handler)
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)
	healthServer.SetServingStatus(shareServiceName, healthpb.HealthCheckResponse_SERVING)

	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(server)
	return server, healthServer
}

// Serve runs server on listener until ctx is done, then drains in-flight calls.
func Serve(ctx context.Context, server *grpc.Server, healthServer *health.Server, listener net.Listener, logger *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(listener)
	}()
	logger.Info("gRPC server started", zap.String("addr", listener.Addr().String()))

	select {
	case err := <-errCh:
		return fmt.Errorf("serve grpc: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down gRPC server")
	healthServer.Shutdown()
	server.GracefulStop()
	return nil
}
