package server

import (
	"context"
	"net"

	"github.com/MKhiriev/go-pass-god/internal/config"
	myGRPC "github.com/MKhiriev/go-pass-god/internal/handler/grpc"
	"github.com/MKhiriev/go-pass-god/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server  *grpc.Server
	address string

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	return &grpcServer{
		handler: handler,
		server:  grpc.NewServer(),
		address: cfg.GRPCAddress,
		logger:  logger,
	}
}

func (g *grpcServer) RunServer(ctx context.Context) {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		g.logger.Error().Err(err).Str("address", g.address).Msg("gRPC listen failed")
		return
	}

	g.handler.Register(ctx, g.server)

	g.logger.Info().Str("address", g.address).Msg("gRPC health server listening")
	if err = g.server.Serve(listener); err != nil {
		g.logger.Error().Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()
	g.server.GracefulStop()
}
