package main

import (
	"context"
	"net"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	pb "github.com/kyo-hirano/receipt-fields/gen/proto/receiptfields/v1"
	"github.com/kyo-hirano/receipt-fields/internal/common"
	"github.com/kyo-hirano/receipt-fields/internal/extract"
	"github.com/kyo-hirano/receipt-fields/internal/server"
	"github.com/kyo-hirano/receipt-fields/internal/sessions"
)

func main() {
	// Logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	log := logger.Sugar()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalw("invalid configuration", "error", err)
	}

	// Context with signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	extractor := extract.NewExtractor(nil, extract.Config{
		ReferenceYear: cfg.Server.ReferenceYear,
	})
	registry := sessions.NewRegistry()

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		log.Fatalw("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
	}

	grpcServer := grpc.NewServer()
	pb.RegisterExtractorServiceServer(grpcServer, server.NewExtractorService(extractor, registry, logger))

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, hs)
	reflection.Register(grpcServer)

	go func() {
		log.Infow("extractor service listening", "addr", cfg.Server.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalw("serve failed", "error", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	grpcServer.GracefulStop()
}
