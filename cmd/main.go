package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/khdiyz/common/logger"
	"github.com/khdiyz/media-service/internal/config"
	"github.com/khdiyz/media-service/internal/handler"
	"github.com/khdiyz/media-service/internal/service"
	"github.com/khdiyz/media-service/internal/storage"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	reflectionv1 "google.golang.org/grpc/reflection/grpc_reflection_v1"
	reflectionv1alpha "google.golang.org/grpc/reflection/grpc_reflection_v1alpha"
)

func main() {
	// .env must be in the environment before the logger reads LOG_LEVEL
	envErr := config.LoadEnvFile()

	// Initialize logger
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting Media Service...")
	if envErr != nil {
		log.Warnw(".env file not found, using process environment", "error", envErr)
	}

	// Load configuration
	cfg := config.GetConfig(log)

	// Initialize Storage (Cloudinary)
	cloudStorage, err := storage.NewCloudinaryStorage(cfg, log)
	if err != nil {
		log.Fatalw("Failed to initialize Cloudinary storage", "error", err)
	}

	// Initialize Service
	mediaService := service.NewMediaService(cloudStorage, log)

	// Initialize Handler
	mediaHandler := handler.NewMediaHandler(mediaService, log)

	// Start gRPC server
	listener, err := net.Listen("tcp", fmt.Sprintf("%s:%d", cfg.GrpcHost, cfg.GrpcPort))
	if err != nil {
		log.Fatalw("Failed to listen", "error", err)
	}

	grpcServer := grpc.NewServer()
	handler.RegisterMediaServiceServer(grpcServer, mediaHandler)

	healthServer := health.NewServer()
	healthServer.SetServingStatus(handler.MediaServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	// Enable reflection for debugging (e.g. using grpcurl). Only services with
	// protobuf descriptors are listed, so the JSON media service is left out.
	reflectionOpts := reflection.ServerOptions{
		Services: handler.DescribedServices{ServiceInfoProvider: grpcServer},
	}
	reflectionv1.RegisterServerReflectionServer(grpcServer, reflection.NewServerV1(reflectionOpts))
	reflectionv1alpha.RegisterServerReflectionServer(grpcServer, reflection.NewServer(reflectionOpts))

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		<-sigCh
		log.Info("Shutting down gRPC server...")
		healthServer.Shutdown()
		grpcServer.GracefulStop()
	}()

	log.Infow("Media Service started", "host", cfg.GrpcHost, "port", cfg.GrpcPort)
	if err := grpcServer.Serve(listener); err != nil {
		log.Fatalw("Failed to serve gRPC", "error", err)
	}
}
