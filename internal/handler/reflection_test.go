package handler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/khdiyz/media-service/internal/handler"
)

func TestDescribedServices_HidesMediaService(t *testing.T) {
	srv := grpc.NewServer()
	handler.RegisterMediaServiceServer(srv, &handler.MediaHandler{})
	healthpb.RegisterHealthServer(srv, health.NewServer())

	described := handler.DescribedServices{ServiceInfoProvider: srv}.GetServiceInfo()

	assert.Contains(t, srv.GetServiceInfo(), handler.MediaServiceName)
	assert.NotContains(t, described, handler.MediaServiceName)
	assert.Contains(t, described, healthpb.Health_ServiceDesc.ServiceName)
}
