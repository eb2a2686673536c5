package handler

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

// DescribedServices narrows a server's services to those reflection can describe.
// The media service carries JSON messages and has no protobuf file descriptor.
type DescribedServices struct {
	reflection.ServiceInfoProvider
}

func (d DescribedServices) GetServiceInfo() map[string]grpc.ServiceInfo {
	info := make(map[string]grpc.ServiceInfo)
	for name, svc := range d.ServiceInfoProvider.GetServiceInfo() {
		if name == MediaServiceName {
			continue
		}
		info[name] = svc
	}
	return info
}
