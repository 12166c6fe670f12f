package services

import (
	portsrepo "github.com/cbfacademy/iou_api/internal/core/ports/repositories"
	portssvc "github.com/cbfacademy/iou_api/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		IOU: NewIOUService(repos.IOURepo),
	}
}

// Helper to check interface implementations at compile time
var _ portssvc.IOUSvcFacade = (*iouService)(nil)
