package contact

import (
	"log/slog"

	apphttp "crudapi/internal/http"
	"crudapi/internal/resource"
)

type Service = resource.Store[Contact]

func NewService(repo Repository) *Service {
	return resource.NewStore(Kind, repo)
}

// HTTPHandler serves /api/contacts.
type HTTPHandler = apphttp.ResourceHandler[Contact]

func NewHTTPHandler(service *Service, logger *slog.Logger) *HTTPHandler {
	return apphttp.NewResourceHandler[Contact](service, Kind, logger)
}
