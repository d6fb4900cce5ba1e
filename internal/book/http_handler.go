package book

import (
	"log/slog"

	apphttp "crudapi/internal/http"
)

// HTTPHandler serves /api/books.
type HTTPHandler = apphttp.ResourceHandler[Book]

func NewHTTPHandler(service *Service, logger *slog.Logger) *HTTPHandler {
	return apphttp.NewResourceHandler[Book](service, Kind, logger)
}
