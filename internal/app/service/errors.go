package service

import (
	"net/http"

	"github.com/ijalalfrz/ticket-analysis-service/internal/pkg/exception"
	"github.com/ijalalfrz/ticket-analysis-service/internal/pkg/stats"
)

// ErrNoTicketsFound is returned when no valid ticket matches the configured route.
var ErrNoTicketsFound = stats.ErrNoTickets

var ErrPathOutsideDataDir = exception.ApplicationError{
	Message:    "path must point inside the ticket data directory",
	StatusCode: http.StatusBadRequest,
}

var ErrAnalysisFailed = exception.ApplicationError{
	Message:    "ticket analysis failed",
	StatusCode: http.StatusInternalServerError,
}
