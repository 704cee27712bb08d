package stats

import (
	"net/http"

	"github.com/ijalalfrz/ticket-analysis-service/internal/pkg/exception"
)

var ErrNoTickets = exception.ApplicationError{
	Message:    "no tickets found for route",
	StatusCode: http.StatusNotFound,
}
