package dto

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/ijalalfrz/ticket-analysis-service/internal/pkg/analysis"
	"github.com/ijalalfrz/ticket-analysis-service/internal/pkg/exception"
	"github.com/ijalalfrz/ticket-analysis-service/internal/pkg/stats"
	"github.com/ijalalfrz/ticket-analysis-service/internal/pkg/utils"
	"gopkg.in/yaml.v3"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

type AnalyzeRequest struct {
	Path string `json:"path" validate:"required"`
	Sort string `json:"sort,omitempty" validate:"omitempty,oneof=carrier duration"`
}

func (a *AnalyzeRequest) Bind(r *http.Request) error {
	if err := a.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (a *AnalyzeRequest) Validate() error {
	if err := ValidateSingleError(a); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}

type CarrierDuration struct {
	Carrier      string `json:"carrier" yaml:"carrier"`
	TotalMinutes int64  `json:"total_minutes" yaml:"total_minutes"`
	Formatted    string `json:"formatted" yaml:"formatted"`
}

// AnalysisResponse is the rendered form of analysis.Result.
type AnalysisResponse struct {
	Origin          string            `json:"origin" yaml:"origin"`
	Destination     string            `json:"destination" yaml:"destination"`
	PriceDifference string            `json:"price_difference" yaml:"price_difference"`
	Carriers        []CarrierDuration `json:"carriers" yaml:"carriers"`
}

func NewAnalysisResponse(result analysis.Result, sortField string) AnalysisResponse {
	carriers := result.Carriers(sortField)

	resp := AnalysisResponse{
		Origin:          result.Origin(),
		Destination:     result.Destination(),
		PriceDifference: result.PriceDifference().StringFixed(stats.PriceScale),
		Carriers:        make([]CarrierDuration, len(carriers)),
	}

	for i, c := range carriers {
		resp.Carriers[i] = CarrierDuration{
			Carrier:      c.Carrier,
			TotalMinutes: int64(c.Duration.Minutes()),
			Formatted:    utils.FormatDuration(c.Duration),
		}
	}

	return resp
}

// Render encodes the response as text, json or yaml.
func (r AnalysisResponse) Render(format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(r, "", "  ")
	case FormatYAML:
		return yaml.Marshal(r)
	case FormatText, "":
		return []byte(r.Text()), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// Text is the human readable report printed by the CLI.
func (r AnalysisResponse) Text() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Ticket analysis %s -> %s\n", r.Origin, r.Destination)
	fmt.Fprintf(&b, "Price difference (mean - median): %s\n", r.PriceDifference)
	b.WriteString("\nMinimum flight time by carrier:\n")
	for _, c := range r.Carriers {
		fmt.Fprintf(&b, "- %s: %s\n", c.Carrier, utils.FormatHoursMinutes(c.TotalMinutes))
	}

	return b.String()
}
