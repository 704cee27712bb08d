package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/ticket-analysis-service/internal/app/dto"
	"github.com/ijalalfrz/ticket-analysis-service/internal/app/service"
	"github.com/ijalalfrz/ticket-analysis-service/internal/pkg/analysis"
)

type Endpoints struct {
	AnalysisEndpoint AnalysisEndpoint
}

type AnalysisService interface {
	Analyze(ctx context.Context, path string) (analysis.Result, error)
}

type AnalysisEndpoint struct {
	Analyze endpoint.Endpoint
}

// MakeAnalysisEndpoint builds the analysis endpoints. Requested paths are resolved
// against dataDir and may not leave it.
func MakeAnalysisEndpoint(svc AnalysisService, dataDir string) AnalysisEndpoint {
	return AnalysisEndpoint{
		Analyze: makeAnalyzeEndpoint(svc, dataDir),
	}
}

func makeAnalyzeEndpoint(svc AnalysisService, dataDir string) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.AnalyzeRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		path, err := service.ResolveDataPath(dataDir, request.Path)
		if err != nil {
			return nil, err
		}

		result, err := svc.Analyze(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("analysis service: %w", err)
		}

		return dto.NewAnalysisResponse(result, request.Sort), nil
	}
}
