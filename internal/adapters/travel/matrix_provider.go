package travel

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"tour-planner-service/internal/domain"
	"tour-planner-service/internal/platform/obs"
)

// MatrixProvider implements TravelLookup against a Google-style
// distance matrix endpoint.
//
// It issues one origin->destination element per call with retry/backoff
// for transient failures. Callers (the estimator) treat any error as a
// signal to fall back to the geometric estimate, so the provider
// reports malformed responses as errors rather than guessing.
//
// The provider is safe for concurrent use.
type MatrixProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
}

func NewMatrixProvider(apiKey string) (*MatrixProvider, error) {
	if apiKey == "" {
		return nil, errors.New("maps api key is empty")
	}

	return &MatrixProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://maps.googleapis.com",
	}, nil
}

type matrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Duration *struct {
				Value int `json:"value"`
			} `json:"duration"`
		} `json:"elements"`
	} `json:"rows"`
}

// LookupMinutes returns the travel time between two coordinates in
// whole minutes (seconds truncated, matching the matrix contract).
func (p *MatrixProvider) LookupMinutes(
	ctx context.Context,
	from, to domain.Coordinates,
	mode domain.TravelMode,
) (_ int, err error) {
	defer obs.Time(ctx, "matrix.LookupMinutes")(&err)

	endpoint := p.baseURL + "/maps/api/distancematrix/json"

	resp, err := p.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := p.newRequest(ctx, http.MethodGet, endpoint)
		if err != nil {
			return nil, err
		}

		q := req.URL.Query()
		q.Set("origins", coordParam(from))
		q.Set("destinations", coordParam(to))
		q.Set("mode", string(mode))
		q.Set("key", p.apiKey)
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return 0, fmt.Errorf("matrix request failed: %w", err)
	}
	defer resp.Body.Close()

	var mr matrixResponse
	if err := decodeJSON(resp.Body, &mr); err != nil {
		return 0, fmt.Errorf("decode matrix response: %w", err)
	}

	if len(mr.Rows) != 1 || len(mr.Rows[0].Elements) != 1 {
		return 0, fmt.Errorf("expected 1x1 matrix; got %d rows", len(mr.Rows))
	}

	elem := mr.Rows[0].Elements[0]
	if elem.Status != "" && elem.Status != "OK" {
		return 0, fmt.Errorf("matrix element status %q", elem.Status)
	}
	if elem.Duration == nil {
		return 0, errors.New("matrix element missing duration")
	}

	return elem.Duration.Value / 60, nil
}

// coordParam renders a coordinate as "lat,lng" for matrix query params.
func coordParam(c domain.Coordinates) string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lng, 'f', -1, 64)
}
