package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	json "github.com/goccy/go-json"

	"github.com/MKhiriev/go-movie-keeper/internal/config"
	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/internal/utils"
	"github.com/MKhiriev/go-movie-keeper/models"
)

const moviesPath = "/movies"

type httpServerAdapter struct {
	client *utils.HTTPClient

	probePath    string
	probeTimeout time.Duration

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(utils.DefaultUserAgent)
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	probePath := adapterCfg.ProbePath
	if probePath == "" {
		probePath = config.DefaultProbePath
	}
	probeTimeout := adapterCfg.ProbeTimeout
	if probeTimeout <= 0 {
		probeTimeout = config.DefaultProbeTimeout
	}

	return &httpServerAdapter{
		client:       client,
		probePath:    probePath,
		probeTimeout: probeTimeout,
		logger:       logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func moviePath(id models.MovieID) string {
	return moviesPath + "/" + url.PathEscape(id.String())
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

// List implements [ServerAdapter]. GET /movies.
func (h *httpServerAdapter) List(ctx context.Context) ([]models.Movie, error) {
	resp, err := h.request(ctx).Get(moviesPath)
	if err != nil {
		return nil, fmt.Errorf("%w: list request: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	movies := make([]models.Movie, 0)
	if err = json.Unmarshal(resp.Body(), &movies); err != nil {
		return nil, fmt.Errorf("%w: list: %w", ErrMalformedResponse, err)
	}

	return movies, nil
}

// Get implements [ServerAdapter]. GET /movies/{id}.
func (h *httpServerAdapter) Get(ctx context.Context, id models.MovieID) (models.Movie, error) {
	resp, err := h.request(ctx).Get(moviePath(id))
	if err != nil {
		return models.Movie{}, fmt.Errorf("%w: get request: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Movie{}, err
	}

	return decodeMovie(resp, "get")
}

// Create implements [ServerAdapter]. POST /movies.
func (h *httpServerAdapter) Create(ctx context.Context, movie models.MovieFields) (models.Movie, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(movie).
		Post(moviesPath)
	if err != nil {
		return models.Movie{}, fmt.Errorf("%w: create request: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Movie{}, err
	}

	return decodeMovie(resp, "create")
}

// Update implements [ServerAdapter]. PUT /movies/{id}.
func (h *httpServerAdapter) Update(ctx context.Context, id models.MovieID, movie models.MovieFields) (models.Movie, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(movie).
		Put(moviePath(id))
	if err != nil {
		return models.Movie{}, fmt.Errorf("%w: update request: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Movie{}, err
	}

	return decodeMovie(resp, "update")
}

// Delete implements [ServerAdapter]. DELETE /movies/{id}. A 404 reply means
// the record is already gone and is reported as success.
func (h *httpServerAdapter) Delete(ctx context.Context, id models.MovieID) error {
	resp, err := h.request(ctx).Delete(moviePath(id))
	if err != nil {
		return fmt.Errorf("%w: delete request: %w", ErrUnavailable, err)
	}

	err = mapHTTPError(resp)
	if IsNotFound(err) {
		h.logger.Debug().Str("func", "*httpServerAdapter.Delete").Str("id", id.String()).Msg("movie already deleted on server")
		return nil
	}

	return err
}

// Ping implements [ServerAdapter]. HEAD on the probe path, bounded by the
// probe timeout regardless of the caller's deadline.
func (h *httpServerAdapter) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, h.probeTimeout)
	defer cancel()

	resp, err := h.client.R().SetContext(ctx).Head(h.probePath)
	if err != nil {
		return fmt.Errorf("%w: probe: %w", ErrUnavailable, err)
	}

	return mapHTTPError(resp)
}

func decodeMovie(resp *resty.Response, op string) (models.Movie, error) {
	var movie models.Movie
	if err := json.Unmarshal(resp.Body(), &movie); err != nil {
		return models.Movie{}, fmt.Errorf("%w: %s: %w", ErrMalformedResponse, op, err)
	}
	if movie.ID == "" {
		return models.Movie{}, fmt.Errorf("%w: %s: missing id", ErrMalformedResponse, op)
	}

	return movie, nil
}
