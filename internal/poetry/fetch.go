package poetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/taibuivan/diwan/internal/platform/constants"
	"github.com/taibuivan/diwan/internal/platform/metrics"
)

// # Endpoint Descriptors

// Operation names a remote fetch for logs and metrics.
type Operation string

const (
	OperationPoets     Operation = "poets"
	OperationPoems     Operation = "poems"
	OperationPoetPoems Operation = "poet_poems"
)

// Endpoint is a candidate URL template. Placeholders {limit}, {offset} and
// {poet_id} are substituted before the request is issued.
type Endpoint struct {
	Template string
}

// Expand substitutes placeholders. The poet id is path-escaped.
func (endpoint Endpoint) Expand(limit, offset int, poetID string) string {
	return strings.NewReplacer(
		"{limit}", strconv.Itoa(limit),
		"{offset}", strconv.Itoa(offset),
		"{poet_id}", url.PathEscape(poetID),
	).Replace(endpoint.Template)
}

// Endpoints holds the ordered candidates for each operation.
type Endpoints struct {
	Poets     []Endpoint
	Poems     []Endpoint
	PoetPoems []Endpoint
}

// DefaultEndpoints builds the probing chain for the given hosts.
//
// The first host is probed on its /api and /api/v1 routes, every other host
// on its bare routes, and the first host again on its static JSON routes.
func DefaultEndpoints(baseURLs []string) Endpoints {
	var endpoints Endpoints
	if len(baseURLs) == 0 {
		return endpoints
	}

	primary := strings.TrimRight(baseURLs[0], "/")
	add := func(poets, poems, poetPoems string) {
		endpoints.Poets = append(endpoints.Poets, Endpoint{Template: poets})
		endpoints.Poems = append(endpoints.Poems, Endpoint{Template: poems})
		endpoints.PoetPoems = append(endpoints.PoetPoems, Endpoint{Template: poetPoems})
	}

	for _, prefix := range []string{"/api", "/api/v1"} {
		add(primary+prefix+"/poets",
			primary+prefix+"/poems?limit={limit}&offset={offset}",
			primary+prefix+"/poets/{poet_id}/poems")
	}

	for _, base := range baseURLs[1:] {
		base = strings.TrimRight(base, "/")
		add(base+"/poets",
			base+"/poems?limit={limit}&offset={offset}",
			base+"/poets/{poet_id}/poems")
	}

	add(primary+"/poets.json",
		primary+"/poems.json?limit={limit}&offset={offset}",
		primary+"/poems/by-poet/{poet_id}")

	return endpoints
}

// # Fetcher

var (
	errUnexpectedStatus = errors.New("unexpected status")
	errInvalidJSON      = errors.New("invalid json payload")
	errNotArray         = errors.New("payload holds no record array")
	errBodyTooLarge     = errors.New("payload exceeds size limit")
)

// FetcherConfig tunes the probing chain.
type FetcherConfig struct {
	Endpoints Endpoints
	// Timeout bounds a single endpoint request.
	Timeout time.Duration
	// Budget bounds a whole probing chain.
	Budget    time.Duration
	UserAgent string
}

// Fetcher retrieves poets and poems from a remote catalogue whose schema
// is unknown. Endpoints are tried one at a time; the first that yields a
// record array wins. Every failure is logged and the caller receives an
// empty slice.
type Fetcher struct {
	client  *http.Client
	config  FetcherConfig
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewFetcher constructs a [Fetcher]. A nil client uses a fresh [http.Client].
func NewFetcher(config FetcherConfig, client *http.Client, logger *slog.Logger, recorder *metrics.Metrics) *Fetcher {
	if client == nil {
		client = &http.Client{}
	}
	return &Fetcher{
		client:  client,
		config:  config,
		logger:  logger,
		metrics: recorder,
	}
}

// FetchPoets probes the poet endpoints.
func (fetcher *Fetcher) FetchPoets(ctx context.Context) []Poet {
	records := fetcher.probe(ctx, OperationPoets, fetcher.config.Endpoints.Poets, 0, 0, "", "poems", "data", "poets")
	return normalizePoets(records)
}

// FetchPoems probes the paginated poem endpoints.
func (fetcher *Fetcher) FetchPoems(ctx context.Context, limit, offset int) []Poem {
	records := fetcher.probe(ctx, OperationPoems, fetcher.config.Endpoints.Poems, limit, offset, "", "poems", "data")
	return normalizePoems(records)
}

// FetchPoemsByPoet probes the endpoints scoped to one poet.
func (fetcher *Fetcher) FetchPoemsByPoet(ctx context.Context, poetID string) []Poem {
	records := fetcher.probe(ctx, OperationPoetPoems, fetcher.config.Endpoints.PoetPoems, 0, 0, poetID, "poems", "data")
	return normalizePoems(records)
}

// probe walks the chain under one shared budget and returns the records of the
// first endpoint that answered with an array.
func (fetcher *Fetcher) probe(ctx context.Context, operation Operation, endpoints []Endpoint, limit, offset int, poetID string, envelopeKeys ...string) []gjson.Result {
	budgetCtx, cancel := context.WithTimeout(ctx, fetcher.config.Budget)
	defer cancel()

	for _, endpoint := range endpoints {
		target := endpoint.Expand(limit, offset, poetID)

		records, err := fetcher.fetchOne(budgetCtx, target, envelopeKeys)
		if err != nil {
			fetcher.logger.WarnContext(ctx, "remote_endpoint_failed",
				slog.String("operation", string(operation)),
				slog.String("endpoint", target),
				slog.String("error", err.Error()),
			)

			if budgetCtx.Err() != nil {
				break
			}
			continue
		}

		outcome := metrics.OutcomeSuccess
		if len(records) == 0 {
			outcome = metrics.OutcomeEmpty
		}
		fetcher.metrics.RemoteFetch(string(operation), outcome)
		return records
	}

	fetcher.logger.WarnContext(ctx, "remote_fetch_exhausted",
		slog.String("operation", string(operation)),
		slog.Int("endpoints", len(endpoints)),
	)
	fetcher.metrics.RemoteFetch(string(operation), metrics.OutcomeFailure)
	return nil
}

// fetchOne issues a single GET and extracts the record array.
func (fetcher *Fetcher) fetchOne(ctx context.Context, target string, envelopeKeys []string) ([]gjson.Result, error) {
	requestCtx, cancel := context.WithTimeout(ctx, fetcher.config.Timeout)
	defer cancel()

	request, err := http.NewRequestWithContext(requestCtx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("User-Agent", fetcher.config.UserAgent)

	response, err := fetcher.client.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(response.Body, constants.MaxRemoteBodyBytes))
		return nil, fmt.Errorf("%w: %d", errUnexpectedStatus, response.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(response.Body, constants.MaxRemoteBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(body) > constants.MaxRemoteBodyBytes {
		return nil, errBodyTooLarge
	}

	return extractRecords(body, envelopeKeys)
}

// extractRecords accepts a top-level array or an object wrapping one under an envelope key.
func extractRecords(body []byte, envelopeKeys []string) ([]gjson.Result, error) {
	if !gjson.ValidBytes(body) {
		return nil, errInvalidJSON
	}

	root := gjson.ParseBytes(body)
	if root.IsArray() {
		return root.Array(), nil
	}

	if root.IsObject() {
		for _, key := range envelopeKeys {
			if wrapped := root.Get(key); wrapped.IsArray() {
				return wrapped.Array(), nil
			}
		}
	}

	return nil, errNotArray
}
