package rest

import (
	"context"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/heartmarshall/voyagewise-backend/internal/domain"
	"github.com/heartmarshall/voyagewise-backend/internal/service/catalog"
	"github.com/heartmarshall/voyagewise-backend/internal/transport/middleware"
)

type catalogService interface {
	Search(ctx context.Context, input catalog.SearchInput) (domain.Page[domain.CatalogEntry], error)
	Recommend(ctx context.Context, input catalog.RecommendInput) (domain.Page[domain.CatalogEntry], error)
	FilterOptions(ctx context.Context) (*domain.FilterOptions, error)
	Categories(ctx context.Context) ([]string, error)
	CostRange(ctx context.Context) (domain.CostRange, error)
	DurationRange(ctx context.Context) (domain.DurationRange, error)
	FilterRanges(ctx context.Context) (*domain.FilterRanges, error)
	Ingest(ctx context.Context, r io.Reader) (int, error)
}

// CatalogHandler serves catalog search, filter metadata and CSV upload.
type CatalogHandler struct {
	svc             catalogService
	log             *slog.Logger
	defaultPageSize int
	maxUploadBytes  int64
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger, defaultPageSize int, maxUploadBytes int64) *CatalogHandler {
	if defaultPageSize <= 0 {
		defaultPageSize = catalog.DefaultPageSize
	}
	return &CatalogHandler{
		svc:             svc,
		log:             logger.With("handler", "catalog"),
		defaultPageSize: defaultPageSize,
		maxUploadBytes:  maxUploadBytes,
	}
}

// Search handles GET /api/activities.
// Query: country, location, category, minCost, maxCost, minDuration,
// maxDuration, isPopular, page, size, sortBy, sortDirection.
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := queryParser{values: r.URL.Query()}

	input := catalog.SearchInput{
		Country:     q.optString("country"),
		Location:    q.optString("location"),
		Category:    q.optString("category"),
		MinCost:     q.optFloat("minCost"),
		MaxCost:     q.optFloat("maxCost"),
		MinDuration: q.optInt("minDuration"),
		MaxDuration: q.optInt("maxDuration"),
		Popular:     q.optBool("isPopular"),
		Page:        q.intOr("page", 0),
		Size:        q.intOr("size", h.defaultPageSize),
		SortBy:      q.values.Get("sortBy"),
		Direction:   q.values.Get("sortDirection"),
	}
	if err := q.err(); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	page, err := h.svc.Search(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCatalogPageResponse(page))
}

// Recommendations handles GET /api/activities/recommendations.
// Query: category, location, country, popular, page, size.
func (h *CatalogHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	q := queryParser{values: r.URL.Query()}

	input := catalog.RecommendInput{
		Category: q.optString("category"),
		Location: q.optString("location"),
		Country:  q.optString("country"),
		Popular:  q.optBool("popular"),
		Page:     q.intOr("page", 0),
		Size:     q.intOr("size", h.defaultPageSize),
	}
	if err := q.err(); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	page, err := h.svc.Recommend(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCatalogPageResponse(page))
}

// Categories handles GET /api/activities/categories.
func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Categories(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(categories))
}

// CostRange handles GET /api/activities/cost-ranges.
func (h *CatalogHandler) CostRange(w http.ResponseWriter, r *http.Request) {
	rng, err := h.svc.CostRange(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, costRangeResponse(rng))
}

// DurationRange handles GET /api/activities/duration-ranges.
func (h *CatalogHandler) DurationRange(w http.ResponseWriter, r *http.Request) {
	rng, err := h.svc.DurationRange(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, durationRangeResponse(rng))
}

// FilterOptions handles GET /api/activities/filters.
func (h *CatalogHandler) FilterOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := h.svc.FilterOptions(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, filterOptionsResponse{
		Countries:  nonNil(opts.Countries),
		Locations:  nonNil(opts.Locations),
		Categories: nonNil(opts.Categories),
		Tags:       nonNil(opts.Tags),
	})
}

// FilterRanges handles GET /api/activities/filter-ranges.
func (h *CatalogHandler) FilterRanges(w http.ResponseWriter, r *http.Request) {
	ranges, err := h.svc.FilterRanges(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, filterRangesResponse{
		Cost:     costRangeResponse(ranges.Cost),
		Duration: durationRangeResponse(ranges.Duration),
	})
}

// Upload handles POST /api/admin/activities/upload (multipart field "file").
// The whole file is imported in one transaction or not at all.
func (h *CatalogHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		writeDomainError(w, r, h.log, domain.NewValidationError("file", "multipart field 'file' is required and must fit the upload limit"))
		return
	}
	defer file.Close()

	imported, err := h.svc.Ingest(r.Context(), file)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	h.log.InfoContext(r.Context(), "catalog uploaded",
		slog.String("filename", header.Filename),
		slog.Int("imported", imported))

	writeJSON(w, http.StatusCreated, uploadResponse{Imported: imported})
}

// queryParser accumulates per-parameter parse errors so a request with
// several bad values reports all of them at once.
type queryParser struct {
	values url.Values
	errs   []domain.FieldError
}

func (q *queryParser) optString(name string) *string {
	if !q.values.Has(name) {
		return nil
	}
	v := q.values.Get(name)
	return &v
}

func (q *queryParser) optFloat(name string) *float64 {
	raw := q.values.Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		q.errs = append(q.errs, domain.FieldError{Field: name, Message: "must be a finite number"})
		return nil
	}
	return &v
}

func (q *queryParser) optInt(name string) *int {
	raw := q.values.Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		q.errs = append(q.errs, domain.FieldError{Field: name, Message: "must be an integer"})
		return nil
	}
	return &v
}

func (q *queryParser) intOr(name string, def int) int {
	if v := q.optInt(name); v != nil {
		return *v
	}
	return def
}

func (q *queryParser) optBool(name string) *bool {
	raw := q.values.Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		q.errs = append(q.errs, domain.FieldError{Field: name, Message: "must be true or false"})
		return nil
	}
	return &v
}

func (q *queryParser) err() error {
	if len(q.errs) == 0 {
		return nil
	}
	return &domain.ValidationError{Errors: q.errs}
}
