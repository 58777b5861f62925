package rest

import (
	"net/http"

	"github.com/heartmarshall/voyagewise-backend/internal/transport/middleware"
)

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Health  *HealthHandler
	Auth    *AuthHandler
	Planner *PlannerHandler
	Catalog *CatalogHandler
	User    *UserHandler
}

// RouterOptions carries the middleware that differ between route groups.
// AuthLimit guards register and login; nil disables it.
type RouterOptions struct {
	API       middleware.Middleware
	AuthLimit middleware.Middleware
}

// NewRouter registers every route on a ServeMux. Probes are mounted bare;
// /api routes go through opts.API.
func NewRouter(h Handlers, opts RouterOptions) http.Handler {
	api := http.NewServeMux()

	authLimit := opts.AuthLimit
	if authLimit == nil {
		authLimit = middleware.Chain()
	}
	api.Handle("POST /api/register", authLimit(http.HandlerFunc(h.Auth.Register)))
	api.Handle("POST /api/login", authLimit(http.HandlerFunc(h.Auth.Login)))

	u := h.User
	api.HandleFunc("GET /api/users/me", u.Me)
	api.HandleFunc("PUT /api/users/me", u.UpdateMe)
	api.HandleFunc("GET /api/admin/users", u.List)
	api.HandleFunc("PUT /api/admin/users/{username}/role", u.SetRole)

	p := h.Planner
	api.HandleFunc("POST /api/trips", p.authed(p.CreateTrip))
	api.HandleFunc("GET /api/trips", p.authed(p.ListTrips))
	api.HandleFunc("GET /api/trips/{tripId}", p.authed(p.GetTrip))
	api.HandleFunc("DELETE /api/trips/{tripId}", p.authed(p.DeleteTrip))
	api.HandleFunc("GET /api/trips/{tripId}/itinerary", p.authed(p.GetItineraryByTrip))

	api.HandleFunc("POST /api/itineraries", p.authed(p.CreateItinerary))
	api.HandleFunc("DELETE /api/itineraries/{id}", p.authed(p.DeleteItinerary))
	api.HandleFunc("GET /api/itineraries/{itineraryId}/trip-blocks", p.authed(p.ListTripBlocks))

	api.HandleFunc("POST /api/trip-blocks", p.authed(p.CreateTripBlock))
	api.HandleFunc("GET /api/trip-blocks/{id}", p.authed(p.GetTripBlock))
	api.HandleFunc("PUT /api/trip-blocks/{id}", p.authed(p.UpdateTripBlock))
	api.HandleFunc("DELETE /api/trip-blocks/{id}", p.authed(p.DeleteTripBlock))
	api.HandleFunc("GET /api/trip-blocks/{id}/activities", p.authed(p.ListActivities))

	// Trip activities share the /api/activities prefix with the catalog;
	// POST/PUT/DELETE are planner writes, GET is catalog search.
	api.HandleFunc("POST /api/activities", p.authed(p.CreateActivity))
	api.HandleFunc("PUT /api/activities/{id}", p.authed(p.UpdateActivity))
	api.HandleFunc("DELETE /api/activities/{id}", p.authed(p.DeleteActivity))

	c := h.Catalog
	api.HandleFunc("GET /api/activities", c.Search)
	api.HandleFunc("GET /api/activities/recommendations", c.Recommendations)
	api.HandleFunc("GET /api/activities/categories", c.Categories)
	api.HandleFunc("GET /api/activities/cost-ranges", c.CostRange)
	api.HandleFunc("GET /api/activities/duration-ranges", c.DurationRange)
	api.HandleFunc("GET /api/activities/filters", c.FilterOptions)
	api.HandleFunc("GET /api/activities/filter-ranges", c.FilterRanges)
	api.HandleFunc("POST /api/admin/activities/upload", c.Upload)

	var apiHandler http.Handler = api
	if opts.API != nil {
		apiHandler = opts.API(api)
	}

	root := http.NewServeMux()
	root.HandleFunc("GET /live", h.Health.Live)
	root.HandleFunc("GET /ready", h.Health.Ready)
	root.HandleFunc("GET /health", h.Health.Health)
	root.Handle("/api/", apiHandler)
	return root
}
