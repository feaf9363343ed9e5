package routes

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/inventory-backend/api/controllers"
	"github.com/angelmondragon/inventory-backend/api/middleware"
	"github.com/angelmondragon/inventory-backend/api/responses"
	"github.com/angelmondragon/inventory-backend/internal/inventory"
	"github.com/angelmondragon/inventory-backend/pkg/db"
	pkgerrors "github.com/angelmondragon/inventory-backend/pkg/errors"
	"github.com/angelmondragon/inventory-backend/pkg/logger"
	"github.com/angelmondragon/inventory-backend/pkg/metrics"
)

// Options carries the dependencies the router wires into handlers.
type Options struct {
	Service  inventory.Service
	Logger   *logger.Logger
	Metrics  *metrics.HTTPMetrics
	Registry *prometheus.Registry
	DB       db.Pinger
	Version  string
}

// NewRouter assembles the middleware chain and the full route table.
func NewRouter(opts Options) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer(opts.Logger))
	r.Use(middleware.RequestID(opts.Logger))
	r.Use(middleware.Logging(opts.Logger))
	r.Use(middleware.Metrics(opts.Metrics))
	r.Use(middleware.CORS())

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteError(req.Context(), opts.Logger, w, pkgerrors.New(pkgerrors.CodeNotFound,
			fmt.Sprintf("The requested resource '%s' was not found.", req.URL.Path)))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteError(req.Context(), opts.Logger, w, pkgerrors.New(pkgerrors.CodeMethodNotAllowed,
			fmt.Sprintf("Method %s is not allowed on %s", req.Method, req.URL.Path)))
	})

	r.Get("/", controllers.Index(opts.Version))
	r.Get("/health", controllers.Health())
	r.Get("/health/ready", controllers.Readiness(opts.DB, opts.Logger))

	r.Route("/inventory", func(r chi.Router) {
		r.Get("/", controllers.ListInventoryItems(opts.Service, opts.Logger))
		r.Post("/", controllers.CreateInventoryItem(opts.Service, opts.Logger))

		r.Route("/{inventoryID:[0-9]+}", func(r chi.Router) {
			r.Get("/", controllers.GetInventoryItem(opts.Service, opts.Logger))
			r.Put("/", controllers.UpdateInventoryItem(opts.Service, opts.Logger))
			r.Delete("/", controllers.DeleteInventoryItem(opts.Service, opts.Logger))
			r.Put("/restock", controllers.RestockInventoryItem(opts.Service, opts.Logger))
		})
	})

	if opts.Registry != nil {
		r.Method(http.MethodGet, "/metrics",
			promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{}))
	}

	return r
}
