package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/packline/inventory-api/api/controllers"
	"github.com/packline/inventory-api/api/middleware"
	itemsvc "github.com/packline/inventory-api/internal/items"
	"github.com/packline/inventory-api/pkg/config"
	"github.com/packline/inventory-api/pkg/db"
	"github.com/packline/inventory-api/pkg/logger"
	"github.com/packline/inventory-api/pkg/metrics"
)

// RouterParams bundles the dependencies wired by cmd/api.
type RouterParams struct {
	Config          *config.Config
	Logger          *logger.Logger
	DB              db.Pinger
	ItemService     itemsvc.Service
	Metrics         *metrics.HTTPMetrics
	MetricsGatherer prometheus.Gatherer
}

func NewRouter(p RouterParams) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(p.Logger),
		middleware.RequestID(p.Logger),
		middleware.Logging(p.Logger),
		middleware.Metrics(p.Metrics),
		middleware.CORS(),
	)

	r.Get("/", controllers.Root())

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(p.Config))
		r.Get("/ready", controllers.HealthReady(p.Config, p.Logger, p.DB))
	})

	if p.MetricsGatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.MetricsGatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/items", func(r chi.Router) {
		r.Post("/", controllers.CreateItem(p.ItemService, p.Logger))
		r.Get("/", controllers.ListItems(p.ItemService, p.Logger))
		r.Get("/{itemID}", controllers.GetItem(p.ItemService, p.Logger))
		r.Put("/{itemID}", controllers.UpdateItem(p.ItemService, p.Logger))
		r.Delete("/{itemID}", controllers.DeleteItem(p.ItemService, p.Logger))
	})

	return r
}
