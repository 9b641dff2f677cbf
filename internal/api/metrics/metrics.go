// Package metrics defines and registers all custom Prometheus metrics for
// the storefront API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry via
// promauto at package init; the /metrics route is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Session metrics ───────────────────────────────────────────────────────────

// SignupsTotal counts successfully created accounts.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// ── Cart metrics ──────────────────────────────────────────────────────────────

// CartMutationsTotal counts successful cart mutations.
// Label:
//   - op: "add", "update", or "remove"
var CartMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_mutations_total",
		Help:      "Total number of cart mutations, labelled by operation.",
	},
	[]string{"op"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// FeaturedCacheTotal counts featured-products cache lookups.
// Label:
//   - result: "hit" (snapshot served from Redis) or "miss" (store queried)
var FeaturedCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "featured_cache_total",
		Help:      "Total number of featured-products cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ProductsCreatedTotal counts newly created catalog products.
// Label:
//   - category: the product's category
var ProductsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of products created, by category.",
	},
	[]string{"category"},
)

// ImageDeleteFailuresTotal counts best-effort image host deletions that
// failed and orphaned an image.
var ImageDeleteFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "image_delete_failures_total",
		Help:      "Total number of image host delete calls that failed during product deletion.",
	},
)
