// Package observability exposes the Prometheus metrics of the pipeline.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ContentCollected counts raw content items newly stored per source type
	ContentCollected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pythonbe",
		Subsystem: "collector",
		Name:      "content_collected_total",
		Help:      "Number of raw content items stored.",
	}, []string{"source_type"})

	// CollectionErrors counts per-entity collection failures
	CollectionErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pythonbe",
		Subsystem: "collector",
		Name:      "collection_errors_total",
		Help:      "Number of failed per-entity collection attempts.",
	})

	// ContentProcessed counts content items that received a stored analysis
	ContentProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pythonbe",
		Subsystem: "analysis",
		Name:      "content_processed_total",
		Help:      "Number of content items analyzed and stored.",
	})

	// NonCryptoSkipped counts items the ensemble voted not crypto-related
	NonCryptoSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pythonbe",
		Subsystem: "analysis",
		Name:      "non_crypto_skipped_total",
		Help:      "Number of content items skipped as not crypto-related.",
	})

	// ProcessingErrors counts per-item analysis failures
	ProcessingErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pythonbe",
		Subsystem: "analysis",
		Name:      "processing_errors_total",
		Help:      "Number of failed per-item analysis attempts.",
	})

	// APIKeyRotations counts OpenRouter key rotations by reason
	APIKeyRotations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pythonbe",
		Subsystem: "openrouter",
		Name:      "api_key_rotations_total",
		Help:      "Number of OpenRouter API key rotations.",
	}, []string{"reason"})

	// CookieRotations counts Twitter session cookie rotations
	CookieRotations = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pythonbe",
		Subsystem: "twitter",
		Name:      "cookie_rotations_total",
		Help:      "Number of Twitter session cookie rotations.",
	})
)
