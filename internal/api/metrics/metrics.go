// Package metrics defines and registers all custom Prometheus metrics for the
// blog API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation; HTTP-level metrics come from echoprometheus in the router.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/inkpress/blog-api/internal/core/domain"
)

const namespace = "blog"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthorizationDecisionsTotal counts gate decisions for guarded mutations.
// Labels:
//   - operation: createPost, deletePost, createComment
//   - result: "allowed", "unauthenticated", "forbidden" or "error"
var AuthorizationDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authorization_decisions_total",
		Help:      "Total number of authorization decisions, by operation and result.",
	},
	[]string{"operation", "result"},
)

// ── Content metrics ───────────────────────────────────────────────────────────

var PostsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "posts_created_total",
	Help:      "Total number of posts created.",
})

var PostsDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "posts_deleted_total",
	Help:      "Total number of posts deleted.",
})

var CommentsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "comments_created_total",
	Help:      "Total number of comments created.",
})

// LoginResult maps a login error to its label value.
func LoginResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	default:
		return "error"
	}
}

// AuthorizationResult maps the error of a guarded operation to its label
// value. Errors raised after the gate let the call through, such as a missing
// post, count as allowed.
func AuthorizationResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return "unauthenticated"
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	case err == nil, errors.Is(err, domain.ErrPostNotFound):
		return "allowed"
	default:
		return "error"
	}
}

// ObserveMutation records the gate decision for op and, on success, the
// matching content counter.
func ObserveMutation(op domain.Operation, err error) {
	AuthorizationDecisionsTotal.WithLabelValues(string(op), AuthorizationResult(err)).Inc()
	if err != nil {
		return
	}
	switch op {
	case domain.OpCreatePost:
		PostsCreatedTotal.Inc()
	case domain.OpDeletePost:
		PostsDeletedTotal.Inc()
	case domain.OpCreateComment:
		CommentsCreatedTotal.Inc()
	}
}
