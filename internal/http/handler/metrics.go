package handler

import "github.com/prometheus/client_golang/prometheus"

var (
	postsSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "quill_posts_submitted_total", Help: "Posts stored"},
	)
	loginAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "quill_login_attempts_total", Help: "Login attempts by outcome"},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(postsSubmitted, loginAttempts)
}
