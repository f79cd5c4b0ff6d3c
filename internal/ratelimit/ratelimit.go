package ratelimit

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/redisx"
	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/shared/httpx"
)

type Limiter struct {
	R *redisx.Client
}

func New(r *redisx.Client) *Limiter { return &Limiter{R: r} }

func (l *Limiter) AllowSliding(ctx context.Context, key string, limit int64, window time.Duration) (bool, int64, error) {
	k := "rl:" + key
	pipe := l.R.R.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.Expire(ctx, k, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, err
	}
	n := incr.Val()
	return n <= limit, n, nil
}

// LimitHTTP caps requests per key per window; on limiter failure requests
// pass through rather than blocking sends on Redis availability.
func (l *Limiter) LimitHTTP(limit int64, window time.Duration, keyFn func(*http.Request) (string, error), next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key, err := keyFn(r)
		if err != nil || key == "" {
			httpx.WriteJSON(w, map[string]any{"error": "unauthorized"}, http.StatusUnauthorized)
			return
		}
		ok, n, e := l.AllowSliding(r.Context(), key, limit, window)
		if e != nil {
			next.ServeHTTP(w, r)
			return
		}
		if !ok {
			httpx.WriteJSON(w, map[string]any{
				"error": fmt.Sprintf("rate limit exceeded (count=%d, limit=%d)", n, limit),
			}, http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
