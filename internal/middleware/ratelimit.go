package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/bralash/rants-api/internal/ratelimit"
)

// Rate-limit bucket names. Each bucket keeps independent counters.
const (
	BucketPublic = "public"
	BucketLogin  = "login"
	BucketAPI    = "api"
)

// RateLimitByIP counts requests against the bucket keyed by client IP.
// Used for the public and login buckets, which run before authentication.
func RateLimitByIP(limiter *ratelimit.Limiter, bucket string, quota ratelimit.Quota) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := limiter.Check(c.Request().Context(), bucket, c.RealIP(), quota); err != nil {
				return err
			}
			return next(c)
		}
	}
}

// RateLimitAPI counts requests against the api bucket: by user id with the
// larger quota when the request is authenticated, otherwise by IP with the
// smaller one. Mount it after Authenticate so the user key is available.
func RateLimitAPI(limiter *ratelimit.Limiter, userQuota, ipQuota ratelimit.Quota) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.RealIP()
			quota := ipQuota
			if user, ok := CurrentUser(c); ok {
				key = fmt.Sprintf("user:%d", user.ID)
				quota = userQuota
			}
			if err := limiter.Check(c.Request().Context(), BucketAPI, key, quota); err != nil {
				return err
			}
			return next(c)
		}
	}
}
