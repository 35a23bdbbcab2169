package middleware

import (
	"fmt"
	"log"
	"net/http"

	"bahia_gestao/pkg"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

var errTooManyRequests = pkg.NewDomainErrorSimple("TOO_MANY_REQUESTS", "Too many requests", http.StatusTooManyRequests)

// RateLimit limits requests per client IP. rate uses the limiter format,
// e.g. "10-M" for ten requests per minute.
func RateLimit(rate string) (gin.HandlerFunc, error) {
	r, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate %q: %w", rate, err)
	}
	instance := limiter.New(memory.NewStore(), r)
	return mgin.NewMiddleware(instance,
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			log.Printf("[ratelimit][middleware] limit reached ip=%s path=%s", c.ClientIP(), c.FullPath())
			c.AbortWithStatusJSON(errTooManyRequests.HTTPStatus, errTooManyRequests.ToHTTPError())
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			log.Printf("[ratelimit][middleware] limiter failed err=%v", err)
			c.Next()
		}),
	), nil
}
