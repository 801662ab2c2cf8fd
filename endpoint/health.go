package endpoint

import (
	"context"
	"fmt"
	"time"

	"github.com/ariebrainware/security-event-log/config"
	"github.com/ariebrainware/security-event-log/middleware"
	"github.com/ariebrainware/security-event-log/store"
	"github.com/ariebrainware/security-event-log/util"
	"github.com/gin-gonic/gin"
)

const healthTimeout = 2 * time.Second

// HealthStatus reports the state of the service's dependencies.
type HealthStatus struct {
	Database string `json:"database"`
	Redis    string `json:"redis"`
	GeoIP    string `json:"geoip"`
	Logs     int64  `json:"logs"`

	GeoIPCacheHits   int64 `json:"geoip_cache_hits"`
	GeoIPCacheMisses int64 `json:"geoip_cache_misses"`
	GeoIPCacheSize   int   `json:"geoip_cache_size"`
}

const (
	statusUp       = "up"
	statusDown     = "down"
	statusDisabled = "disabled"
)

// Healthz godoc
// @Summary      Health check
// @Description  Report database, Redis and GeoIP status. Only the database is required.
// @Tags         Health
// @Produce      json
// @Success      200 {object} util.APIResponse{data=HealthStatus} "Healthy"
// @Failure      503 {object} util.APIResponse "Unhealthy"
// @Router       /healthz [get]
func Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	status := HealthStatus{
		Database: statusDown,
		Redis:    statusDisabled,
		GeoIP:    statusDisabled,
	}

	if util.GeoIPEnabled() {
		status.GeoIP = statusUp
	}
	status.GeoIPCacheHits, status.GeoIPCacheMisses, status.GeoIPCacheSize = util.GetGeoIPCacheMetrics()

	if rdb := config.GetRedisClient(); rdb != nil {
		status.Redis = statusUp
		if err := rdb.Ping(ctx).Err(); err != nil {
			status.Redis = statusDown
		}
	}

	if err := checkDatabase(ctx, c, &status); err != nil {
		util.CallServiceUnavailable(c, util.APIErrorParams{
			Msg: "Service unavailable",
			Err: err,
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "OK",
		Data: status,
	})
}

func checkDatabase(ctx context.Context, c *gin.Context, status *HealthStatus) error {
	db := middleware.GetDB(c)
	if db == nil {
		return fmt.Errorf("database connection not available")
	}
	n, err := store.New(db).Count(ctx)
	if err != nil {
		return err
	}
	status.Database = statusUp
	status.Logs = n
	return nil
}
