package endpoint

import (
	"github.com/ariebrainware/security-event-log/stats"
	"github.com/ariebrainware/security-event-log/util"
	"github.com/gin-gonic/gin"
)

// GetStats godoc
// @Summary      Security event statistics
// @Description  Count recorded events of the reported types. Counts are computed on every request.
// @Tags         Stats
// @Produce      json
// @Success      200 {object} util.APIResponse{data=stats.Stats} "Stats retrieved"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /stats [get]
func GetStats(c *gin.Context) {
	s, ok := ensureStore(c)
	if !ok {
		return
	}

	result, err := stats.New(s).Stats(c.Request.Context())
	if err != nil {
		respondStoreError(c, "Failed to retrieve stats", err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Stats retrieved",
		Data: result,
	})
}
