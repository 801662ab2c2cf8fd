package endpoint

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ariebrainware/security-event-log/middleware"
	"github.com/ariebrainware/security-event-log/store"
	"github.com/ariebrainware/security-event-log/util"
	"github.com/gin-gonic/gin"
)

// helper: build an event store on the request's DB or respond with server error
func ensureStore(c *gin.Context) (*store.EventStore, bool) {
	db := middleware.GetDB(c)
	if db == nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Database connection not available",
			Err: fmt.Errorf("db is nil"),
		})
		return nil, false
	}
	return store.New(db, store.WithLocator(util.LocateIP)), true
}

// helper: get and validate id param from path. Anything that cannot name a
// log is reported as not found.
func getIDParam(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		util.CallErrorNotFound(c, util.APIErrorParams{
			Msg: "Log not found",
			Err: fmt.Errorf("invalid log id %q", raw),
		})
		return 0, false
	}
	return uint(id), true
}

// respondStoreError maps store errors onto API responses.
func respondStoreError(c *gin.Context, msg string, err error) {
	var (
		verr *store.ValidationError
		nf   *store.NotFoundError
	)
	switch {
	case errors.As(err, &verr):
		util.CallValidationError(c, util.APIErrorParams{Msg: msg, Err: err}, verr.Fields)
	case errors.As(err, &nf):
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: "Log not found", Err: err})
	default:
		util.LogStoreFailure(middleware.GetRequestID(c), err)
		util.CallServerError(c, util.APIErrorParams{Msg: msg, Err: err})
	}
}
