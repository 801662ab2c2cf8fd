package endpoint

import (
	"encoding/json"
	"errors"
	"reflect"

	"github.com/ariebrainware/security-event-log/middleware"
	"github.com/ariebrainware/security-event-log/store"
	"github.com/ariebrainware/security-event-log/util"
	"github.com/gin-gonic/gin"
)

const msgNotString = "must be a string"

// logRequest is the JSON body accepted by create and full update.
type logRequest struct {
	EventType   string `json:"event_type" example:"LOGIN_FAIL" enums:"LOGIN_FAIL,LOGIN_SUCCESS,BRUTE_FORCE,PORT_SCAN,MALWARE"`
	SourceIP    string `json:"source_ip" example:"203.0.113.7"`
	Severity    string `json:"severity" example:"HIGH" enums:"LOW,MEDIUM,HIGH,CRITICAL"`
	Description string `json:"description" example:"5 failed SSH logins for root"`

	readOnlyFields
}

// patchLogRequest is the JSON body accepted by partial update.
type patchLogRequest struct {
	EventType   optionalString `json:"event_type,omitempty" swaggertype:"string" example:"PORT_SCAN"`
	SourceIP    optionalString `json:"source_ip,omitempty" swaggertype:"string" example:"198.51.100.23"`
	Severity    optionalString `json:"severity,omitempty" swaggertype:"string" example:"CRITICAL"`
	Description optionalString `json:"description,omitempty" swaggertype:"string" example:"Escalated after repeat scans"`

	readOnlyFields
}

// optionalString tells an absent key apart from an explicit null.
type optionalString struct {
	set   bool
	null  bool
	value string
}

func (o *optionalString) UnmarshalJSON(data []byte) error {
	o.set = true
	if string(data) == "null" {
		o.null = true
		return nil
	}
	if err := json.Unmarshal(data, &o.value); err != nil {
		return &json.UnmarshalTypeError{Value: jsonKind(data), Type: reflect.TypeOf("")}
	}
	return nil
}

// ptr returns the supplied string, or nil when the key was absent or null.
func (o optionalString) ptr() *string {
	if !o.set || o.null {
		return nil
	}
	v := o.value
	return &v
}

func jsonKind(data []byte) string {
	switch data[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case 't', 'f':
		return "bool"
	default:
		return "number"
	}
}

// readOnlyFields captures system-assigned fields so their presence can be rejected.
type readOnlyFields struct {
	ID        json.RawMessage `json:"id,omitempty" swaggerignore:"true"`
	Timestamp json.RawMessage `json:"timestamp,omitempty" swaggerignore:"true"`
	Location  json.RawMessage `json:"location,omitempty" swaggerignore:"true"`
}

func (r readOnlyFields) present() []string {
	var fields []string
	if len(r.ID) > 0 {
		fields = append(fields, "id")
	}
	if len(r.Timestamp) > 0 {
		fields = append(fields, "timestamp")
	}
	if len(r.Location) > 0 {
		fields = append(fields, "location")
	}
	return fields
}

func (r logRequest) toInput() store.LogInput {
	return store.LogInput{
		EventType:   r.EventType,
		SourceIP:    r.SourceIP,
		Severity:    r.Severity,
		Description: r.Description,
		ReadOnly:    r.present(),
	}
}

func (r patchLogRequest) toPatch() store.LogPatch {
	var null []string
	for _, f := range []struct {
		name string
		val  optionalString
	}{
		{"event_type", r.EventType},
		{"source_ip", r.SourceIP},
		{"severity", r.Severity},
		{"description", r.Description},
	} {
		if f.val.null {
			null = append(null, f.name)
		}
	}
	return store.LogPatch{
		EventType:   r.EventType.ptr(),
		SourceIP:    r.SourceIP.ptr(),
		Severity:    r.Severity.ptr(),
		Description: r.Description.ptr(),
		ReadOnly:    r.present(),
		Null:        null,
	}
}

// bindJSON decodes the request body into dst. A value of the wrong JSON type
// is reported against its field like any other validation failure.
func bindJSON(c *gin.Context, dst interface{}) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		util.CallValidationError(c, util.APIErrorParams{
			Msg: "Invalid request body",
			Err: err,
		}, map[string]string{typeErr.Field: msgNotString})
		return false
	}

	util.CallUserError(c, util.APIErrorParams{
		Msg: "Invalid request body",
		Err: err,
	})
	return false
}

// ListLogs godoc
// @Summary      List security events
// @Description  Get every recorded security event, most recent first
// @Tags         Log
// @Produce      json
// @Success      200 {object} util.APIResponse{data=[]model.Log} "Logs retrieved"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /logs [get]
func ListLogs(c *gin.Context) {
	s, ok := ensureStore(c)
	if !ok {
		return
	}

	logs, err := s.List(c.Request.Context())
	if err != nil {
		respondStoreError(c, "Failed to retrieve logs", err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Logs retrieved",
		Data: logs,
	})
}

// CreateLog godoc
// @Summary      Record a security event
// @Description  Store a new security event. id and timestamp are assigned by the server.
// @Tags         Log
// @Accept       json
// @Produce      json
// @Param        request body logRequest true "Security event"
// @Success      201 {object} util.APIResponse{data=model.Log} "Log created"
// @Failure      400 {object} util.APIResponse{data=util.ValidationErrorData} "Invalid request"
// @Failure      429 {object} util.APIResponse "Too many requests"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /logs [post]
func CreateLog(c *gin.Context) {
	var req logRequest
	if !bindJSON(c, &req) {
		return
	}

	s, ok := ensureStore(c)
	if !ok {
		return
	}

	entry, err := s.Create(c.Request.Context(), req.toInput())
	if err != nil {
		respondStoreError(c, "Failed to create log", err)
		return
	}
	util.LogEventRecorded(middleware.GetRequestID(c), entry)

	util.CallSuccessCreated(c, util.APISuccessParams{
		Msg:  "Log created",
		Data: entry,
	})
}

// GetLog godoc
// @Summary      Get a security event
// @Description  Get a single security event by id
// @Tags         Log
// @Produce      json
// @Param        id path int true "Log ID"
// @Success      200 {object} util.APIResponse{data=model.Log} "Log retrieved"
// @Failure      404 {object} util.APIResponse "Log not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /logs/{id} [get]
func GetLog(c *gin.Context) {
	id, ok := getIDParam(c)
	if !ok {
		return
	}

	s, ok := ensureStore(c)
	if !ok {
		return
	}

	entry, err := s.Get(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, "Failed to retrieve log", err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Log retrieved",
		Data: entry,
	})
}

// ReplaceLog godoc
// @Summary      Replace a security event
// @Description  Overwrite every writable field of a security event
// @Tags         Log
// @Accept       json
// @Produce      json
// @Param        id path int true "Log ID"
// @Param        request body logRequest true "Security event"
// @Success      200 {object} util.APIResponse{data=model.Log} "Log updated"
// @Failure      400 {object} util.APIResponse{data=util.ValidationErrorData} "Invalid request"
// @Failure      404 {object} util.APIResponse "Log not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /logs/{id} [put]
func ReplaceLog(c *gin.Context) {
	id, ok := getIDParam(c)
	if !ok {
		return
	}

	var req logRequest
	if !bindJSON(c, &req) {
		return
	}

	s, ok := ensureStore(c)
	if !ok {
		return
	}

	entry, err := s.Replace(c.Request.Context(), id, req.toInput())
	if err != nil {
		respondStoreError(c, "Failed to update log", err)
		return
	}
	util.LogEventUpdated(middleware.GetRequestID(c), entry)

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Log updated",
		Data: entry,
	})
}

// UpdateLog godoc
// @Summary      Update a security event
// @Description  Change some fields of a security event. id, timestamp and location are read-only.
// @Tags         Log
// @Accept       json
// @Produce      json
// @Param        id path int true "Log ID"
// @Param        request body patchLogRequest true "Fields to change"
// @Success      200 {object} util.APIResponse{data=model.Log} "Log updated"
// @Failure      400 {object} util.APIResponse{data=util.ValidationErrorData} "Invalid request"
// @Failure      404 {object} util.APIResponse "Log not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /logs/{id} [patch]
func UpdateLog(c *gin.Context) {
	id, ok := getIDParam(c)
	if !ok {
		return
	}

	var req patchLogRequest
	if !bindJSON(c, &req) {
		return
	}

	s, ok := ensureStore(c)
	if !ok {
		return
	}

	entry, err := s.Update(c.Request.Context(), id, req.toPatch())
	if err != nil {
		respondStoreError(c, "Failed to update log", err)
		return
	}
	util.LogEventUpdated(middleware.GetRequestID(c), entry)

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Log updated",
		Data: entry,
	})
}

// DeleteLog godoc
// @Summary      Delete a security event
// @Tags         Log
// @Produce      json
// @Param        id path int true "Log ID"
// @Success      200 {object} util.APIResponse "Log deleted"
// @Failure      404 {object} util.APIResponse "Log not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /logs/{id} [delete]
func DeleteLog(c *gin.Context) {
	id, ok := getIDParam(c)
	if !ok {
		return
	}

	s, ok := ensureStore(c)
	if !ok {
		return
	}

	if err := s.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, "Failed to delete log", err)
		return
	}
	util.LogEventDeleted(middleware.GetRequestID(c), id)

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Log deleted",
		Data: nil,
	})
}
