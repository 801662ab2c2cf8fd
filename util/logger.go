package util

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/ariebrainware/security-event-log/model"
)

// EntryKind classifies an application log line.
type EntryKind string

const (
	KindAccess            EntryKind = "ACCESS"
	KindLogCreated        EntryKind = "LOG_CREATED"
	KindLogUpdated        EntryKind = "LOG_UPDATED"
	KindLogDeleted        EntryKind = "LOG_DELETED"
	KindRateLimitExceeded EntryKind = "RATE_LIMIT_EXCEEDED"
	KindStoreFailure      EntryKind = "STORE_FAILURE"
)

// Entry is one application log line.
type Entry struct {
	Kind      EntryKind
	RequestID string
	IP        string
	UserAgent string
	Message   string
	Details   map[string]interface{}
}

var appLogger *log.Logger

func init() {
	appLogger = log.New(os.Stdout, "[SECLOG] ", log.LstdFlags|log.Lmsgprefix)
}

// sanitizeLogValue removes newlines and other characters that could break log parsing
func sanitizeLogValue(value string) string {
	value = strings.ReplaceAll(value, "\n", " ")
	value = strings.ReplaceAll(value, "\r", " ")
	value = strings.ReplaceAll(value, "\t", " ")
	// Truncate very long values to prevent log flooding
	if len(value) > 200 {
		value = value[:200] + "..."
	}
	return value
}

// LogEntry writes e as a single key=value line.
func LogEntry(e Entry) {
	msg := fmt.Sprintf("Kind=%s RequestID=%s IP=%s UserAgent=%s Message=%s",
		sanitizeLogValue(string(e.Kind)),
		sanitizeLogValue(e.RequestID),
		sanitizeLogValue(e.IP),
		sanitizeLogValue(e.UserAgent),
		sanitizeLogValue(e.Message),
	)

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			msg += fmt.Sprintf(" %s=%s", sanitizeLogValue(k), sanitizeLogValue(fmt.Sprint(e.Details[k])))
		}
	}

	appLogger.Println(msg)
}

// AccessParams describes a served HTTP request.
type AccessParams struct {
	RequestID string
	Method    string
	Path      string
	Status    int
	Duration  time.Duration
	IP        string
	UserAgent string
}

// LogAccess logs one served HTTP request.
func LogAccess(p AccessParams) {
	LogEntry(Entry{
		Kind:      KindAccess,
		RequestID: p.RequestID,
		IP:        p.IP,
		UserAgent: p.UserAgent,
		Message:   fmt.Sprintf("%s %s -> %d", p.Method, p.Path, p.Status),
		Details: map[string]interface{}{
			"duration_ms": p.Duration.Milliseconds(),
		},
	})
}

// LogEventRecorded logs a newly stored security event.
func LogEventRecorded(requestID string, l model.Log) {
	LogEntry(Entry{
		Kind:      KindLogCreated,
		RequestID: requestID,
		IP:        l.SourceIP,
		Message:   l.String(),
		Details: map[string]interface{}{
			"id": l.ID,
		},
	})
}

// LogEventUpdated logs a change to a stored security event.
func LogEventUpdated(requestID string, l model.Log) {
	LogEntry(Entry{
		Kind:      KindLogUpdated,
		RequestID: requestID,
		IP:        l.SourceIP,
		Message:   l.String(),
		Details: map[string]interface{}{
			"id": l.ID,
		},
	})
}

// LogEventDeleted logs the removal of a security event.
func LogEventDeleted(requestID string, id uint) {
	LogEntry(Entry{
		Kind:      KindLogDeleted,
		RequestID: requestID,
		Message:   fmt.Sprintf("log %d deleted", id),
	})
}

// LogRateLimitExceeded logs when rate limit is exceeded
func LogRateLimitExceeded(ip, endpoint string) {
	LogEntry(Entry{
		Kind:    KindRateLimitExceeded,
		IP:      ip,
		Message: fmt.Sprintf("Rate limit exceeded for endpoint: %s", endpoint),
	})
}

// LogStoreFailure logs a database failure surfaced to a caller.
func LogStoreFailure(requestID string, err error) {
	LogEntry(Entry{
		Kind:      KindStoreFailure,
		RequestID: requestID,
		Message:   err.Error(),
	})
}

// Logf writes a free-form line through the application logger.
func Logf(format string, args ...interface{}) {
	appLogger.Printf(format, args...)
}

// GetLoggerForTest returns the current application logger for testing purposes
func GetLoggerForTest() *log.Logger {
	return appLogger
}

// SetLoggerForTest sets a custom logger for testing purposes
func SetLoggerForTest(logger *log.Logger) {
	appLogger = logger
}
