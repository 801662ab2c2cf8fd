package store

import (
	"net/netip"
	"strings"

	"github.com/ariebrainware/security-event-log/model"
)

const (
	msgRequired = "this field is required"
	msgReadOnly = "this field is read-only"
	msgNull     = "this field may not be null"
)

// LogInput carries every writable field of a Log. Used by Create and Replace.
type LogInput struct {
	EventType   string
	SourceIP    string
	Severity    string
	Description string

	// ReadOnly names system-assigned fields the caller tried to set. Any entry fails validation.
	ReadOnly []string
}

// LogPatch carries a partial update. Nil fields are left untouched.
type LogPatch struct {
	EventType   *string
	SourceIP    *string
	Severity    *string
	Description *string

	// ReadOnly has the same meaning as in LogInput.
	ReadOnly []string
	// Null names writable fields the caller explicitly set to null. Any entry fails validation.
	Null []string
}

type validFields struct {
	eventType   model.EventType
	sourceIP    string
	severity    model.Severity
	description string
}

func (in LogInput) validate() (validFields, error) {
	var (
		v    validFields
		verr ValidationError
	)
	for _, f := range in.ReadOnly {
		verr.add(f, msgReadOnly)
	}
	v.eventType = checkEventType(&verr, in.EventType)
	v.sourceIP = checkSourceIP(&verr, in.SourceIP)
	v.severity = checkSeverity(&verr, in.Severity)
	v.description = checkDescription(&verr, in.Description)
	return v, verr.orNil()
}

// validate returns the column updates for the supplied fields.
func (p LogPatch) validate() (map[string]interface{}, error) {
	var verr ValidationError
	for _, f := range p.ReadOnly {
		verr.add(f, msgReadOnly)
	}
	for _, f := range p.Null {
		verr.add(f, msgNull)
	}

	updates := make(map[string]interface{})
	if p.EventType != nil {
		updates["event_type"] = checkEventType(&verr, *p.EventType)
	}
	if p.SourceIP != nil {
		updates["source_ip"] = checkSourceIP(&verr, *p.SourceIP)
	}
	if p.Severity != nil {
		updates["severity"] = checkSeverity(&verr, *p.Severity)
	}
	if p.Description != nil {
		updates["description"] = checkDescription(&verr, *p.Description)
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}
	return updates, nil
}

func checkEventType(verr *ValidationError, s string) model.EventType {
	if s == "" {
		verr.add("event_type", msgRequired)
		return ""
	}
	e, err := model.ParseEventType(s)
	if err != nil {
		verr.add("event_type", `"`+s+`" is not a valid choice`)
		return ""
	}
	return e
}

func checkSeverity(verr *ValidationError, s string) model.Severity {
	if s == "" {
		verr.add("severity", msgRequired)
		return ""
	}
	sev, err := model.ParseSeverity(s)
	if err != nil {
		verr.add("severity", `"`+s+`" is not a valid choice`)
		return ""
	}
	return sev
}

// checkSourceIP returns the canonical textual form of an IPv4 or IPv6 address.
func checkSourceIP(verr *ValidationError, s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		verr.add("source_ip", msgRequired)
		return ""
	}
	addr, err := netip.ParseAddr(s)
	if err != nil || addr.Zone() != "" {
		verr.add("source_ip", "enter a valid IPv4 or IPv6 address")
		return ""
	}
	return addr.String()
}

// checkDescription returns s with surrounding whitespace removed.
func checkDescription(verr *ValidationError, s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		verr.add("description", msgRequired)
		return ""
	}
	return s
}
