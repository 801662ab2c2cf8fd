package model

import (
	"fmt"
	"time"
)

// EventType is the kind of security event a Log records.
type EventType string

const (
	EventLoginFail    EventType = "LOGIN_FAIL"
	EventLoginSuccess EventType = "LOGIN_SUCCESS"
	EventBruteForce   EventType = "BRUTE_FORCE"
	EventPortScan     EventType = "PORT_SCAN"
	EventMalware      EventType = "MALWARE"
)

// EventTypes lists every accepted event type in declaration order.
var EventTypes = []EventType{
	EventLoginFail,
	EventLoginSuccess,
	EventBruteForce,
	EventPortScan,
	EventMalware,
}

var eventTypeLabels = map[EventType]string{
	EventLoginFail:    "Login Failed",
	EventLoginSuccess: "Login Success",
	EventBruteForce:   "Brute Force Attempt",
	EventPortScan:     "Port Scan Detected",
	EventMalware:      "Malware Alert",
}

// Valid reports whether e is one of the enumerated event types.
func (e EventType) Valid() bool {
	_, ok := eventTypeLabels[e]
	return ok
}

// Label returns the human readable name, or the raw value when unknown.
func (e EventType) Label() string {
	if l, ok := eventTypeLabels[e]; ok {
		return l
	}
	return string(e)
}

// ParseEventType converts s to an EventType. Matching is exact.
func ParseEventType(s string) (EventType, error) {
	e := EventType(s)
	if !e.Valid() {
		return "", fmt.Errorf("unknown event type %q", s)
	}
	return e, nil
}

// Severity is the urgency label attached to a Log.
type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// Severities lists every accepted severity from lowest to highest.
var Severities = []Severity{
	SeverityLow,
	SeverityMedium,
	SeverityHigh,
	SeverityCritical,
}

var severityLabels = map[Severity]string{
	SeverityLow:      "Low",
	SeverityMedium:   "Medium",
	SeverityHigh:     "High",
	SeverityCritical: "Critical",
}

// Valid reports whether s is one of the enumerated severities.
func (s Severity) Valid() bool {
	_, ok := severityLabels[s]
	return ok
}

// Label returns the human readable name, or the raw value when unknown.
func (s Severity) Label() string {
	if l, ok := severityLabels[s]; ok {
		return l
	}
	return string(s)
}

// ParseSeverity converts s to a Severity. Matching is exact.
func ParseSeverity(s string) (Severity, error) {
	sev := Severity(s)
	if !sev.Valid() {
		return "", fmt.Errorf("unknown severity %q", s)
	}
	return sev, nil
}

// Log is one observed security event.
type Log struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Timestamp   time.Time `json:"timestamp" gorm:"column:timestamp;not null;index"`
	EventType   EventType `json:"event_type" gorm:"column:event_type;type:varchar(50);not null;index"`
	SourceIP    string    `json:"source_ip" gorm:"column:source_ip;type:varchar(45);not null"`
	Severity    Severity  `json:"severity" gorm:"column:severity;type:varchar(20);not null"`
	Description string    `json:"description" gorm:"column:description;type:text;not null"`
	// Location stores "City/Country" resolved from SourceIP when a GeoIP database is loaded.
	Location string `json:"location" gorm:"column:location;type:varchar(255)"`
}

// TableName pins the table name to "logs".
func (Log) TableName() string { return "logs" }

// String renders the log as "[EVENT_TYPE] source_ip - SEVERITY".
func (l Log) String() string {
	return fmt.Sprintf("[%s] %s - %s", l.EventType, l.SourceIP, l.Severity)
}
