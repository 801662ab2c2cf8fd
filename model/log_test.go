package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseEventType(t *testing.T) {
	for _, e := range EventTypes {
		got, err := ParseEventType(string(e))
		assert.NoError(t, err)
		assert.Equal(t, e, got)
	}

	for _, bad := range []string{"", "login_fail", "LOGIN_FAILURE", "UNKNOWN", " MALWARE"} {
		_, err := ParseEventType(bad)
		assert.Error(t, err, "expected %q to be rejected", bad)
	}
}

func TestParseSeverity(t *testing.T) {
	for _, s := range Severities {
		got, err := ParseSeverity(string(s))
		assert.NoError(t, err)
		assert.Equal(t, s, got)
	}

	for _, bad := range []string{"", "low", "INFO", "SEVERE"} {
		_, err := ParseSeverity(bad)
		assert.Error(t, err, "expected %q to be rejected", bad)
	}
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Login Failed", EventLoginFail.Label())
	assert.Equal(t, "Port Scan Detected", EventPortScan.Label())
	assert.Equal(t, "BOGUS", EventType("BOGUS").Label())
	assert.Equal(t, "Critical", SeverityCritical.Label())
	assert.Equal(t, "BOGUS", Severity("BOGUS").Label())
}

func TestLogString(t *testing.T) {
	l := Log{EventType: EventBruteForce, SourceIP: "10.0.0.1", Severity: SeverityHigh}
	assert.Equal(t, "[BRUTE_FORCE] 10.0.0.1 - HIGH", l.String())
}

func TestLogModel_CreateAndRead(t *testing.T) {
	db := setupTestDB(t, "log", &Log{})

	entry := Log{
		Timestamp:   time.Now().UTC(),
		EventType:   EventMalware,
		SourceIP:    "203.0.113.9",
		Severity:    SeverityCritical,
		Description: "Trojan signature matched on upload",
	}
	assert.NoError(t, db.Create(&entry).Error)
	assert.NotZero(t, entry.ID)

	var found Log
	assert.NoError(t, db.First(&found, entry.ID).Error)
	assert.Equal(t, EventMalware, found.EventType)
	assert.Equal(t, SeverityCritical, found.Severity)
	assert.Equal(t, "203.0.113.9", found.SourceIP)
	assert.Equal(t, "", found.Location)
}

func TestLogModel_IDsNotReused(t *testing.T) {
	db := setupTestDB(t, "log_ids", &Log{})

	first := Log{Timestamp: time.Now().UTC(), EventType: EventPortScan, SourceIP: "10.0.0.1", Severity: SeverityLow, Description: "a"}
	assert.NoError(t, db.Create(&first).Error)
	assert.NoError(t, db.Delete(&Log{}, first.ID).Error)

	second := Log{Timestamp: time.Now().UTC(), EventType: EventPortScan, SourceIP: "10.0.0.1", Severity: SeverityLow, Description: "b"}
	assert.NoError(t, db.Create(&second).Error)
	assert.Greater(t, second.ID, first.ID)
}
