package kube

import (
	"strconv"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/clock"
)

const noValue = "-"

// Ager renders relative ages against an injected clock.
type Ager struct {
	clock clock.PassiveClock
}

func NewAger(c clock.PassiveClock) Ager {
	if c == nil {
		c = clock.RealClock{}
	}
	return Ager{clock: c}
}

// timestampLayouts are the ISO 8601 forms accepted by FromString. Forms
// without a zone are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	time.DateOnly,
}

// FromString parses an ISO 8601 timestamp. Empty or unparseable input yields "-".
func (a Ager) FromString(ts string) string {
	if ts == "" {
		return noValue
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return a.Since(t)
		}
	}
	return noValue
}

// FromMeta is the path taken by object creation timestamps.
func (a Ager) FromMeta(ts metav1.Time) string {
	if ts.IsZero() {
		return noValue
	}
	return a.Since(ts.Time)
}

// Since buckets the elapsed time into minutes (<60m), hours (<48h) or days.
// Timestamps in the future count as zero elapsed.
func (a Ager) Since(t time.Time) string {
	if t.IsZero() {
		return noValue
	}
	elapsed := a.clock.Since(t)
	if elapsed < 0 {
		elapsed = 0
	}

	mins := int64(elapsed / time.Minute)
	if mins < 60 {
		return strconv.FormatInt(mins, 10) + "m"
	}
	hours := mins / 60
	if hours < 48 {
		return strconv.FormatInt(hours, 10) + "h"
	}
	return strconv.FormatInt(hours/24, 10) + "d"
}
