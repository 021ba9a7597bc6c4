package metrics

import "time"

// Result constants for metric labels.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Entry-point name constants, matching the eight validator functions
// plus refresh_read_only (§4.4).
const (
	EntryPointPreCreate       = "pre_create"
	EntryPointPostCreate      = "post_create"
	EntryPointPreRemove       = "pre_remove"
	EntryPointPostRemove      = "post_remove"
	EntryPointPreSet          = "pre_set"
	EntryPointPostSet         = "post_set"
	EntryPointPreGet          = "pre_get"
	EntryPointPostGet         = "post_get"
	EntryPointRefreshReadOnly = "refresh_read_only"
)

// Notification name constants for the virtual switch driver.
const (
	NotificationFdbEvent = "fdb_event"
)

// Timer measures elapsed wall-clock time for a single call.
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer starting from now.
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// ObserveDuration returns the duration since the timer was created.
func (t *Timer) ObserveDuration() time.Duration {
	return time.Since(t.start)
}

// RecordValidatorCall records one validator entry-point invocation.
func RecordValidatorCall(entryPoint, objectType string, ok bool, duration time.Duration) {
	result := ResultSuccess
	if !ok {
		result = ResultFailure
	}
	ValidatorCallDuration.WithLabelValues(entryPoint, objectType).Observe(duration.Seconds())
	ValidatorCallTotal.WithLabelValues(entryPoint, objectType, result).Inc()
}

// RecordRefCountViolation records a remove call rejected because the
// object was still referenced.
func RecordRefCountViolation(objectType string) {
	DBRefCountViolationTotal.WithLabelValues(objectType).Inc()
}

// SetObjectCount updates the live object-count gauge for an object type.
func SetObjectCount(objectType string, count int) {
	DBObjectCount.WithLabelValues(objectType).Set(float64(count))
}

// RecordNotification records a notification dispatched by the virtual
// switch driver.
func RecordNotification(notification, eventType string) {
	DriverNotificationTotal.WithLabelValues(notification, eventType).Inc()
}
