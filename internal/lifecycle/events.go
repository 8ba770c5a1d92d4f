package lifecycle

// Event describes the outcome of a transition. Transitions never call
// notification code themselves; callers translate events into
// notifications.
type Event string

const (
	// EventNone means the transition did not commit: another writer got
	// there first and its outcome stands.
	EventNone Event = ""

	EventSubmitted        Event = "submitted"
	EventApproved         Event = "approved"
	EventScheduled        Event = "scheduled"
	EventRejected         Event = "rejected"
	EventChangesRequested Event = "changes_requested"
	EventReopened         Event = "reopened"
	EventPublished        Event = "published"
	EventRetryPending     Event = "retry_pending"
	EventFailed           Event = "failed"
)
