package outbound

import "podcast-generator/domain"

type SessionStorePort interface {
	// Get returns a copy of the session, creating an empty one for unknown ids.
	Get(id string) domain.Session
	// TryBegin marks the session busy. It fails with domain.ErrGenerationInProgress when it already is.
	TryBegin(id string) error
	// Complete stores the finished session and clears the busy flag.
	Complete(session domain.Session)
}
