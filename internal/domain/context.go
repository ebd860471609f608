package domain

import "context"

// Action is a deferred write, such as saving a contact draft or persisting
// an order's must-invoice flag, that can be undone if a later write in the
// same request fails.
type Action interface {
	// Execute performs the write and should honour ctx's deadline.
	Execute(ctx context.Context) error

	// Rollback undoes a successful Execute. It may receive a different
	// context than Execute did.
	Rollback(ctx context.Context) error

	// Description names the write in logs, e.g. "save draft for partner 7".
	Description() string
}

// WriteStager is how domain services queue writes on the request's unit of
// work without importing the application layer.
type WriteStager interface {
	// Stage makes entity the value later reads of key observe and queues
	// action to persist it at commit.
	Stage(key string, entity any, action Action) error

	// Execute runs action now. It is outside the commit queue and is never
	// rolled back.
	Execute(action Action) error
}
