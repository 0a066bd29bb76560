package domain

import "context"

// UserRepository defines the persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindAll(ctx context.Context) ([]User, error)
}

// JobRepository defines the persistence operations for job postings.
// Find methods never return a nil slice; no matches is an empty slice.
type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	FindAllWithPoster(ctx context.Context) ([]Job, error)
	FindByPoster(ctx context.Context, posterID int) ([]Job, error)
}

// ListingCache holds a single cached snapshot of the full job listing.
// The key and TTL live behind this interface so the middleware that reads
// the snapshot and the handler that writes it cannot drift apart.
type ListingCache interface {
	// GetListing returns the cached listing payload. found is false when the
	// entry is absent or expired.
	GetListing(ctx context.Context) (payload []byte, found bool, err error)
	// PutListing stores payload under the listing key with the fixed TTL.
	PutListing(ctx context.Context, payload []byte) error
}
