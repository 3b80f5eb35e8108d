package profiles

import "context"

// MenteeService defines the application operations over mentee profiles.
type MenteeService interface {
	// Register assigns a profile ID and creation timestamp, validates the
	// entity and persists it.
	Register(ctx context.Context, mentee *Mentee) (*Mentee, error)

	// List retrieves mentees matching the query filters.
	List(ctx context.Context, query *MenteeQuery) ([]*Mentee, error)

	// GetByProfileID retrieves a single mentee by profile ID.
	GetByProfileID(ctx context.Context, profileID string) (*Mentee, error)

	// UpdateByProfileID overwrites the stored mentee fields.
	UpdateByProfileID(ctx context.Context, mentee *Mentee) error

	// DeleteByProfileID removes a mentee permanently.
	DeleteByProfileID(ctx context.Context, profileID string) error

	// Search returns mentees loosely matching the term, best match first.
	Search(ctx context.Context, term string, limit int) ([]*Mentee, error)
}

// MentorService defines the application operations over mentor profiles.
type MentorService interface {
	Register(ctx context.Context, mentor *Mentor) (*Mentor, error)
	List(ctx context.Context, query *MentorQuery) ([]*Mentor, error)
	GetByProfileID(ctx context.Context, profileID string) (*Mentor, error)
	UpdateByProfileID(ctx context.Context, mentor *Mentor) error
	DeleteByProfileID(ctx context.Context, profileID string) error
	Search(ctx context.Context, term string, limit int) ([]*Mentor, error)
}

// AidEstimationService reports the likelihood that a mentee will need
// financial aid, as a probability in [0, 1].
type AidEstimationService interface {
	Estimate(ctx context.Context, menteeProfileID string) (float64, error)
}

// MenteeRepository defines the persistence operations for mentees.
type MenteeRepository interface {
	// Create adds a new mentee document.
	Create(ctx context.Context, mentee *Mentee) error
	// List returns mentees matching the query filters.
	List(ctx context.Context, query *MenteeQuery) ([]*Mentee, error)
	// GetByProfileID retrieves a mentee by profile ID.
	GetByProfileID(ctx context.Context, profileID string) (*Mentee, error)
	// UpdateByProfileID replaces the stored document for the mentee.
	UpdateByProfileID(ctx context.Context, mentee *Mentee) error
	// DeleteByProfileID deletes all documents for the profile ID.
	DeleteByProfileID(ctx context.Context, profileID string) error
	// Search performs a relevance-ordered text search.
	Search(ctx context.Context, term string, limit int) ([]*Mentee, error)
	// Count returns the number of mentee documents.
	Count(ctx context.Context) (int64, error)
}

// MentorRepository defines the persistence operations for mentors.
type MentorRepository interface {
	Create(ctx context.Context, mentor *Mentor) error
	List(ctx context.Context, query *MentorQuery) ([]*Mentor, error)
	GetByProfileID(ctx context.Context, profileID string) (*Mentor, error)
	UpdateByProfileID(ctx context.Context, mentor *Mentor) error
	DeleteByProfileID(ctx context.Context, profileID string) error
	Search(ctx context.Context, term string, limit int) ([]*Mentor, error)
	Count(ctx context.Context) (int64, error)
}
