package feedback

import "context"

// Service defines the application operations over feedback.
type Service interface {
	// Submit scores the text for sentiment, assigns an ID and timestamp,
	// validates the entity and persists it.
	Submit(ctx context.Context, menteeProfileID, mentorProfileID, submittedBy, text string) (*Feedback, error)

	// List retrieves feedback matching the query filters.
	List(ctx context.Context, query *Query) ([]*Feedback, error)

	// GetByID retrieves a single feedback entry.
	GetByID(ctx context.Context, id string) (*Feedback, error)

	// DeleteByID removes a feedback entry permanently.
	DeleteByID(ctx context.Context, id string) error
}

// Repository defines the persistence operations for feedback.
type Repository interface {
	Create(ctx context.Context, fb *Feedback) error
	List(ctx context.Context, query *Query) ([]*Feedback, error)
	GetByID(ctx context.Context, id string) (*Feedback, error)
	DeleteByID(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// Analyzer scores free text for sentiment.
type Analyzer interface {
	Score(text string) (Sentiment, error)
}
