package documents

import (
	"time"

	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/feedback"
)

// FeedbackCollection is the MongoDB collection name for feedback.
const FeedbackCollection = "Feedback"

// FeedbackDocument is the BSON document model for mentorship feedback.
type FeedbackDocument struct {
	ID              string            `bson:"feedback_id"`
	DateTimeCreated time.Time         `bson:"date_time_created"`
	MenteeProfileID string            `bson:"mentee_profile_id"`
	MentorProfileID string            `bson:"mentor_profile_id"`
	SubmittedBy     string            `bson:"submitted_by,omitempty"`
	Text            string            `bson:"text"`
	Sentiment       SentimentDocument `bson:"sentiment"`
}

// SentimentDocument is the embedded sentiment score.
type SentimentDocument struct {
	Compound float64 `bson:"compound"`
	Label    string  `bson:"label"`
}

// ToDomain converts the BSON document to a domain entity
func (d *FeedbackDocument) ToDomain() *feedback.Feedback {
	return &feedback.Feedback{
		ID:              d.ID,
		DateTimeCreated: d.DateTimeCreated,
		MenteeProfileID: d.MenteeProfileID,
		MentorProfileID: d.MentorProfileID,
		SubmittedBy:     d.SubmittedBy,
		Text:            d.Text,
		Sentiment: feedback.Sentiment{
			Compound: d.Sentiment.Compound,
			Label:    d.Sentiment.Label,
		},
	}
}

// FromDomain converts a domain entity to the BSON document
func (d *FeedbackDocument) FromDomain(f *feedback.Feedback) {
	d.ID = f.ID
	d.DateTimeCreated = f.DateTimeCreated
	d.MenteeProfileID = f.MenteeProfileID
	d.MentorProfileID = f.MentorProfileID
	d.SubmittedBy = f.SubmittedBy
	d.Text = f.Text
	d.Sentiment = SentimentDocument{
		Compound: f.Sentiment.Compound,
		Label:    f.Sentiment.Label,
	}
}
