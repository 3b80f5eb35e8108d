package documents

import (
	"time"

	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/profiles"
)

// MentorCollection is the MongoDB collection name for mentors.
const MentorCollection = "Mentors"

// MentorDocument is the BSON document model for mentors.
type MentorDocument struct {
	ProfileID         string    `bson:"profile_id"`
	DateTimeCreated   time.Time `bson:"date_time_created"`
	FirstName         string    `bson:"first_name"`
	LastName          string    `bson:"last_name"`
	Email             string    `bson:"email"`
	City              string    `bson:"city"`
	State             string    `bson:"state,omitempty"`
	Country           string    `bson:"country"`
	CurrentCompany    string    `bson:"current_company,omitempty"`
	CurrentPosition   string    `bson:"current_position,omitempty"`
	Subject           string    `bson:"subject"`
	ExperienceLevel   string    `bson:"experience_level"`
	JobHelp           bool      `bson:"job_help"`
	IndustryKnowledge bool      `bson:"industry_knowledge"`
	PairProgramming   bool      `bson:"pair_programming"`
	OtherInfo         string    `bson:"other_info,omitempty"`
}

// ToDomain converts the BSON document to a domain entity
func (d *MentorDocument) ToDomain() *profiles.Mentor {
	return &profiles.Mentor{
		ProfileID:         d.ProfileID,
		DateTimeCreated:   d.DateTimeCreated,
		FirstName:         d.FirstName,
		LastName:          d.LastName,
		Email:             d.Email,
		City:              d.City,
		State:             d.State,
		Country:           d.Country,
		CurrentCompany:    d.CurrentCompany,
		CurrentPosition:   d.CurrentPosition,
		Subject:           d.Subject,
		ExperienceLevel:   d.ExperienceLevel,
		JobHelp:           d.JobHelp,
		IndustryKnowledge: d.IndustryKnowledge,
		PairProgramming:   d.PairProgramming,
		OtherInfo:         d.OtherInfo,
	}
}

// FromDomain converts a domain entity to the BSON document
func (d *MentorDocument) FromDomain(m *profiles.Mentor) {
	d.ProfileID = m.ProfileID
	d.DateTimeCreated = m.DateTimeCreated
	d.FirstName = m.FirstName
	d.LastName = m.LastName
	d.Email = m.Email
	d.City = m.City
	d.State = m.State
	d.Country = m.Country
	d.CurrentCompany = m.CurrentCompany
	d.CurrentPosition = m.CurrentPosition
	d.Subject = m.Subject
	d.ExperienceLevel = m.ExperienceLevel
	d.JobHelp = m.JobHelp
	d.IndustryKnowledge = m.IndustryKnowledge
	d.PairProgramming = m.PairProgramming
	d.OtherInfo = m.OtherInfo
}
