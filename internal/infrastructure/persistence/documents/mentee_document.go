package documents

import (
	"time"

	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/profiles"
)

// MenteeCollection is the MongoDB collection name for mentees.
const MenteeCollection = "Mentees"

// MenteeDocument is the BSON document model for mentees.
type MenteeDocument struct {
	ProfileID             string    `bson:"profile_id"`
	DateTimeCreated       time.Time `bson:"date_time_created"`
	FirstName             string    `bson:"first_name"`
	LastName              string    `bson:"last_name"`
	Email                 string    `bson:"email"`
	City                  string    `bson:"city"`
	State                 string    `bson:"state,omitempty"`
	Country               string    `bson:"country"`
	FormerlyIncarcerated  bool      `bson:"formerly_incarcerated"`
	UnderrepresentedGroup bool      `bson:"underrepresented_group"`
	LowIncome             bool      `bson:"low_income"`
	Convictions           []string  `bson:"list_convictions,omitempty"`
	Subject               string    `bson:"subject"`
	ExperienceLevel       string    `bson:"experience_level"`
	JobHelp               bool      `bson:"job_help"`
	IndustryKnowledge     bool      `bson:"industry_knowledge"`
	PairProgramming       bool      `bson:"pair_programming"`
	OtherInfo             string    `bson:"other_info,omitempty"`
}

// ToDomain converts the BSON document to a domain entity
func (d *MenteeDocument) ToDomain() *profiles.Mentee {
	return &profiles.Mentee{
		ProfileID:             d.ProfileID,
		DateTimeCreated:       d.DateTimeCreated,
		FirstName:             d.FirstName,
		LastName:              d.LastName,
		Email:                 d.Email,
		City:                  d.City,
		State:                 d.State,
		Country:               d.Country,
		FormerlyIncarcerated:  d.FormerlyIncarcerated,
		UnderrepresentedGroup: d.UnderrepresentedGroup,
		LowIncome:             d.LowIncome,
		Convictions:           d.Convictions,
		Subject:               d.Subject,
		ExperienceLevel:       d.ExperienceLevel,
		JobHelp:               d.JobHelp,
		IndustryKnowledge:     d.IndustryKnowledge,
		PairProgramming:       d.PairProgramming,
		OtherInfo:             d.OtherInfo,
	}
}

// FromDomain converts a domain entity to the BSON document
func (d *MenteeDocument) FromDomain(m *profiles.Mentee) {
	d.ProfileID = m.ProfileID
	d.DateTimeCreated = m.DateTimeCreated
	d.FirstName = m.FirstName
	d.LastName = m.LastName
	d.Email = m.Email
	d.City = m.City
	d.State = m.State
	d.Country = m.Country
	d.FormerlyIncarcerated = m.FormerlyIncarcerated
	d.UnderrepresentedGroup = m.UnderrepresentedGroup
	d.LowIncome = m.LowIncome
	d.Convictions = m.Convictions
	d.Subject = m.Subject
	d.ExperienceLevel = m.ExperienceLevel
	d.JobHelp = m.JobHelp
	d.IndustryKnowledge = m.IndustryKnowledge
	d.PairProgramming = m.PairProgramming
	d.OtherInfo = m.OtherInfo
}
