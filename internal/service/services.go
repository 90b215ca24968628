package service

import (
	"github.com/gostays/backend/internal/lib/job"
	"github.com/gostays/backend/internal/repository"
	"github.com/gostays/backend/internal/server"
)

// Services is the container for all business-logic services.
type Services struct {
	Job         *job.JobService
	Enquiries   *EnquiryService
	Users       *UserService
	Properties  *PropertyService
	Geography   *GeographyService
	Training    *TrainingService
	Issues      *IssueService
	Experiences *ExperienceService
}

// NewService constructs the service container.
func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Job:         s.Job,
		Enquiries:   NewEnquiryService(s, repos),
		Users:       NewUserService(s, repos),
		Properties:  NewPropertyService(s, repos),
		Geography:   NewGeographyService(s, repos),
		Training:    NewTrainingService(s, repos),
		Issues:      NewIssueService(s, repos),
		Experiences: NewExperienceService(s, repos),
	}, nil
}

// putOpt sets values[key] to *v when v is non-nil. Services use it to
// build partial-update maps from optional input fields.
func putOpt[T any](values map[string]any, key string, v *T) {
	if v != nil {
		values[key] = *v
	}
}
