package handler

import (
	"github.com/gostays/backend/internal/server"
	"github.com/gostays/backend/internal/service"
)

// Handlers groups all HTTP handlers so the router receives one object.
type Handlers struct {
	Health      *HealthHandler
	OpenAPI     *OpenAPIHandler
	Enquiries   *EnquiryHandler
	Users       *UserHandler
	Properties  *PropertyHandler
	Geography   *GeographyHandler
	Training    *TrainingHandler
	Issues      *IssueHandler
	Experiences *ExperienceHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:      NewHealthHandler(s),
		OpenAPI:     NewOpenAPIHandler(s),
		Enquiries:   NewEnquiryHandler(s, services),
		Users:       NewUserHandler(s, services),
		Properties:  NewPropertyHandler(s, services),
		Geography:   NewGeographyHandler(s, services),
		Training:    NewTrainingHandler(s, services),
		Issues:      NewIssueHandler(s, services),
		Experiences: NewExperienceHandler(s, services),
	}
}
