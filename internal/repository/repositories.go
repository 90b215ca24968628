package repository

import (
	"github.com/gostays/backend/internal/server"
)

// Repositories is the container for all repository instances, wired
// once at startup and injected into services.
type Repositories struct {
	Enquiries        *EnquiriesRepository
	Users            *UsersRepository
	PropertyTypes    *PropertyTypesRepository
	Properties       *PropertiesRepository
	Rooms            *RoomsRepository
	Facilities       *FacilitiesRepository
	Photos           *PhotosRepository
	Locations        *LocationsRepository
	Availability     *AvailabilityRepository
	Districts        *DistrictsRepository
	GramaPanchayats  *GramaPanchayatsRepository
	TrainingModules  *TrainingModulesRepository
	TrainingContents *TrainingContentsRepository
	TrainingProgress *TrainingProgressRepository
	Issues           *IssuesRepository
	IssueActivities  *IssueActivitiesRepository
	IssueEscalations *IssueEscalationsRepository
	Experiences      *ExperiencesRepository
}

// NewRepositories constructs the repository container from the shared
// database pool on the server container.
func NewRepositories(s *server.Server) *Repositories {
	pool := s.DB.Pool

	return &Repositories{
		Enquiries:        NewEnquiriesRepository(pool),
		Users:            NewUsersRepository(pool),
		PropertyTypes:    NewPropertyTypesRepository(pool),
		Properties:       NewPropertiesRepository(pool),
		Rooms:            NewRoomsRepository(pool),
		Facilities:       NewFacilitiesRepository(pool),
		Photos:           NewPhotosRepository(pool),
		Locations:        NewLocationsRepository(pool),
		Availability:     NewAvailabilityRepository(pool),
		Districts:        NewDistrictsRepository(pool),
		GramaPanchayats:  NewGramaPanchayatsRepository(pool),
		TrainingModules:  NewTrainingModulesRepository(pool),
		TrainingContents: NewTrainingContentsRepository(pool),
		TrainingProgress: NewTrainingProgressRepository(pool),
		Issues:           NewIssuesRepository(pool),
		IssueActivities:  NewIssueActivitiesRepository(pool),
		IssueEscalations: NewIssueEscalationsRepository(pool),
		Experiences:      NewExperiencesRepository(pool),
	}
}
