package services

import (
	"github.com/awfaabdulkader/interior-architect-backend/internal/email"
	"github.com/awfaabdulkader/interior-architect-backend/internal/storage"
)

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService       AuthService
	CategoryService   CategoryService
	ProjectService    ProjectService
	SkillService      SkillService
	EducationService  EducationService
	ExperienceService ExperienceService
	CvService         CvService
	ContactService    ContactService
	EmailService      email.Provider
	Storage           storage.Storage
}
