package handlers

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler       *AuthHandler
	CategoryHandler   *CategoryHandler
	ProjectHandler    *ProjectHandler
	SkillHandler      *SkillHandler
	EducationHandler  *EducationHandler
	ExperienceHandler *ExperienceHandler
	CvHandler         *CvHandler
	ContactHandler    *ContactHandler
	ImageHandler      *ImageHandler
}
