package usecase

import (
	"time"

	"realty-backend/internal/data/repository"
	"realty-backend/pkg/metrics"
	"realty-backend/pkg/sms"
	"realty-backend/pkg/throttle"
	"realty-backend/pkg/token"
	"realty-backend/pkg/utils"

	"go.uber.org/zap"
)

// Deps are the collaborators shared by the auth services.
type Deps struct {
	Tokens  *token.Manager
	Sender  sms.Sender
	Limiter throttle.Limiter
	Metrics *metrics.Metrics
	Now     Clock
}

type Service struct {
	Auth           AuthService
	Admin          AdminService
	Lead           LeadService
	City           CityService
	Project        ProjectService
	Tower          TowerService
	Flat           FlatService
	ProjectImage   ProjectImageService
	ProjectAmenity AmenityService
	TowerAmenity   AmenityService
	Client         ClientService
	Review         ReviewService
	Blog           BlogService
	Contact        ContactService
	Achievement    AchievementService
	Enquiry        EnquiryService
}

func NewService(repo *repository.Repository, config *utils.Config, deps Deps, log *zap.Logger) *Service {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Limiter == nil {
		deps.Limiter = throttle.Noop{}
	}
	if deps.Sender == nil {
		deps.Sender = sms.New(config.SMS, log)
	}
	if deps.Tokens == nil {
		deps.Tokens = token.NewManager(config.JWT)
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.New()
	}
	now := deps.Now

	return &Service{
		Auth:           NewAuthService(repo, config, deps, log),
		Admin:          NewAdminService(repo.Staff, config, deps, log),
		Lead:           NewLeadService(repo.Contact, config.App.Location(), now, log),
		City:           NewCityService(repo.City, now, log),
		Project:        NewProjectService(repo, now, log),
		Tower:          NewTowerService(repo, now, log),
		Flat:           NewFlatService(repo.Flat, now, log),
		ProjectImage:   NewProjectImageService(repo.ProjectImage, now, log),
		ProjectAmenity: NewProjectAmenityService(repo.ProjectAmenity, now, log),
		TowerAmenity:   NewTowerAmenityService(repo.TowerAmenity, now, log),
		Client:         NewClientService(repo.Client, now, log),
		Review:         NewReviewService(repo.Review, now, log),
		Blog:           NewBlogService(repo.Blog, now, log),
		Contact:        NewContactService(repo.Contact, now, log),
		Achievement:    NewAchievementService(repo.Achievement, now, log),
		Enquiry:        NewEnquiryService(repo.Enquiry, now, log),
	}
}
