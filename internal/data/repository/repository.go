package repository

import (
	"realty-backend/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	DB             database.PgxIface
	Identity       IdentityRepository
	OTP            OTPRepository
	Staff          StaffRepository
	City           CityRepository
	Project        ProjectRepository
	Tower          TowerRepository
	Flat           FlatRepository
	ProjectImage   ProjectImageRepository
	ProjectAmenity ProjectAmenityRepository
	TowerAmenity   TowerAmenityRepository
	Client         ClientRepository
	Review         ReviewRepository
	Blog           BlogRepository
	Contact        ContactRepository
	Achievement    AchievementRepository
	Enquiry        EnquiryRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		DB:             db,
		Identity:       NewIdentityRepository(db, log),
		OTP:            NewOTPRepository(db, log),
		Staff:          NewStaffRepository(db, log),
		City:           NewCityRepository(db, log),
		Project:        NewProjectRepository(db, log),
		Tower:          NewTowerRepository(db, log),
		Flat:           NewFlatRepository(db, log),
		ProjectImage:   NewProjectImageRepository(db, log),
		ProjectAmenity: NewProjectAmenityRepository(db, log),
		TowerAmenity:   NewTowerAmenityRepository(db, log),
		Client:         NewClientRepository(db, log),
		Review:         NewReviewRepository(db, log),
		Blog:           NewBlogRepository(db, log),
		Contact:        NewContactRepository(db, log),
		Achievement:    NewAchievementRepository(db, log),
		Enquiry:        NewEnquiryRepository(db, log),
	}
}
