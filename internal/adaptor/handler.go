package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"realty-backend/internal/dto/request"
	"realty-backend/internal/usecase"
	"realty-backend/pkg/apperror"
	"realty-backend/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth           *AuthHandler
	Admin          *AdminHandler
	City           *CityHandler
	Project        *ProjectHandler
	Tower          *TowerHandler
	Flat           *FlatHandler
	ProjectImage   *ProjectImageHandler
	ProjectAmenity *AmenityHandler
	TowerAmenity   *AmenityHandler
	Client         *ClientHandler
	Review         *ReviewHandler
	Blog           *BlogHandler
	Contact        *ContactHandler
	Achievement    *AchievementHandler
	Enquiry        *EnquiryHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:           NewAuthHandler(service.Auth, log),
		Admin:          NewAdminHandler(service.Admin, service.Lead, log),
		City:           NewCityHandler(service.City, log),
		Project:        NewProjectHandler(service.Project, log),
		Tower:          NewTowerHandler(service.Tower, log),
		Flat:           NewFlatHandler(service.Flat, log),
		ProjectImage:   NewProjectImageHandler(service.ProjectImage, log),
		ProjectAmenity: NewAmenityHandler(service.ProjectAmenity, "project", log),
		TowerAmenity:   NewAmenityHandler(service.TowerAmenity, "tower", log),
		Client:         NewClientHandler(service.Client, log),
		Review:         NewReviewHandler(service.Review, log),
		Blog:           NewBlogHandler(service.Blog, log),
		Contact:        NewContactHandler(service.Contact, log),
		Achievement:    NewAchievementHandler(service.Achievement, log),
		Enquiry:        NewEnquiryHandler(service.Enquiry, log),
	}
}

const maxBodyBytes = 1 << 20

// decodeJSON reads the request body into dst. Writes a 400 and returns false
// on malformed input.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			utils.ResponseError(w, apperror.MissingFields("Request body is required"))
			return false
		}
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}
	return true
}

// handleServiceError writes the typed error. Expected failures are logged
// at Warn, everything else at Error.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	appErr, ok := apperror.As(err)
	if !ok {
		appErr = apperror.Internal("Failed to "+operation, err)
	}

	if appErr.Kind == apperror.KindInternal {
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
	} else {
		log.Warn(operation+" failed",
			zap.String("code", appErr.Code),
			zap.String("reason", appErr.Message),
		)
	}
	utils.ResponseError(w, appErr)
}

// pageRequest reads page/per_page from the query string.
func pageRequest(r *http.Request) *request.PaginatedRequest {
	q := r.URL.Query()
	return request.NewPaginatedRequest(
		utils.ParseInt(q.Get("page"), 1),
		utils.ParseInt(q.Get("per_page"), request.DefaultPerPage),
	)
}

// queryString returns a trimmed query value, or nil when absent.
func queryString(r *http.Request, key string) *string {
	return utils.StringPtr(r.URL.Query().Get(key))
}

func isStaff(r *http.Request) bool {
	return utils.IsStaffRequest(r.Context())
}
