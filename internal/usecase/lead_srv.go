package usecase

import (
	"context"
	"time"

	"realty-backend/internal/data/entity"
	"realty-backend/internal/data/repository"
	"realty-backend/internal/dto/request"
	"realty-backend/internal/dto/response"
	"realty-backend/pkg/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LeadService is the admin view over contact form submissions.
type LeadService interface {
	Stats(ctx context.Context) (*response.LeadStatsResponse, error)
	List(ctx context.Context, period string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ContactResponse], error)
	MarkRead(ctx context.Context, leadID string) (*response.ContactResponse, error)
}

type leadService struct {
	repo repository.ContactRepository
	loc  *time.Location
	now  Clock
	log  *zap.Logger
}

func NewLeadService(repo repository.ContactRepository, loc *time.Location, now Clock, log *zap.Logger) LeadService {
	if loc == nil {
		loc = time.UTC
	}
	return &leadService{
		repo: repo,
		loc:  loc,
		now:  now,
		log:  log.With(zap.String("service", "lead")),
	}
}

// Windows computes period boundaries relative to midnight in loc.
func Windows(now time.Time, loc *time.Location) entity.LeadWindows {
	local := now.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return entity.LeadWindows{
		TodayStart:     today,
		YesterdayStart: today.AddDate(0, 0, -1),
		WeekStart:      today.AddDate(0, 0, -7),
		MonthStart:     today.AddDate(0, 0, -30),
	}
}

// PeriodRange maps a period name onto a half-open time range.
func PeriodRange(period entity.LeadPeriod, w entity.LeadWindows) (entity.TimeRange, error) {
	switch period {
	case "", entity.PeriodAll:
		return entity.TimeRange{}, nil
	case entity.PeriodToday:
		tomorrow := w.TomorrowStart()
		return entity.TimeRange{From: &w.TodayStart, To: &tomorrow}, nil
	case entity.PeriodYesterday:
		return entity.TimeRange{From: &w.YesterdayStart, To: &w.TodayStart}, nil
	case entity.PeriodWeek:
		return entity.TimeRange{From: &w.WeekStart}, nil
	case entity.PeriodMonth:
		return entity.TimeRange{From: &w.MonthStart}, nil
	}
	return entity.TimeRange{}, apperror.Validation(apperror.CodeValidation, "period must be one of: today, yesterday, week, month, all")
}

func (s *leadService) Stats(ctx context.Context) (*response.LeadStatsResponse, error) {
	stats, err := s.repo.Stats(ctx, Windows(s.now(), s.loc))
	if err != nil {
		s.log.Error("Failed to compute lead stats", zap.Error(err))
		return nil, apperror.Internal("Failed to get lead stats", err)
	}
	resp := response.LeadStatsToResponse(stats)
	return &resp, nil
}

func (s *leadService) List(ctx context.Context, period string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ContactResponse], error) {
	window, err := PeriodRange(entity.LeadPeriod(period), Windows(s.now(), s.loc))
	if err != nil {
		return nil, err
	}

	leads, err := s.repo.FindAll(ctx, window, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list leads", zap.Error(err), zap.String("period", period))
		return nil, apperror.Internal("Failed to list leads", err)
	}
	total, err := s.repo.Count(ctx, window)
	if err != nil {
		s.log.Error("Failed to count leads", zap.Error(err), zap.String("period", period))
		return nil, apperror.Internal("Failed to list leads", err)
	}

	return response.NewPaginatedResponse(response.MapSlice(leads, response.ContactToResponse), req.Page, req.Limit(), total), nil
}

func (s *leadService) MarkRead(ctx context.Context, leadID string) (*response.ContactResponse, error) {
	id, err := uuid.Parse(leadID)
	if err != nil {
		return nil, apperror.NotFound(apperror.CodeNotFound, "Lead not found")
	}

	found, err := s.repo.MarkRead(ctx, id)
	if err != nil {
		s.log.Error("Failed to mark lead read", zap.Error(err), zap.String("lead_id", leadID))
		return nil, apperror.Internal("Failed to mark lead as read", err)
	}
	if !found {
		return nil, apperror.NotFound(apperror.CodeNotFound, "Lead not found")
	}

	lead, err := s.repo.FindByID(ctx, id)
	if err != nil || lead == nil {
		s.log.Error("Failed to reload lead", zap.Error(err), zap.String("lead_id", leadID))
		return nil, apperror.Internal("Failed to mark lead as read", err)
	}

	s.log.Info("Lead marked read", zap.String("lead_id", leadID))
	resp := response.ContactToResponse(lead)
	return &resp, nil
}
