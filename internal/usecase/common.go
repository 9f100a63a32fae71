package usecase

import (
	"errors"
	"fmt"
	"time"

	"realty-backend/internal/data/repository"
	"realty-backend/pkg/apperror"
	"realty-backend/pkg/database"
	"realty-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Clock returns the current time. Tests swap it for a fixed one.
type Clock func() time.Time

// validateRequest runs struct validation. Missing required fields map to
// MISSING_FIELDS, everything else to VALIDATION_ERROR.
func validateRequest(req any) error {
	errs := utils.ValidateStruct(req)
	if len(errs) == 0 {
		return nil
	}
	if utils.HasRequiredError(errs) {
		e := apperror.MissingFields("Missing required fields")
		e.Fields = errs
		return e
	}
	return apperror.ValidationFields(errs)
}

func parseID(raw, what string) (uuid.UUID, error) {
	id, err := utils.ParseUUID(raw)
	if err != nil {
		return uuid.Nil, apperror.Validation(apperror.CodeValidation, fmt.Sprintf("Invalid %s id", what))
	}
	return id, nil
}

func parseOptionalID(raw *string, what string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := parseID(*raw, what)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseDate(raw *string, field string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil, apperror.ValidationFields(map[string]string{field: "Must be a date in YYYY-MM-DD format"})
	}
	return &t, nil
}

func notFound(what string) *apperror.Error {
	return apperror.NotFound(apperror.CodeNotFound, what+" not found")
}

// storeError translates repository failures into typed errors and logs the
// unexpected ones.
func storeError(log *zap.Logger, op, what string, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return notFound(what)
	case database.IsUniqueViolation(err):
		return apperror.Conflict(what+" already exists", err)
	case database.IsForeignKeyViolation(err):
		return apperror.Validation(apperror.CodeValidation, "Referenced record does not exist")
	}
	log.Error("Failed to "+op, zap.Error(err))
	return apperror.Internal("Failed to "+op, err)
}

func setIf[T any](dst *T, src *T) bool {
	if src == nil {
		return false
	}
	*dst = *src
	return true
}
