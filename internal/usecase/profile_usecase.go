package usecase

import (
	"context"

	"clinic/internal/domain/entity"
)

// ProfileUsecase defines the patient profile view.
type ProfileUsecase interface {
	// GetProfile groups the patient's appointments by status and lists their reviews.
	GetProfile(ctx context.Context, patientID string) (*entity.PatientProfile, error)
}
