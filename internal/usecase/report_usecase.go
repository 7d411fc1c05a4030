package usecase

import (
	"context"

	"clinic/internal/domain/entity"
)

// ReportUsecase computes the administrator dashboard.
type ReportUsecase interface {
	Dashboard(ctx context.Context) (*entity.DashboardStats, error)
}
