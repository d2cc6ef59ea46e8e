package usecase

import (
	"context"
	"time"

	"github.com/iamcoreyg/dexo-docs/internal/repository"
	"github.com/iamcoreyg/dexo-docs/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	ReviewUsecaseInterface
	IssueUsecaseInterface
	GapUsecaseInterface
	StatsUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, ctx, repo, timeout)
}
