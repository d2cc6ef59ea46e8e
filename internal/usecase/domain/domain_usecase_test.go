package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/iamcoreyg/dexo-docs/internal/entities"
	"github.com/iamcoreyg/dexo-docs/internal/repository"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type repoMock struct{ mock.Mock }

var _ repository.Repository = (*repoMock)(nil)

func (m *repoMock) OnStart(_ context.Context) error { return nil }
func (m *repoMock) OnStop(_ context.Context) error  { return nil }

func (m *repoMock) ListReviews(ctx context.Context) ([]entities.Review, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Review), args.Error(1)
}

func (m *repoMock) CreateReview(ctx context.Context, review entities.Review) (*entities.Review, error) {
	args := m.Called(ctx, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Review), args.Error(1)
}

func (m *repoMock) LatestReview(ctx context.Context, slug string) (*entities.Review, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Review), args.Error(1)
}

func (m *repoMock) ListIssues(ctx context.Context, status string) ([]entities.Issue, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Issue), args.Error(1)
}

func (m *repoMock) CreateIssue(ctx context.Context, issue entities.Issue) (*entities.Issue, error) {
	args := m.Called(ctx, issue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Issue), args.Error(1)
}

func (m *repoMock) UpdateIssueStatus(ctx context.Context, id int64, upd entities.IssueStatusUpdate) (*entities.Issue, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Issue), args.Error(1)
}

func (m *repoMock) ListGaps(ctx context.Context, status string) ([]entities.Gap, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Gap), args.Error(1)
}

func (m *repoMock) CreateGap(ctx context.Context, gap entities.Gap) (*entities.Gap, error) {
	args := m.Called(ctx, gap)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Gap), args.Error(1)
}

func (m *repoMock) UpdateGap(ctx context.Context, id int64, upd entities.GapUpdate) (*entities.Gap, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Gap), args.Error(1)
}

func (m *repoMock) Stats(ctx context.Context) (entities.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return entities.Stats{}, args.Error(1)
	}
	return args.Get(0).(entities.Stats), args.Error(1)
}

func newUsecase(repo repository.Repository) *Usecase {
	return New(zap.NewNop().Sugar(), context.Background(), repo, time.Second)
}

func TestUsecase_CreateReviewDelegates(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	slug := "getting-started"
	expected := &entities.Review{ID: 1, DocSlug: &slug}
	repo.On("CreateReview", mock.Anything, mock.MatchedBy(func(r entities.Review) bool {
		return r.DocSlug != nil && *r.DocSlug == slug
	})).Return(expected, nil)

	review, err := uc.CreateReview(context.Background(), entities.Review{DocSlug: &slug})
	require.NoError(t, err)
	require.Equal(t, expected, review)
	repo.AssertExpectations(t)
}

func TestUsecase_CreateReviewDoesNotPreValidate(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	// Missing doc_slug is the database's problem, not ours.
	dbErr := errors.New("null value in column \"doc_slug\"")
	repo.On("CreateReview", mock.Anything, mock.Anything).Return(nil, dbErr)

	_, err := uc.CreateReview(context.Background(), entities.Review{})
	require.ErrorIs(t, err, dbErr)
	repo.AssertExpectations(t)
}

func TestUsecase_LatestReviewPassesThroughNil(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	repo.On("LatestReview", mock.Anything, "unknown").Return(nil, nil)

	review, err := uc.LatestReview(context.Background(), "unknown")
	require.NoError(t, err)
	require.Nil(t, review)
	repo.AssertExpectations(t)
}

func TestUsecase_ListIssuesPassesStatus(t *testing.T) {
	for _, status := range []string{entities.StatusOpen, entities.StatusAll, "bogus"} {
		repo := &repoMock{}
		uc := newUsecase(repo)

		repo.On("ListIssues", mock.Anything, status).Return([]entities.Issue{}, nil)

		_, err := uc.ListIssues(context.Background(), status)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	}
}

func TestUsecase_UpdateIssueStatusDelegates(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	status := entities.StatusResolved
	upd := entities.IssueStatusUpdate{Status: &status}
	now := time.Now()
	expected := &entities.Issue{ID: 5, Status: status, ResolvedAt: &now}
	repo.On("UpdateIssueStatus", mock.Anything, int64(5), upd).Return(expected, nil)

	issue, err := uc.UpdateIssueStatus(context.Background(), 5, upd)
	require.NoError(t, err)
	require.Equal(t, expected, issue)
	repo.AssertExpectations(t)
}

func TestUsecase_UpdateGapDelegates(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	status := entities.StatusResolved
	slug := "new-page"
	upd := entities.GapUpdate{Status: &status, DocCreatedSlug: &slug}
	repo.On("UpdateGap", mock.Anything, int64(9), upd).Return(nil, nil)

	gap, err := uc.UpdateGap(context.Background(), 9, upd)
	require.NoError(t, err)
	require.Nil(t, gap)
	repo.AssertExpectations(t)
}

func TestUsecase_StatsDelegates(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	expected := entities.NewStats()
	expected.Issues["open"] = 3
	repo.On("Stats", mock.Anything).Return(expected, nil)

	stats, err := uc.Stats(context.Background())
	require.NoError(t, err)
	require.Equal(t, expected, stats)
	repo.AssertExpectations(t)
}
