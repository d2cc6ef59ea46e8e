package handlers_fiber

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/iamcoreyg/dexo-docs/internal/api"
	"github.com/iamcoreyg/dexo-docs/internal/entities"
	"github.com/iamcoreyg/dexo-docs/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type ucMock struct{ mock.Mock }

var _ usecase.InterfaceUsecase = (*ucMock)(nil)

func (m *ucMock) ListReviews(ctx context.Context) ([]entities.Review, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Review), args.Error(1)
}

func (m *ucMock) CreateReview(ctx context.Context, review entities.Review) (*entities.Review, error) {
	args := m.Called(ctx, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Review), args.Error(1)
}

func (m *ucMock) LatestReview(ctx context.Context, slug string) (*entities.Review, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Review), args.Error(1)
}

func (m *ucMock) ListIssues(ctx context.Context, status string) ([]entities.Issue, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Issue), args.Error(1)
}

func (m *ucMock) CreateIssue(ctx context.Context, issue entities.Issue) (*entities.Issue, error) {
	args := m.Called(ctx, issue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Issue), args.Error(1)
}

func (m *ucMock) UpdateIssueStatus(ctx context.Context, id int64, upd entities.IssueStatusUpdate) (*entities.Issue, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Issue), args.Error(1)
}

func (m *ucMock) ListGaps(ctx context.Context, status string) ([]entities.Gap, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Gap), args.Error(1)
}

func (m *ucMock) CreateGap(ctx context.Context, gap entities.Gap) (*entities.Gap, error) {
	args := m.Called(ctx, gap)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Gap), args.Error(1)
}

func (m *ucMock) UpdateGap(ctx context.Context, id int64, upd entities.GapUpdate) (*entities.Gap, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Gap), args.Error(1)
}

func (m *ucMock) Stats(ctx context.Context) (entities.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return entities.Stats{}, args.Error(1)
	}
	return args.Get(0).(entities.Stats), args.Error(1)
}

func newTestApp(uc usecase.InterfaceUsecase) *fiber.App {
	app := fiber.New()
	h := NewHandler(zap.NewNop().Sugar(), uc, "secret")
	h.Register(app)
	return app
}

func TestGetAuthSetsCookieAndRedirects(t *testing.T) {
	app := newTestApp(&ucMock{})

	req := httptest.NewRequest(http.MethodGet, "/auth?token=secret", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/", resp.Header.Get("Location"))

	cookie := resp.Header.Get("Set-Cookie")
	require.Contains(t, cookie, "app_token=secret")
	require.Contains(t, cookie, "HttpOnly")
	require.Contains(t, cookie, "SameSite=Strict")
	require.Contains(t, cookie, "path=/")
}

func TestGetAuthRejectsWrongToken(t *testing.T) {
	app := newTestApp(&ucMock{})

	req := httptest.NewRequest(http.MethodGet, "/auth?token=wrong", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Empty(t, resp.Header.Get("Set-Cookie"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "Unauthorized", string(body))
}

func TestGetReviewBySlugNullWhenAbsent(t *testing.T) {
	uc := &ucMock{}
	uc.On("LatestReview", mock.Anything, "missing-doc").Return(nil, nil)
	app := newTestApp(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/reviews/missing-doc", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "null", string(body))
	uc.AssertExpectations(t)
}

func TestGetIssuesDefaultsToOpen(t *testing.T) {
	uc := &ucMock{}
	uc.On("ListIssues", mock.Anything, "open").Return([]entities.Issue{}, nil)
	app := newTestApp(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/issues", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	uc.AssertExpectations(t)
}

func TestGetIssuesPassesStatusVerbatim(t *testing.T) {
	for _, status := range []string{"all", "dismissed", "bogus"} {
		uc := &ucMock{}
		uc.On("ListIssues", mock.Anything, status).Return([]entities.Issue{}, nil)
		app := newTestApp(uc)

		req := httptest.NewRequest(http.MethodGet, "/api/issues?status="+status, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode, status)
		uc.AssertExpectations(t)
	}
}

func TestPostIssueIgnoresClientStatus(t *testing.T) {
	uc := &ucMock{}
	uc.On("CreateIssue", mock.Anything, mock.MatchedBy(func(i entities.Issue) bool {
		return i.Status == "" && i.IssueType != nil && *i.IssueType == "typo"
	})).Return(&entities.Issue{ID: 1, Status: entities.StatusOpen}, nil)
	app := newTestApp(uc)

	payload := `{"issue_type":"typo","description":"bad spelling","status":"resolved"}`
	req := httptest.NewRequest(http.MethodPost, "/api/issues", strings.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created entities.Issue
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.Equal(t, entities.StatusOpen, created.Status)
	uc.AssertExpectations(t)
}

func TestPatchIssueNonNumericID(t *testing.T) {
	uc := &ucMock{}
	app := newTestApp(uc)

	req := httptest.NewRequest(http.MethodPatch, "/api/issues/abc", strings.NewReader(`{"status":"resolved"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	uc.AssertNotCalled(t, "UpdateIssueStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestPatchIssueMissingRowNull(t *testing.T) {
	uc := &ucMock{}
	uc.On("UpdateIssueStatus", mock.Anything, int64(42), mock.Anything).Return(nil, nil)
	app := newTestApp(uc)

	req := httptest.NewRequest(http.MethodPatch, "/api/issues/42", strings.NewReader(`{"status":"resolved"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "null", string(body))
}

func TestPatchGapPassesColumns(t *testing.T) {
	slug := "new-doc"
	status := "resolved"
	uc := &ucMock{}
	uc.On("UpdateGap", mock.Anything, int64(7), entities.GapUpdate{
		Status:         &status,
		DocCreatedSlug: &slug,
	}).Return(&entities.Gap{ID: 7, Status: status, DocCreatedSlug: &slug}, nil)
	app := newTestApp(uc)

	payload := `{"status":"resolved","doc_created_slug":"new-doc"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/gaps/7", strings.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	uc.AssertExpectations(t)
}

func TestGetStatsEmptyShape(t *testing.T) {
	uc := &ucMock{}
	uc.On("Stats", mock.Anything).Return(entities.NewStats(), nil)
	app := newTestApp(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.JSONEq(t, `{"issues":{},"gaps":{},"reviews":{"total":0,"last_review":null}}`, string(body))
}

func TestWriteErrorStatuses(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "invalid argument", err: entities.ErrInvalidArgument, expected: http.StatusBadRequest},
		{name: "anything else", err: errors.New("db down"), expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return writeError(c, tt.err)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tt.expected, resp.StatusCode)

			var body api.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, tt.err.Error(), body.Error)
		})
	}
}
