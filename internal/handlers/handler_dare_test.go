package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dare2earn/d2e_backend/internal/apperrors"
	"github.com/dare2earn/d2e_backend/internal/core/domain"
	portssvc "github.com/dare2earn/d2e_backend/internal/core/ports/services"
	"github.com/dare2earn/d2e_backend/internal/dto"
	"github.com/dare2earn/d2e_backend/internal/handlers"
	"github.com/dare2earn/d2e_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	testDareID        = "22222222-2222-2222-2222-222222222222"
	testParticipantID = "33333333-3333-3333-3333-333333333333"
)

type DareHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockDare    *MockDareService
	mockSession *MockSessionService
}

func (s *DareHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.mockDare = new(MockDareService)
	s.mockSession = new(MockSessionService)

	services := &portssvc.ServiceContainer{
		User:        new(MockUserService),
		Session:     s.mockSession,
		GoogleOAuth: new(MockGoogleOAuthService),
		Dare:        s.mockDare,
		Category:    new(MockCategoryService),
		Ledger:      new(MockLedgerService),
	}

	cfg := &config.Config{IsProduction: true}
	s.router = gin.New()
	handlers.RegisterRoutes(s.router, cfg, nil, services)
}

func (s *DareHandlerTestSuite) expectValidSession() {
	s.mockSession.On("Validate", mock.Anything, testToken).
		Return(&domain.SessionInfo{UserID: testUserID, Email: "tester@example.com", Username: "tester"}, nil)
}

func (s *DareHandlerTestSuite) serve(method, path string, body any, authenticated bool) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func testDareSummary() *domain.DareSummary {
	return &domain.DareSummary{
		Dare: domain.Dare{
			DareID:              testDareID,
			Title:               "Ice bucket run",
			Description:         "Run a mile after the bucket",
			CreatedByUserID:     testUserID,
			EntryFee:            decimal.NewFromInt(5),
			PrizePool:           decimal.NewFromInt(25),
			StartTime:           time.Now().Add(-time.Hour),
			EndTime:             time.Now().Add(24 * time.Hour),
			Status:              domain.DareOpen,
			SubmissionMediaType: "video",
		},
		CreatorUsername:  "tester",
		CreatorFullName:  "Test User",
		ParticipantCount: 5,
	}
}

func (s *DareHandlerTestSuite) TestListDares_Success() {
	s.mockDare.On("ListDares", mock.Anything, dto.ListDaresParams{Page: 2, Limit: 10}).
		Return(&dto.ListDaresResponse{
			Dares: []dto.DareResponse{dto.ToDareResponse(*testDareSummary())},
			Pagination: dto.Pagination{
				Page:       2,
				Limit:      10,
				Total:      45,
				TotalPages: 5,
			},
		}, nil)

	w := s.serve(http.MethodGet, "/api/dares?page=2&limit=10", nil, false)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.ListDaresResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Len(resp.Dares, 1)
	s.Equal(testDareID, resp.Dares[0].ID)
	s.Equal(int64(45), resp.Pagination.Total)
	s.Equal(5, resp.Pagination.TotalPages)
}

func (s *DareHandlerTestSuite) TestListDares_DefaultsFromQueryBinding() {
	s.mockDare.On("ListDares", mock.Anything, dto.ListDaresParams{Page: 1, Limit: 20}).
		Return(&dto.ListDaresResponse{
			Dares:      []dto.DareResponse{},
			Pagination: dto.Pagination{Page: 1, Limit: 20},
		}, nil)

	w := s.serve(http.MethodGet, "/api/dares", nil, false)

	s.Equal(http.StatusOK, w.Code)
	s.mockDare.AssertExpectations(s.T())
}

func (s *DareHandlerTestSuite) TestGetDare_Success() {
	submissionURL := "https://cdn.example.com/clip.mp4"
	participants := []domain.ParticipantDetail{
		{
			Participant: domain.Participant{
				ParticipantID: testParticipantID,
				DareID:        testDareID,
				UserID:        testUserID,
				SubmissionURL: &submissionURL,
				VotesCount:    12,
			},
			Username: "tester",
			FullName: "Test User",
		},
	}
	s.mockDare.On("GetDare", mock.Anything, testDareID).
		Return(testDareSummary(), participants, nil)

	w := s.serve(http.MethodGet, "/api/dares/"+testDareID, nil, false)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.DareDetailResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(testDareID, resp.Dare.ID)
	s.Require().Len(resp.Participants, 1)
	s.Equal(12, resp.Participants[0].VotesCount)
	s.Equal("tester", resp.Participants[0].Username)
}

func (s *DareHandlerTestSuite) TestGetDare_NotFound() {
	s.mockDare.On("GetDare", mock.Anything, "missing-id").
		Return(nil, nil, apperrors.NewNotFoundError("dare not found"))

	w := s.serve(http.MethodGet, "/api/dares/missing-id", nil, false)

	s.Equal(http.StatusNotFound, w.Code)
	var resp handlers.ErrorResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("dare not found", resp.Error)
}

func (s *DareHandlerTestSuite) TestCreateDare_Success() {
	s.expectValidSession()
	req := dto.CreateDareRequest{
		Title:       "Ice bucket run",
		Description: "Run a mile after the bucket",
		EntryFee:    decimal.NewFromInt(5),
		StartTime:   time.Now().Add(time.Hour).UTC().Truncate(time.Second),
		EndTime:     time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second),
	}
	created := &domain.Dare{
		DareID:          testDareID,
		Title:           req.Title,
		Description:     req.Description,
		CreatedByUserID: testUserID,
		EntryFee:        req.EntryFee,
		PrizePool:       decimal.Zero,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Status:          domain.DareOpen,
	}
	s.mockDare.On("CreateDare", mock.Anything, testUserID, mock.AnythingOfType("dto.CreateDareRequest")).
		Return(created, nil)

	w := s.serve(http.MethodPost, "/api/dares", req, true)

	s.Equal(http.StatusCreated, w.Code)
	var resp dto.DareResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(testDareID, resp.ID)
	s.Equal("open", resp.Status)
	s.Equal(testUserID, resp.CreatedByUserID)
}

func (s *DareHandlerTestSuite) TestCreateDare_Unauthenticated() {
	w := s.serve(http.MethodPost, "/api/dares", dto.CreateDareRequest{Title: "x"}, false)

	s.Equal(http.StatusUnauthorized, w.Code)
	s.mockDare.AssertNotCalled(s.T(), "CreateDare", mock.Anything, mock.Anything, mock.Anything)
}

func (s *DareHandlerTestSuite) TestJoinDare_Success() {
	s.expectValidSession()
	s.mockDare.On("JoinDare", mock.Anything, testDareID, testUserID).
		Return(&domain.Participant{
			ParticipantID: testParticipantID,
			DareID:        testDareID,
			UserID:        testUserID,
		}, nil)

	w := s.serve(http.MethodPost, "/api/dares/"+testDareID+"/join", nil, true)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.ParticipantResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(testParticipantID, resp.ID)
	s.Equal(testDareID, resp.DareID)
}

func (s *DareHandlerTestSuite) TestJoinDare_AlreadyJoined() {
	s.expectValidSession()
	s.mockDare.On("JoinDare", mock.Anything, testDareID, testUserID).
		Return(nil, apperrors.NewConflictError("you have already joined this dare"))

	w := s.serve(http.MethodPost, "/api/dares/"+testDareID+"/join", nil, true)

	s.Equal(http.StatusBadRequest, w.Code)
	var resp handlers.ErrorResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("you have already joined this dare", resp.Error)
}

func (s *DareHandlerTestSuite) TestJoinDare_DareClosed() {
	s.expectValidSession()
	s.mockDare.On("JoinDare", mock.Anything, testDareID, testUserID).
		Return(nil, apperrors.NewInvalidStateError("this dare is not open for joining"))

	w := s.serve(http.MethodPost, "/api/dares/"+testDareID+"/join", nil, true)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *DareHandlerTestSuite) TestSubmit_Success() {
	s.expectValidSession()
	req := dto.SubmitRequest{SubmissionURL: "https://cdn.example.com/clip.mp4", SubmissionCaption: "done"}
	s.mockDare.On("Submit", mock.Anything, testDareID, testUserID, req).Return(nil)

	w := s.serve(http.MethodPost, "/api/dares/"+testDareID+"/submit", req, true)

	s.Equal(http.StatusOK, w.Code)
	s.mockDare.AssertExpectations(s.T())
}

func (s *DareHandlerTestSuite) TestSubmit_NotAParticipant() {
	s.expectValidSession()
	req := dto.SubmitRequest{SubmissionURL: "https://cdn.example.com/clip.mp4"}
	s.mockDare.On("Submit", mock.Anything, testDareID, testUserID, req).
		Return(apperrors.NewForbiddenError("you must join this dare before submitting"))

	w := s.serve(http.MethodPost, "/api/dares/"+testDareID+"/submit", req, true)

	s.Equal(http.StatusForbidden, w.Code)
	var resp handlers.ErrorResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("you must join this dare before submitting", resp.Error)
}

func (s *DareHandlerTestSuite) TestSubmit_MissingURL() {
	s.expectValidSession()

	w := s.serve(http.MethodPost, "/api/dares/"+testDareID+"/submit", map[string]string{"submission_caption": "no url"}, true)

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockDare.AssertNotCalled(s.T(), "Submit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *DareHandlerTestSuite) TestVote_Success() {
	s.expectValidSession()
	s.mockDare.On("Vote", mock.Anything, testParticipantID, testUserID, false).Return(nil)

	w := s.serve(http.MethodPost, "/api/participants/"+testParticipantID+"/vote", nil, true)

	s.Equal(http.StatusOK, w.Code)
	s.mockDare.AssertExpectations(s.T())
}

func (s *DareHandlerTestSuite) TestVote_Boosted() {
	s.expectValidSession()
	s.mockDare.On("Vote", mock.Anything, testParticipantID, testUserID, true).Return(nil)

	w := s.serve(http.MethodPost, "/api/participants/"+testParticipantID+"/vote", dto.VoteRequest{IsBoostedVote: true}, true)

	s.Equal(http.StatusOK, w.Code)
	s.mockDare.AssertExpectations(s.T())
}

func (s *DareHandlerTestSuite) TestVote_SelfVote() {
	s.expectValidSession()
	s.mockDare.On("Vote", mock.Anything, testParticipantID, testUserID, false).
		Return(apperrors.NewSelfVoteError("you cannot vote for your own submission"))

	w := s.serve(http.MethodPost, "/api/participants/"+testParticipantID+"/vote", nil, true)

	s.Equal(http.StatusBadRequest, w.Code)
	var resp handlers.ErrorResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("you cannot vote for your own submission", resp.Error)
}

func (s *DareHandlerTestSuite) TestVote_Duplicate() {
	s.expectValidSession()
	s.mockDare.On("Vote", mock.Anything, testParticipantID, testUserID, false).
		Return(apperrors.NewConflictError("you have already voted for this submission"))

	w := s.serve(http.MethodPost, "/api/participants/"+testParticipantID+"/vote", nil, true)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *DareHandlerTestSuite) TestMyDares_Success() {
	s.expectValidSession()
	s.mockDare.On("ListDaresByCreator", mock.Anything, testUserID).
		Return([]domain.DareSummary{*testDareSummary()}, nil)

	w := s.serve(http.MethodGet, "/api/users/my-dares", nil, true)

	s.Equal(http.StatusOK, w.Code)
	var resp []dto.DareResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Require().Len(resp, 1)
	s.Equal(testDareID, resp[0].ID)
}

func (s *DareHandlerTestSuite) TestMyParticipations_Success() {
	s.expectValidSession()
	s.mockDare.On("ListParticipationsByUser", mock.Anything, testUserID).
		Return([]domain.ParticipationSummary{
			{
				Participant: domain.Participant{
					ParticipantID: testParticipantID,
					DareID:        testDareID,
					UserID:        testUserID,
					VotesCount:    3,
				},
				DareTitle:   "Ice bucket run",
				DareStatus:  domain.DareOpen,
				DareEndTime: time.Now().Add(24 * time.Hour),
			},
		}, nil)

	w := s.serve(http.MethodGet, "/api/users/my-participations", nil, true)

	s.Equal(http.StatusOK, w.Code)
	var resp []dto.ParticipationResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Require().Len(resp, 1)
	s.Equal("Ice bucket run", resp[0].DareTitle)
	s.Equal(3, resp[0].VotesCount)
}

func TestDareHandler(t *testing.T) {
	suite.Run(t, new(DareHandlerTestSuite))
}
