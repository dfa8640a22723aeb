package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/dare2earn/d2e_backend/internal/apperrors"
	"github.com/dare2earn/d2e_backend/internal/core/domain"
	portsrepo "github.com/dare2earn/d2e_backend/internal/core/ports/repositories"
	portssvc "github.com/dare2earn/d2e_backend/internal/core/ports/services"
	"github.com/dare2earn/d2e_backend/internal/core/services"
	"github.com/dare2earn/d2e_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock DareRepository ---
type MockDareRepository struct {
	mock.Mock
	SaveDareFn                     func(ctx context.Context, dare domain.Dare) error
	FindDareByIDFn                 func(ctx context.Context, dareID string) (*domain.Dare, error)
	FindDareSummaryByIDFn          func(ctx context.Context, dareID string) (*domain.DareSummary, error)
	ListDaresFn                    func(ctx context.Context, filter portsrepo.ListDaresFilter) ([]domain.DareSummary, int64, error)
	ListDaresByCreatorFn           func(ctx context.Context, userID string) ([]domain.DareSummary, error)
	JoinDareFn                     func(ctx context.Context, dareID string, userID string) (*domain.Participant, error)
	FindParticipantByDareAndUserFn func(ctx context.Context, dareID string, userID string) (*domain.Participant, error)
	UpdateSubmissionFn             func(ctx context.Context, dareID string, userID string, submissionURL string, submissionCaption string) error
	SaveVoteFn                     func(ctx context.Context, participantID string, voterUserID string, isBoosted bool) (*domain.Vote, error)
	ListParticipantsFn             func(ctx context.Context, dareID string) ([]domain.ParticipantDetail, error)
	ListParticipationsByUserFn     func(ctx context.Context, userID string) ([]domain.ParticipationSummary, error)
}

func (m *MockDareRepository) SaveDare(ctx context.Context, dare domain.Dare) error {
	if m.SaveDareFn != nil {
		return m.SaveDareFn(ctx, dare)
	}
	args := m.Called(ctx, dare)
	return args.Error(0)
}

func (m *MockDareRepository) FindDareByID(ctx context.Context, dareID string) (*domain.Dare, error) {
	if m.FindDareByIDFn != nil {
		return m.FindDareByIDFn(ctx, dareID)
	}
	args := m.Called(ctx, dareID)
	var dare *domain.Dare
	if args.Get(0) != nil {
		dare = args.Get(0).(*domain.Dare)
	}
	return dare, args.Error(1)
}

func (m *MockDareRepository) FindDareSummaryByID(ctx context.Context, dareID string) (*domain.DareSummary, error) {
	if m.FindDareSummaryByIDFn != nil {
		return m.FindDareSummaryByIDFn(ctx, dareID)
	}
	args := m.Called(ctx, dareID)
	var summary *domain.DareSummary
	if args.Get(0) != nil {
		summary = args.Get(0).(*domain.DareSummary)
	}
	return summary, args.Error(1)
}

func (m *MockDareRepository) ListDares(ctx context.Context, filter portsrepo.ListDaresFilter) ([]domain.DareSummary, int64, error) {
	if m.ListDaresFn != nil {
		return m.ListDaresFn(ctx, filter)
	}
	args := m.Called(ctx, filter)
	var summaries []domain.DareSummary
	if args.Get(0) != nil {
		summaries = args.Get(0).([]domain.DareSummary)
	}
	return summaries, args.Get(1).(int64), args.Error(2)
}

func (m *MockDareRepository) ListDaresByCreator(ctx context.Context, userID string) ([]domain.DareSummary, error) {
	if m.ListDaresByCreatorFn != nil {
		return m.ListDaresByCreatorFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var summaries []domain.DareSummary
	if args.Get(0) != nil {
		summaries = args.Get(0).([]domain.DareSummary)
	}
	return summaries, args.Error(1)
}

func (m *MockDareRepository) JoinDare(ctx context.Context, dareID string, userID string) (*domain.Participant, error) {
	if m.JoinDareFn != nil {
		return m.JoinDareFn(ctx, dareID, userID)
	}
	args := m.Called(ctx, dareID, userID)
	var p *domain.Participant
	if args.Get(0) != nil {
		p = args.Get(0).(*domain.Participant)
	}
	return p, args.Error(1)
}

func (m *MockDareRepository) FindParticipantByDareAndUser(ctx context.Context, dareID string, userID string) (*domain.Participant, error) {
	if m.FindParticipantByDareAndUserFn != nil {
		return m.FindParticipantByDareAndUserFn(ctx, dareID, userID)
	}
	args := m.Called(ctx, dareID, userID)
	var p *domain.Participant
	if args.Get(0) != nil {
		p = args.Get(0).(*domain.Participant)
	}
	return p, args.Error(1)
}

func (m *MockDareRepository) UpdateSubmission(ctx context.Context, dareID string, userID string, submissionURL string, submissionCaption string) error {
	if m.UpdateSubmissionFn != nil {
		return m.UpdateSubmissionFn(ctx, dareID, userID, submissionURL, submissionCaption)
	}
	args := m.Called(ctx, dareID, userID, submissionURL, submissionCaption)
	return args.Error(0)
}

func (m *MockDareRepository) SaveVote(ctx context.Context, participantID string, voterUserID string, isBoosted bool) (*domain.Vote, error) {
	if m.SaveVoteFn != nil {
		return m.SaveVoteFn(ctx, participantID, voterUserID, isBoosted)
	}
	args := m.Called(ctx, participantID, voterUserID, isBoosted)
	var v *domain.Vote
	if args.Get(0) != nil {
		v = args.Get(0).(*domain.Vote)
	}
	return v, args.Error(1)
}

func (m *MockDareRepository) ListParticipants(ctx context.Context, dareID string) ([]domain.ParticipantDetail, error) {
	if m.ListParticipantsFn != nil {
		return m.ListParticipantsFn(ctx, dareID)
	}
	args := m.Called(ctx, dareID)
	var details []domain.ParticipantDetail
	if args.Get(0) != nil {
		details = args.Get(0).([]domain.ParticipantDetail)
	}
	return details, args.Error(1)
}

func (m *MockDareRepository) ListParticipationsByUser(ctx context.Context, userID string) ([]domain.ParticipationSummary, error) {
	if m.ListParticipationsByUserFn != nil {
		return m.ListParticipationsByUserFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var summaries []domain.ParticipationSummary
	if args.Get(0) != nil {
		summaries = args.Get(0).([]domain.ParticipationSummary)
	}
	return summaries, args.Error(1)
}

// --- Test Suite ---
type DareServiceTestSuite struct {
	suite.Suite
	mockDareRepo *MockDareRepository
	service      portssvc.DareSvcFacade
}

func (suite *DareServiceTestSuite) SetupTest() {
	suite.mockDareRepo = new(MockDareRepository)
	suite.service = services.NewDareService(suite.mockDareRepo)
}

func validCreateDareRequest() dto.CreateDareRequest {
	return dto.CreateDareRequest{
		Title:       "Cold shower challenge",
		Description: "Take a cold shower every day for a week",
		EntryFee:    decimal.NewFromInt(5),
		StartTime:   time.Now().Add(time.Hour),
		EndTime:     time.Now().Add(7 * 24 * time.Hour),
	}
}

// --- CreateDare Tests ---

func (suite *DareServiceTestSuite) TestCreateDare_Success() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	req := validCreateDareRequest()

	suite.mockDareRepo.On("SaveDare", ctx, mock.MatchedBy(func(dare domain.Dare) bool {
		return dare.Title == req.Title &&
			dare.CreatedByUserID == creatorID &&
			dare.Status == domain.DareOpen &&
			dare.PrizePool.IsZero()
	})).Return(nil).Once()

	dare, err := suite.service.CreateDare(ctx, creatorID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(dare)
	suite.NotEmpty(dare.DareID)
	suite.Equal(domain.DareOpen, dare.Status)
	suite.True(dare.PrizePool.IsZero())
	suite.mockDareRepo.AssertExpectations(suite.T())
}

func (suite *DareServiceTestSuite) TestCreateDare_ZeroEntryFee() {
	ctx := context.Background()
	req := validCreateDareRequest()
	req.EntryFee = decimal.Zero

	suite.mockDareRepo.On("SaveDare", ctx, mock.AnythingOfType("domain.Dare")).Return(nil).Once()

	dare, err := suite.service.CreateDare(ctx, uuid.NewString(), req)

	suite.Require().NoError(err)
	suite.True(dare.EntryFee.IsZero())
	suite.mockDareRepo.AssertExpectations(suite.T())
}

func (suite *DareServiceTestSuite) TestCreateDare_NegativeEntryFee() {
	ctx := context.Background()
	req := validCreateDareRequest()
	req.EntryFee = decimal.NewFromInt(-1)

	dare, err := suite.service.CreateDare(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.Nil(dare)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockDareRepo.AssertNotCalled(suite.T(), "SaveDare", mock.Anything, mock.Anything)
}

func (suite *DareServiceTestSuite) TestCreateDare_StartAfterEnd() {
	ctx := context.Background()
	req := validCreateDareRequest()
	req.StartTime = req.EndTime.Add(time.Hour)

	dare, err := suite.service.CreateDare(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.Nil(dare)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockDareRepo.AssertNotCalled(suite.T(), "SaveDare", mock.Anything, mock.Anything)
}

// --- ListDares Tests ---

func (suite *DareServiceTestSuite) TestListDares_PaginationMath() {
	ctx := context.Background()

	suite.mockDareRepo.ListDaresFn = func(ctx context.Context, filter portsrepo.ListDaresFilter) ([]domain.DareSummary, int64, error) {
		suite.Equal(20, filter.Limit)
		suite.Equal(20, filter.Offset)
		return make([]domain.DareSummary, 20), 45, nil
	}

	resp, err := suite.service.ListDares(ctx, dto.ListDaresParams{Page: 2, Limit: 20})

	suite.Require().NoError(err)
	suite.Equal(2, resp.Pagination.Page)
	suite.Equal(int64(45), resp.Pagination.Total)
	suite.Equal(3, resp.Pagination.TotalPages)
	suite.Len(resp.Dares, 20)
}

func (suite *DareServiceTestSuite) TestListDares_DefaultsAppliedForZeroValues() {
	ctx := context.Background()

	suite.mockDareRepo.ListDaresFn = func(ctx context.Context, filter portsrepo.ListDaresFilter) ([]domain.DareSummary, int64, error) {
		suite.Equal(20, filter.Limit)
		suite.Equal(0, filter.Offset)
		return nil, 0, nil
	}

	resp, err := suite.service.ListDares(ctx, dto.ListDaresParams{})

	suite.Require().NoError(err)
	suite.Equal(1, resp.Pagination.Page)
	suite.Equal(0, resp.Pagination.TotalPages)
	suite.Empty(resp.Dares)
}

func (suite *DareServiceTestSuite) TestListDares_StatusFilter() {
	ctx := context.Background()

	suite.mockDareRepo.ListDaresFn = func(ctx context.Context, filter portsrepo.ListDaresFilter) ([]domain.DareSummary, int64, error) {
		suite.Require().NotNil(filter.Status)
		suite.Equal(domain.DareOpen, *filter.Status)
		return nil, 0, nil
	}

	_, err := suite.service.ListDares(ctx, dto.ListDaresParams{Status: "open"})

	suite.Require().NoError(err)
}

func (suite *DareServiceTestSuite) TestListDares_InvalidStatus() {
	ctx := context.Background()

	resp, err := suite.service.ListDares(ctx, dto.ListDaresParams{Status: "bogus"})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- JoinDare Tests ---

func (suite *DareServiceTestSuite) TestJoinDare_Success() {
	ctx := context.Background()
	dareID := uuid.NewString()
	userID := uuid.NewString()
	participant := &domain.Participant{ParticipantID: uuid.NewString(), DareID: dareID, UserID: userID}

	suite.mockDareRepo.On("JoinDare", ctx, dareID, userID).Return(participant, nil).Once()

	got, err := suite.service.JoinDare(ctx, dareID, userID)

	suite.Require().NoError(err)
	suite.Equal(participant.ParticipantID, got.ParticipantID)
	suite.mockDareRepo.AssertExpectations(suite.T())
}

func (suite *DareServiceTestSuite) TestJoinDare_AlreadyJoined() {
	ctx := context.Background()
	dareID := uuid.NewString()
	userID := uuid.NewString()
	dupErr := apperrors.NewConflictError("you have already joined this dare")

	suite.mockDareRepo.On("JoinDare", ctx, dareID, userID).Return(nil, dupErr).Once()

	got, err := suite.service.JoinDare(ctx, dareID, userID)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockDareRepo.AssertExpectations(suite.T())
}

// --- Submit Tests ---

func openDare(dareID string) *domain.Dare {
	return &domain.Dare{
		DareID:  dareID,
		Status:  domain.DareOpen,
		EndTime: time.Now().Add(24 * time.Hour),
	}
}

func (suite *DareServiceTestSuite) TestSubmit_Success() {
	ctx := context.Background()
	dareID := uuid.NewString()
	userID := uuid.NewString()
	req := dto.SubmitRequest{SubmissionURL: "https://cdn.example.com/v.mp4", SubmissionCaption: "done!"}

	suite.mockDareRepo.On("FindDareByID", ctx, dareID).Return(openDare(dareID), nil).Once()
	suite.mockDareRepo.On("FindParticipantByDareAndUser", ctx, dareID, userID).
		Return(&domain.Participant{ParticipantID: uuid.NewString(), DareID: dareID, UserID: userID}, nil).Once()
	suite.mockDareRepo.On("UpdateSubmission", ctx, dareID, userID, req.SubmissionURL, req.SubmissionCaption).Return(nil).Once()

	err := suite.service.Submit(ctx, dareID, userID, req)

	suite.Require().NoError(err)
	suite.mockDareRepo.AssertExpectations(suite.T())
}

func (suite *DareServiceTestSuite) TestSubmit_NotJoined() {
	ctx := context.Background()
	dareID := uuid.NewString()
	userID := uuid.NewString()
	req := dto.SubmitRequest{SubmissionURL: "https://cdn.example.com/v.mp4"}

	suite.mockDareRepo.On("FindDareByID", ctx, dareID).Return(openDare(dareID), nil).Once()
	suite.mockDareRepo.On("FindParticipantByDareAndUser", ctx, dareID, userID).
		Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.Submit(ctx, dareID, userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockDareRepo.AssertNotCalled(suite.T(), "UpdateSubmission", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DareServiceTestSuite) TestSubmit_DareNotOpen() {
	ctx := context.Background()
	dareID := uuid.NewString()
	closed := openDare(dareID)
	closed.Status = domain.DareClosed

	suite.mockDareRepo.On("FindDareByID", ctx, dareID).Return(closed, nil).Once()

	err := suite.service.Submit(ctx, dareID, uuid.NewString(), dto.SubmitRequest{SubmissionURL: "https://x"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockDareRepo.AssertNotCalled(suite.T(), "UpdateSubmission", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DareServiceTestSuite) TestSubmit_DareNotFound() {
	ctx := context.Background()
	dareID := uuid.NewString()

	suite.mockDareRepo.On("FindDareByID", ctx, dareID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.Submit(ctx, dareID, uuid.NewString(), dto.SubmitRequest{SubmissionURL: "https://x"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockDareRepo.AssertExpectations(suite.T())
}

// --- Vote Tests ---

func (suite *DareServiceTestSuite) TestVote_Success() {
	ctx := context.Background()
	participantID := uuid.NewString()
	voterID := uuid.NewString()
	vote := &domain.Vote{VoteID: uuid.NewString(), DareParticipantID: participantID, VoterUserID: voterID}

	suite.mockDareRepo.On("SaveVote", ctx, participantID, voterID, false).Return(vote, nil).Once()

	err := suite.service.Vote(ctx, participantID, voterID, false)

	suite.Require().NoError(err)
	suite.mockDareRepo.AssertExpectations(suite.T())
}

func (suite *DareServiceTestSuite) TestVote_SelfVote() {
	ctx := context.Background()
	participantID := uuid.NewString()
	voterID := uuid.NewString()
	selfErr := apperrors.NewSelfVoteError("you cannot vote for yourself")

	suite.mockDareRepo.On("SaveVote", ctx, participantID, voterID, false).Return(nil, selfErr).Once()

	err := suite.service.Vote(ctx, participantID, voterID, false)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrSelfVote)
	suite.mockDareRepo.AssertExpectations(suite.T())
}

func (suite *DareServiceTestSuite) TestVote_Duplicate() {
	ctx := context.Background()
	participantID := uuid.NewString()
	voterID := uuid.NewString()
	dupErr := apperrors.NewConflictError("you have already voted for this submission")

	suite.mockDareRepo.On("SaveVote", ctx, participantID, voterID, true).Return(nil, dupErr).Once()

	err := suite.service.Vote(ctx, participantID, voterID, true)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockDareRepo.AssertExpectations(suite.T())
}

// --- GetDare Tests ---

func (suite *DareServiceTestSuite) TestGetDare_Success() {
	ctx := context.Background()
	dareID := uuid.NewString()
	summary := &domain.DareSummary{Dare: domain.Dare{DareID: dareID, Status: domain.DareOpen}}
	participants := []domain.ParticipantDetail{
		{Participant: domain.Participant{ParticipantID: uuid.NewString(), VotesCount: 5}},
		{Participant: domain.Participant{ParticipantID: uuid.NewString(), VotesCount: 2}},
	}

	suite.mockDareRepo.On("FindDareSummaryByID", ctx, dareID).Return(summary, nil).Once()
	suite.mockDareRepo.On("ListParticipants", ctx, dareID).Return(participants, nil).Once()

	gotSummary, gotParticipants, err := suite.service.GetDare(ctx, dareID)

	suite.Require().NoError(err)
	suite.Equal(dareID, gotSummary.DareID)
	suite.Len(gotParticipants, 2)
	suite.mockDareRepo.AssertExpectations(suite.T())
}

func (suite *DareServiceTestSuite) TestGetDare_NotFound() {
	ctx := context.Background()
	dareID := uuid.NewString()

	suite.mockDareRepo.On("FindDareSummaryByID", ctx, dareID).Return(nil, apperrors.ErrNotFound).Once()

	gotSummary, gotParticipants, err := suite.service.GetDare(ctx, dareID)

	suite.Require().Error(err)
	suite.Nil(gotSummary)
	suite.Nil(gotParticipants)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockDareRepo.AssertNotCalled(suite.T(), "ListParticipants", mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestDareService(t *testing.T) {
	suite.Run(t, new(DareServiceTestSuite))
}
