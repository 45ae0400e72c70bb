//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"campground/internal/domain/booking"
	"campground/internal/pkg/clock"
	"campground/internal/pkg/qrpass"
	"campground/internal/usecase"
	"campground/internal/usecase/queries"
	"campground/tests/common/builder"
	queriesmock "campground/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AccessPassTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockReservationQueries
	clock       *clock.MockClock
	issuer      *qrpass.Issuer
	uc          usecase.AccessPassUseCase
}

func (s *AccessPassTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	// Default instant: one hour before check-in on 2026-07-10.
	s.clock = clock.NewMockClock(time.Date(2026, 7, 9, 23, 0, 0, 0, time.UTC))
	s.issuer = qrpass.NewIssuer("test-pass-secret", 45*time.Second)
	s.uc = usecase.NewAccessPassUseCase(s.mockQueries, s.issuer, s.clock)
}

func (s *AccessPassTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAccessPassSuite(t *testing.T) {
	suite.Run(t, new(AccessPassTestSuite))
}

func (s *AccessPassTestSuite) paidView() *builder.BookingBuilder {
	return builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.Status = booking.StatusPaid
	})
}

func (s *AccessPassTestSuite) TestGrantsInsideWindow() {
	b := s.paidView()
	view := b.BuildView()
	s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(view, nil)

	result, err := s.uc.Issue(context.Background(), b.ID, b.UserID, false)
	s.Require().NoError(err)

	s.True(result.Granted)
	s.NotEmpty(result.Pass)
	s.Require().NotNil(result.ExpiresAt)
	s.Equal(s.clock.Now().Add(45*time.Second).Unix(), result.ExpiresAt.Unix())

	// The minted pass verifies back to the reservation.
	got, err := s.issuer.Verify(result.Pass)
	s.Require().NoError(err)
	s.Equal(b.ID, got)
}

func (s *AccessPassTestSuite) TestDeniesUnknownReservation() {
	id := uuid.New()
	s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, queries.ErrReservationNotFound)

	result, err := s.uc.Issue(context.Background(), id, uuid.New(), false)
	s.Require().NoError(err)

	s.False(result.Granted)
	s.Empty(result.Pass)
	s.Equal(usecase.DenyReasonNotFound, result.Reason)
}

func (s *AccessPassTestSuite) TestDeniesForeignReservationForGuests() {
	b := s.paidView()
	s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(b.BuildView(), nil)

	result, err := s.uc.Issue(context.Background(), b.ID, uuid.New(), false)
	s.Require().NoError(err)

	s.False(result.Granted)
	s.Equal(usecase.DenyReasonNotFound, result.Reason)
}

func (s *AccessPassTestSuite) TestOperatorMayIssueForAnyReservation() {
	b := s.paidView()
	s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(b.BuildView(), nil)

	result, err := s.uc.Issue(context.Background(), b.ID, uuid.New(), true)
	s.Require().NoError(err)

	s.True(result.Granted)
}

func (s *AccessPassTestSuite) TestDeniesUnpaidReservation() {
	b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.Status = booking.StatusPending
	})
	s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(b.BuildView(), nil)

	result, err := s.uc.Issue(context.Background(), b.ID, b.UserID, false)
	s.Require().NoError(err)

	s.False(result.Granted)
	s.Equal(usecase.DenyReasonNotPaid, result.Reason)
}

func (s *AccessPassTestSuite) TestDeniesTooEarly() {
	b := s.paidView()
	s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(b.BuildView(), nil)

	// Three hours before check-in, one hour outside the lead window.
	s.clock.Set(time.Date(2026, 7, 9, 21, 0, 0, 0, time.UTC))

	result, err := s.uc.Issue(context.Background(), b.ID, b.UserID, false)
	s.Require().NoError(err)

	s.False(result.Granted)
	s.Equal(usecase.DenyReasonOutsideStay, result.Reason)
}

func (s *AccessPassTestSuite) TestDeniesAfterStay() {
	b := s.paidView()
	s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(b.BuildView(), nil)

	s.clock.Set(time.Date(2026, 7, 14, 9, 0, 0, 0, time.UTC))

	result, err := s.uc.Issue(context.Background(), b.ID, b.UserID, false)
	s.Require().NoError(err)

	s.False(result.Granted)
	s.Equal(usecase.DenyReasonOutsideStay, result.Reason)
}

func (s *AccessPassTestSuite) TestDeniesAfterAccessOverride() {
	b := s.paidView()
	view := b.BuildView()
	override := time.Date(2026, 7, 11, 12, 0, 0, 0, time.UTC)
	view.AccessExpiresAt = &override
	s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(view, nil)

	s.clock.Set(override.Add(time.Minute))

	result, err := s.uc.Issue(context.Background(), b.ID, b.UserID, false)
	s.Require().NoError(err)

	s.False(result.Granted)
	s.Equal(usecase.DenyReasonAccessClosed, result.Reason)
}
