package services

import (
	"context"
	"strings"

	"schoolconnect/internal/adapters/persistence/models"
	"schoolconnect/internal/adapters/persistence/repositories"
	"schoolconnect/internal/core/domain"
	"schoolconnect/internal/pkg/pagination"
	"schoolconnect/internal/pkg/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FundingService manages donations and school funding needs
type FundingService struct {
	donationRepo repositories.ResourceRepository[models.Donation]
	needRepo     repositories.ResourceRepository[models.SchoolNeed]
	log          *zap.Logger
}

// NewFundingService creates a new funding service
func NewFundingService(
	donationRepo repositories.ResourceRepository[models.Donation],
	needRepo repositories.ResourceRepository[models.SchoolNeed],
	log *zap.Logger,
) *FundingService {
	return &FundingService{
		donationRepo: donationRepo,
		needRepo:     needRepo,
		log:          log,
	}
}

// DonationInput represents a donation pledge
type DonationInput struct {
	DonorName  string  `json:"donor_name" validate:"required"`
	DonorEmail string  `json:"donor_email" validate:"required,email"`
	Amount     float64 `json:"amount" validate:"gt=0"`
	SchoolID   *string `json:"school_id"`
	Purpose    *string `json:"purpose"`
}

// CreateDonation records a donation. No gateway is called: every payment is marked completed.
func (s *FundingService) CreateDonation(ctx context.Context, input *DonationInput) (*models.Donation, error) {
	input.DonorEmail = strings.TrimSpace(input.DonorEmail)
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	txnID := newTransactionID()
	donation := &models.Donation{
		DonorName:     input.DonorName,
		DonorEmail:    input.DonorEmail,
		Amount:        input.Amount,
		SchoolID:      input.SchoolID,
		Purpose:       input.Purpose,
		PaymentStatus: domain.PaymentCompleted,
		TransactionID: &txnID,
	}
	if err := s.donationRepo.Create(ctx, donation); err != nil {
		return nil, err
	}

	s.log.Info("donation recorded",
		zap.String("donation_id", donation.ID),
		zap.String("transaction_id", txnID),
		zap.Float64("amount", donation.Amount),
	)
	return donation, nil
}

// ListDonations lists donations by school, newest first
func (s *FundingService) ListDonations(ctx context.Context, schoolID string, page pagination.Params) ([]models.Donation, int64, error) {
	return s.donationRepo.List(ctx, query(filterOf(map[string]string{"school_id": schoolID}), newestFirst, page))
}

// NeedInput represents a funding request from a school
type NeedInput struct {
	SchoolID     string   `json:"school_id" validate:"required"`
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Category     string   `json:"category" validate:"required"`
	TargetAmount *float64 `json:"target_amount" validate:"omitempty,gt=0"`
}

// NeedFilter narrows a needs listing
type NeedFilter struct {
	SchoolID string
	Status   string
}

// CreateNeed opens a new, active funding need
func (s *FundingService) CreateNeed(ctx context.Context, input *NeedInput) (*models.SchoolNeed, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	need := &models.SchoolNeed{
		SchoolID:     input.SchoolID,
		Title:        input.Title,
		Description:  input.Description,
		Category:     input.Category,
		TargetAmount: input.TargetAmount,
		Status:       domain.NeedActive,
	}
	if err := s.needRepo.Create(ctx, need); err != nil {
		return nil, err
	}
	return need, nil
}

// ListNeeds lists needs by school and status, newest first
func (s *FundingService) ListNeeds(ctx context.Context, filter NeedFilter, page pagination.Params) ([]models.SchoolNeed, int64, error) {
	filters := filterOf(map[string]string{"school_id": filter.SchoolID, "status": filter.Status})
	return s.needRepo.List(ctx, query(filters, newestFirst, page))
}

// newTransactionID returns a synthetic gateway reference such as TXN3F9A0C1B22DE
func newTransactionID() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "TXN" + strings.ToUpper(hex[:12])
}
