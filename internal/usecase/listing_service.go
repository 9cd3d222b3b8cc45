package usecase

import (
	"context"
	"math"

	"github.com/google/uuid"
	"github.com/padhaihub/payment-service/internal/domain/model"
	"github.com/padhaihub/payment-service/internal/domain/repository"
	"go.uber.org/zap"
)

// ListingService serves read-only payment history for students and
// educators.
type ListingService struct {
	payments repository.PaymentRepository
	logger   *zap.Logger
}

// NewListingService creates a new listing service
func NewListingService(payments repository.PaymentRepository, logger *zap.Logger) *ListingService {
	return &ListingService{
		payments: payments,
		logger:   logger,
	}
}

// Pagination describes one result page.
type Pagination struct {
	Total       int64 `json:"total"`
	TotalPages  int   `json:"total_pages"`
	CurrentPage int   `json:"current_page"`
}

// StudentPaymentList is one page of a student's payment history.
type StudentPaymentList struct {
	Payments   []*model.Payment `json:"payments"`
	Pagination Pagination       `json:"pagination"`
}

// EducatorPaymentList is one page of an educator's sales plus their revenue
// summary.
type EducatorPaymentList struct {
	Payments       []*model.Payment           `json:"payments"`
	Pagination     Pagination                 `json:"pagination"`
	RevenueSummary *repository.RevenueSummary `json:"revenue_summary"`
}

func paginate(total int64, filters repository.ListFilters) Pagination {
	page := filters.Page
	if page < 1 {
		page = 1
	}
	limit := filters.Limit
	if limit <= 0 {
		limit = 10
	}
	return Pagination{
		Total:       total,
		TotalPages:  int(math.Ceil(float64(total) / float64(limit))),
		CurrentPage: page,
	}
}

// StudentPayments lists a student's payments, newest first.
func (s *ListingService) StudentPayments(ctx context.Context, studentID uuid.UUID, filters repository.ListFilters) (*StudentPaymentList, error) {
	payments, total, err := s.payments.ListByStudent(ctx, studentID, filters)
	if err != nil {
		return nil, err
	}

	return &StudentPaymentList{
		Payments:   payments,
		Pagination: paginate(total, filters),
	}, nil
}

// EducatorPayments lists an educator's sales with their revenue summary.
// Without an explicit status filter only successful payments are listed,
// since those are the ones that earn revenue.
func (s *ListingService) EducatorPayments(ctx context.Context, educatorID uuid.UUID, filters repository.ListFilters) (*EducatorPaymentList, error) {
	if filters.Status == nil {
		success := model.PaymentStatusSuccess
		filters.Status = &success
	}

	payments, total, err := s.payments.ListByEducator(ctx, educatorID, filters)
	if err != nil {
		return nil, err
	}

	summary, err := s.payments.RevenueSummary(ctx, educatorID)
	if err != nil {
		return nil, err
	}

	return &EducatorPaymentList{
		Payments:       payments,
		Pagination:     paginate(total, filters),
		RevenueSummary: summary,
	}, nil
}
