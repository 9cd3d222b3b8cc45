package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/padhaihub/payment-service/internal/domain/model"
)

// StudentRepository reads purchaser accounts. GetByID returns (nil, nil)
// when the student does not exist.
type StudentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Student, error)
}
