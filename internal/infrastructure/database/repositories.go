package database

import (
	"github.com/padhaihub/payment-service/internal/adapter/repository"
	domainRepo "github.com/padhaihub/payment-service/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Repositories holds all repository instances
type Repositories struct {
	Payment    domainRepo.PaymentRepository
	Enrollment domainRepo.EnrollmentRepository
	Revenue    domainRepo.RevenueRepository
	Student    domainRepo.StudentRepository
	Resource   domainRepo.ResourceResolver
}

// NewRepositories creates new repository instances with database connection
func NewRepositories(db *gorm.DB, logger *zap.Logger) *Repositories {
	return &Repositories{
		Payment:    repository.NewPaymentRepository(db, logger),
		Enrollment: repository.NewEnrollmentRepository(db, logger),
		Revenue:    repository.NewRevenueRepository(db, logger),
		Student:    repository.NewStudentRepository(db, logger),
		Resource:   repository.NewResourceRepository(db, logger),
	}
}
