package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/chembio-ls/quotation-api/internal/domain"
	"github.com/chembio-ls/quotation-api/internal/mapper"
	"github.com/chembio-ls/quotation-api/internal/repository"
)

type EmployeeService struct {
	employeeRepo *repository.EmployeeRepository
	logger       *zap.Logger
}

func NewEmployeeService(employeeRepo *repository.EmployeeRepository, logger *zap.Logger) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

func (s *EmployeeService) Create(ctx context.Context, req *domain.CreateEmployeeRequest) (*domain.EmployeeDTO, error) {
	employee := &domain.Employee{
		Name:        req.Name,
		Mobile:      req.Mobile,
		Email:       req.Email,
		Designation: req.Designation,
	}
	if employee.Designation == "" {
		employee.Designation = domain.DefaultDesignation
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	dto := mapper.ToEmployeeDTO(employee)
	return &dto, nil
}

func (s *EmployeeService) GetByID(ctx context.Context, id uuid.UUID) (*domain.EmployeeDTO, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	dto := mapper.ToEmployeeDTO(employee)
	return &dto, nil
}

func (s *EmployeeService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateEmployeeRequest) (*domain.EmployeeDTO, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	employee.Name = req.Name
	employee.Mobile = req.Mobile
	employee.Email = req.Email
	if req.Designation != "" {
		employee.Designation = req.Designation
	}

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	dto := mapper.ToEmployeeDTO(employee)
	return &dto, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

func (s *EmployeeService) List(ctx context.Context, page, pageSize int, search string) (*domain.PaginatedResponse, error) {
	page, pageSize = clampPage(page, pageSize)

	employees, total, err := s.employeeRepo.List(ctx, page, pageSize, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	dtos := make([]domain.EmployeeDTO, len(employees))
	for i := range employees {
		dtos[i] = mapper.ToEmployeeDTO(&employees[i])
	}

	return paginated(dtos, total, page, pageSize), nil
}
