package employee

import (
	"context"
	"errors"
	"time"

	employeeerrors "go-benefits/internal/employee/errors"
	"go-benefits/internal/identity"
	"go-benefits/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, caller identity.Identity, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, caller identity.Identity) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, caller identity.Identity, id string) (EmployeeResponse, error)
	Update(ctx context.Context, caller identity.Identity, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, caller identity.Identity, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, caller identity.Identity, req CreateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("create employee requested",
		zap.String("company_id", caller.CompanyID),
		zap.String("user_id", req.UserID),
	)

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidUserID
	}
	companyID, err := uuid.Parse(caller.CompanyID)
	if err != nil {
		return EmployeeResponse{}, apperror.ErrForbidden
	}
	dateOfJoining, err := parseDate(req.DateOfJoining)
	if err != nil {
		return EmployeeResponse{}, err
	}
	dateOfBirth, err := parseDate(req.DateOfBirth)
	if err != nil {
		return EmployeeResponse{}, err
	}

	// Company is always stamped from the caller, never from the request.
	e := &Employee{
		ID:               uuid.New(),
		UserID:           userID,
		CompanyID:        companyID,
		EmployeeCode:     req.EmployeeCode,
		Department:       req.Department,
		Designation:      req.Designation,
		DateOfJoining:    dateOfJoining,
		DateOfBirth:      dateOfBirth,
		Phone:            req.Phone,
		EmergencyContact: req.EmergencyContact,
		Status:           StatusActive,
	}

	if err := s.repo.Create(ctx, e); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("create employee success",
		zap.String("employee_id", e.ID.String()),
		zap.String("company_id", caller.CompanyID),
	)

	return mapToResponse(*e), nil
}

func (s *service) GetAll(ctx context.Context, caller identity.Identity) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindAllByCompany(ctx, caller.CompanyID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(employees), nil
}

func (s *service) GetByID(ctx context.Context, caller identity.Identity, id string) (EmployeeResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}

	// Ownership layer: an employee may only read their own profile, every
	// other non-super role is confined to their company.
	if caller.IsEmployee() && e.UserID.String() != caller.UserID {
		return EmployeeResponse{}, apperror.ErrForbidden
	}
	if !caller.IsSuperAdmin() && e.CompanyID.String() != caller.CompanyID {
		return EmployeeResponse{}, apperror.ErrForbidden
	}

	return mapToResponse(*e), nil
}

func (s *service) Update(ctx context.Context, caller identity.Identity, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested",
		zap.String("employee_id", id),
		zap.String("company_id", caller.CompanyID),
	)

	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}

	if !caller.IsSuperAdmin() && e.CompanyID.String() != caller.CompanyID {
		return EmployeeResponse{}, apperror.ErrForbidden
	}

	dateOfJoining, err := parseDate(req.DateOfJoining)
	if err != nil {
		return EmployeeResponse{}, err
	}
	dateOfBirth, err := parseDate(req.DateOfBirth)
	if err != nil {
		return EmployeeResponse{}, err
	}

	e.EmployeeCode = req.EmployeeCode
	e.Department = req.Department
	e.Designation = req.Designation
	e.DateOfJoining = dateOfJoining
	e.DateOfBirth = dateOfBirth
	e.Phone = req.Phone
	e.EmergencyContact = req.EmergencyContact
	e.Status = req.Status

	if err := s.repo.Update(ctx, e); err != nil {
		s.logger.Error("update employee persist failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("update employee success", zap.String("employee_id", id))

	return mapToResponse(*e), nil
}

func (s *service) Delete(ctx context.Context, caller identity.Identity, id string) error {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return employeeerrors.ErrEmployeeNotFound
		}
		return err
	}
	if !caller.IsSuperAdmin() && e.CompanyID.String() != caller.CompanyID {
		return apperror.ErrForbidden
	}

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return employeeerrors.ErrEmployeeNotFound
	}

	s.logger.Info("delete employee success",
		zap.String("employee_id", id),
		zap.String("deleted_by", caller.UserID),
	)
	return nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, employeeerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:               e.ID.String(),
		UserID:           e.UserID.String(),
		CompanyID:        e.CompanyID.String(),
		EmployeeCode:     e.EmployeeCode,
		Department:       e.Department,
		Designation:      e.Designation,
		DateOfJoining:    e.DateOfJoining.Format("2006-01-02"),
		DateOfBirth:      e.DateOfBirth.Format("2006-01-02"),
		Phone:            e.Phone,
		EmergencyContact: e.EmergencyContact,
		Status:           e.Status,
	}
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	resp := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		resp[i] = mapToResponse(e)
	}
	return resp
}
