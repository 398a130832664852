package authz

import (
	"fmt"

	"go-benefits/internal/identity"
	"go-benefits/internal/shared/apperror"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// Resources and actions the coarse role gate knows about. The fine
// ownership layer (company scope, profile ownership) lives in the services;
// both layers must pass independently.
const (
	ResourceCompany         = "company"
	ResourceEmployee        = "employee"
	ResourceClaim           = "claim"
	ResourceWellnessPartner = "wellness_partner"
	ResourceBooking         = "booking"
	ResourceFinancial       = "financial"
	ResourceDashboard       = "dashboard"

	ActionCreate = "create"
	ActionRead   = "read"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionReview = "review"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// rolePolicies is the whole permission table. Rows are (role, resource,
// action); a missing row means deny.
var rolePolicies = [][3]string{
	{identity.RoleSuperAdmin, ResourceCompany, ActionCreate},

	{identity.RoleSuperAdmin, ResourceCompany, ActionRead},
	{identity.RoleCompanyAdmin, ResourceCompany, ActionRead},
	{identity.RoleHRManager, ResourceCompany, ActionRead},
	{identity.RoleEmployee, ResourceCompany, ActionRead},

	{identity.RoleCompanyAdmin, ResourceEmployee, ActionCreate},
	{identity.RoleHRManager, ResourceEmployee, ActionCreate},
	{identity.RoleCompanyAdmin, ResourceEmployee, ActionUpdate},
	{identity.RoleHRManager, ResourceEmployee, ActionUpdate},
	{identity.RoleCompanyAdmin, ResourceEmployee, ActionDelete},
	{identity.RoleHRManager, ResourceEmployee, ActionDelete},

	{identity.RoleSuperAdmin, ResourceEmployee, ActionRead},
	{identity.RoleCompanyAdmin, ResourceEmployee, ActionRead},
	{identity.RoleHRManager, ResourceEmployee, ActionRead},
	{identity.RoleEmployee, ResourceEmployee, ActionRead},

	{identity.RoleSuperAdmin, ResourceClaim, ActionCreate},
	{identity.RoleCompanyAdmin, ResourceClaim, ActionCreate},
	{identity.RoleHRManager, ResourceClaim, ActionCreate},
	{identity.RoleEmployee, ResourceClaim, ActionCreate},

	{identity.RoleSuperAdmin, ResourceClaim, ActionRead},
	{identity.RoleCompanyAdmin, ResourceClaim, ActionRead},
	{identity.RoleHRManager, ResourceClaim, ActionRead},
	{identity.RoleEmployee, ResourceClaim, ActionRead},

	{identity.RoleCompanyAdmin, ResourceClaim, ActionReview},
	{identity.RoleHRManager, ResourceClaim, ActionReview},

	{identity.RoleSuperAdmin, ResourceWellnessPartner, ActionCreate},
	{identity.RoleCompanyAdmin, ResourceWellnessPartner, ActionCreate},
	{identity.RoleSuperAdmin, ResourceWellnessPartner, ActionUpdate},
	{identity.RoleCompanyAdmin, ResourceWellnessPartner, ActionUpdate},

	{identity.RoleSuperAdmin, ResourceBooking, ActionCreate},
	{identity.RoleCompanyAdmin, ResourceBooking, ActionCreate},
	{identity.RoleHRManager, ResourceBooking, ActionCreate},
	{identity.RoleEmployee, ResourceBooking, ActionCreate},

	{identity.RoleSuperAdmin, ResourceBooking, ActionRead},
	{identity.RoleCompanyAdmin, ResourceBooking, ActionRead},
	{identity.RoleHRManager, ResourceBooking, ActionRead},
	{identity.RoleEmployee, ResourceBooking, ActionRead},

	{identity.RoleSuperAdmin, ResourceBooking, ActionUpdate},
	{identity.RoleCompanyAdmin, ResourceBooking, ActionUpdate},
	{identity.RoleHRManager, ResourceBooking, ActionUpdate},
	{identity.RoleEmployee, ResourceBooking, ActionUpdate},

	{identity.RoleSuperAdmin, ResourceFinancial, ActionCreate},
	{identity.RoleCompanyAdmin, ResourceFinancial, ActionCreate},

	{identity.RoleSuperAdmin, ResourceFinancial, ActionRead},
	{identity.RoleCompanyAdmin, ResourceFinancial, ActionRead},
	{identity.RoleHRManager, ResourceFinancial, ActionRead},
	{identity.RoleEmployee, ResourceFinancial, ActionRead},

	{identity.RoleSuperAdmin, ResourceDashboard, ActionRead},
	{identity.RoleCompanyAdmin, ResourceDashboard, ActionRead},
	{identity.RoleHRManager, ResourceDashboard, ActionRead},
	{identity.RoleEmployee, ResourceDashboard, ActionRead},
}

//go:generate mockgen -source=authz.go -destination=mock/authz_service_mock.go -package=mock
type Service interface {
	// Authorize returns nil when the role may ever perform the action on
	// the resource class, apperror.ErrForbidden otherwise. It never
	// distinguishes a role failure from an ownership failure upstream.
	Authorize(id identity.Identity, resource, action string) error
}

type service struct {
	enforcer *casbin.Enforcer
}

// NewService builds the enforcer once from the static table. The policy
// never changes at runtime, so enforcement needs no locking.
func NewService() (Service, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range rolePolicies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, fmt.Errorf("add policy %v: %w", p, err)
		}
	}

	return &service{enforcer: enforcer}, nil
}

func (s *service) Authorize(id identity.Identity, resource, action string) error {
	allowed, err := s.enforcer.Enforce(id.Role, resource, action)
	if err != nil {
		return err
	}
	if !allowed {
		return apperror.ErrForbidden
	}
	return nil
}
