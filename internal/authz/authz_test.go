package authz_test

import (
	"testing"

	"go-benefits/internal/authz"
	"go-benefits/internal/identity"
	"go-benefits/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorize_RoleGate(t *testing.T) {
	svc, err := authz.NewService()
	require.NoError(t, err)

	tests := []struct {
		name     string
		role     string
		resource string
		action   string
		allowed  bool
	}{
		{"super admin creates company", identity.RoleSuperAdmin, authz.ResourceCompany, authz.ActionCreate, true},
		{"company admin cannot create company", identity.RoleCompanyAdmin, authz.ResourceCompany, authz.ActionCreate, false},
		{"employee cannot create company", identity.RoleEmployee, authz.ResourceCompany, authz.ActionCreate, false},
		{"employee reads company", identity.RoleEmployee, authz.ResourceCompany, authz.ActionRead, true},

		{"hr manager creates employee", identity.RoleHRManager, authz.ResourceEmployee, authz.ActionCreate, true},
		{"employee cannot create employee", identity.RoleEmployee, authz.ResourceEmployee, authz.ActionCreate, false},
		{"employee cannot delete employee", identity.RoleEmployee, authz.ResourceEmployee, authz.ActionDelete, false},
		{"company admin deletes employee", identity.RoleCompanyAdmin, authz.ResourceEmployee, authz.ActionDelete, true},
		{"super admin cannot delete employee", identity.RoleSuperAdmin, authz.ResourceEmployee, authz.ActionDelete, false},

		{"employee creates claim", identity.RoleEmployee, authz.ResourceClaim, authz.ActionCreate, true},
		{"employee cannot review claim", identity.RoleEmployee, authz.ResourceClaim, authz.ActionReview, false},
		{"super admin cannot review claim", identity.RoleSuperAdmin, authz.ResourceClaim, authz.ActionReview, false},
		{"hr manager reviews claim", identity.RoleHRManager, authz.ResourceClaim, authz.ActionReview, true},
		{"company admin reviews claim", identity.RoleCompanyAdmin, authz.ResourceClaim, authz.ActionReview, true},

		{"company admin creates wellness partner", identity.RoleCompanyAdmin, authz.ResourceWellnessPartner, authz.ActionCreate, true},
		{"hr manager cannot create wellness partner", identity.RoleHRManager, authz.ResourceWellnessPartner, authz.ActionCreate, false},

		{"employee creates booking", identity.RoleEmployee, authz.ResourceBooking, authz.ActionCreate, true},
		{"employee updates booking", identity.RoleEmployee, authz.ResourceBooking, authz.ActionUpdate, true},

		{"company admin creates financial", identity.RoleCompanyAdmin, authz.ResourceFinancial, authz.ActionCreate, true},
		{"hr manager cannot create financial", identity.RoleHRManager, authz.ResourceFinancial, authz.ActionCreate, false},
		{"employee reads financial", identity.RoleEmployee, authz.ResourceFinancial, authz.ActionRead, true},

		{"employee reads dashboard", identity.RoleEmployee, authz.ResourceDashboard, authz.ActionRead, true},

		{"unknown role denied everywhere", "auditor", authz.ResourceCompany, authz.ActionRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Authorize(identity.Identity{UserID: "u-1", Role: tt.role}, tt.resource, tt.action)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, apperror.ErrForbidden)
			}
		})
	}
}
