package wellness_test

import (
	"context"
	"testing"

	"go-benefits/internal/wellness"
	wellnesserrors "go-benefits/internal/wellness/errors"

	wellnessMock "go-benefits/internal/wellness/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func setupWellnessService(t *testing.T) (*wellnessMock.MockRepository, wellness.Service) {
	ctrl := gomock.NewController(t)
	repo := wellnessMock.NewMockRepository(ctrl)
	return repo, wellness.NewService(repo)
}

func TestWellnessService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("partner is created in the global catalog", func(t *testing.T) {
		repo, svc := setupWellnessService(t)

		var created *wellness.Partner
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *wellness.Partner) error {
				created = p
				return nil
			})

		resp, err := svc.Create(ctx, wellness.CreatePartnerRequest{
			Name:         "Mindful Hours",
			ServiceType:  "mental_health",
			ContactEmail: "hello@mindfulhours.example",
			Pricing:      "75/session",
		})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.NotEqual(t, uuid.Nil, created.ID)
		assert.Equal(t, "mental_health", resp.ServiceType)
		assert.Equal(t, "Mindful Hours", resp.Name)
	})
}

func TestWellnessService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("existing partner", func(t *testing.T) {
		repo, svc := setupWellnessService(t)
		p := &wellness.Partner{ID: uuid.New(), Name: "City Gym", ServiceType: "gym"}
		repo.EXPECT().FindByID(ctx, p.ID.String()).Return(p, nil)

		resp, err := svc.GetByID(ctx, p.ID.String())
		require.NoError(t, err)
		assert.Equal(t, p.ID.String(), resp.ID)
	})

	t.Run("missing partner", func(t *testing.T) {
		repo, svc := setupWellnessService(t)
		id := uuid.NewString()
		repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetByID(ctx, id)
		assert.ErrorIs(t, err, wellnesserrors.ErrPartnerNotFound)
	})
}

func TestWellnessService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("update replaces the whole record", func(t *testing.T) {
		repo, svc := setupWellnessService(t)
		p := &wellness.Partner{
			ID:          uuid.New(),
			Name:        "City Gym",
			ServiceType: "gym",
			Description: "downtown branch",
		}
		repo.EXPECT().FindByID(ctx, p.ID.String()).Return(p, nil)

		var updated *wellness.Partner
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, got *wellness.Partner) error {
				updated = got
				return nil
			})

		resp, err := svc.Update(ctx, p.ID.String(), wellness.UpdatePartnerRequest{
			Name:         "City Gym North",
			ServiceType:  "gym",
			ContactEmail: "north@citygym.example",
		})

		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "City Gym North", updated.Name)
		assert.Empty(t, updated.Description)
		assert.Equal(t, "north@citygym.example", resp.ContactEmail)
	})

	t.Run("missing partner", func(t *testing.T) {
		repo, svc := setupWellnessService(t)
		id := uuid.NewString()
		repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Update(ctx, id, wellness.UpdatePartnerRequest{Name: "x", ServiceType: "gym"})
		assert.ErrorIs(t, err, wellnesserrors.ErrPartnerNotFound)
	})
}
