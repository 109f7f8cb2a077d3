package booking

import (
	"context"

	domain "github.com/LunaSuiteApps/salon-scheduler/internal/domain/booking"
	"github.com/LunaSuiteApps/salon-scheduler/internal/models"
)

type SaveService struct {
	repo domain.Repository
}

func NewSaveService(repo domain.Repository) *SaveService {
	return &SaveService{repo: repo}
}

// Execute persists a service definition, guarding the deposit invariant
// here rather than in the booking flow: a misconfigured deposit is a
// service-editing failure.
func (uc *SaveService) Execute(
	ctx context.Context,
	svc *models.Service,
) error {

	desc := domain.Descriptor{
		Service:         *svc,
		Price:           svc.Price,
		RequiresDeposit: svc.RequiresDeposit,
		DepositAmount:   svc.DepositAmount,
		DepositMethod:   svc.DepositMethod,
	}
	if err := domain.ValidateDeposit(&desc); err != nil {
		return err
	}

	if svc.IsPack && len(svc.SubServices) == 0 {
		return domain.ErrEmptyPack
	}

	// The first step has no predecessor; its sequential flag is
	// meaningless and is normalized away. Positions follow the array.
	for i := range svc.SubServices {
		svc.SubServices[i].Position = i
		if i == 0 {
			svc.SubServices[i].StartsAfterPrevious = false
		}
	}

	return uc.repo.SaveService(ctx, svc)
}
