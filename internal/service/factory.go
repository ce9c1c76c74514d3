package service

import (
	"fmt"

	"github.com/fsdevblog/usdt-yield/pkg/uow"
)

type AppServices struct {
	UserService     *UserService
	LedgerService   *LedgerService
	PlanService     *PlanService
	ReferralService *ReferralService
}

func Factory(unitOfWork uow.UOW, jwtSecret []byte, limits LedgerLimits) (*AppServices, error) {
	userService, userServiceErr := NewUserService(unitOfWork, jwtSecret)
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	ledgerService, ledgerServiceErr := NewLedgerService(unitOfWork, limits)
	if ledgerServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", ledgerServiceErr.Error())
	}

	planService, planServiceErr := NewPlanService(unitOfWork)
	if planServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", planServiceErr.Error())
	}

	referralService, referralServiceErr := NewReferralService(unitOfWork)
	if referralServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", referralServiceErr.Error())
	}

	return &AppServices{
		UserService:     userService,
		LedgerService:   ledgerService,
		PlanService:     planService,
		ReferralService: referralService,
	}, nil
}
