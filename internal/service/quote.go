package service

import (
	"context"

	"github.com/hireloop/pricing-engine/internal/api/dto"
)

// QuoteService orchestrates the full pricing flow the proposal layer
// consumes: breakdown, optional coupon, milestone schedule. Any failing
// step aborts the quote so a breakdown is never returned with a schedule
// it does not match.
type QuoteService interface {
	CreateQuote(ctx context.Context, req dto.CreateQuoteRequest) (*dto.QuoteResponse, error)
}

type quoteService struct {
	ServiceParams
	pricingService PricingService
	billingService BillingService
	couponService  CouponService
}

func NewQuoteService(params ServiceParams) QuoteService {
	return &quoteService{
		ServiceParams:  params,
		pricingService: NewPricingService(params),
		billingService: NewBillingService(params),
		couponService:  NewCouponService(params),
	}
}

func (s *quoteService) CreateQuote(ctx context.Context, req dto.CreateQuoteRequest) (*dto.QuoteResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	opp := req.ToOpportunity()

	breakdown, err := s.pricingService.Calculate(ctx, opp)
	if err != nil {
		return nil, err
	}

	if req.CouponCode != "" {
		breakdown, err = s.couponService.ApplyByCode(ctx, breakdown, req.CouponCode)
		if err != nil {
			return nil, err
		}
	}

	milestones, err := s.billingService.GenerateForBusinessUnit(ctx, breakdown)
	if err != nil {
		return nil, err
	}

	s.Logger.WithContext(ctx).Infow("created quote",
		"opportunity_id", opp.ID,
		"business_unit_id", opp.BusinessUnitID,
		"final_total", breakdown.FinalTotal.String(),
		"milestones", len(milestones),
	)

	return &dto.QuoteResponse{
		Breakdown:  breakdown,
		Milestones: milestones,
	}, nil
}
