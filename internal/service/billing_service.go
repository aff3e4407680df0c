package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"barberflow-be/internal/dto"
	"barberflow-be/internal/entity"
	"barberflow-be/internal/pkg/logger"
	"barberflow-be/internal/repository/specification"
	"barberflow-be/internal/repository/unitofwork"

	"barberflow-be/pkg/cache"

	"github.com/google/uuid"
)

const billingCacheTTL = 5 * time.Minute

type IBillingService interface {
	GetSummary(ctx context.Context, barbershopId uuid.UUID, req *dto.BillingSummaryRequest) (*dto.BillingSummaryResponse, error)
}

type billingService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *cache.Cache
	logger     logger.ILogger
}

func NewBillingService(uowFactory unitofwork.RepositoryFactory, c *cache.Cache, log logger.ILogger) IBillingService {
	return &billingService{
		uowFactory: uowFactory,
		cache:      c,
		logger:     log,
	}
}

// aggregateBilling folds closed commands and their items into a summary.
// Revenue is counted once per command; commissions once per item. The
// ranking is sorted by commission total, descending.
func aggregateBilling(barbershopId uuid.UUID, commands []*entity.Command, items []*entity.CommandItem, providerNames map[uuid.UUID]string) *entity.BillingSummary {
	summary := &entity.BillingSummary{
		BarbershopId: barbershopId,
		GeneratedAt:  time.Now(),
	}

	commandProvider := make(map[uuid.UUID]uuid.UUID, len(commands))
	for _, c := range commands {
		if c.Status != entity.CommandStatusClosed {
			continue
		}
		summary.TotalRevenue += c.TotalAmount
		summary.SaleCount++
		commandProvider[c.Id] = c.ProviderId
	}

	perProvider := make(map[uuid.UUID]*entity.ProviderCommission)
	providerRow := func(id uuid.UUID) *entity.ProviderCommission {
		row, ok := perProvider[id]
		if !ok {
			row = &entity.ProviderCommission{
				ProviderId:   id,
				ProviderName: providerNames[id],
			}
			perProvider[id] = row
		}
		return row
	}

	for _, item := range items {
		if _, ok := commandProvider[item.CommandId]; !ok {
			// Item of a command outside the closed set, skip.
			continue
		}
		summary.TotalCommissions += item.CommissionAmount

		row := providerRow(item.ProviderId)
		row.CommissionTotal += item.CommissionAmount
		row.RevenueTotal += item.TotalPrice
	}

	// Sale count per provider comes from commands, not items, so a
	// multi-item sale still counts once.
	for _, providerId := range commandProvider {
		providerRow(providerId).SaleCount++
	}

	if summary.SaleCount > 0 {
		summary.AverageTicket = summary.TotalRevenue / float64(summary.SaleCount)
	}

	summary.Ranking = make([]entity.ProviderCommission, 0, len(perProvider))
	for _, row := range perProvider {
		summary.Ranking = append(summary.Ranking, *row)
	}
	sort.Slice(summary.Ranking, func(i, j int) bool {
		if summary.Ranking[i].CommissionTotal != summary.Ranking[j].CommissionTotal {
			return summary.Ranking[i].CommissionTotal > summary.Ranking[j].CommissionTotal
		}
		return summary.Ranking[i].ProviderName < summary.Ranking[j].ProviderName
	})

	return summary
}

func summaryToResponse(s *entity.BillingSummary, stale bool) *dto.BillingSummaryResponse {
	ranking := make([]dto.ProviderCommissionResponse, len(s.Ranking))
	for i, r := range s.Ranking {
		ranking[i] = dto.ProviderCommissionResponse{
			ProviderId:      r.ProviderId,
			ProviderName:    r.ProviderName,
			CommissionTotal: r.CommissionTotal,
			RevenueTotal:    r.RevenueTotal,
			SaleCount:       r.SaleCount,
		}
	}
	return &dto.BillingSummaryResponse{
		TotalRevenue:     s.TotalRevenue,
		TotalCommissions: s.TotalCommissions,
		SaleCount:        s.SaleCount,
		AverageTicket:    s.AverageTicket,
		Ranking:          ranking,
		GeneratedAt:      s.GeneratedAt,
		Stale:            stale,
	}
}

func parseDateBound(value string, endOfDay bool) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	if endOfDay {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return &t, nil
}

func (s *billingService) GetSummary(ctx context.Context, barbershopId uuid.UUID, req *dto.BillingSummaryRequest) (*dto.BillingSummaryResponse, error) {
	from, err := parseDateBound(req.From, false)
	if err != nil {
		return nil, err
	}
	to, err := parseDateBound(req.To, true)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("billing:%s:%s:%s", barbershopId, req.From, req.To)
	// The last good summary lives in its own never-expiring slot, outside
	// the billing: prefix, so neither the janitor nor a tenant invalidation
	// can leave a failing refresh with nothing to serve.
	lastGoodKey := fmt.Sprintf("billing_last:%s:%s:%s", barbershopId, req.From, req.To)
	if cached, ok := s.cache.Get(cacheKey); ok {
		if summary, ok := cached.(*entity.BillingSummary); ok {
			return summaryToResponse(summary, false), nil
		}
	}

	summary, err := s.compute(ctx, barbershopId, from, to)
	if err != nil {
		s.logger.Error("BillingService", "Aggregation failed, serving last good summary", map[string]interface{}{
			"barbershop_id": barbershopId,
			"error":         err.Error(),
		})
		if cached, ok := s.cache.Get(lastGoodKey); ok {
			if stale, ok := cached.(*entity.BillingSummary); ok {
				return summaryToResponse(stale, true), nil
			}
		}
		return nil, err
	}

	s.cache.Set(cacheKey, summary, billingCacheTTL)
	s.cache.SetForever(lastGoodKey, summary)
	return summaryToResponse(summary, false), nil
}

func (s *billingService) compute(ctx context.Context, barbershopId uuid.UUID, from, to *time.Time) (*entity.BillingSummary, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	commands, err := uow.CommandRepository().FindAll(ctx,
		specification.ByBarbershop{BarbershopID: barbershopId},
		specification.ByStatus{Status: string(entity.CommandStatusClosed)},
		specification.ClosedBetween{From: from, To: to},
	)
	if err != nil {
		return nil, err
	}

	commandIds := make([]uuid.UUID, len(commands))
	for i, c := range commands {
		commandIds[i] = c.Id
	}

	var items []*entity.CommandItem
	if len(commandIds) > 0 {
		items, err = uow.CommandRepository().FindItemsByCommandIds(ctx, commandIds)
		if err != nil {
			return nil, err
		}
	}

	providers, err := uow.ProviderRepository().FindAll(ctx,
		specification.ByBarbershop{BarbershopID: barbershopId},
	)
	if err != nil {
		return nil, err
	}
	providerNames := make(map[uuid.UUID]string, len(providers))
	for _, p := range providers {
		providerNames[p.Id] = p.Name
	}

	summary := aggregateBilling(barbershopId, commands, items, providerNames)
	summary.From = from
	summary.To = to
	return summary, nil
}
