package service

import (
	"context"
	"errors"
	"time"

	"barberflow-be/internal/dto"
	"barberflow-be/internal/pkg/logger"
	"barberflow-be/internal/repository/specification"
	"barberflow-be/internal/repository/unitofwork"
)

type IAdminService interface {
	GetPlatformStats(ctx context.Context) (*dto.PlatformStatsResponse, error)
	GetBarbershops(ctx context.Context, page, limit int) ([]*dto.AdminBarbershopResponse, error)
	UpdateBarbershopStatus(ctx context.Context, req *dto.UpdateBarbershopStatusRequest) error
	GetRecentFinancialRecords(ctx context.Context, limit int) ([]*dto.FinancialRecordResponse, error)
	GetSystemLogs(ctx context.Context, page, limit int, level string) ([]*dto.SystemLogResponse, error)
	GetLogDetail(ctx context.Context, logId string) (*dto.SystemLogResponse, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IAdminService {
	return &adminService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (s *adminService) GetPlatformStats(ctx context.Context) (*dto.PlatformStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	totalShops, err := uow.BarbershopRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	totalUsers, err := uow.UserRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	activeSubs, err := uow.SubscriptionRepository().CountActiveSubscriptions(ctx)
	if err != nil {
		return nil, err
	}
	grossRevenue, err := uow.SubscriptionRepository().GetGrossRevenue(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.PlatformStatsResponse{
		TotalBarbershops:    totalShops,
		TotalUsers:          totalUsers,
		ActiveSubscriptions: activeSubs,
		GrossRevenue:        grossRevenue,
	}, nil
}

func (s *adminService) GetBarbershops(ctx context.Context, page, limit int) ([]*dto.AdminBarbershopResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if limit <= 0 {
		limit = 50
	}
	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	shops, err := uow.BarbershopRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.AdminBarbershopResponse, len(shops))
	for i, shop := range shops {
		res[i] = &dto.AdminBarbershopResponse{
			Id:        shop.Id,
			Name:      shop.Name,
			Slug:      shop.Slug,
			IsActive:  shop.IsActive,
			CreatedAt: shop.CreatedAt,
		}
	}
	return res, nil
}

// UpdateBarbershopStatus toggles a tenant. Suspended tenants fail login and
// every jwt-guarded request until re-enabled.
func (s *adminService) UpdateBarbershopStatus(ctx context.Context, req *dto.UpdateBarbershopStatusRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	shop, err := uow.BarbershopRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return err
	}
	if shop == nil {
		return errors.New("barbershop not found")
	}

	shop.IsActive = req.IsActive
	shop.UpdatedAt = time.Now()
	if err := uow.BarbershopRepository().Update(ctx, shop); err != nil {
		return err
	}

	s.logger.Info("AdminService", "Barbershop status updated", map[string]interface{}{
		"barbershop_id": req.Id,
		"is_active":     req.IsActive,
	})
	return nil
}

func (s *adminService) GetRecentFinancialRecords(ctx context.Context, limit int) ([]*dto.FinancialRecordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if limit <= 0 {
		limit = 20
	}
	records, err := uow.SubscriptionRepository().FindAllFinancialRecords(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.FinancialRecordResponse, len(records))
	for i, r := range records {
		res[i] = &dto.FinancialRecordResponse{
			Id:               r.Id,
			SubscriptionId:   r.SubscriptionId,
			Status:           string(r.Status),
			Amount:           r.Amount,
			CommissionAmount: r.CommissionAmount,
			NetAmount:        r.NetAmount,
			PeriodStart:      r.PeriodStart,
			PeriodEnd:        r.PeriodEnd,
			DueDate:          r.DueDate,
			PaidAt:           r.PaidAt,
		}
	}
	return res, nil
}

func logEntryToResponse(e logger.LogEntry) *dto.SystemLogResponse {
	return &dto.SystemLogResponse{
		Id:        e.Id,
		Timestamp: e.Timestamp,
		Level:     e.Level,
		Message:   e.Message,
		Module:    e.Module,
		Details:   e.Details,
	}
}

func (s *adminService) GetSystemLogs(ctx context.Context, page, limit int, level string) ([]*dto.SystemLogResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	entries, err := s.logger.GetLogs(level, limit, offset)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.SystemLogResponse, len(entries))
	for i, e := range entries {
		res[i] = logEntryToResponse(e)
	}
	return res, nil
}

func (s *adminService) GetLogDetail(ctx context.Context, logId string) (*dto.SystemLogResponse, error) {
	entry, err := s.logger.GetLogById(logId)
	if err != nil {
		return nil, err
	}
	return logEntryToResponse(*entry), nil
}
