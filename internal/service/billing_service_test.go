package service

import (
	"context"
	"testing"
	"time"

	"barberflow-be/internal/dto"
	"barberflow-be/internal/entity"
	"barberflow-be/internal/model"
	"barberflow-be/internal/repository/unitofwork"

	"barberflow-be/pkg/cache"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func closedCommand(shopId, providerId uuid.UUID, total float64) *entity.Command {
	now := time.Now()
	return &entity.Command{
		Id:           uuid.New(),
		BarbershopId: shopId,
		ClientId:     uuid.New(),
		ProviderId:   providerId,
		Status:       entity.CommandStatusClosed,
		TotalAmount:  total,
		ClosedAt:     &now,
	}
}

func commandItem(commandId, providerId uuid.UUID, price, commission float64) *entity.CommandItem {
	return &entity.CommandItem{
		Id:               uuid.New(),
		CommandId:        commandId,
		ServiceId:        uuid.New(),
		ProviderId:       providerId,
		Quantity:         1,
		UnitPrice:        price,
		TotalPrice:       price,
		CommissionAmount: commission,
	}
}

func TestAggregateBillingRevenueOncePerCommand(t *testing.T) {
	shopId := uuid.New()
	providerId := uuid.New()

	// One command with two items. Revenue must come from the command total,
	// not from summing the items again.
	cmd := closedCommand(shopId, providerId, 100)
	items := []*entity.CommandItem{
		commandItem(cmd.Id, providerId, 60, 12),
		commandItem(cmd.Id, providerId, 40, 8),
	}

	summary := aggregateBilling(shopId, []*entity.Command{cmd}, items, map[uuid.UUID]string{providerId: "Carlos"})

	assert.Equal(t, 100.0, summary.TotalRevenue)
	assert.Equal(t, 20.0, summary.TotalCommissions)
	assert.Equal(t, 1, summary.SaleCount)
	assert.Equal(t, 100.0, summary.AverageTicket)

	require.Len(t, summary.Ranking, 1)
	assert.Equal(t, "Carlos", summary.Ranking[0].ProviderName)
	assert.Equal(t, 20.0, summary.Ranking[0].CommissionTotal)
	assert.Equal(t, 1, summary.Ranking[0].SaleCount)
}

func TestAggregateBillingSkipsNonClosedCommands(t *testing.T) {
	shopId := uuid.New()
	providerId := uuid.New()

	open := closedCommand(shopId, providerId, 50)
	open.Status = entity.CommandStatusOpen
	openItem := commandItem(open.Id, providerId, 50, 10)

	closed := closedCommand(shopId, providerId, 80)
	closedItem := commandItem(closed.Id, providerId, 80, 16)

	summary := aggregateBilling(shopId,
		[]*entity.Command{open, closed},
		[]*entity.CommandItem{openItem, closedItem},
		map[uuid.UUID]string{providerId: "Carlos"},
	)

	assert.Equal(t, 80.0, summary.TotalRevenue)
	assert.Equal(t, 16.0, summary.TotalCommissions)
	assert.Equal(t, 1, summary.SaleCount)
}

func TestAggregateBillingZeroItemCommandStillCounts(t *testing.T) {
	shopId := uuid.New()
	providerId := uuid.New()

	// A fully subscription-redeemed visit closes at zero with no priced
	// items; it still counts as a sale.
	cmd := closedCommand(shopId, providerId, 0)

	summary := aggregateBilling(shopId, []*entity.Command{cmd}, nil, map[uuid.UUID]string{providerId: "Carlos"})

	assert.Equal(t, 0.0, summary.TotalRevenue)
	assert.Equal(t, 1, summary.SaleCount)
	assert.Equal(t, 0.0, summary.AverageTicket)

	require.Len(t, summary.Ranking, 1)
	assert.Equal(t, 1, summary.Ranking[0].SaleCount)
}

func TestAggregateBillingRankingOrder(t *testing.T) {
	shopId := uuid.New()
	alice := uuid.New()
	bruno := uuid.New()
	carla := uuid.New()
	names := map[uuid.UUID]string{alice: "Alice", bruno: "Bruno", carla: "Carla"}

	cmdA := closedCommand(shopId, alice, 100)
	cmdB := closedCommand(shopId, bruno, 100)
	cmdC := closedCommand(shopId, carla, 100)

	items := []*entity.CommandItem{
		commandItem(cmdA.Id, alice, 100, 30),
		commandItem(cmdB.Id, bruno, 100, 10),
		commandItem(cmdC.Id, carla, 100, 30),
	}

	summary := aggregateBilling(shopId,
		[]*entity.Command{cmdA, cmdB, cmdC}, items, names)

	require.Len(t, summary.Ranking, 3)
	// Commission desc, name asc on ties.
	assert.Equal(t, "Alice", summary.Ranking[0].ProviderName)
	assert.Equal(t, "Carla", summary.Ranking[1].ProviderName)
	assert.Equal(t, "Bruno", summary.Ranking[2].ProviderName)
}

func TestAggregateBillingAverageTicket(t *testing.T) {
	shopId := uuid.New()
	providerId := uuid.New()

	commands := []*entity.Command{
		closedCommand(shopId, providerId, 90),
		closedCommand(shopId, providerId, 30),
	}

	summary := aggregateBilling(shopId, commands, nil, nil)

	assert.Equal(t, 120.0, summary.TotalRevenue)
	assert.Equal(t, 2, summary.SaleCount)
	assert.Equal(t, 60.0, summary.AverageTicket)
}

func TestParseDateBound(t *testing.T) {
	from, err := parseDateBound("2024-01-15", false)
	require.NoError(t, err)
	require.NotNil(t, from)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), *from)

	to, err := parseDateBound("2024-01-15", true)
	require.NoError(t, err)
	require.NotNil(t, to)
	// Inclusive end of day.
	assert.True(t, to.After(time.Date(2024, 1, 15, 23, 59, 59, 0, time.UTC)))
	assert.True(t, to.Before(time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)))

	empty, err := parseDateBound("", true)
	require.NoError(t, err)
	assert.Nil(t, empty)

	_, err = parseDateBound("15/01/2024", false)
	assert.Error(t, err)
}

func TestGetSummaryServesLastGoodAfterEvictionAndFailure(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	stripPostgresDefaults(t, db)
	require.NoError(t, db.AutoMigrate(&model.Provider{}, &model.Command{}, &model.CommandItem{}))

	shopId := uuid.New()
	providerId := uuid.New()
	require.NoError(t, db.Create(&model.Provider{
		Id:           providerId,
		BarbershopId: shopId,
		Name:         "Rafael",
		IsActive:     true,
	}).Error)
	closedAt := time.Now()
	commandId := uuid.New()
	require.NoError(t, db.Create(&model.Command{
		Id:           commandId,
		BarbershopId: shopId,
		ClientId:     uuid.New(),
		ProviderId:   providerId,
		Status:       string(entity.CommandStatusClosed),
		TotalAmount:  100,
		ClosedAt:     &closedAt,
	}).Error)
	require.NoError(t, db.Create(&model.CommandItem{
		Id:               uuid.New(),
		CommandId:        commandId,
		ServiceId:        uuid.New(),
		ProviderId:       providerId,
		Quantity:         1,
		UnitPrice:        100,
		TotalPrice:       100,
		CommissionAmount: 40,
	}).Error)

	c := cache.New(5*time.Minute, 10*time.Minute)
	svc := NewBillingService(unitofwork.NewRepositoryFactory(db), c, noopLogger{})

	req := &dto.BillingSummaryRequest{}
	first, err := svc.GetSummary(context.Background(), shopId, req)
	require.NoError(t, err)
	assert.False(t, first.Stale)
	assert.Equal(t, 100.0, first.TotalRevenue)

	// Evict the TTL entry the way the janitor or a tenant invalidation
	// would, then break the database so the refresh fails.
	c.DeletePrefix("billing:")
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	stale, err := svc.GetSummary(context.Background(), shopId, req)
	require.NoError(t, err)
	assert.True(t, stale.Stale)
	assert.Equal(t, 100.0, stale.TotalRevenue)
	assert.Equal(t, 40.0, stale.TotalCommissions)
}
