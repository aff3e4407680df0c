package service

import (
	"context"
	"testing"
	"time"

	"barberflow-be/internal/dto"
	"barberflow-be/internal/entity"
	"barberflow-be/internal/model"
	"barberflow-be/internal/repository/unitofwork"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type overdueMail struct {
	toEmail    string
	clientName string
	amount     float64
	dueDate    time.Time
}

type mailerStub struct {
	overdue []overdueMail
}

func (m *mailerStub) SendOTP(toEmail, otp string) error        { return nil }
func (m *mailerStub) SendResetToken(toEmail, tok string) error { return nil }
func (m *mailerStub) SendReceipt(toEmail, clientName string, total float64, closedAt time.Time) error {
	return nil
}
func (m *mailerStub) SendOverdueNotice(toEmail, clientName string, amount float64, dueDate time.Time) error {
	m.overdue = append(m.overdue, overdueMail{toEmail, clientName, amount, dueDate})
	return nil
}

func newSubscriptionTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	stripPostgresDefaults(t, db)
	require.NoError(t, db.AutoMigrate(
		&model.Client{},
		&model.Provider{},
		&model.ProviderSubscriptionPlan{},
		&model.ClientSubscription{},
		&model.SubscriptionUsage{},
		&model.SubscriptionFinancialRecord{},
	))
	return db
}

type subscriptionFixture struct {
	shopId     uuid.UUID
	clientId   uuid.UUID
	providerId uuid.UUID
	serviceId  uuid.UUID
	planId     uuid.UUID
}

func seedSubscriptionFixture(t *testing.T, db *gorm.DB) subscriptionFixture {
	t.Helper()
	f := subscriptionFixture{
		shopId:     uuid.New(),
		clientId:   uuid.New(),
		providerId: uuid.New(),
		serviceId:  uuid.New(),
		planId:     uuid.New(),
	}
	require.NoError(t, db.Create(&model.Client{
		Id:           f.clientId,
		BarbershopId: f.shopId,
		Name:         "Joana Lima",
		Email:        "joana@example.com",
	}).Error)
	require.NoError(t, db.Create(&model.Provider{
		Id:           f.providerId,
		BarbershopId: f.shopId,
		Name:         "Rafael",
		IsActive:     true,
	}).Error)
	require.NoError(t, db.Create(&model.ProviderSubscriptionPlan{
		Id:                    f.planId,
		BarbershopId:          f.shopId,
		ProviderId:            f.providerId,
		Name:                  "Corte Mensal",
		MonthlyPrice:          120,
		IncludedServicesCount: 4,
		CommissionPercentage:  40,
		EnabledServiceIds:     []byte(`["` + f.serviceId.String() + `"]`),
		IsActive:              true,
	}).Error)
	return f
}

func newSubscriptionService(db *gorm.DB, m *mailerStub) ISubscriptionService {
	factory := unitofwork.NewRepositoryFactory(db)
	if m != nil {
		return NewSubscriptionService(factory, nil, m)
	}
	return NewSubscriptionService(factory, nil, nil)
}

func TestCreateSubscriptionStartsPendingPayment(t *testing.T) {
	db := newSubscriptionTestDB(t)
	f := seedSubscriptionFixture(t, db)
	svc := newSubscriptionService(db, nil)

	res, err := svc.Create(context.Background(), f.shopId, &dto.CreateSubscriptionRequest{
		ClientId: f.clientId,
		PlanId:   f.planId,
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.SubscriptionStatusPendingPayment), res.Status)
	assert.Equal(t, 4, res.RemainingServices)

	var records []model.SubscriptionFinancialRecord
	require.NoError(t, db.Where("subscription_id = ?", res.Id).Find(&records).Error)
	require.Len(t, records, 1)
	assert.Equal(t, string(entity.FinancialRecordStatusPending), records[0].Status)
	assert.Equal(t, 120.0, records[0].Amount)
	assert.Equal(t, 48.0, records[0].CommissionAmount)
}

func TestCreateSubscriptionRejectsSecondWithSameProvider(t *testing.T) {
	db := newSubscriptionTestDB(t)
	f := seedSubscriptionFixture(t, db)
	svc := newSubscriptionService(db, nil)

	otherPlanId := uuid.New()
	require.NoError(t, db.Create(&model.ProviderSubscriptionPlan{
		Id:                    otherPlanId,
		BarbershopId:          f.shopId,
		ProviderId:            f.providerId,
		Name:                  "Barba Mensal",
		MonthlyPrice:          80,
		IncludedServicesCount: 2,
		IsActive:              true,
	}).Error)

	first, err := svc.Create(context.Background(), f.shopId, &dto.CreateSubscriptionRequest{
		ClientId: f.clientId,
		PlanId:   f.planId,
	})
	require.NoError(t, err)

	// Still pending, already blocks a second plan of the same provider.
	_, err = svc.Create(context.Background(), f.shopId, &dto.CreateSubscriptionRequest{
		ClientId: f.clientId,
		PlanId:   otherPlanId,
	})
	require.Error(t, err)

	// Same answer once paid and active.
	require.NoError(t, db.Model(&model.ClientSubscription{}).
		Where("id = ?", first.Id).
		Update("status", string(entity.SubscriptionStatusActive)).Error)

	_, err = svc.Create(context.Background(), f.shopId, &dto.CreateSubscriptionRequest{
		ClientId: f.clientId,
		PlanId:   otherPlanId,
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&model.ClientSubscription{}).
		Where("client_id = ? AND provider_id = ?", f.clientId, f.providerId).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func seedActiveSubscription(t *testing.T, db *gorm.DB, f subscriptionFixture, remaining int) uuid.UUID {
	t.Helper()
	id := uuid.New()
	now := time.Now()
	require.NoError(t, db.Create(&model.ClientSubscription{
		Id:                id,
		BarbershopId:      f.shopId,
		ClientId:          f.clientId,
		ProviderId:        f.providerId,
		PlanId:            f.planId,
		Status:            string(entity.SubscriptionStatusActive),
		RemainingServices: remaining,
		StartDate:         now,
		EndDate:           now.AddDate(0, 1, 0),
	}).Error)
	return id
}

func TestUseServiceStopsAtZero(t *testing.T) {
	db := newSubscriptionTestDB(t)
	f := seedSubscriptionFixture(t, db)
	svc := newSubscriptionService(db, nil)
	subId := seedActiveSubscription(t, db, f, 1)

	req := &dto.UseServiceRequest{SubscriptionId: subId, ServiceId: f.serviceId}
	require.NoError(t, svc.UseService(context.Background(), f.shopId, req))

	var sub model.ClientSubscription
	require.NoError(t, db.First(&sub, "id = ?", subId).Error)
	assert.Equal(t, 0, sub.RemainingServices)

	err := svc.UseService(context.Background(), f.shopId, req)
	assert.ErrorIs(t, err, ErrNoRemainingServices)

	require.NoError(t, db.First(&sub, "id = ?", subId).Error)
	assert.Equal(t, 0, sub.RemainingServices)

	var usages int64
	require.NoError(t, db.Model(&model.SubscriptionUsage{}).
		Where("subscription_id = ?", subId).Count(&usages).Error)
	assert.Equal(t, int64(1), usages)
}

func TestValidateUsagePrecedence(t *testing.T) {
	now := time.Now()
	covered := uuid.New()
	other := uuid.New()
	plan := &entity.ProviderSubscriptionPlan{EnabledServiceIds: []uuid.UUID{covered}}

	active := func(remaining int) *entity.ClientSubscription {
		return &entity.ClientSubscription{
			Status:            entity.SubscriptionStatusActive,
			EndDate:           now.AddDate(0, 1, 0),
			RemainingServices: remaining,
		}
	}

	tests := []struct {
		name      string
		sub       *entity.ClientSubscription
		serviceId uuid.UUID
		want      error
	}{
		{"not active wins over everything", &entity.ClientSubscription{
			Status:  entity.SubscriptionStatusCancelled,
			EndDate: now.AddDate(0, 1, 0),
		}, other, ErrSubscriptionNotActive},
		{"exhausted balance reported before coverage", active(0), other, ErrNoRemainingServices},
		{"exhausted balance on a covered service", active(0), covered, ErrNoRemainingServices},
		{"uncovered service with balance left", active(2), other, ErrServiceNotCovered},
		{"covered with balance", active(2), covered, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateUsage(tt.sub, plan, tt.serviceId, now)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestRenewExtendsOneMonthWithOneRecord(t *testing.T) {
	db := newSubscriptionTestDB(t)
	f := seedSubscriptionFixture(t, db)
	svc := newSubscriptionService(db, nil)
	subId := seedActiveSubscription(t, db, f, 0)

	var before model.ClientSubscription
	require.NoError(t, db.First(&before, "id = ?", subId).Error)

	res, err := svc.Renew(context.Background(), f.shopId, subId)
	require.NoError(t, err)

	assert.Equal(t, string(entity.SubscriptionStatusActive), res.Status)
	assert.Equal(t, 4, res.RemainingServices)
	assert.WithinDuration(t, before.EndDate.AddDate(0, 1, 0), res.EndDate, time.Second)

	var records []model.SubscriptionFinancialRecord
	require.NoError(t, db.Where("subscription_id = ?", subId).Find(&records).Error)
	require.Len(t, records, 1)
	assert.WithinDuration(t, before.EndDate, records[0].PeriodStart, time.Second)
	assert.Equal(t, string(entity.FinancialRecordStatusPending), records[0].Status)
}

func TestMarkOverdueRecordsMailsTheClient(t *testing.T) {
	db := newSubscriptionTestDB(t)
	f := seedSubscriptionFixture(t, db)
	mails := &mailerStub{}
	svc := newSubscriptionService(db, mails)
	subId := seedActiveSubscription(t, db, f, 4)

	due := time.Now().AddDate(0, 0, -2)
	recordId := uuid.New()
	require.NoError(t, db.Create(&model.SubscriptionFinancialRecord{
		Id:             recordId,
		SubscriptionId: subId,
		BarbershopId:   f.shopId,
		Status:         string(entity.FinancialRecordStatusPending),
		Amount:         120,
		PeriodStart:    due.AddDate(0, 0, -5),
		PeriodEnd:      due.AddDate(0, 1, -5),
		DueDate:        due,
	}).Error)

	marked, err := svc.MarkOverdueRecords(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, marked)

	var record model.SubscriptionFinancialRecord
	require.NoError(t, db.First(&record, "id = ?", recordId).Error)
	assert.Equal(t, string(entity.FinancialRecordStatusOverdue), record.Status)

	require.Len(t, mails.overdue, 1)
	assert.Equal(t, "joana@example.com", mails.overdue[0].toEmail)
	assert.Equal(t, "Joana Lima", mails.overdue[0].clientName)
	assert.Equal(t, 120.0, mails.overdue[0].amount)
}
