package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByEmail filters on the email column.
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// ByToken filters on the token column.
type ByToken struct {
	Token string
}

func (s ByToken) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("token = ?", s.Token)
}

// ByUser filters on the user_id column.
type ByUser struct {
	UserID uuid.UUID
}

func (s ByUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// ByBarbershop scopes a query to one tenant.
type ByBarbershop struct {
	BarbershopID uuid.UUID
}

func (s ByBarbershop) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("barbershop_id = ?", s.BarbershopID)
}

// ByStatus filters on the status column.
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// ClosedBetween filters closed commands by their closing timestamp. Nil
// bounds are open-ended.
type ClosedBetween struct {
	From *time.Time
	To   *time.Time
}

func (s ClosedBetween) Apply(db *gorm.DB) *gorm.DB {
	if s.From != nil {
		db = db.Where("closed_at >= ?", *s.From)
	}
	if s.To != nil {
		db = db.Where("closed_at <= ?", *s.To)
	}
	return db
}

// StartsWithin filters appointments whose start_time falls in [From, To).
type StartsWithin struct {
	From time.Time
	To   time.Time
}

func (s StartsWithin) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("start_time >= ? AND start_time < ?", s.From, s.To)
}

// CompletedWithin filters appointments whose completed_at falls in [From, To).
type CompletedWithin struct {
	From time.Time
	To   time.Time
}

func (s CompletedWithin) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("completed_at >= ? AND completed_at < ?", s.From, s.To)
}

// LastVisitBefore filters clients whose last completed visit predates the
// cutoff. Clients with no recorded visit are excluded.
type LastVisitBefore struct {
	Cutoff time.Time
}

func (s LastVisitBefore) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("last_visit_at IS NOT NULL AND last_visit_at < ?", s.Cutoff)
}

// ByProvider filters on the provider_id column.
type ByProvider struct {
	ProviderID uuid.UUID
}

func (s ByProvider) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("provider_id = ?", s.ProviderID)
}

// ByClient filters on the client_id column.
type ByClient struct {
	ClientID uuid.UUID
}

func (s ByClient) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("client_id = ?", s.ClientID)
}

// DueBefore filters financial records past their due date.
type DueBefore struct {
	Cutoff time.Time
}

func (s DueBefore) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("due_date < ?", s.Cutoff)
}
