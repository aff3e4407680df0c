package mapper

import (
	"barberflow-be/internal/entity"
	"barberflow-be/internal/model"
)

type TokenMapper struct{}

func NewTokenMapper() *TokenMapper {
	return &TokenMapper{}
}

func (m *TokenMapper) VerificationToEntity(t *model.EmailVerificationToken) *entity.EmailVerificationToken {
	return &entity.EmailVerificationToken{
		Id:        t.Id,
		UserId:    t.UserId,
		Token:     t.Token,
		ExpiresAt: t.ExpiresAt,
		CreatedAt: t.CreatedAt,
	}
}

func (m *TokenMapper) VerificationToModel(t *entity.EmailVerificationToken) *model.EmailVerificationToken {
	return &model.EmailVerificationToken{
		Id:        t.Id,
		UserId:    t.UserId,
		Token:     t.Token,
		ExpiresAt: t.ExpiresAt,
		CreatedAt: t.CreatedAt,
	}
}

func (m *TokenMapper) ResetToEntity(t *model.PasswordResetToken) *entity.PasswordResetToken {
	return &entity.PasswordResetToken{
		Id:        t.Id,
		UserId:    t.UserId,
		Token:     t.Token,
		Used:      t.Used,
		ExpiresAt: t.ExpiresAt,
		CreatedAt: t.CreatedAt,
	}
}

func (m *TokenMapper) ResetToModel(t *entity.PasswordResetToken) *model.PasswordResetToken {
	return &model.PasswordResetToken{
		Id:        t.Id,
		UserId:    t.UserId,
		Token:     t.Token,
		Used:      t.Used,
		ExpiresAt: t.ExpiresAt,
		CreatedAt: t.CreatedAt,
	}
}

func (m *TokenMapper) RefreshToModel(t *entity.UserRefreshToken) *model.UserRefreshToken {
	return &model.UserRefreshToken{
		Id:        t.Id,
		UserId:    t.UserId,
		TokenHash: t.TokenHash,
		Revoked:   t.Revoked,
		ExpiresAt: t.ExpiresAt,
		IpAddress: t.IpAddress,
		UserAgent: t.UserAgent,
		CreatedAt: t.CreatedAt,
	}
}
