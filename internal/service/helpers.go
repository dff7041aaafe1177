package service

import (
	"strings"

	"myblog/internal/models"
)

// requireID rejects zero ids before any storage access. Negative ids never
// reach the service layer; the transport refuses to parse them into a uint.
func requireID(id uint, field string) error {
	if id == 0 {
		return models.NewBadRequestError(field + " must be > 0")
	}
	return nil
}

// normalizeEmail lowercases and trims an email for storage and comparison.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// normalizeOptional trims s and returns nil for the empty result, so an
// absent value is stored as NULL rather than "".
func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
