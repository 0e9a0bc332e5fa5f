package domain

import "time"

// Session is the durable record behind a logged-in user: one row per
// issued token, holding a JSON snapshot of the user taken at login.
//
// Only the SHA-256 hash of the token is stored, never the raw value.
// The snapshot is what the restore path hands back; a snapshot that no
// longer parses is treated as "no session", not as an error.
type Session struct {
	ID int64 `json:"id" gorm:"primaryKey"`

	UserID    string `json:"user_id" gorm:"index;not null"`
	TokenHash string `json:"-" gorm:"size:64;uniqueIndex;not null"`
	UserJSON  string `json:"-" gorm:"type:text"`

	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt time.Time  `json:"expires_at" gorm:"index;not null"`
	RevokedAt *time.Time `json:"revoked_at" gorm:"index"`
}

func (s *Session) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

func (s *Session) IsRevoked() bool {
	return s.RevokedAt != nil
}
