package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRefreshTokenRecord_Expired(t *testing.T) {
	now := time.Now()
	record := RefreshTokenRecord{
		UserID:    "user-1",
		CreatedAt: now.Unix(),
		ExpiresIn: 3600,
	}

	assert.False(t, record.Expired(now))
	assert.False(t, record.Expired(now.Add(59*time.Minute)))
	assert.True(t, record.Expired(now.Add(time.Hour)))
	assert.True(t, record.Expired(now.Add(48*time.Hour)))
}

func TestRefreshTokenRecord_Expired_ZeroLifetime(t *testing.T) {
	now := time.Now()
	assert.True(t, RefreshTokenRecord{}.Expired(now))
	assert.True(t, RefreshTokenRecord{CreatedAt: now.Unix()}.Expired(now))
}
