package repositories

import (
	"gorm.io/gorm"
)

// BaseRepository carries the shared gorm handle the user, session and group
// repositories embed. Queries go through the typed repository methods; the
// handle itself stays unexported.
type BaseRepository struct {
	db *gorm.DB
}

func NewBaseRepository(db *gorm.DB) BaseRepository {
	return BaseRepository{db: db}
}

// DB exposes the underlying connection for callers that need raw access.
func (r *BaseRepository) DB() *gorm.DB {
	return r.db
}
