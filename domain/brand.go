package domain

import (
	"time"

	"github.com/google/uuid"
)

// CREATE TABLE public.brands (
//     id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
//     brand_name  TEXT NOT NULL,
//     brand_logo  TEXT,
//     created_at  TIMESTAMPTZ DEFAULT NOW()
// );

type Brand struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BrandName string    `gorm:"column:brand_name;type:text;not null" json:"brandName"`
	BrandLogo string    `gorm:"column:brand_logo;type:text" json:"brandLogo"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (Brand) TableName() string {
	return "brands"
}
