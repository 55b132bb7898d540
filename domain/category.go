package domain

import (
	"time"

	"github.com/google/uuid"
)

// CREATE TABLE public.categories (
//     id              UUID PRIMARY KEY DEFAULT gen_random_uuid(),
//     category_name   TEXT NOT NULL,
//     created_at      TIMESTAMPTZ DEFAULT NOW()
// );

type Category struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CategoryName string    `gorm:"column:category_name;type:text;not null" json:"categoryName"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (Category) TableName() string {
	return "categories"
}
