package domain

import (
	"time"

	"github.com/google/uuid"
)

// CREATE TABLE public.companies (
//     id              UUID PRIMARY KEY DEFAULT gen_random_uuid(),
//     associate_id    UUID,
//     company_name    TEXT NOT NULL,
//     address         TEXT,
//     city            TEXT,
//     state           TEXT,
//     zipcode         TEXT,
//     mobile          TEXT,
//     latitude        NUMERIC,
//     longitude       NUMERIC,
//     online_shopping BOOLEAN DEFAULT FALSE,
//     logo            TEXT,
//     bio             TEXT,
//     created_at      TIMESTAMPTZ DEFAULT NOW()
// );

type Company struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AssociateID    *uuid.UUID `gorm:"column:associate_id;type:uuid" json:"associateId,omitempty"`
	CompanyName    string     `gorm:"column:company_name;type:text;not null" json:"companyName"`
	Address        string     `gorm:"column:address;type:text" json:"address"`
	City           string     `gorm:"column:city;type:text" json:"city"`
	State          string     `gorm:"column:state;type:text" json:"state"`
	Zipcode        string     `gorm:"column:zipcode;type:text" json:"zipcode"`
	Mobile         string     `gorm:"column:mobile;type:text" json:"mobile"`
	Latitude       float64    `gorm:"column:latitude;type:numeric" json:"latitude"`
	Longitude      float64    `gorm:"column:longitude;type:numeric" json:"longitude"`
	OnlineShopping bool       `gorm:"column:online_shopping;default:false" json:"onlineShopping"`
	Logo           string     `gorm:"column:logo;type:text" json:"logo"`
	Bio            string     `gorm:"column:bio;type:text" json:"bio"`
	CreatedAt      time.Time  `gorm:"column:created_at" json:"createdAt"`
}

func (Company) TableName() string {
	return "companies"
}

// Location returns the company's coordinates.
func (c Company) Location() GeoPoint {
	return GeoPoint{Latitude: c.Latitude, Longitude: c.Longitude}
}

// CompanyDistance is a company annotated with its distance from a caller, in km.
type CompanyDistance struct {
	Company  Company `json:"companyItem"`
	Distance float64 `json:"distanceItem"`
}
