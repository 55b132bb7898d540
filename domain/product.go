package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CREATE TABLE public.products (
//     id                  UUID PRIMARY KEY DEFAULT gen_random_uuid(),
//     company_id          UUID NOT NULL REFERENCES companies(id),
//     category_id         UUID REFERENCES categories(id),
//     brand_id            UUID REFERENCES brands(id),
//     product_name        TEXT NOT NULL,
//     product_image       TEXT,
//     product_price       NUMERIC,
//     product_description TEXT,
//     unit_in_stock       INTEGER DEFAULT 0,
//     minimum_age         INTEGER DEFAULT 0,
//     maximum_age         INTEGER DEFAULT 0,
//     for_female          BOOLEAN DEFAULT FALSE,
//     for_male            BOOLEAN DEFAULT FALSE,
//     tags                JSONB DEFAULT '[]',
//     created_at          TIMESTAMPTZ DEFAULT NOW()
// );

const (
	GenderFemale = "female"
	GenderMale   = "male"
)

type Product struct {
	ID                 uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CompanyID          uuid.UUID                   `gorm:"column:company_id;type:uuid;not null" json:"companyId"`
	Company            Company                     `gorm:"foreignKey:CompanyID" json:"-"`
	CategoryID         *uuid.UUID                  `gorm:"column:category_id;type:uuid" json:"categoryId,omitempty"`
	BrandID            *uuid.UUID                  `gorm:"column:brand_id;type:uuid" json:"brandId,omitempty"`
	ProductName        string                      `gorm:"column:product_name;type:text;not null" json:"productName"`
	ProductImage       string                      `gorm:"column:product_image;type:text" json:"productImage"`
	ProductPrice       float64                     `gorm:"column:product_price;type:numeric" json:"productPrice"`
	ProductDescription string                      `gorm:"column:product_description;type:text" json:"productDescription"`
	UnitInStock        int                         `gorm:"column:unit_in_stock;default:0" json:"unitInStock"`
	MinimumAge         int                         `gorm:"column:minimum_age;default:0" json:"minimumAge"`
	MaximumAge         int                         `gorm:"column:maximum_age;default:0" json:"maximumAge"`
	ForFemale          bool                        `gorm:"column:for_female;default:false" json:"-"`
	ForMale            bool                        `gorm:"column:for_male;default:false" json:"-"`
	Tags               datatypes.JSONSlice[string] `gorm:"column:tags;type:jsonb" json:"tags"`
	CreatedAt          time.Time                   `gorm:"column:created_at" json:"createdAt"`
}

func (Product) TableName() string {
	return "products"
}

// GenderApplicability maps every known gender to whether the product suits it.
func (p Product) GenderApplicability() map[string]bool {
	return map[string]bool{
		GenderFemale: p.ForFemale,
		GenderMale:   p.ForMale,
	}
}

// CatalogEntry joins a product with the company that sells it. Company must
// be loaded.
func (p Product) CatalogEntry() CatalogEntry {
	tags := make([]string, len(p.Tags))
	copy(tags, p.Tags)

	return CatalogEntry{
		ProductInfo: ProductInfo{
			ProductID:          p.ID,
			CompanyID:          p.CompanyID,
			CategoryID:         p.CategoryID,
			BrandID:            p.BrandID,
			ProductName:        p.ProductName,
			ProductImage:       p.ProductImage,
			ProductPrice:       p.ProductPrice,
			ProductDescription: p.ProductDescription,
			UnitInStock:        p.UnitInStock,
			MinimumAge:         p.MinimumAge,
			MaximumAge:         p.MaximumAge,
			Gender:             p.GenderApplicability(),
			Tags:               tags,
			CompanyName:        p.Company.CompanyName,
			OnlineShopping:     p.Company.OnlineShopping,
		},
		CompanyLocation: p.Company.Location(),
	}
}
