package domain

import "github.com/google/uuid"

type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ProductInfo is the public projection of a catalog product.
type ProductInfo struct {
	ProductID          uuid.UUID       `json:"productId"`
	CompanyID          uuid.UUID       `json:"companyId"`
	CategoryID         *uuid.UUID      `json:"categoryId,omitempty"`
	BrandID            *uuid.UUID      `json:"brandId,omitempty"`
	ProductName        string          `json:"productName"`
	ProductImage       string          `json:"productImage"`
	ProductPrice       float64         `json:"productPrice"`
	ProductDescription string          `json:"productDescription"`
	UnitInStock        int             `json:"unitInStock"`
	MinimumAge         int             `json:"minimumAge"`
	MaximumAge         int             `json:"maximumAge"`
	Gender             map[string]bool `json:"gender"`
	Tags               []string        `json:"tags"`
	CompanyName        string          `json:"companyName"`
	OnlineShopping     bool            `json:"onlineShopping"`
}

// CatalogEntry is one row of the catalog snapshot: a product joined with its
// owning company's location and online-shopping flag.
type CatalogEntry struct {
	ProductInfo     ProductInfo `json:"productInfo"`
	CompanyLocation GeoPoint    `json:"companyLocation"`
}

// RecipientProfile describes who the gift is for. A nil bound is unbounded.
type RecipientProfile struct {
	RelationshipLevel *int
	Interests         []string
	Events            []string
	MinPrice          *float64
	MaxPrice          *float64
	Age               *int
	GenderTarget      string
	SearchRadius      *float64
	RequesterLocation *GeoPoint
}

// RankedGift is a matching product with its distance from the requester in km.
// Distance is nil when the request carried no location.
type RankedGift struct {
	ProductInfo ProductInfo `json:"productInfo"`
	Distance    *float64    `json:"productDistanceFromUser"`
}
