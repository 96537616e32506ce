// Package dto - DTO cho domain catalog (artist).
package dto

import (
	catalogmodels "github.com/shakibkumnale/souldistribution/internal/api/catalog/models"
)

// ArtistCreateInput dữ liệu tạo nghệ sĩ mới.
type ArtistCreateInput struct {
	Name            string                     `json:"name" bson:"name" validate:"required"`
	Slug            string                     `json:"slug" bson:"slug" validate:"required,slug"`
	Bio             string                     `json:"bio,omitempty" bson:"bio,omitempty" validate:"omitempty,no_xss"`
	Image           string                     `json:"image,omitempty" bson:"image,omitempty"`
	SpotifyArtistID string                     `json:"spotifyArtistId,omitempty" bson:"spotifyArtistId,omitempty"`
	SpotifyURL      string                     `json:"spotifyUrl,omitempty" bson:"spotifyUrl,omitempty"`
	Plans           []catalogmodels.ArtistPlan `json:"plans,omitempty" bson:"plans,omitempty"`
	IsFeatured      bool                       `json:"isFeatured" bson:"isFeatured"`
}

// ArtistUpdateInput dữ liệu cập nhật nghệ sĩ.
type ArtistUpdateInput struct {
	Name            string                     `json:"name,omitempty" bson:"name,omitempty"`
	Slug            string                     `json:"slug,omitempty" bson:"slug,omitempty" validate:"omitempty,slug"`
	Bio             string                     `json:"bio,omitempty" bson:"bio,omitempty" validate:"omitempty,no_xss"`
	Image           string                     `json:"image,omitempty" bson:"image,omitempty"`
	SpotifyArtistID string                     `json:"spotifyArtistId,omitempty" bson:"spotifyArtistId,omitempty"`
	SpotifyURL      string                     `json:"spotifyUrl,omitempty" bson:"spotifyUrl,omitempty"`
	Plans           []catalogmodels.ArtistPlan `json:"plans,omitempty" bson:"plans,omitempty"`
	IsFeatured      bool                       `json:"isFeatured,omitempty" bson:"isFeatured,omitempty"`
}
