package response

import (
	"time"

	"dynamic_shipping/internal/domain/entities"
)

type ProfileResponse struct {
	ID                      string    `json:"id"`
	FirstName               string    `json:"first_name"`
	LastName                string    `json:"last_name"`
	Email                   string    `json:"email"`
	Phone                   string    `json:"phone,omitempty"`
	Address                 string    `json:"address,omitempty"`
	Company                 string    `json:"company,omitempty"`
	PreferredShippingMethod string    `json:"preferred_shipping_method,omitempty"`
	AvatarURL               string    `json:"avatar_url,omitempty"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

func FromProfile(p entities.Profile) ProfileResponse {
	return ProfileResponse{
		ID:                      p.ID,
		FirstName:               p.FirstName,
		LastName:                p.LastName,
		Email:                   p.Email,
		Phone:                   p.Phone,
		Address:                 p.Address,
		Company:                 p.Company,
		PreferredShippingMethod: string(p.PreferredShippingMethod),
		AvatarURL:               p.AvatarURL,
		CreatedAt:               p.CreatedAt,
		UpdatedAt:               p.UpdatedAt,
	}
}
