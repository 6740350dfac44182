package request

import (
	"strings"

	"dynamic_shipping/internal/domain/entities"
)

// CreateProfileRequest is the payload accepted by POST /v1/profile.
type CreateProfileRequest struct {
	FirstName               string `json:"first_name" binding:"required"`
	LastName                string `json:"last_name" binding:"required"`
	Email                   string `json:"email" binding:"required,email"`
	Phone                   string `json:"phone"`
	Address                 string `json:"address"`
	Company                 string `json:"company"`
	PreferredShippingMethod string `json:"preferred_shipping_method"`
	AvatarURL               string `json:"avatar_url"`
}

func (r CreateProfileRequest) ResolveProfile(userID string) entities.Profile {
	return entities.Profile{
		ID:                      userID,
		FirstName:               strings.TrimSpace(r.FirstName),
		LastName:                strings.TrimSpace(r.LastName),
		Email:                   strings.TrimSpace(r.Email),
		Phone:                   strings.TrimSpace(r.Phone),
		Address:                 strings.TrimSpace(r.Address),
		Company:                 strings.TrimSpace(r.Company),
		PreferredShippingMethod: strings.ToLower(strings.TrimSpace(r.PreferredShippingMethod)),
		AvatarURL:               strings.TrimSpace(r.AvatarURL),
	}
}

// UpdateProfileRequest is the payload accepted by PUT /v1/profile. Absent
// fields keep their stored values.
type UpdateProfileRequest struct {
	FirstName               *string `json:"first_name"`
	LastName                *string `json:"last_name"`
	Email                   *string `json:"email"`
	Phone                   *string `json:"phone"`
	Address                 *string `json:"address"`
	Company                 *string `json:"company"`
	PreferredShippingMethod *string `json:"preferred_shipping_method"`
	AvatarURL               *string `json:"avatar_url"`
}

func (r UpdateProfileRequest) ResolveUpdate() entities.ProfileUpdate {
	upd := entities.ProfileUpdate{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Address:   r.Address,
		Company:   r.Company,
		AvatarURL: r.AvatarURL,
	}
	if r.PreferredShippingMethod != nil {
		method := entities.ShippingMethod(strings.ToLower(strings.TrimSpace(*r.PreferredShippingMethod)))
		upd.PreferredShippingMethod = &method
	}
	return upd
}
