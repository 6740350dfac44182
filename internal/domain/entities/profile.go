package entities

import "time"

// Profile is the account profile persisted alongside shipments.
//
// Storage model (DynamoDB):
//   - PK: id (the user id issued by the identity provider)

type Profile struct {
	ID                       string    `json:"id"`
	FirstName                string    `json:"first_name"`
	LastName                 string    `json:"last_name"`
	Email                    string    `json:"email"`
	Phone                    string    `json:"phone,omitempty"`
	Address                  string    `json:"address,omitempty"`
	Company                  string    `json:"company,omitempty"`
	PreferredShippingMethod  string    `json:"preferred_shipping_method,omitempty"`
	AvatarURL                string    `json:"avatar_url,omitempty"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}

// ProfileUpdate carries the mutable profile fields of a partial update. Nil
// fields are left untouched.

type ProfileUpdate struct {
	FirstName               *string
	LastName                *string
	Email                   *string
	Phone                   *string
	Address                 *string
	Company                 *string
	PreferredShippingMethod *ShippingMethod
	AvatarURL               *string
}
