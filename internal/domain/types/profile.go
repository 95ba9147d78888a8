package types

// ProfileName identifies a Holidaze profile. Names are unique on the API.
type ProfileName string

// String returns the string form of the profile name.
func (n ProfileName) String() string { return string(n) }

// Media is an image reference with optional alt text.
type Media struct {
	URL string `json:"url" validate:"notblank"`
	Alt string `json:"alt,omitempty"`
}

// Profile is the public profile of a Holidaze user.
type Profile struct {
	Name         ProfileName `json:"name"`
	Email        string      `json:"email"`
	Bio          string      `json:"bio,omitempty"`
	Avatar       *Media      `json:"avatar,omitempty"`
	Banner       *Media      `json:"banner,omitempty"`
	VenueManager bool        `json:"venueManager,omitempty"`
}

// ProfileUpdate is the body of a profile PUT. Nil fields are left unchanged.
type ProfileUpdate struct {
	Bio          *string `json:"bio,omitempty"`
	Avatar       *Media  `json:"avatar,omitempty"`
	Banner       *Media  `json:"banner,omitempty"`
	VenueManager *bool   `json:"venueManager,omitempty"`
}

// Credentials are posted to the login endpoint.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is posted to the register endpoint.
type Registration struct {
	Name         ProfileName `json:"name" validate:"required,profilename"`
	Email        string      `json:"email" validate:"required,email,endswith=@stud.noroff.no"`
	Password     string      `json:"password" validate:"min=8"`
	VenueManager bool        `json:"venueManager"`
}

// AuthResult is the login response: the profile plus its bearer token.
type AuthResult struct {
	Profile
	AccessToken string `json:"accessToken"`
}
