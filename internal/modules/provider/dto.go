package provider

type ProfileRequest struct {
	DisplayName string `json:"display_name" binding:"required"`
	Bio         string `json:"bio,omitempty"`
	City        string `json:"city,omitempty"`
	Area        string `json:"area,omitempty"`
	Phone       string `json:"phone,omitempty"`
}
