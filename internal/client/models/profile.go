package models

// Profile is the record behind GET/PUT /profile/profile.
type Profile struct {
	FullName  string  `json:"full_name"`
	Email     string  `json:"email"`
	Bio       string  `json:"bio"`
	AvatarURL *string `json:"avatar_url"`
}

// AvatarUploadResponse mirrors the success body of the avatar upload.
type AvatarUploadResponse struct {
	AvatarURL string `json:"avatar_url"`
}
