package models

import (
	"sort"
	"strings"
	"time"
)

// SocialAccount is a stored login for a social platform.
type SocialAccount struct {
	SocialAccountID   int64          `json:"id"`
	UserID            int64          `json:"user_id"`
	Platform          string         `json:"platform"`
	Username          string         `json:"username"`
	EncryptedPassword string         `json:"-"`
	AdditionalData    map[string]any `json:"additional_data,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         *time.Time     `json:"updated_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the SocialAccount model.
func (s SocialAccount) TableName() string {
	return "social_accounts"
}

// SocialAccountInput is the body of POST /social.
type SocialAccountInput struct {
	Platform       string         `json:"platform"`
	Username       string         `json:"username"`
	Password       string         `json:"password"`
	AdditionalData map[string]any `json:"additional_data,omitempty"`
}

// SocialAccountUpdate is the body of PUT /social/{id}. Nil fields are kept.
type SocialAccountUpdate struct {
	Platform       *string         `json:"platform,omitempty"`
	Username       *string         `json:"username,omitempty"`
	Password       *string         `json:"password,omitempty"`
	AdditionalData *map[string]any `json:"additional_data,omitempty"`

	EncryptedPassword *string `json:"-"`
}

// PlatformInfo describes a supported social platform for clients.
type PlatformInfo struct {
	Icon   string   `json:"icon"`
	Color  string   `json:"color"`
	Fields []string `json:"fields"`
}

// SupportedPlatforms is the registry of platforms a social account may use.
var SupportedPlatforms = map[string]PlatformInfo{
	"whatsapp":  {Icon: "whatsapp", Color: "#25D366", Fields: []string{"phone_number"}},
	"instagram": {Icon: "instagram", Color: "#E4405F", Fields: []string{"username"}},
	"reddit":    {Icon: "reddit", Color: "#FF4500", Fields: []string{"username"}},
	"discord":   {Icon: "discord", Color: "#5865F2", Fields: []string{"username", "discriminator"}},
	"facebook":  {Icon: "facebook", Color: "#1877F2", Fields: []string{"email", "username"}},
	"linkedin":  {Icon: "linkedin", Color: "#0A66C2", Fields: []string{"email"}},
}

// NormalizePlatform lower-cases platform and reports whether it is supported.
func NormalizePlatform(platform string) (string, bool) {
	p := strings.ToLower(strings.TrimSpace(platform))
	_, ok := SupportedPlatforms[p]
	return p, ok
}

// PlatformNames returns the supported platform names in sorted order.
func PlatformNames() []string {
	names := make([]string, 0, len(SupportedPlatforms))
	for name := range SupportedPlatforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
