// internal/domain/models/socialplatforms.go
package models

// Social-media platforms offered by the lead form.
//
// Stored SocialLink.Platform values are free text; this list only drives
// the picker and the icon lookup in the admin page.
const (
	PlatformFacebook  = "Facebook"
	PlatformInstagram = "Instagram"
	PlatformLinkedIn  = "LinkedIn"
	PlatformTwitter   = "Twitter"
	PlatformYouTube   = "YouTube"
	PlatformTikTok    = "TikTok"
	PlatformOther     = "Other"
)

// SocialPlatforms is the picker order.
var SocialPlatforms = []string{
	PlatformFacebook,
	PlatformInstagram,
	PlatformLinkedIn,
	PlatformTwitter,
	PlatformYouTube,
	PlatformTikTok,
	PlatformOther,
}
