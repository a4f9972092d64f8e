package forecast

import (
	"strings"
	"time"
)

const defaultVideo = "assets/videos/sunny.mp4"

// videoRules map condition keywords to background videos, checked in
// order so the more specific keyword wins (storm before rain, thunder
// after cloud matches the dashboard's established lookup order).
var videoRules = []struct {
	keywords []string
	video    string
}{
	{[]string{"cyclone", "hurricane"}, "assets/videos/cyclones.mp4"},
	{[]string{"fog", "mist"}, "assets/videos/mist fog.mp4"},
	{[]string{"wind", "breezy"}, "assets/videos/wind.mp4"},
	{[]string{"rainbow"}, "assets/videos/rainbow.mp4"},
	{[]string{"storm"}, "assets/videos/stormy.mp4"},
	{[]string{"rain", "drizzle"}, "assets/videos/rainy.mp4"},
	{[]string{"snow"}, "assets/videos/snow.mp4"},
	{[]string{"cloud", "overcast"}, "assets/videos/cloud.mp4"},
	{[]string{"thunder"}, "assets/videos/thunder.mp4"},
	{[]string{"clear"}, "assets/videos/clear.mp4"},
}

// BackgroundVideo picks the mood-matching background video for a
// condition description. Between 7PM and 6AM the night video always
// wins.
func BackgroundVideo(description string, now time.Time) string {
	if description == "" {
		return defaultVideo
	}

	if hour := now.Hour(); hour >= 19 || hour <= 6 {
		return "assets/videos/night.mp4"
	}

	desc := strings.ToLower(description)
	for _, rule := range videoRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(desc, keyword) {
				return rule.video
			}
		}
	}

	return defaultVideo
}
