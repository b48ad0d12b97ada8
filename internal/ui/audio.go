package ui

// Track is a background music file served with the web assets.
type Track struct {
	ID      string `json:"id"`
	Src     string `json:"src"`
	NameKey string `json:"name_key"`
}

const DefaultVolume = 0.5

var tracks = []Track{
	{"spring", "audio/spring.mp3", "trackSpring"},
	{"summer", "audio/summer.mp3", "trackSummer"},
	{"autumn", "audio/autumn.mp3", "trackAutumn"},
	{"winter", "audio/winter.mp3", "trackWinter"},
}

// Tracks returns the music tracks in menu order; the first is the default.
func Tracks() []Track {
	return append([]Track(nil), tracks...)
}

func knownTrack(id string) bool {
	for _, t := range tracks {
		if t.ID == id {
			return true
		}
	}
	return false
}
