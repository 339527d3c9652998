package constvars

// Extensions mirror what the clinical-history screen renders: images get a
// download action, videos play inline, everything else is rejected.
var (
	MediaImageExtensions = []string{".jpeg", ".jpg", ".gif", ".png"}
	MediaVideoExtensions = []string{".mp4", ".mov", ".avi"}
)
