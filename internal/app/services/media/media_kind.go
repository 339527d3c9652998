package media

import (
	"net/url"
	"path"
	"strings"

	"sonrisitas-client/internal/pkg/constvars"
)

// ClassifyMediaURL decides what the clinical-history screen does with an
// attachment: images get a download action, videos play inline, anything
// else is reported as unsupported.
func ClassifyMediaURL(mediaURL string) MediaKind {
	ext := mediaExtension(mediaURL)
	for _, imageExt := range constvars.MediaImageExtensions {
		if ext == imageExt {
			return MediaImage
		}
	}
	for _, videoExt := range constvars.MediaVideoExtensions {
		if ext == videoExt {
			return MediaVideo
		}
	}
	return MediaUnsupported
}

func mediaExtension(mediaURL string) string {
	raw := mediaURL
	if parsed, err := url.Parse(mediaURL); err == nil && parsed.Path != "" {
		raw = parsed.Path
	}
	return strings.ToLower(path.Ext(raw))
}

func mediaFileName(mediaURL string) string {
	raw := mediaURL
	if parsed, err := url.Parse(mediaURL); err == nil && parsed.Path != "" {
		raw = parsed.Path
	}
	return path.Base(raw)
}
