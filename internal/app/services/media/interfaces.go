package media

import "context"

type MediaKind int

const (
	MediaUnsupported MediaKind = iota
	MediaImage
	MediaVideo
)

func (k MediaKind) String() string {
	switch k {
	case MediaImage:
		return "image"
	case MediaVideo:
		return "video"
	default:
		return "unsupported"
	}
}

type State int

const (
	StateIdle State = iota
	StateDownloading
	StatePermissionCheck
	StateSaving
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateDownloading:
		return "downloading"
	case StatePermissionCheck:
		return "permission_check"
	case StateSaving:
		return "saving"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Gallery is the device media library: access must be requested before
// saving, and some platforms can open a saved file afterwards.
type Gallery interface {
	RequestAccess(ctx context.Context) error
	// SaveToAlbum persists srcPath into the named album and returns the
	// saved location.
	SaveToAlbum(ctx context.Context, album, srcPath string) (string, error)
	// Open is a no-op on platforms without an opener.
	Open(ctx context.Context, path string) error
}

// AttachmentFetcher runs the download, permission check and save-to-album
// workflow for image attachments of a clinical record. One workflow at a time; both
// terminal states stay observable until the next Download call retries.
type AttachmentFetcher interface {
	Classify(mediaURL string) MediaKind
	// Download runs the whole workflow and returns the saved gallery path.
	Download(ctx context.Context, mediaURL string) (string, error)
	State() State
	LastError() error
}
