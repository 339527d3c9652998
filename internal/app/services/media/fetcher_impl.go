package media

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"sonrisitas-client/internal/pkg/constvars"
	"sonrisitas-client/internal/pkg/exceptions"
	"sonrisitas-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type attachmentFetcher struct {
	CacheDir      string
	AlbumName     string
	Gallery       Gallery
	HTTPClient    *http.Client
	OpenAfterSave bool
	Log           *zap.Logger

	mu      sync.Mutex
	state   State
	lastErr error
}

func NewAttachmentFetcher(
	cacheDir string,
	albumName string,
	gallery Gallery,
	timeout time.Duration,
	openAfterSave bool,
	logger *zap.Logger,
) AttachmentFetcher {
	return &attachmentFetcher{
		CacheDir:      cacheDir,
		AlbumName:     albumName,
		Gallery:       gallery,
		HTTPClient:    &http.Client{Timeout: timeout},
		OpenAfterSave: openAfterSave,
		Log:           logger,
		state:         StateIdle,
	}
}

func (f *attachmentFetcher) Classify(mediaURL string) MediaKind {
	return ClassifyMediaURL(mediaURL)
}

func (f *attachmentFetcher) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *attachmentFetcher) LastError() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

func (f *attachmentFetcher) Download(ctx context.Context, mediaURL string) (string, error) {
	requestID := utils.GetRequestID(ctx)

	// Only images enter the workflow. Videos play inline and everything else
	// gets no action at all, so neither may leave Idle.
	switch f.Classify(mediaURL) {
	case MediaImage:
	case MediaVideo:
		return "", exceptions.ErrMediaVideoInline(nil)
	default:
		return "", exceptions.ErrMediaUnsupported(nil)
	}

	if err := f.begin(); err != nil {
		return "", err
	}

	f.Log.Info("attachmentFetcher.Download started",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMediaURLKey, mediaURL),
	)

	tempPath, err := f.downloadToCache(ctx, mediaURL)
	if err != nil {
		return "", f.fail(requestID, err)
	}

	f.setState(StatePermissionCheck)
	if err := f.Gallery.RequestAccess(ctx); err != nil {
		// The downloaded temp file is deliberately left in the cache dir; a
		// later retry with permission granted reuses nothing but also
		// cleans up nothing.
		return "", f.fail(requestID, err)
	}

	f.setState(StateSaving)
	savedPath, err := f.Gallery.SaveToAlbum(ctx, f.AlbumName, tempPath)
	if err != nil {
		return "", f.fail(requestID, err)
	}
	if f.OpenAfterSave {
		if err := f.Gallery.Open(ctx, savedPath); err != nil {
			return "", f.fail(requestID, err)
		}
	}

	f.setState(StateDone)
	f.Log.Info("attachmentFetcher.Download succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFilePathKey, savedPath),
	)
	return savedPath, nil
}

func (f *attachmentFetcher) downloadToCache(ctx context.Context, mediaURL string) (string, error) {
	if err := os.MkdirAll(f.CacheDir, 0755); err != nil {
		return "", exceptions.ErrMediaCachePath(err)
	}
	fileName := mediaFileName(mediaURL)
	if fileName == "" || fileName == "." || fileName == "/" {
		return "", exceptions.ErrMediaCachePath(nil)
	}
	tempPath := filepath.Join(f.CacheDir, fileName)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, mediaURL, nil)
	if err != nil {
		return "", exceptions.ErrCreateHTTPRequest(err)
	}
	resp, err := f.HTTPClient.Do(req)
	if err != nil {
		return "", exceptions.ErrMediaDownload(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return "", exceptions.ErrMediaDownload(nil)
	}

	out, err := os.Create(tempPath)
	if err != nil {
		return "", exceptions.ErrMediaCachePath(err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", exceptions.ErrMediaDownload(err)
	}
	return tempPath, nil
}

// begin transitions Idle (or a terminal state, which a new Download call
// retries from) into Downloading; a workflow already past Idle stays
// untouched.
func (f *attachmentFetcher) begin() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch f.state {
	case StateIdle, StateDone, StateFailed:
		f.state = StateDownloading
		f.lastErr = nil
		return nil
	default:
		return exceptions.ErrMediaFetchNotIdle(nil)
	}
}

func (f *attachmentFetcher) setState(state State) {
	f.mu.Lock()
	f.state = state
	f.mu.Unlock()
}

func (f *attachmentFetcher) fail(requestID string, err error) error {
	f.mu.Lock()
	f.state = StateFailed
	f.lastErr = err
	f.mu.Unlock()

	f.Log.Error("attachmentFetcher.Download failed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMediaStateKey, StateFailed.String()),
		zap.Error(err),
	)
	return err
}
