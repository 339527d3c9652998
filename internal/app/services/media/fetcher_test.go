package media

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"sonrisitas-client/internal/pkg/constvars"
	"sonrisitas-client/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newMediaServer(t *testing.T, requests *atomic.Int32) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests != nil {
			requests.Add(1)
		}
		if r.URL.Path == "/missing.png" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte("fake-image-bytes"))
	}))
	t.Cleanup(server.Close)
	return server
}

type denyingGallery struct{}

func (denyingGallery) RequestAccess(ctx context.Context) error {
	return exceptions.ErrGalleryPermissionDenied(errors.New("denied"))
}

func (denyingGallery) SaveToAlbum(ctx context.Context, album, srcPath string) (string, error) {
	return "", errors.New("unreachable")
}

func (denyingGallery) Open(ctx context.Context, path string) error { return nil }

func newTestFetcher(t *testing.T, gallery Gallery) (AttachmentFetcher, string) {
	t.Helper()
	cacheDir := t.TempDir()
	fetcher := NewAttachmentFetcher(cacheDir, constvars.GalleryAlbumName, gallery, 5*time.Second, false, zap.NewNop())
	return fetcher, cacheDir
}

func TestClassifyMediaURL(t *testing.T) {
	assert.Equal(t, MediaImage, ClassifyMediaURL("http://host/uploads/rx.PNG"))
	assert.Equal(t, MediaImage, ClassifyMediaURL("http://host/uploads/foto.jpeg?v=2"))
	assert.Equal(t, MediaVideo, ClassifyMediaURL("http://host/uploads/clip.mp4"))
	assert.Equal(t, MediaUnsupported, ClassifyMediaURL("http://host/uploads/informe.pdf"))
	assert.Equal(t, MediaUnsupported, ClassifyMediaURL("http://host/uploads/"))
}

func TestAttachmentFetcher_Download(t *testing.T) {
	ctx := context.Background()

	t.Run("image lands in the album and state is done", func(t *testing.T) {
		server := newMediaServer(t, nil)
		galleryRoot := t.TempDir()
		gallery := NewFilesystemGallery(galleryRoot, nil, zap.NewNop())
		fetcher, _ := newTestFetcher(t, gallery)

		savedPath, err := fetcher.Download(ctx, server.URL+"/radiografia.png")
		assert.NoError(t, err)
		assert.Equal(t, filepath.Join(galleryRoot, constvars.GalleryAlbumName, "radiografia.png"), savedPath)
		assert.FileExists(t, savedPath)
		assert.Equal(t, StateDone, fetcher.State())
		assert.NoError(t, fetcher.LastError())
	})

	t.Run("video is reported for inline playback without any request", func(t *testing.T) {
		var requests atomic.Int32
		server := newMediaServer(t, &requests)
		fetcher, _ := newTestFetcher(t, NewFilesystemGallery(t.TempDir(), nil, zap.NewNop()))

		savedPath, err := fetcher.Download(ctx, server.URL+"/clip.mp4")
		assert.Empty(t, savedPath)
		assert.Error(t, err)
		assert.Equal(t, StateIdle, fetcher.State())
		assert.Equal(t, int32(0), requests.Load())
	})

	t.Run("unsupported extension leaves the workflow idle", func(t *testing.T) {
		var requests atomic.Int32
		server := newMediaServer(t, &requests)
		fetcher, _ := newTestFetcher(t, NewFilesystemGallery(t.TempDir(), nil, zap.NewNop()))

		_, err := fetcher.Download(ctx, server.URL+"/informe.pdf")
		assert.Equal(t, exceptions.KindUnsupportedMedia, exceptions.KindOf(err))
		assert.Equal(t, StateIdle, fetcher.State())
		assert.Equal(t, int32(0), requests.Load())
	})

	t.Run("denied permission fails and keeps the temp file", func(t *testing.T) {
		server := newMediaServer(t, nil)
		fetcher, cacheDir := newTestFetcher(t, denyingGallery{})

		savedPath, err := fetcher.Download(ctx, server.URL+"/radiografia.png")
		assert.Empty(t, savedPath)
		assert.Equal(t, exceptions.KindPermissionDenied, exceptions.KindOf(err))
		assert.Equal(t, StateFailed, fetcher.State())
		assert.Equal(t, err, fetcher.LastError())
		assert.FileExists(t, filepath.Join(cacheDir, "radiografia.png"))
	})

	t.Run("backend error during download fails the workflow", func(t *testing.T) {
		server := newMediaServer(t, nil)
		fetcher, cacheDir := newTestFetcher(t, NewFilesystemGallery(t.TempDir(), nil, zap.NewNop()))

		_, err := fetcher.Download(ctx, server.URL+"/missing.png")
		assert.Equal(t, exceptions.KindNetwork, exceptions.KindOf(err))
		assert.Equal(t, StateFailed, fetcher.State())
		assert.NoFileExists(t, filepath.Join(cacheDir, "missing.png"))
	})

	t.Run("unreachable host fails with the network kind", func(t *testing.T) {
		server := newMediaServer(t, nil)
		mediaURL := server.URL + "/radiografia.png"
		server.Close()
		fetcher, _ := newTestFetcher(t, NewFilesystemGallery(t.TempDir(), nil, zap.NewNop()))

		_, err := fetcher.Download(ctx, mediaURL)
		assert.Equal(t, exceptions.KindNetwork, exceptions.KindOf(err))
		assert.Equal(t, StateFailed, fetcher.State())
	})

	t.Run("retry from failed succeeds and clears the last error", func(t *testing.T) {
		server := newMediaServer(t, nil)
		galleryRoot := t.TempDir()
		fetcher, _ := newTestFetcher(t, NewFilesystemGallery(galleryRoot, nil, zap.NewNop()))

		_, err := fetcher.Download(ctx, server.URL+"/missing.png")
		assert.Error(t, err)
		assert.Equal(t, StateFailed, fetcher.State())

		savedPath, err := fetcher.Download(ctx, server.URL+"/radiografia.png")
		assert.NoError(t, err)
		assert.FileExists(t, savedPath)
		assert.Equal(t, StateDone, fetcher.State())
		assert.NoError(t, fetcher.LastError())
	})

	t.Run("opener runs after save when enabled", func(t *testing.T) {
		server := newMediaServer(t, nil)
		var opened atomic.Int32
		opener := OpenFunc(func(ctx context.Context, path string) error {
			opened.Add(1)
			return nil
		})
		gallery := NewFilesystemGallery(t.TempDir(), opener, zap.NewNop())
		fetcher := NewAttachmentFetcher(t.TempDir(), constvars.GalleryAlbumName, gallery, 5*time.Second, true, zap.NewNop())

		_, err := fetcher.Download(ctx, server.URL+"/radiografia.png")
		assert.NoError(t, err)
		assert.Equal(t, int32(1), opened.Load())
	})
}

func TestFilesystemGallery_RequestAccess(t *testing.T) {
	gallery := NewFilesystemGallery(t.TempDir(), nil, zap.NewNop())
	assert.NoError(t, gallery.RequestAccess(context.Background()))
}
