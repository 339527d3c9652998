package media

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"sonrisitas-client/internal/pkg/constvars"
	"sonrisitas-client/internal/pkg/exceptions"

	"go.uber.org/zap"
)

// OpenFunc opens a saved media file; nil means the platform reports success
// without opening anything.
type OpenFunc func(ctx context.Context, path string) error

// CommandOpener builds an OpenFunc around an external viewer command, e.g.
// xdg-open.
func CommandOpener(command string) OpenFunc {
	return func(ctx context.Context, path string) error {
		return exec.CommandContext(ctx, command, path).Run()
	}
}

type fsGallery struct {
	Root   string
	Opener OpenFunc
	Log    *zap.Logger
}

func NewFilesystemGallery(root string, opener OpenFunc, logger *zap.Logger) Gallery {
	return &fsGallery{
		Root:   root,
		Opener: opener,
		Log:    logger,
	}
}

// RequestAccess probes that the gallery root is writable; a refusal is the
// filesystem analog of the user denying media-library permission.
func (g *fsGallery) RequestAccess(ctx context.Context) error {
	if err := os.MkdirAll(g.Root, 0755); err != nil {
		return exceptions.ErrGalleryPermissionDenied(err)
	}
	probe, err := os.CreateTemp(g.Root, ".probe-*")
	if err != nil {
		return exceptions.ErrGalleryPermissionDenied(err)
	}
	probe.Close()
	os.Remove(probe.Name())
	return nil
}

func (g *fsGallery) SaveToAlbum(ctx context.Context, album, srcPath string) (string, error) {
	albumDir := filepath.Join(g.Root, album)
	if err := os.MkdirAll(albumDir, 0755); err != nil {
		return "", exceptions.ErrGallerySave(err)
	}

	src, err := os.Open(srcPath)
	if err != nil {
		return "", exceptions.ErrGallerySave(err)
	}
	defer src.Close()

	destPath := filepath.Join(albumDir, filepath.Base(srcPath))
	dest, err := os.Create(destPath)
	if err != nil {
		return "", exceptions.ErrGallerySave(err)
	}
	defer dest.Close()

	if _, err := io.Copy(dest, src); err != nil {
		os.Remove(destPath)
		return "", exceptions.ErrGallerySave(err)
	}

	g.Log.Info("fsGallery.SaveToAlbum succeeded",
		zap.String(constvars.LoggingAlbumKey, album),
		zap.String(constvars.LoggingFilePathKey, destPath),
	)
	return destPath, nil
}

func (g *fsGallery) Open(ctx context.Context, path string) error {
	if g.Opener == nil {
		return nil
	}
	if err := g.Opener(ctx, path); err != nil {
		return exceptions.ErrGalleryOpen(err)
	}
	return nil
}
