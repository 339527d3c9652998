package config

import (
	"sonrisitas-client/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:      utils.GetEnvString("APP_ENV", "development"),
			Version:  utils.GetEnvString("APP_VERSION", "v1.0"),
			Timezone: utils.GetEnvString("APP_TIMEZONE", "America/Lima"),
		},
		Backend: Backend{
			BaseUrl:          utils.GetEnvString("BACKEND_BASE_URL", "http://192.168.18.49:4000"),
			TimeoutInSeconds: utils.GetEnvInt("BACKEND_TIMEOUT_IN_SECONDS", 15),
		},
		Session: Session{
			Dir: utils.GetEnvString("SESSION_DIR", ".sonrisitas/session"),
		},
		Media: Media{
			CacheDir:      utils.GetEnvString("MEDIA_CACHE_DIR", ".sonrisitas/cache"),
			GalleryDir:    utils.GetEnvString("MEDIA_GALLERY_DIR", ".sonrisitas/galeria"),
			AlbumName:     utils.GetEnvString("MEDIA_ALBUM_NAME", "Sonrisitas"),
			OpenCommand:   utils.GetEnvString("MEDIA_OPEN_COMMAND", ""),
			OpenAfterSave: utils.GetEnvBool("MEDIA_OPEN_AFTER_SAVE", false),
		},
	}
}
