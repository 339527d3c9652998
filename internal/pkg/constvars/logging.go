package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingOperationKey    = "operation"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingErrorCodeKey    = "error_code"
	LoggingErrorMessageKey = "error_message"

	LoggingEmailKey        = "email"
	LoggingPatientDNIKey   = "patient_dni"
	LoggingPatientIDKey    = "patient_id"
	LoggingPatientCountKey = "patient_count"
	LoggingStorageKeyKey   = "storage_key"
	LoggingMediaURLKey     = "media_url"
	LoggingMediaStateKey   = "media_state"
	LoggingFilePathKey     = "file_path"
	LoggingAlbumKey        = "album"
	LoggingCacheVersionKey = "cache_version"
)
