package constvars

type ContextKey string

const CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"

const (
	StorageKeyToken = "token"
	StorageKeyUser  = "user"

	DefaultUserRole = "admin"

	GalleryAlbumName = "Sonrisitas"

	DateLayoutFechaNacimiento = "2006-01-02"
)
