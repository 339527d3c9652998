package constvars

// Client messages are user-visible and stay in Spanish, matching the copy the
// clinic staff already knows from the app screens.
const (
	ErrClientEnterEmailAndPassword     = "Ingresa email y contraseña"
	ErrClientCompleteAllFields         = "Completa todos los campos"
	ErrClientInvalidCredentials        = "Email o contraseña incorrecta. Intenta de nuevo."
	ErrClientCannotRegisterUser        = "No se pudo registrar el usuario"
	ErrClientAccountCreatedLoginFailed = "La cuenta fue creada pero no se pudo iniciar sesión. Inicia sesión manualmente."
	ErrClientSessionExpired            = "Tu sesión expiró. Inicia sesión de nuevo."
	ErrClientCannotLoadUser            = "No se pudo cargar el usuario"
	ErrClientLocalStorageUnavailable   = "No se pudo acceder al almacenamiento del dispositivo"

	ErrClientCannotLoadPatients      = "No se pudieron cargar los pacientes"
	ErrClientCannotCreatePatient     = "No se pudo crear el paciente"
	ErrClientPatientRequiredFields   = "Nombre, apellido, DNI y fecha de nacimiento son obligatorios"
	ErrClientPatientNotFound         = "Paciente no encontrado"
	ErrClientCannotAppendRecord      = "No se pudo guardar el diagnóstico"
	ErrClientOperationInProgress     = "Hay una operación en curso, espera un momento"
	ErrClientServerUnreachable       = "No se pudo conectar con el servidor. Intenta de nuevo."
	ErrClientCannotProcessRequest    = "No se pudo procesar la solicitud"
	ErrClientCannotDownloadMedia     = "No se pudo descargar la imagen"
	ErrClientGalleryPermissionDenied = "Necesitamos acceso a la galería para guardar la imagen"
	ErrClientUnsupportedMedia        = "Media no compatible"
)

// Dev messages go to logs only.
const (
	ErrDevCannotMarshalJSON  = "Failed to marshal JSON"
	ErrDevCannotParseJSON    = "Failed to parse JSON"
	ErrDevCreateHTTPRequest  = "Failed to create HTTP request"
	ErrDevSendHTTPRequest    = "Failed to send HTTP request"
	ErrDevDecodeResponse     = "Failed to decode %s response"
	ErrDevValidationFailed   = "Request validation failed"
	ErrDevInvalidCredentials = "Backend rejected the supplied credentials"
	ErrDevTokenMissing       = "No auth token in local session"
	ErrDevTokenExpired       = "Locally stored token is expired"
	ErrDevRegisterRejected   = "Backend rejected the registration request"
	ErrDevLoginAfterRegister = "Login after successful registration failed"

	ErrDevStorageRead      = "Failed to read key %q from local store"
	ErrDevStorageWrite     = "Failed to write key %q to local store"
	ErrDevStorageDelete    = "Failed to delete key %q from local store"
	ErrDevSessionCorrupted = "Stored session payload is not valid JSON"

	ErrDevPatientNotFound      = "Backend reports no patient with that DNI"
	ErrDevBackendRejectedInput = "Backend rejected the request payload"

	ErrDevMediaDownload     = "Failed to download media attachment"
	ErrDevMediaUnsupported  = "Media extension is neither image nor video"
	ErrDevMediaVideoInline  = "Video media plays inline and is never downloaded"
	ErrDevGalleryDenied     = "Gallery storage access was denied"
	ErrDevGallerySave       = "Failed to persist media into the gallery album"
	ErrDevGalleryOpen       = "Failed to open saved media"
	ErrDevMediaFetchNotIdle = "A media download is already in progress"
	ErrDevMediaCachePath    = "Failed to derive a cache path from the media URL"
)
