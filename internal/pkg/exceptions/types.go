package exceptions

import (
	"fmt"

	"sonrisitas-client/internal/pkg/constvars"
)

var (
	// Transport
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, KindUnknown, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, KindUnknown, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrBackendUnreachable = func(err error) *CustomError {
		return BuildNewCustomError(err, KindNetwork, constvars.ErrClientServerUnreachable, constvars.ErrDevSendHTTPRequest)
	}
	ErrDecodeResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, KindUnknown, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevDecodeResponse, resource))
	}

	// Auth
	ErrInvalidCredentials = func(err error) *CustomError {
		return BuildNewCustomError(err, KindAuth, constvars.ErrClientInvalidCredentials, constvars.ErrDevInvalidCredentials)
	}
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, KindAuth, constvars.ErrClientSessionExpired, constvars.ErrDevTokenMissing)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, KindAuth, constvars.ErrClientSessionExpired, constvars.ErrDevTokenExpired)
	}
	ErrRegisterRejected = func(err error, serverMessage string) *CustomError {
		clientMessage := constvars.ErrClientCannotRegisterUser
		if serverMessage != "" {
			clientMessage = serverMessage
		}
		return BuildNewCustomError(err, KindValidation, clientMessage, constvars.ErrDevRegisterRejected)
	}
	ErrAccountCreatedLoginFailed = func(err error) *CustomError {
		return BuildNewCustomError(err, KindAuth, constvars.ErrClientAccountCreatedLoginFailed, constvars.ErrDevLoginAfterRegister)
	}

	// Validation
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrBackendRejectedInput = func(err error, serverMessage string) *CustomError {
		clientMessage := constvars.ErrClientCannotProcessRequest
		if serverMessage != "" {
			clientMessage = serverMessage
		}
		return BuildNewCustomError(err, KindValidation, clientMessage, constvars.ErrDevBackendRejectedInput)
	}

	// Local store
	ErrStorageRead = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, KindStorage, constvars.ErrClientLocalStorageUnavailable, fmt.Sprintf(constvars.ErrDevStorageRead, key))
	}
	ErrStorageWrite = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, KindStorage, constvars.ErrClientLocalStorageUnavailable, fmt.Sprintf(constvars.ErrDevStorageWrite, key))
	}
	ErrStorageDelete = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, KindStorage, constvars.ErrClientLocalStorageUnavailable, fmt.Sprintf(constvars.ErrDevStorageDelete, key))
	}
	ErrSessionCorrupted = func(err error) *CustomError {
		return BuildNewCustomError(err, KindDeserialization, constvars.ErrClientCannotLoadUser, constvars.ErrDevSessionCorrupted)
	}

	// Patients
	ErrPatientNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, KindNotFound, constvars.ErrClientPatientNotFound, constvars.ErrDevPatientNotFound)
	}

	// Media
	ErrMediaDownload = func(err error) *CustomError {
		return BuildNewCustomError(err, KindNetwork, constvars.ErrClientCannotDownloadMedia, constvars.ErrDevMediaDownload)
	}
	ErrMediaUnsupported = func(err error) *CustomError {
		return BuildNewCustomError(err, KindUnsupportedMedia, constvars.ErrClientUnsupportedMedia, constvars.ErrDevMediaUnsupported)
	}
	ErrMediaVideoInline = func(err error) *CustomError {
		return BuildNewCustomError(err, KindUnsupportedMedia, constvars.ErrClientUnsupportedMedia, constvars.ErrDevMediaVideoInline)
	}
	ErrMediaCachePath = func(err error) *CustomError {
		return BuildNewCustomError(err, KindUnknown, constvars.ErrClientCannotDownloadMedia, constvars.ErrDevMediaCachePath)
	}
	ErrMediaFetchNotIdle = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.ErrClientOperationInProgress, constvars.ErrDevMediaFetchNotIdle)
	}
	ErrGalleryPermissionDenied = func(err error) *CustomError {
		return BuildNewCustomError(err, KindPermissionDenied, constvars.ErrClientGalleryPermissionDenied, constvars.ErrDevGalleryDenied)
	}
	ErrGallerySave = func(err error) *CustomError {
		return BuildNewCustomError(err, KindStorage, constvars.ErrClientCannotDownloadMedia, constvars.ErrDevGallerySave)
	}
	ErrGalleryOpen = func(err error) *CustomError {
		return BuildNewCustomError(err, KindStorage, constvars.ErrClientCannotDownloadMedia, constvars.ErrDevGalleryOpen)
	}
)
