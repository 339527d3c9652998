package patients

import (
	"context"

	backend "sonrisitas-client/internal/app/services/backend/patients"
	"sonrisitas-client/internal/app/services/sessions"
	"sonrisitas-client/internal/pkg/constvars"
	"sonrisitas-client/internal/pkg/dto/requests"
	"sonrisitas-client/internal/pkg/dto/responses"
	"sonrisitas-client/internal/pkg/exceptions"
	"sonrisitas-client/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type patientUsecase struct {
	PatientClient backend.PatientBackendClient
	Cache         PatientCacheRepository
	SessionStore  sessions.SessionStore
	Log           *zap.Logger
	flight        singleflight.Group
}

func NewPatientUsecase(
	patientClient backend.PatientBackendClient,
	cache PatientCacheRepository,
	sessionStore sessions.SessionStore,
	logger *zap.Logger,
) PatientUsecase {
	return &patientUsecase{
		PatientClient: patientClient,
		Cache:         cache,
		SessionStore:  sessionStore,
		Log:           logger,
	}
}

func (uc *patientUsecase) ListPatients(ctx context.Context) ([]responses.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.ListPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	token, err := uc.sessionToken(ctx)
	if err != nil {
		return nil, err
	}

	_, err, _ = uc.flight.Do("list:patients", func() (interface{}, error) {
		sinceVersion := uc.Cache.Version()
		list, err := uc.PatientClient.ListPatients(ctx, token)
		if err != nil {
			return nil, err
		}
		if !uc.Cache.CommitRefresh(sinceVersion, list) {
			// A newer mutation landed while this refresh was in flight; its
			// result is stale and must not overwrite the cache.
			uc.Log.Warn("patientUsecase.ListPatients stale refresh dropped",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Uint64(constvars.LoggingCacheVersionKey, sinceVersion),
			)
		}
		return nil, nil
	})
	if err != nil {
		uc.Log.Error("patientUsecase.ListPatients failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	patients := uc.Cache.All()
	uc.Log.Info("patientUsecase.ListPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCountKey, len(patients)),
	)
	return patients, nil
}

func (uc *patientUsecase) FilterByDNI(substr string) []responses.Patient {
	return uc.Cache.FilterByDNI(substr)
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientDNIKey, request.DNI),
	)

	// The same required-field check the server runs, done locally to save a
	// round trip; the server stays authoritative.
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	token, err := uc.sessionToken(ctx)
	if err != nil {
		return nil, err
	}

	result, err, _ := uc.flight.Do("create:"+request.DNI, func() (interface{}, error) {
		patient, err := uc.PatientClient.CreatePatient(ctx, token, request)
		if err != nil {
			return nil, err
		}
		uc.Cache.Upsert(*patient)
		return patient, nil
	})
	if err != nil {
		uc.Log.Error("patientUsecase.CreatePatient failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	patient := result.(*responses.Patient)
	uc.Log.Info("patientUsecase.CreatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
	)
	return patient, nil
}

func (uc *patientUsecase) DeletePatient(ctx context.Context, dni string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.DeletePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientDNIKey, dni),
	)

	token, err := uc.sessionToken(ctx)
	if err != nil {
		return err
	}

	_, err, _ = uc.flight.Do("delete:"+dni, func() (interface{}, error) {
		if err := uc.PatientClient.DeletePatient(ctx, token, dni); err != nil {
			return nil, err
		}
		uc.Cache.Remove(dni)

		// Delete returns no entity, so the cache must be rebuilt from the
		// server's current list.
		sinceVersion := uc.Cache.Version()
		list, err := uc.PatientClient.ListPatients(ctx, token)
		if err != nil {
			return nil, err
		}
		uc.Cache.CommitRefresh(sinceVersion, list)
		return nil, nil
	})
	if err != nil {
		uc.Log.Error("patientUsecase.DeletePatient failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("patientUsecase.DeletePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientDNIKey, dni),
	)
	return nil
}

func (uc *patientUsecase) AppendClinicalRecord(ctx context.Context, dni string, request *requests.AppendClinicalRecord) (*responses.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.AppendClinicalRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientDNIKey, dni),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	token, err := uc.sessionToken(ctx)
	if err != nil {
		return nil, err
	}

	result, err, _ := uc.flight.Do("append:"+dni, func() (interface{}, error) {
		patient, err := uc.PatientClient.AppendClinicalRecord(ctx, token, dni, request)
		if err != nil {
			return nil, err
		}
		// Wholesale replacement of the returned patient; append-merging the
		// new record locally would duplicate it.
		uc.Cache.Upsert(*patient)
		return patient, nil
	})
	if err != nil {
		uc.Log.Error("patientUsecase.AppendClinicalRecord failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	patient := result.(*responses.Patient)
	uc.Log.Info("patientUsecase.AppendClinicalRecord succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
	)
	return patient, nil
}

func (uc *patientUsecase) sessionToken(ctx context.Context) (string, error) {
	session, err := uc.SessionStore.LoadSession(ctx)
	if err != nil {
		return "", err
	}
	if session == nil {
		return "", exceptions.ErrTokenMissing(nil)
	}
	return session.Token, nil
}
