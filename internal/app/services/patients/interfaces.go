package patients

import (
	"context"

	"sonrisitas-client/internal/pkg/dto/requests"
	"sonrisitas-client/internal/pkg/dto/responses"
)

// PatientCacheRepository mirrors the server's patient list for rendering. It
// is never the source of truth and must survive being replaced wholesale at
// any time.
type PatientCacheRepository interface {
	// Version increments on every committed mutation. Snapshot it before a
	// refresh round trip and pass it to CommitRefresh so a late response
	// cannot clobber newer state.
	Version() uint64
	// CommitRefresh replaces the whole cache; returns false (and applies
	// nothing) when the cache moved past sinceVersion meanwhile.
	CommitRefresh(sinceVersion uint64, list []responses.Patient) bool
	All() []responses.Patient
	// FilterByDNI returns the patients whose DNI contains substr anywhere,
	// in cache order; the empty filter returns the full cache.
	FilterByDNI(substr string) []responses.Patient
	// Upsert replaces in place by DNI, or appends when absent.
	Upsert(patient responses.Patient)
	// Remove deletes by DNI; absent DNI is a no-op.
	Remove(dni string)
}

type PatientUsecase interface {
	// ListPatients refreshes the cache from the backend and returns it.
	ListPatients(ctx context.Context) ([]responses.Patient, error)
	FilterByDNI(substr string) []responses.Patient
	CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error)
	DeletePatient(ctx context.Context, dni string) error
	AppendClinicalRecord(ctx context.Context, dni string, request *requests.AppendClinicalRecord) (*responses.Patient, error)
}
