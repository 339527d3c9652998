package patients

import (
	"context"

	"sonrisitas-client/internal/pkg/dto/requests"
	"sonrisitas-client/internal/pkg/dto/responses"
)

type PatientBackendClient interface {
	ListPatients(ctx context.Context, token string) ([]responses.Patient, error)
	CreatePatient(ctx context.Context, token string, request *requests.CreatePatient) (*responses.Patient, error)
	DeletePatient(ctx context.Context, token string, dni string) error
	// AppendClinicalRecord uploads a multipart form with at most one file and
	// returns the updated patient including the new record.
	AppendClinicalRecord(ctx context.Context, token string, dni string, request *requests.AppendClinicalRecord) (*responses.Patient, error)
}
