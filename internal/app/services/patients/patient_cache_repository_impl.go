package patients

import (
	"strings"
	"sync"

	"sonrisitas-client/internal/pkg/dto/responses"
)

type patientCacheRepository struct {
	mu       sync.RWMutex
	version  uint64
	patients []responses.Patient
}

func NewPatientCacheRepository() PatientCacheRepository {
	return &patientCacheRepository{}
}

func (r *patientCacheRepository) Version() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}

func (r *patientCacheRepository) CommitRefresh(sinceVersion uint64, list []responses.Patient) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.version != sinceVersion {
		return false
	}
	r.patients = make([]responses.Patient, len(list))
	copy(r.patients, list)
	r.version++
	return true
}

func (r *patientCacheRepository) All() []responses.Patient {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]responses.Patient, len(r.patients))
	copy(out, r.patients)
	return out
}

func (r *patientCacheRepository) FilterByDNI(substr string) []responses.Patient {
	if substr == "" {
		return r.All()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	// Filtering is a view: cache order is preserved, nothing is mutated.
	var out []responses.Patient
	for _, patient := range r.patients {
		if strings.Contains(patient.DNI, substr) {
			out = append(out, patient)
		}
	}
	return out
}

func (r *patientCacheRepository) Upsert(patient responses.Patient) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.patients {
		if r.patients[i].DNI == patient.DNI {
			r.patients[i] = patient
			r.version++
			return
		}
	}
	r.patients = append(r.patients, patient)
	r.version++
}

func (r *patientCacheRepository) Remove(dni string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.patients {
		if r.patients[i].DNI == dni {
			r.patients = append(r.patients[:i], r.patients[i+1:]...)
			r.version++
			return
		}
	}
}
