package responses

import "time"

type ClinicalRecord struct {
	ID            string    `json:"_id,omitempty"`
	Diagnostico   string    `json:"diagnostico"`
	Tratamiento   string    `json:"tratamiento,omitempty"`
	Observaciones string    `json:"observaciones,omitempty"`
	Odontologo    string    `json:"odontologo,omitempty"`
	Fecha         time.Time `json:"fecha"`
	Media         string    `json:"media,omitempty"`
}

type Patient struct {
	ID              string           `json:"_id,omitempty"`
	Nombre          string           `json:"nombre"`
	Apellido        string           `json:"apellido"`
	DNI             string           `json:"dni"`
	Telefono        string           `json:"telefono,omitempty"`
	Direccion       string           `json:"direccion,omitempty"`
	FechaNacimiento string           `json:"fechaNacimiento,omitempty"`
	HistoriaClinica []ClinicalRecord `json:"historiaClinica"`
}

// PatientList absorbs the two shapes the backend is known to answer with:
// a bare array or an object wrapping it under "pacientes".
type PatientList struct {
	Pacientes []Patient `json:"pacientes"`
}
