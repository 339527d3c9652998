package requests

import "io"

type CreatePatient struct {
	Nombre          string `json:"nombre" validate:"required"`
	Apellido        string `json:"apellido" validate:"required"`
	DNI             string `json:"dni" validate:"required,dni"`
	Telefono        string `json:"telefono,omitempty"`
	Direccion       string `json:"direccion,omitempty"`
	FechaNacimiento string `json:"fechaNacimiento" validate:"required,fecha"`
}

// AppendClinicalRecord travels as a multipart form, not JSON. At most one
// attachment is sent; File nil means no attachment.
type AppendClinicalRecord struct {
	Diagnostico   string `validate:"required"`
	Observaciones string
	Odontologo    string
	FileName      string
	File          io.Reader
}
