package constvars

const (
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"

	MIMEApplicationJSON = "application/json"

	AuthBearerPrefix = "Bearer "

	MethodGet    = "GET"
	MethodPost   = "POST"
	MethodDelete = "DELETE"

	StatusOK           = 200
	StatusCreated      = 201
	StatusBadRequest   = 400
	StatusUnauthorized = 401
	StatusNotFound     = 404
)

const (
	EndpointUserLogin    = "/api/user/login"
	EndpointUserRegister = "/api/user/register"
	EndpointPatients     = "/api/pacientes"
	EndpointHistoria     = "/historia"
)
