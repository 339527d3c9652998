package constvars

const (
	SuccessClientLogin      = "Se inició sesión correctamente"
	SuccessClientLogout     = "Sesión cerrada correctamente"
	SuccessClientImageSaved = "Imagen descargada en la galería"
)
