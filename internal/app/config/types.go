package config

type (
	InternalConfig struct {
		App     App
		Backend Backend
		Session Session
		Media   Media
	}

	DriverConfig struct {
		Logger Logger
	}

	App struct {
		Env      string
		Version  string
		Timezone string
	}

	// Backend is the clinic HTTP API. The base URL is configuration, never a
	// literal inside client code.
	Backend struct {
		BaseUrl          string
		TimeoutInSeconds int
	}

	// Session is the durable on-device store holding the token/user pair.
	Session struct {
		Dir string
	}

	Media struct {
		CacheDir      string
		GalleryDir    string
		AlbumName     string
		OpenCommand   string
		OpenAfterSave bool
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
