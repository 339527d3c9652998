package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"sonrisitas-client/internal/app/config"
	"sonrisitas-client/internal/app/drivers/logger"
	"sonrisitas-client/internal/app/services/auth"
	backendpatients "sonrisitas-client/internal/app/services/backend/patients"
	backendusers "sonrisitas-client/internal/app/services/backend/users"
	"sonrisitas-client/internal/app/services/media"
	"sonrisitas-client/internal/app/services/patients"
	"sonrisitas-client/internal/app/services/sessions"
	"sonrisitas-client/internal/app/services/shared/localstore"
	"sonrisitas-client/internal/pkg/constvars"
	"sonrisitas-client/internal/pkg/dto/requests"
	"sonrisitas-client/internal/pkg/exceptions"
	"sonrisitas-client/internal/pkg/utils"

	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	app, err := bootstrapTheApp(internalConfig, config.Bootstrap{
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	})
	if err != nil {
		log.Fatalf("Error bootstrapping the app: %v", err)
	}

	runTerminalView(app)

	logrus.Println("Closing application..")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.Bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown finished with error: %v", err)
	}
}

type application struct {
	Bootstrap      config.Bootstrap
	AuthUsecase    auth.AuthUsecase
	PatientUsecase patients.PatientUsecase
	Fetcher        media.AttachmentFetcher
}

func bootstrapTheApp(internalConfig *config.InternalConfig, bootstrap config.Bootstrap) (*application, error) {
	timeout := time.Duration(internalConfig.Backend.TimeoutInSeconds) * time.Second

	// Local store + sessions
	store, err := localstore.NewFileStore(internalConfig.Session.Dir)
	if err != nil {
		return nil, err
	}
	sessionStore := sessions.NewSessionStore(store, bootstrap.Logger)

	// Backend clients
	userClient := backendusers.NewUserBackendClient(internalConfig.Backend.BaseUrl, timeout, bootstrap.Logger)
	patientClient := backendpatients.NewPatientBackendClient(internalConfig.Backend.BaseUrl, timeout, bootstrap.Logger)

	// Auth
	authUsecase := auth.NewAuthUsecase(userClient, sessionStore, bootstrap.Logger)

	// Patients
	patientCache := patients.NewPatientCacheRepository()
	patientUsecase := patients.NewPatientUsecase(patientClient, patientCache, sessionStore, bootstrap.Logger)

	// Media
	var opener media.OpenFunc
	if internalConfig.Media.OpenCommand != "" {
		opener = media.CommandOpener(internalConfig.Media.OpenCommand)
	}
	gallery := media.NewFilesystemGallery(internalConfig.Media.GalleryDir, opener, bootstrap.Logger)
	fetcher := media.NewAttachmentFetcher(
		internalConfig.Media.CacheDir,
		internalConfig.Media.AlbumName,
		gallery,
		timeout,
		internalConfig.Media.OpenAfterSave,
		bootstrap.Logger,
	)

	return &application{
		Bootstrap:      bootstrap,
		AuthUsecase:    authUsecase,
		PatientUsecase: patientUsecase,
		Fetcher:        fetcher,
	}, nil
}

// Everything below is the view layer: screens that call usecases and print
// whatever state comes back.

func runTerminalView(app *application) {
	reader := bufio.NewReader(os.Stdin)
	for {
		// The session gate runs on every "foreground" pass, never cached.
		session, err := app.AuthUsecase.CurrentSession(utils.WithRequestID(context.Background()))
		if err != nil {
			fmt.Println(exceptions.ClientMessageOf(err))
			return
		}
		if session == nil {
			if !loginScreen(app, reader) {
				return
			}
			continue
		}
		if !homeScreen(app, reader, session.UserName()) {
			return
		}
	}
}

func loginScreen(app *application, reader *bufio.Reader) bool {
	fmt.Println("\n--- Sonrisitas ---")
	fmt.Println("1) Iniciar sesión")
	fmt.Println("2) Registrar nuevo usuario")
	fmt.Println("0) Salir")

	switch prompt(reader, "> ") {
	case "1":
		email := prompt(reader, "Email: ")
		password := prompt(reader, "Contraseña: ")
		if email == "" || password == "" {
			fmt.Println(constvars.ErrClientEnterEmailAndPassword)
			return true
		}
		ctx := utils.WithRequestID(context.Background())
		if _, err := app.AuthUsecase.LoginUser(ctx, &requests.LoginUser{Email: email, Password: password}); err != nil {
			fmt.Println(exceptions.ClientMessageOf(err))
			return true
		}
		fmt.Println(constvars.SuccessClientLogin)
	case "2":
		nombre := prompt(reader, "Ingrese su nombre: ")
		email := prompt(reader, "Ingrese su email: ")
		password := prompt(reader, "Ingrese su contraseña: ")
		if nombre == "" || email == "" || password == "" {
			fmt.Println(constvars.ErrClientCompleteAllFields)
			return true
		}
		ctx := utils.WithRequestID(context.Background())
		if _, err := app.AuthUsecase.RegisterUser(ctx, &requests.RegisterUser{
			Nombre:   nombre,
			Email:    email,
			Password: password,
		}); err != nil {
			fmt.Println(exceptions.ClientMessageOf(err))
			return true
		}
		fmt.Println(constvars.SuccessClientLogin)
	case "0":
		return false
	}
	return true
}

func homeScreen(app *application, reader *bufio.Reader, nombre string) bool {
	fmt.Printf("\nHola %s\n", nombre)
	fmt.Println("1) Ver Pacientes")
	fmt.Println("2) Cerrar Sesión")
	fmt.Println("0) Salir")

	switch prompt(reader, "> ") {
	case "1":
		patientsScreen(app, reader)
	case "2":
		if confirm(reader, "¿Deseas cerrar sesión? (s/n): ") {
			ctx := utils.WithRequestID(context.Background())
			if err := app.AuthUsecase.LogoutUser(ctx); err != nil {
				fmt.Println(exceptions.ClientMessageOf(err))
				return true
			}
			fmt.Println(constvars.SuccessClientLogout)
		}
	case "0":
		return false
	}
	return true
}

func patientsScreen(app *application, reader *bufio.Reader) {
	ctx := utils.WithRequestID(context.Background())
	list, err := app.PatientUsecase.ListPatients(ctx)
	if err != nil {
		fmt.Println(exceptions.ClientMessageOf(err))
		if exceptions.IsKind(err, exceptions.KindAuth) {
			// Force logout: an invalid token means the session is gone.
			app.AuthUsecase.LogoutUser(utils.WithRequestID(context.Background()))
		}
		return
	}

	for {
		fmt.Println("\n--- Pacientes ---")
		for _, p := range list {
			fecha := "-"
			if p.FechaNacimiento != "" {
				fecha = strings.SplitN(p.FechaNacimiento, "T", 2)[0]
			}
			fmt.Printf("%s %s - DNI: %s | Tel: %s | Fecha Nac: %s\n",
				p.Nombre, p.Apellido, p.DNI, orDash(p.Telefono), fecha)
		}
		if len(list) == 0 {
			fmt.Println("No hay pacientes")
		}
		fmt.Println("1) Filtrar por DNI")
		fmt.Println("2) Añadir Paciente")
		fmt.Println("3) Ver Historia Clínica")
		fmt.Println("4) Añadir Diagnóstico")
		fmt.Println("5) Eliminar Paciente")
		fmt.Println("0) Regresar")

		switch prompt(reader, "> ") {
		case "1":
			filtro := prompt(reader, "Filtrar por DNI: ")
			list = app.PatientUsecase.FilterByDNI(filtro)
		case "2":
			createPatientScreen(app, reader)
			list = app.PatientUsecase.FilterByDNI("")
		case "3":
			historyScreen(app, reader)
		case "4":
			appendRecordScreen(app, reader)
			list = app.PatientUsecase.FilterByDNI("")
		case "5":
			dni := prompt(reader, "DNI a eliminar: ")
			ctx := utils.WithRequestID(context.Background())
			if err := app.PatientUsecase.DeletePatient(ctx, dni); err != nil {
				fmt.Println(exceptions.ClientMessageOf(err))
			}
			list = app.PatientUsecase.FilterByDNI("")
		case "0":
			return
		}
	}
}

func createPatientScreen(app *application, reader *bufio.Reader) {
	request := &requests.CreatePatient{
		Nombre:          prompt(reader, "Nombre: "),
		Apellido:        prompt(reader, "Apellido: "),
		DNI:             prompt(reader, "DNI: "),
		Telefono:        prompt(reader, "Teléfono: "),
		Direccion:       prompt(reader, "Dirección: "),
		FechaNacimiento: prompt(reader, "Fecha de Nacimiento (YYYY-MM-DD): "),
	}
	if request.Nombre == "" || request.Apellido == "" || request.DNI == "" || request.FechaNacimiento == "" {
		fmt.Println(constvars.ErrClientPatientRequiredFields)
		return
	}
	ctx := utils.WithRequestID(context.Background())
	if _, err := app.PatientUsecase.CreatePatient(ctx, request); err != nil {
		fmt.Println(exceptions.ClientMessageOf(err))
	}
}

func historyScreen(app *application, reader *bufio.Reader) {
	dni := prompt(reader, "DNI del paciente: ")
	matches := app.PatientUsecase.FilterByDNI(dni)
	if len(matches) == 0 {
		fmt.Println(constvars.ErrClientPatientNotFound)
		return
	}
	patient := matches[0]

	fmt.Printf("\nPaciente: %s %s (DNI: %s)\n", patient.Nombre, patient.Apellido, patient.DNI)
	if len(patient.HistoriaClinica) == 0 {
		fmt.Println("No hay historial clínico registrado")
		return
	}
	for _, record := range patient.HistoriaClinica {
		fmt.Printf("- Diagnóstico: %s\n", orDash(record.Diagnostico))
		if record.Tratamiento != "" {
			fmt.Printf("  Tratamiento: %s\n", record.Tratamiento)
		}
		if record.Observaciones != "" {
			fmt.Printf("  Observaciones: %s\n", record.Observaciones)
		}
		fmt.Printf("  Fecha: %s\n", record.Fecha.Local().Format("02/01/2006 15:04"))
		if record.Media == "" {
			fmt.Println("  No hay media")
			continue
		}
		switch app.Fetcher.Classify(record.Media) {
		case media.MediaImage:
			if confirm(reader, "  ¿Descargar imagen? (s/n): ") {
				ctx := utils.WithRequestID(context.Background())
				if _, err := app.Fetcher.Download(ctx, record.Media); err != nil {
					fmt.Println("  " + exceptions.ClientMessageOf(err))
				} else {
					fmt.Println("  " + constvars.SuccessClientImageSaved)
				}
			}
		case media.MediaVideo:
			fmt.Printf("  Video: %s\n", record.Media)
		default:
			fmt.Println("  " + constvars.ErrClientUnsupportedMedia)
		}
	}
}

func appendRecordScreen(app *application, reader *bufio.Reader) {
	dni := prompt(reader, "DNI del paciente: ")
	request := &requests.AppendClinicalRecord{
		Diagnostico:   prompt(reader, "Diagnóstico: "),
		Observaciones: prompt(reader, "Observaciones: "),
		Odontologo:    prompt(reader, "Odontólogo: "),
	}
	if filePath := prompt(reader, "Archivo adjunto (ruta, vacío para omitir): "); filePath != "" {
		file, err := os.Open(filePath)
		if err != nil {
			fmt.Println(constvars.ErrClientCannotAppendRecord)
			return
		}
		defer file.Close()
		request.File = file
		request.FileName = file.Name()
	}
	ctx := utils.WithRequestID(context.Background())
	if _, err := app.PatientUsecase.AppendClinicalRecord(ctx, dni, request); err != nil {
		fmt.Println(exceptions.ClientMessageOf(err))
	}
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func confirm(reader *bufio.Reader, label string) bool {
	answer := strings.ToLower(prompt(reader, label))
	return answer == "s" || answer == "si" || answer == "sí"
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
