package patients

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"sonrisitas-client/internal/pkg/constvars"
	"sonrisitas-client/internal/pkg/dto/requests"
	"sonrisitas-client/internal/pkg/dto/responses"
	"sonrisitas-client/internal/pkg/exceptions"
	"sonrisitas-client/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type patientBackendClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewPatientBackendClient(baseUrl string, timeout time.Duration, logger *zap.Logger) PatientBackendClient {
	return &patientBackendClient{
		BaseUrl:    baseUrl + constvars.EndpointPatients,
		HTTPClient: &http.Client{Timeout: timeout},
		Log:        logger,
	}
}

func (c *patientBackendClient) ListPatients(ctx context.Context, token string) ([]responses.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("patientBackendClient.ListPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl, nil)
	if err != nil {
		c.Log.Error("patientBackendClient.ListPatients error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	setAuthHeader(req, token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("patientBackendClient.ListPatients error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrBackendUnreachable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, c.backendFailure(resp, requestID, "patientBackendClient.ListPatients")
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("patientBackendClient.ListPatients error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, "pacientes")
	}

	patients, err := decodePatientList(bodyBytes)
	if err != nil {
		c.Log.Error("patientBackendClient.ListPatients error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, "pacientes")
	}

	c.Log.Info("patientBackendClient.ListPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCountKey, len(patients)),
	)
	return patients, nil
}

func (c *patientBackendClient) CreatePatient(ctx context.Context, token string, request *requests.CreatePatient) (*responses.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("patientBackendClient.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientDNIKey, request.DNI),
	)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		c.Log.Error("patientBackendClient.CreatePatient error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("patientBackendClient.CreatePatient error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	setAuthHeader(req, token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("patientBackendClient.CreatePatient error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrBackendUnreachable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		return nil, c.backendFailure(resp, requestID, "patientBackendClient.CreatePatient")
	}

	patient := new(responses.Patient)
	if err := json.NewDecoder(resp.Body).Decode(patient); err != nil {
		c.Log.Error("patientBackendClient.CreatePatient error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, "paciente")
	}

	c.Log.Info("patientBackendClient.CreatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
	)
	return patient, nil
}

func (c *patientBackendClient) DeletePatient(ctx context.Context, token string, dni string) error {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("patientBackendClient.DeletePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientDNIKey, dni),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodDelete, c.BaseUrl+"/"+dni, nil)
	if err != nil {
		c.Log.Error("patientBackendClient.DeletePatient error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCreateHTTPRequest(err)
	}
	setAuthHeader(req, token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("patientBackendClient.DeletePatient error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrBackendUnreachable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return c.backendFailure(resp, requestID, "patientBackendClient.DeletePatient")
	}

	c.Log.Info("patientBackendClient.DeletePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientDNIKey, dni),
	)
	return nil
}

func (c *patientBackendClient) AppendClinicalRecord(ctx context.Context, token string, dni string, request *requests.AppendClinicalRecord) (*responses.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("patientBackendClient.AppendClinicalRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientDNIKey, dni),
	)

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	if err := writeRecordForm(writer, request); err != nil {
		c.Log.Error("patientBackendClient.AppendClinicalRecord error building multipart form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl+"/"+dni+constvars.EndpointHistoria, body)
	if err != nil {
		c.Log.Error("patientBackendClient.AppendClinicalRecord error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, writer.FormDataContentType())
	setAuthHeader(req, token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("patientBackendClient.AppendClinicalRecord error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrBackendUnreachable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		return nil, c.backendFailure(resp, requestID, "patientBackendClient.AppendClinicalRecord")
	}

	patient := new(responses.Patient)
	if err := json.NewDecoder(resp.Body).Decode(patient); err != nil {
		c.Log.Error("patientBackendClient.AppendClinicalRecord error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, "paciente")
	}

	c.Log.Info("patientBackendClient.AppendClinicalRecord succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
	)
	return patient, nil
}

// backendFailure maps a non-2xx response onto the client error taxonomy.
func (c *patientBackendClient) backendFailure(resp *http.Response, requestID, operation string) error {
	backendMsg := decodeBackendError(resp.Body)
	c.Log.Error(operation+" backend returned error status",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("status_code", resp.StatusCode),
		zap.String("backend_msg", backendMsg),
	)

	switch resp.StatusCode {
	case constvars.StatusUnauthorized:
		return exceptions.ErrTokenInvalidOrExpired(nil)
	case constvars.StatusNotFound:
		return exceptions.ErrPatientNotFound(nil)
	case constvars.StatusBadRequest:
		return exceptions.ErrBackendRejectedInput(nil, backendMsg)
	default:
		return exceptions.ErrBackendRejectedInput(nil, "")
	}
}

func setAuthHeader(req *http.Request, token string) {
	if token != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthBearerPrefix+token)
	}
}

// decodePatientList accepts both known list shapes: a bare array and an
// object wrapping it as {"pacientes": [...]}.
func decodePatientList(bodyBytes []byte) ([]responses.Patient, error) {
	var list []responses.Patient
	if err := json.Unmarshal(bodyBytes, &list); err == nil {
		return list, nil
	}

	wrapper := new(responses.PatientList)
	if err := json.Unmarshal(bodyBytes, wrapper); err != nil {
		return nil, err
	}
	return wrapper.Pacientes, nil
}

func writeRecordForm(writer *multipart.Writer, request *requests.AppendClinicalRecord) error {
	if err := writer.WriteField("diagnostico", request.Diagnostico); err != nil {
		return err
	}
	if request.Observaciones != "" {
		if err := writer.WriteField("observaciones", request.Observaciones); err != nil {
			return err
		}
	}
	if request.Odontologo != "" {
		if err := writer.WriteField("odontologo", request.Odontologo); err != nil {
			return err
		}
	}
	if request.File != nil {
		part, err := writer.CreateFormFile("files", request.FileName)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, request.File); err != nil {
			return err
		}
	}
	return writer.Close()
}

func decodeBackendError(body io.Reader) string {
	bodyBytes, err := io.ReadAll(body)
	if err != nil {
		return ""
	}
	backendError := new(responses.BackendError)
	if err := json.Unmarshal(bodyBytes, backendError); err != nil {
		return ""
	}
	return backendError.Msg
}
