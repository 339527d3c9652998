package users

import (
	"bytes"
	"context"
	"io"
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

type userBackendClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewUserBackendClient(baseUrl string, timeout time.Duration, logger *zap.Logger) UserBackendClient {
	return &userBackendClient{
		BaseUrl:    baseUrl,
		HTTPClient: &http.Client{Timeout: timeout},
		Log:        logger,
	}
}

func (c *userBackendClient) Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("userBackendClient.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		c.Log.Error("userBackendClient.Login error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl+constvars.EndpointUserLogin, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("userBackendClient.Login error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("userBackendClient.Login error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrBackendUnreachable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		// The backend answers 400 or 401 for bad credentials; both mean the
		// same thing to the user.
		backendErr := decodeBackendError(resp.Body)
		c.Log.Error("userBackendClient.Login backend rejected credentials",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int("status_code", resp.StatusCode),
			zap.String("backend_msg", backendErr),
		)
		return nil, exceptions.ErrInvalidCredentials(nil)
	}

	loginResponse := new(responses.LoginUser)
	if err := json.NewDecoder(resp.Body).Decode(loginResponse); err != nil {
		c.Log.Error("userBackendClient.Login error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, "login")
	}

	c.Log.Info("userBackendClient.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return loginResponse, nil
}

func (c *userBackendClient) Register(ctx context.Context, request *requests.RegisterUser) error {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("userBackendClient.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		c.Log.Error("userBackendClient.Register error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl+constvars.EndpointUserRegister, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("userBackendClient.Register error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("userBackendClient.Register error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrBackendUnreachable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		backendErr := decodeBackendError(resp.Body)
		c.Log.Error("userBackendClient.Register backend rejected request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int("status_code", resp.StatusCode),
			zap.String("backend_msg", backendErr),
		)
		return exceptions.ErrRegisterRejected(nil, backendErr)
	}

	c.Log.Info("userBackendClient.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

// decodeBackendError pulls the backend's {"msg": ...} out of an error body;
// empty when the body is not in that shape.
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
