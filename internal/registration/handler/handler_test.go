package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"udyam/internal/domain"
	"udyam/internal/registration"
	"udyam/internal/registration/handler/mocks"
	dErrors "udyam/pkg/domain-errors"
)

func newTestHandler(t *testing.T) (*mocks.MockService, http.Handler) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)

	r := chi.NewRouter()
	New(svc, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	return svc, r
}

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHandleStep1Created(t *testing.T) {
	svc, h := newTestHandler(t)

	reg := domain.RegistrationStep1{
		ID:               "tok-1",
		AadhaarNumber:    "123456789012",
		EntrepreneurName: "Rahul Sharma",
		ConsentGiven:     true,
		CreatedAt:        time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	svc.EXPECT().
		SubmitStep1(gomock.Any(), domain.Values{
			"aadhaarNumber":    "123456789012",
			"entrepreneurName": "Rahul Sharma",
			"consentGiven":     true,
		}).
		Return(reg, nil, nil)

	w := postJSON(t, h, "/registration/step1", map[string]any{
		"aadhaarNumber":    "123456789012",
		"entrepreneurName": "Rahul Sharma",
		"consentGiven":     true,
	})

	require.Equal(t, http.StatusCreated, w.Code)
	var resp struct {
		Message      string                   `json:"message"`
		Registration domain.RegistrationStep1 `json:"registration"`
		Token        string                   `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Step 1 registration successful", resp.Message)
	assert.Equal(t, "tok-1", resp.Token)
	assert.Equal(t, reg, resp.Registration)
}

func TestHandleStep1ValidationErrors(t *testing.T) {
	svc, h := newTestHandler(t)

	svc.EXPECT().
		SubmitStep1(gomock.Any(), gomock.Any()).
		Return(domain.RegistrationStep1{}, domain.ErrorMap{
			"aadhaarNumber":    "Aadhaar number must be 12 digits",
			"entrepreneurName": "Entrepreneur name is required",
			"consentGiven":     "Consent must be given",
		}, nil)

	w := postJSON(t, h, "/registration/step1", map[string]any{"aadhaarNumber": "1234"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp struct {
		Error  string            `json:"error"`
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "validation_failed", resp.Error)
	assert.Len(t, resp.Errors, 3)
	assert.Equal(t, "Consent must be given", resp.Errors["consentGiven"])
}

func TestHandleStep1DuplicateAadhaar(t *testing.T) {
	svc, h := newTestHandler(t)

	svc.EXPECT().
		SubmitStep1(gomock.Any(), gomock.Any()).
		Return(domain.RegistrationStep1{}, nil, registration.ErrAadhaarRegistered)

	w := postJSON(t, h, "/registration/step1", map[string]any{"aadhaarNumber": "123456789012"})

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Aadhaar number already registered")
}

func TestHandleStep1MalformedBody(t *testing.T) {
	_, h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/registration/step1", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "bad_request")
}

func TestHandleStep2Created(t *testing.T) {
	svc, h := newTestHandler(t)

	reg := domain.RegistrationStep2{
		ID:        "p-1",
		Step1ID:   "tok-1",
		PANNumber: "ABCDE1234F",
		Validated: true,
		CreatedAt: time.Date(2025, 6, 1, 12, 5, 0, 0, time.UTC),
	}
	// The token is stripped from the body before values reach the service.
	svc.EXPECT().
		SubmitStep2(gomock.Any(), "tok-1", domain.Values{"panNumber": "ABCDE1234F"}).
		Return(reg, nil, nil)

	w := postJSON(t, h, "/registration/step2", map[string]any{
		"registrationStep1Id": "tok-1",
		"panNumber":           "ABCDE1234F",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	var resp struct {
		Message      string                   `json:"message"`
		Registration domain.RegistrationStep2 `json:"registration"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Step 2 registration successful", resp.Message)
	assert.Equal(t, reg, resp.Registration)
}

func TestHandleStep2MissingToken(t *testing.T) {
	_, h := newTestHandler(t)

	w := postJSON(t, h, "/registration/step2", map[string]any{"panNumber": "ABCDE1234F"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "registrationStep1Id is required")
}

func TestHandleStep2UnknownToken(t *testing.T) {
	svc, h := newTestHandler(t)

	svc.EXPECT().
		SubmitStep2(gomock.Any(), "ghost", gomock.Any()).
		Return(domain.RegistrationStep2{}, nil, registration.ErrStep1NotFound)

	w := postJSON(t, h, "/registration/step2", map[string]any{
		"registrationStep1Id": "ghost",
		"panNumber":           "ABCDE1234F",
	})

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Step 1 registration not found")
}

func TestHandleStep2DuplicatePAN(t *testing.T) {
	svc, h := newTestHandler(t)

	svc.EXPECT().
		SubmitStep2(gomock.Any(), "tok-1", gomock.Any()).
		Return(domain.RegistrationStep2{}, nil, registration.ErrPANRegistered)

	w := postJSON(t, h, "/registration/step2", map[string]any{
		"registrationStep1Id": "tok-1",
		"panNumber":           "ABCDE1234F",
	})

	require.Equal(t, http.StatusConflict, w.Code)
	assert.True(t, dErrors.Is(registration.ErrPANRegistered, dErrors.CodeConflict))
	assert.Contains(t, w.Body.String(), "PAN number already registered")
}
