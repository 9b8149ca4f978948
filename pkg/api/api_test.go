/*
 * Copyright 2026 RAKwireless Technology Limited
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/RAKWireless/help-hub-connector/pkg/configuration"
	"github.com/RAKWireless/help-hub-connector/pkg/controller"
	"github.com/RAKWireless/help-hub-connector/pkg/log"
	"github.com/RAKWireless/help-hub-connector/pkg/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	log.Init(configuration.Config{LogLevel: "error", LogHandler: "text"})
	os.Exit(m.Run())
}

// newTestRouter wires a router against a stub ticketing upstream that always
// answers 201 with the given ticket id and counts the calls it receives.
func newTestRouter(t *testing.T, ticketID int64, calls *atomic.Int64) *gin.Engine {
	t.Helper()
	t.Setenv(configuration.EnvZendeskSubdomain, "rak-test")
	t.Setenv(configuration.EnvZendeskAPIToken, "secret-token")
	t.Setenv(configuration.EnvZendeskUserEmail, "bot@rakwireless.com")
	t.Setenv(configuration.EnvZendeskSalesGroupID, "101")
	t.Setenv(configuration.EnvZendeskTechSupportGroupID, "202")

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			calls.Add(1)
		}
		var created model.TicketCreatedResponse
		created.Ticket.ID = ticketID
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(created)
	}))
	t.Cleanup(upstream.Close)

	ctrl, err := controller.New(configuration.Config{ZendeskURL: upstream.URL})
	require.NoError(t, err)
	router := NewRouter(ctrl)
	require.NotNil(t, router)
	return router
}

func serve(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestPreflightShortCircuits(t *testing.T) {
	router := newTestRouter(t, 0, nil)

	for _, path := range []string{model.InquiryPath, model.SupportTicketPath} {
		rec := serve(router, http.MethodOptions, path, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Body.String())
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))
	}
}

func TestCORSHeadersOnEveryResponse(t *testing.T) {
	router := newTestRouter(t, 0, nil)

	rec := serve(router, http.MethodPost, model.InquiryPath, "not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestMethodNotAllowedInquiry(t *testing.T) {
	router := newTestRouter(t, 0, nil)

	rec := serve(router, http.MethodGet, model.InquiryPath, "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "POST, OPTIONS", rec.Header().Get("Allow"))

	var body model.InquiryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Method Not Allowed. Please use POST.", body.Message)
}

func TestMethodNotAllowedSupport(t *testing.T) {
	router := newTestRouter(t, 0, nil)

	rec := serve(router, http.MethodDelete, model.SupportTicketPath, "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "POST, OPTIONS", rec.Header().Get("Allow"))

	var body model.SupportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Method Not Allowed.", body.Message)
}

func TestInquiryMalformedJSON(t *testing.T) {
	var calls atomic.Int64
	router := newTestRouter(t, 0, &calls)

	rec := serve(router, http.MethodPost, model.InquiryPath, `{"clientInfo":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body model.InquiryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid JSON body. Please ensure you are sending valid JSON.", body.Message)
	assert.Equal(t, int64(0), calls.Load())
}

func TestSupportMalformedJSON(t *testing.T) {
	var calls atomic.Int64
	router := newTestRouter(t, 0, &calls)

	rec := serve(router, http.MethodPost, model.SupportTicketPath, `[1,2`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body model.SupportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Invalid request body.", body.Message)
	assert.Equal(t, int64(0), calls.Load())
}

func TestInquiryMissingFieldsNoOutboundCall(t *testing.T) {
	var calls atomic.Int64
	router := newTestRouter(t, 0, &calls)

	rec := serve(router, http.MethodPost, model.InquiryPath, `{"clientInfo":{"name":"Grace"}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body model.InquiryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Missing required fields: 'name' and 'email' are mandatory.", body.Message)
	assert.Equal(t, int64(0), calls.Load())
}

func TestInquirySubmission(t *testing.T) {
	var calls atomic.Int64
	router := newTestRouter(t, 42, &calls)

	payload := `{"clientInfo":{"name":"Grace Hopper","email":"grace@example.com"},"region":{"selected":"Europe","frequencyBand":"EU868"}}`
	rec := serve(router, http.MethodPost, model.InquiryPath, payload)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body model.InquiryCreated
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Your inquiry has been submitted successfully! Our team will be in touch.", body.Message)
	require.NotNil(t, body.TicketID)
	assert.Equal(t, int64(42), *body.TicketID)
	assert.Equal(t, int64(1), calls.Load())
}

func TestSupportSubmission(t *testing.T) {
	var calls atomic.Int64
	router := newTestRouter(t, 314, &calls)

	payload := `{"name":"Ada Lovelace","email":"ada@example.com","issueDescription":"Gateway down","problemType":"connectivity","urgencyLevel":"high"}`
	rec := serve(router, http.MethodPost, model.SupportTicketPath, payload)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body model.SupportCreated
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Support request submitted successfully!", body.Message)
	require.NotNil(t, body.TicketID)
	assert.Equal(t, int64(314), *body.TicketID)
	assert.Equal(t, int64(1), calls.Load())
}

func TestSubmissionWithoutTicketIDEmitsNull(t *testing.T) {
	router := newTestRouter(t, 0, nil)

	payload := `{"clientInfo":{"name":"Grace Hopper","email":"grace@example.com"}}`
	rec := serve(router, http.MethodPost, model.InquiryPath, payload)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ticketId":null`)

	payload = `{"name":"Ada Lovelace","email":"ada@example.com","issueDescription":"Gateway down","problemType":"connectivity","urgencyLevel":"high"}`
	rec = serve(router, http.MethodPost, model.SupportTicketPath, payload)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ticketId":null`)
}

func TestErrorBodiesOmitTicketID(t *testing.T) {
	router := newTestRouter(t, 0, nil)

	rec := serve(router, http.MethodPost, model.InquiryPath, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotContains(t, rec.Body.String(), "ticketId")

	rec = serve(router, http.MethodGet, model.SupportTicketPath, "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.NotContains(t, rec.Body.String(), "ticketId")
}

func TestSupportMissingFieldsListed(t *testing.T) {
	var calls atomic.Int64
	router := newTestRouter(t, 0, &calls)

	rec := serve(router, http.MethodPost, model.SupportTicketPath, `{"name":"Ada","email":"ada@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body model.SupportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Missing required fields: issueDescription, problemType, urgencyLevel.", body.Message)
	assert.Equal(t, int64(0), calls.Load())
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t, 0, nil)

	rec := serve(router, http.MethodGet, healthCheckPath, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
