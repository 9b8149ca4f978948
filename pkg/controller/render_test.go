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

package controller

import (
	"os"
	"strings"
	"testing"

	"github.com/RAKWireless/help-hub-connector/pkg/configuration"
	"github.com/RAKWireless/help-hub-connector/pkg/log"
	"github.com/RAKWireless/help-hub-connector/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.Init(configuration.Config{LogLevel: "error", LogHandler: "text"})
	os.Exit(m.Run())
}

func newTestController(t *testing.T, config configuration.Config) *Controller {
	t.Helper()
	ctrl, err := New(config)
	require.NoError(t, err)
	return ctrl
}

func TestRenderInquiryBodyEmptyFieldsUsePlaceholders(t *testing.T) {
	ctrl := newTestController(t, configuration.Config{})

	body, err := ctrl.renderInquiryBody(model.InquiryPayload{})
	require.NoError(t, err)

	assert.Contains(t, body, "<h2>RAK IoT Requirements Submission</h2>")
	assert.Contains(t, body, "<td style=\"width: 30%; font-weight: bold;\">Name</td><td>N/A</td>")
	assert.Contains(t, body, "<td style=\"font-weight: bold;\">Email</td><td>N/A</td>")
	assert.Contains(t, body, "N/A (N/A)", "region and band placeholders")
	assert.Contains(t, body, "<td style=\"font-weight: bold;\">Other Connectivity</td><td>None</td>")
	assert.Contains(t, body, "<td style=\"font-weight: bold;\">Power Sources</td><td>N/A</td>")
	assert.Contains(t, body, "<em>No additional details provided.</em>")
	assert.NotContains(t, body, "Other Specified")
}

func TestRenderInquiryBodyOtherSubtypeRow(t *testing.T) {
	ctrl := newTestController(t, configuration.Config{})
	payload := model.InquiryPayload{
		Application: model.Application{
			Type:         "Monitoring",
			Subtypes:     []string{"Temperature", "Other"},
			OtherSubtype: "Methane sensing",
		},
	}

	body, err := ctrl.renderInquiryBody(payload)
	require.NoError(t, err)
	assert.Contains(t, body, "Other Specified")
	assert.Contains(t, body, "Methane sensing")
	assert.Contains(t, body, "Temperature, Other")

	// the row only appears when "Other" is among the chosen subtypes
	payload.Application.Subtypes = []string{"Temperature"}
	body, err = ctrl.renderInquiryBody(payload)
	require.NoError(t, err)
	assert.NotContains(t, body, "Other Specified")
}

func TestRenderInquiryBodyNewlinesBecomeBreaks(t *testing.T) {
	ctrl := newTestController(t, configuration.Config{})

	body, err := ctrl.renderInquiryBody(model.InquiryPayload{
		AdditionalDetails: "line one\nline two",
	})
	require.NoError(t, err)

	assert.Contains(t, body, "line one<br>line two")
	assert.NotContains(t, body, "No additional details provided")
}

func TestRenderSupportBodyEmptyFieldsUsePlaceholders(t *testing.T) {
	ctrl := newTestController(t, configuration.Config{})

	body, err := ctrl.renderSupportBody(model.SupportPayload{})
	require.NoError(t, err)

	assert.Contains(t, body, "<h2>RAKwireless Support Request</h2>")
	assert.Contains(t, body, "<td style=\"width: 30%; font-weight: bold;\">Device Model</td><td>N/A</td>")
	assert.Contains(t, body, "<td style=\"font-weight: bold;\">Device EUI/Serial</td><td>Not Provided</td>")
	assert.Contains(t, body, "<em>No description provided.</em>")
	assert.NotContains(t, body, "Related Ticket ID")
	assert.NotContains(t, body, "Error Message:")
	assert.NotContains(t, body, "Steps to Reproduce:")
	assert.NotContains(t, body, "File Attachments")
}

func TestRenderSupportBodyLabelsAndConditionals(t *testing.T) {
	ctrl := newTestController(t, configuration.Config{})

	body, err := ctrl.renderSupportBody(model.SupportPayload{
		Name:             "Ada Lovelace",
		Email:            "ada@example.com",
		DeviceModel:      "RAK7268 Wisgate Edge Lite 2",
		SerialNumber:     "AC1F09FFFE012345",
		ProblemType:      "connectivity",
		UrgencyLevel:     "high",
		IssueDescription: "  Gateway drops joins.  ",
		ErrorMessage:     "join-accept timeout",
		StepsToReproduce: "1. power cycle\n2. wait",
		PreviousTicketID: " 12345 ",
		HasAttachments:   true,
	})
	require.NoError(t, err)

	assert.Contains(t, body, "<td style=\"width: 30%; font-weight: bold;\">Problem Type</td><td>Connectivity Issues</td>")
	assert.Contains(t, body, "<td style=\"font-weight: bold;\">Urgency</td><td>High</td>")
	assert.Contains(t, body, "Related Ticket ID")
	assert.Contains(t, body, "<td>12345</td>", "previous ticket id is trimmed")
	assert.Contains(t, body, ">Gateway drops joins.</div>", "description is trimmed")
	assert.Contains(t, body, "join-accept timeout")
	assert.Contains(t, body, "Steps to Reproduce:")
	assert.Contains(t, body, "File Attachments")
	assert.Contains(t, body, "Actual files are not included here")
}

func TestRenderSupportBodyUsesShortProblemLabels(t *testing.T) {
	ctrl := newTestController(t, configuration.Config{})

	// the body row carries the short label; the full catalog label is the
	// subject line's concern
	short := map[string]string{
		"connectivity":  "Connectivity Issues",
		"installation":  "Installation Problems",
		"configuration": "Configuration Help",
		"hardware":      "Hardware Malfunction",
		"software":      "Software/Firmware Issues",
		"other":         "Other Issue",
	}
	for key, label := range short {
		body, err := ctrl.renderSupportBody(model.SupportPayload{ProblemType: key})
		require.NoError(t, err)
		assert.Contains(t, body, "<td style=\"width: 30%; font-weight: bold;\">Problem Type</td><td>"+label+"</td>")
		assert.NotContains(t, body, model.ProblemTypes[key])
	}
}

func TestRenderSupportBodyUnknownProblemTypePassesThrough(t *testing.T) {
	ctrl := newTestController(t, configuration.Config{})

	body, err := ctrl.renderSupportBody(model.SupportPayload{ProblemType: "mystery"})
	require.NoError(t, err)

	assert.Contains(t, body, "<td style=\"width: 30%; font-weight: bold;\">Problem Type</td><td>mystery</td>")
}

func TestRenderBodiesCarryTimestampFooter(t *testing.T) {
	ctrl := newTestController(t, configuration.Config{})

	for _, render := range []func() (string, error){
		func() (string, error) { return ctrl.renderInquiryBody(model.InquiryPayload{}) },
		func() (string, error) { return ctrl.renderSupportBody(model.SupportPayload{}) },
	} {
		body, err := render()
		require.NoError(t, err)
		assert.Contains(t, body, "<em>Timestamp: ")
		assert.True(t, strings.Contains(body, "GMT</em>"), "timestamp is rendered in GMT")
	}
}
