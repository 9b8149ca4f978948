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
	"strings"
	"time"

	"github.com/RAKWireless/help-hub-connector/pkg/model"
	"github.com/flosch/pongo2/v6"
)

// Ticket bodies are rendered as self-contained HTML for the Zendesk comment.
// Placeholder text ("N/A", "Not Provided", the <em> fallbacks) is agent-visible
// ticket content and must match exactly.

const tableStyle = `border="1" cellpadding="5" cellspacing="0" style="border-collapse: collapse; font-family: sans-serif; font-size: 14px; width: 100%;"`

const inquiryBodyTemplate = `{% autoescape off %}<h2>RAK IoT Requirements Submission</h2>
<p>Submitted via the RAK Help Hub Inquiry Form.</p>
<hr>
<h3>Client Information</h3>
<table ` + tableStyle + `>
  <tbody>
    <tr><td style="width: 30%; font-weight: bold;">Name</td><td>{{ name|default:"N/A" }}</td></tr>
    <tr><td style="font-weight: bold;">Email</td><td>{{ email|default:"N/A" }}</td></tr>
    <tr><td style="font-weight: bold;">Company</td><td>{{ company|default:"N/A" }}</td></tr>
    <tr><td style="font-weight: bold;">Contact Number</td><td>{{ contactNumber|default:"N/A" }}</td></tr>
  </tbody>
</table>
<h3>Deployment Context</h3>
<table ` + tableStyle + `>
  <tbody>
    <tr><td style="width: 30%; font-weight: bold;">Region</td><td>{{ region|default:"N/A" }} ({{ frequencyBand|default:"N/A" }})</td></tr>
    <tr><td style="font-weight: bold;">Environment</td><td>{{ environment|default:"N/A" }}</td></tr>
    <tr><td style="font-weight: bold;">Scale</td><td>{{ scale|default:"N/A" }}</td></tr>
  </tbody>
</table>
<h3>Application Details</h3>
<table ` + tableStyle + `>
  <tbody>
    <tr><td style="width: 30%; font-weight: bold;">Type</td><td>{{ applicationType|default:"N/A" }}</td></tr>
    <tr><td style="font-weight: bold;">Subtypes</td><td>{{ subtypes|default:"N/A" }}</td></tr>
    {% if otherSubtype %}<tr><td style="font-weight: bold;">Other Specified</td><td>{{ otherSubtype }}</td></tr>{% endif %}
  </tbody>
</table>
<h3>Technical Requirements</h3>
<table ` + tableStyle + `>
  <tbody>
    <tr><td style="width: 30%; font-weight: bold;">LoRaWAN Network</td><td>{{ lorawanType|default:"N/A" }}</td></tr>
    <tr><td style="font-weight: bold;">Other Connectivity</td><td>{{ connectivityOptions|default:"None" }}</td></tr>
    <tr><td style="font-weight: bold;">Power Sources</td><td>{{ powerSources|default:"N/A" }}</td></tr>
  </tbody>
</table>
<h3>Additional Details / Message</h3>
<div style="border: 1px solid #ccc; padding: 10px; margin-top: 5px; background-color: #f9f9f9; font-family: sans-serif; font-size: 14px;">
  <p>{{ additionalDetails }}</p>
</div>
<hr>
<p><em>Timestamp: {{ timestamp }}</em></p>{% endautoescape %}`

const supportBodyTemplate = `{% autoescape off %}<h2>RAKwireless Support Request</h2>
<p>Submitted via the RAK Help Hub Support Form.</p>
<hr>
<h3>Client Information</h3>
<table ` + tableStyle + `>
  <tbody>
    <tr><td style="width: 30%; font-weight: bold;">Name</td><td>{{ name|default:"N/A" }}</td></tr>
    <tr><td style="font-weight: bold;">Email</td><td>{{ email|default:"N/A" }}</td></tr>
    <tr><td style="font-weight: bold;">Company</td><td>{{ company|default:"N/A" }}</td></tr>
    <tr><td style="font-weight: bold;">Phone</td><td>{{ phone|default:"N/A" }}</td></tr>
  </tbody>
</table>
<h3>Device Information</h3>
<table ` + tableStyle + `>
  <tbody>
    <tr><td style="width: 30%; font-weight: bold;">Device Model</td><td>{{ deviceModel|default:"N/A" }}</td></tr>
    <tr><td style="font-weight: bold;">Device EUI/Serial</td><td>{{ serialNumber|default:"Not Provided" }}</td></tr>
    <tr><td style="font-weight: bold;">Firmware Version</td><td>{{ firmwareVersion|default:"N/A" }}</td></tr>
  </tbody>
</table>
<h3>Issue Details</h3>
<table ` + tableStyle + `>
  <tbody>
    <tr><td style="width: 30%; font-weight: bold;">Problem Type</td><td>{{ problemType|default:"N/A" }}</td></tr>
    <tr><td style="font-weight: bold;">Urgency</td><td>{{ urgency|default:"N/A" }}</td></tr>
    {% if previousTicketId %}<tr><td style="font-weight: bold;">Related Ticket ID</td><td>{{ previousTicketId }}</td></tr>{% endif %}
  </tbody>
</table>
<p style="margin-top: 10px;"><strong>Issue Description:</strong></p>
<div style="border: 1px solid #ccc; padding: 10px; background-color: #f9f9f9; font-family: sans-serif; font-size: 14px; white-space: pre-wrap;">{{ issueDescription }}</div>
{% if errorMessage %}<p style="margin-top: 10px;"><strong>Error Message:</strong></p>
<div style="border: 1px solid #ccc; padding: 10px; background-color: #f9f9f9; font-family: monospace; font-size: 13px; white-space: pre-wrap;">{{ errorMessage }}</div>
{% endif %}{% if stepsToReproduce %}<p style="margin-top: 10px;"><strong>Steps to Reproduce:</strong></p>
<div style="border: 1px solid #ccc; padding: 10px; background-color: #f9f9f9; font-family: sans-serif; font-size: 14px; white-space: pre-wrap;">{{ stepsToReproduce }}</div>
{% endif %}{% if hasAttachments %}<hr>
<h3>File Attachments</h3>
<p><strong>Note:</strong> User indicated one or more files were attached via the form.</p>
<p><em>(Actual files are not included here. Please request them from the user if needed.)</em></p>
{% endif %}<hr>
<p><em>Timestamp: {{ timestamp }}</em></p>{% endautoescape %}`

func (c *Controller) renderInquiryBody(payload model.InquiryPayload) (string, error) {
	environment := ""
	if payload.Deployment.Environment != nil {
		environment = *payload.Deployment.Environment
	}
	lorawanType := ""
	if payload.Connectivity.LorawanType != nil {
		lorawanType = *payload.Connectivity.LorawanType
	}

	otherSubtype := ""
	for _, subtype := range payload.Application.Subtypes {
		if subtype == "Other" {
			otherSubtype = payload.Application.OtherSubtype
			break
		}
	}

	details := "<em>No additional details provided.</em>"
	if payload.AdditionalDetails != "" {
		details = strings.ReplaceAll(payload.AdditionalDetails, "\n", "<br>")
	}

	return c.inquiryTmpl.Execute(pongo2.Context{
		"name":                payload.ClientInfo.Name,
		"email":               payload.ClientInfo.Email,
		"company":             payload.ClientInfo.Company,
		"contactNumber":       payload.ClientInfo.ContactNumber,
		"region":              payload.Region.Selected,
		"frequencyBand":       payload.Region.FrequencyBand,
		"environment":         environment,
		"scale":               payload.Scale,
		"applicationType":     payload.Application.Type,
		"subtypes":            strings.Join(payload.Application.Subtypes, ", "),
		"otherSubtype":        otherSubtype,
		"lorawanType":         lorawanType,
		"connectivityOptions": strings.Join(payload.Connectivity.Options, ", "),
		"powerSources":        strings.Join(payload.Power, ", "),
		"additionalDetails":   details,
		"timestamp":           time.Now().UTC().Format(timestampFormat),
	})
}

// problemBodyLabels are the short labels shown in the ticket body's Problem
// Type row. The subject line uses the full model.ProblemTypes labels.
var problemBodyLabels = map[string]string{
	"connectivity":  "Connectivity Issues",
	"installation":  "Installation Problems",
	"configuration": "Configuration Help",
	"hardware":      "Hardware Malfunction",
	"software":      "Software/Firmware Issues",
	"other":         "Other Issue",
}

func (c *Controller) renderSupportBody(payload model.SupportPayload) (string, error) {
	problemType := payload.ProblemType
	if label, ok := problemBodyLabels[payload.ProblemType]; ok {
		problemType = label
	}
	urgency := payload.UrgencyLevel
	switch payload.UrgencyLevel {
	case "low":
		urgency = "Low"
	case "medium":
		urgency = "Medium"
	case "high":
		urgency = "High"
	}

	description := "<em>No description provided.</em>"
	if strings.TrimSpace(payload.IssueDescription) != "" {
		description = strings.TrimSpace(payload.IssueDescription)
	}

	return c.supportTmpl.Execute(pongo2.Context{
		"name":             payload.Name,
		"email":            payload.Email,
		"company":          payload.Company,
		"phone":            payload.Phone,
		"deviceModel":      payload.DeviceModel,
		"serialNumber":     payload.SerialNumber,
		"firmwareVersion":  payload.FirmwareVersion,
		"problemType":      problemType,
		"urgency":          urgency,
		"previousTicketId": strings.TrimSpace(payload.PreviousTicketID),
		"issueDescription": description,
		"errorMessage":     strings.TrimSpace(payload.ErrorMessage),
		"stepsToReproduce": strings.TrimSpace(payload.StepsToReproduce),
		"hasAttachments":   payload.HasAttachments,
		"timestamp":        time.Now().UTC().Format(timestampFormat),
	})
}

// timestampFormat matches RFC 1123 with a literal GMT zone, the format the
// previous deployment stamped into ticket footers.
const timestampFormat = "Mon, 02 Jan 2006 15:04:05 GMT"
