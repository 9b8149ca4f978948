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

package model

type Region struct {
	Name          string `json:"name"`
	FrequencyBand string `json:"frequencyBand"`
}

type ApplicationTypeInfo struct {
	Type     string   `json:"type"`
	Subtypes []string `json:"subtypes"`
}

type ClientInfo struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Company       string `json:"company,omitempty"`
	ContactNumber string `json:"contactNumber"`
}

type RegionSelection struct {
	Selected      string `json:"selected"`
	FrequencyBand string `json:"frequencyBand"`
}

type Deployment struct {
	// Environment is "Indoor", "Outdoor" or "Both"; nil while unset.
	Environment *string `json:"environment"`
}

type Application struct {
	Type         string   `json:"type"`
	Subtypes     []string `json:"subtypes"`
	OtherSubtype string   `json:"otherSubtype,omitempty"`
}

type Connectivity struct {
	// LorawanType is "Public" or "Private"; nil while unset.
	LorawanType *string  `json:"lorawanType"`
	Options     []string `json:"options"`
}

// InquiryPayload is the reduced inquiry submission sent to the inquiry
// endpoint after the questionnaire's final step.
type InquiryPayload struct {
	ClientInfo        ClientInfo      `json:"clientInfo"`
	Region            RegionSelection `json:"region"`
	Deployment        Deployment      `json:"deployment"`
	Application       Application     `json:"application"`
	Scale             string          `json:"scale"`
	Connectivity      Connectivity    `json:"connectivity"`
	Power             []string        `json:"power"`
	AdditionalDetails string          `json:"additionalDetails"`
}

// SupportPayload is the reduced support submission. Attachment bytes never
// leave the wizard session; only the HasAttachments flag is transmitted.
type SupportPayload struct {
	Name             string `json:"name"`
	Company          string `json:"company,omitempty"`
	Email            string `json:"email"`
	Phone            string `json:"phone,omitempty"`
	DeviceModel      string `json:"deviceModel,omitempty"`
	SerialNumber     string `json:"serialNumber,omitempty"`
	FirmwareVersion  string `json:"firmwareVersion,omitempty"`
	ProblemType      string `json:"problemType,omitempty"`
	IssueDescription string `json:"issueDescription"`
	ErrorMessage     string `json:"errorMessage,omitempty"`
	StepsToReproduce string `json:"stepsToReproduce,omitempty"`
	PreviousTicketID string `json:"previousTicketId,omitempty"`
	SupportMethod    string `json:"supportMethod,omitempty"`
	UrgencyLevel     string `json:"urgencyLevel,omitempty"`
	HasAttachments   bool   `json:"hasAttachments"`
}

// Attachment holds file metadata collected by the support wizard. Content is
// kept in memory for the session only and is excluded from all serialization.
type Attachment struct {
	Name    string `json:"name"`
	Size    int64  `json:"size"`
	Type    string `json:"type"`
	Content []byte `json:"-"`
}

// SupportFormData is the full in-progress state of the support wizard. It is
// reduced to a SupportPayload on submission and to attachment metadata
// triples in summary exports.
type SupportFormData struct {
	Name              string       `json:"name"`
	Company           string       `json:"company"`
	Email             string       `json:"email"`
	Phone             string       `json:"phone"`
	DeviceModel       string       `json:"deviceModel"`
	SerialNumber      string       `json:"serialNumber"`
	FirmwareVersion   string       `json:"firmwareVersion"`
	ProblemType       string       `json:"problemType"`
	IssueDescription  string       `json:"issueDescription"`
	ErrorMessage      string       `json:"errorMessage"`
	StepsToReproduce  string       `json:"stepsToReproduce"`
	PreviousTicketID  string       `json:"previousTicketId"`
	SupportMethod     string       `json:"supportMethod"`
	UrgencyLevel      string       `json:"urgencyLevel"`
	Attachments       []Attachment `json:"attachments"`
	PrivacyAgreed     bool         `json:"privacyAgreed"`
	SubmittedTicketID *int64       `json:"submittedTicketId"`
}

// InquiryResponse is the client-facing error body of the inquiry endpoint.
type InquiryResponse struct {
	Message string `json:"message"`
}

// InquiryCreated is the inquiry success body. TicketID serializes as an
// explicit null when the upstream returned no id.
type InquiryCreated struct {
	Message  string `json:"message"`
	TicketID *int64 `json:"ticketId"`
}

// SupportResponse is the client-facing error body of the support endpoint.
type SupportResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SupportCreated is the support success body; TicketID as in InquiryCreated.
type SupportCreated struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	TicketID *int64 `json:"ticketId"`
}
