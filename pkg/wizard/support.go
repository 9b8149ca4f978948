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

package wizard

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/RAKWireless/help-hub-connector/pkg/model"
)

type Step string

const (
	StepClientInfo       Step = "clientInfo"
	StepDeviceInfo       Step = "deviceInfo"
	StepIssueDescription Step = "issueDescription"
	StepReview           Step = "review"
	StepConfirmation     Step = "confirmation"
)

// supportSteps is the linear input sequence; confirmation is reachable only
// through a successful submission.
var supportSteps = []Step{StepClientInfo, StepDeviceInfo, StepIssueDescription, StepReview}

func stepIndex(step Step) int {
	for i, s := range supportSteps {
		if s == step {
			return i
		}
	}
	return -1
}

// SupportSession drives the technical support wizard. The submitting flag is
// advisory: it is checked and set by the single goroutine owning the session,
// there is no atomic test-and-set guarding a genuine double-submit race.
type SupportSession struct {
	data       model.SupportFormData
	step       Step
	submitting bool
	submitter  SupportSubmitter
}

func NewSupportSession(submitter SupportSubmitter) *SupportSession {
	return &SupportSession{
		data:      defaultSupportFormData(),
		step:      StepClientInfo,
		submitter: submitter,
	}
}

func defaultSupportFormData() model.SupportFormData {
	return model.SupportFormData{
		ProblemType:   "connectivity",
		SupportMethod: "email",
		UrgencyLevel:  "medium",
		Attachments:   []model.Attachment{},
	}
}

// SupportFormPatch is a shallow partial update; nil fields are left as-is.
type SupportFormPatch struct {
	Name             *string
	Company          *string
	Email            *string
	Phone            *string
	DeviceModel      *string
	SerialNumber     *string
	FirmwareVersion  *string
	ProblemType      *string
	IssueDescription *string
	ErrorMessage     *string
	StepsToReproduce *string
	PreviousTicketID *string
	SupportMethod    *string
	UrgencyLevel     *string
	Attachments      *[]model.Attachment
	PrivacyAgreed    *bool
}

// UpdateFormData merges the patch into the current form data. An attachments
// field explicitly set to a nil slice is coerced to empty, guarding against
// malformed updates.
func (s *SupportSession) UpdateFormData(patch SupportFormPatch) {
	if patch.Name != nil {
		s.data.Name = *patch.Name
	}
	if patch.Company != nil {
		s.data.Company = *patch.Company
	}
	if patch.Email != nil {
		s.data.Email = *patch.Email
	}
	if patch.Phone != nil {
		s.data.Phone = *patch.Phone
	}
	if patch.DeviceModel != nil {
		s.data.DeviceModel = *patch.DeviceModel
	}
	if patch.SerialNumber != nil {
		s.data.SerialNumber = *patch.SerialNumber
	}
	if patch.FirmwareVersion != nil {
		s.data.FirmwareVersion = *patch.FirmwareVersion
	}
	if patch.ProblemType != nil {
		s.data.ProblemType = *patch.ProblemType
	}
	if patch.IssueDescription != nil {
		s.data.IssueDescription = *patch.IssueDescription
	}
	if patch.ErrorMessage != nil {
		s.data.ErrorMessage = *patch.ErrorMessage
	}
	if patch.StepsToReproduce != nil {
		s.data.StepsToReproduce = *patch.StepsToReproduce
	}
	if patch.PreviousTicketID != nil {
		s.data.PreviousTicketID = *patch.PreviousTicketID
	}
	if patch.SupportMethod != nil {
		s.data.SupportMethod = *patch.SupportMethod
	}
	if patch.UrgencyLevel != nil {
		s.data.UrgencyLevel = *patch.UrgencyLevel
	}
	if patch.Attachments != nil {
		attachments := *patch.Attachments
		if attachments == nil {
			attachments = []model.Attachment{}
		}
		s.data.Attachments = attachments
	}
	if patch.PrivacyAgreed != nil {
		s.data.PrivacyAgreed = *patch.PrivacyAgreed
	}
}

func (s *SupportSession) FormData() model.SupportFormData {
	return s.data
}

func (s *SupportSession) CurrentStep() Step {
	return s.step
}

func (s *SupportSession) IsSubmitting() bool {
	return s.submitting
}

// NextStep advances to the following step. At review, advancing submits the
// form instead.
func (s *SupportSession) NextStep(ctx context.Context) error {
	if s.step == StepReview {
		return s.SubmitForm(ctx)
	}
	if idx := stepIndex(s.step); idx >= 0 && idx < len(supportSteps)-1 {
		s.step = supportSteps[idx+1]
	}
	return nil
}

// PrevStep returns to the previous step; no-op from confirmation.
func (s *SupportSession) PrevStep() {
	if s.step == StepConfirmation {
		return
	}
	if idx := stepIndex(s.step); idx > 0 {
		s.step = supportSteps[idx-1]
	}
}

// GoToStep navigates backward to an already reached step. Requesting
// clientInfo from any later state is "start over" and resets the whole
// session. Forward jumps, confirmation, and steps whose gating predicates do
// not hold are blocked.
func (s *SupportSession) GoToStep(target Step) error {
	if target == StepClientInfo && s.step != StepClientInfo {
		s.ResetForm()
		return nil
	}
	if target == StepConfirmation || s.submitting {
		return ErrNavigationBlocked
	}
	targetIdx := stepIndex(target)
	if targetIdx == -1 || targetIdx > stepIndex(s.step) {
		return ErrNavigationBlocked
	}
	if !s.canReach(targetIdx) {
		return ErrNavigationBlocked
	}
	s.step = target
	return nil
}

// canReach checks the gating predicates for navigation to the step at
// targetIdx given the currently held data. Selector fields must hold catalog
// values, matching the form's dropdowns.
func (s *SupportSession) canReach(targetIdx int) bool {
	if targetIdx >= 1 {
		if strings.TrimSpace(s.data.Name) == "" || strings.TrimSpace(s.data.Email) == "" || !emailPattern.MatchString(s.data.Email) {
			return false
		}
	}
	if targetIdx >= 2 && !slices.Contains(model.DeviceModels, s.data.DeviceModel) {
		return false
	}
	if targetIdx >= 3 {
		if strings.TrimSpace(s.data.IssueDescription) == "" {
			return false
		}
		if _, ok := model.UrgencyLevels[s.data.UrgencyLevel]; !ok {
			return false
		}
		if _, ok := model.SupportMethods[s.data.SupportMethod]; !ok {
			return false
		}
	}
	return true
}

func (s *SupportSession) ResetForm() {
	s.data = defaultSupportFormData()
	s.step = StepClientInfo
	s.submitting = false
}

// SubmitForm submits the reduced payload. Only allowed from review with no
// submission in flight. The in-flight flag is cleared unconditionally, so a
// failed attempt leaves the session on review ready for a resubmit.
func (s *SupportSession) SubmitForm(ctx context.Context) error {
	if s.step != StepReview || s.submitting {
		return ErrSubmissionBlocked
	}
	s.submitting = true
	defer func() { s.submitting = false }()

	s.data.SubmittedTicketID = nil
	ticketID, err := s.submitter.SubmitSupport(ctx, s.Payload())
	if err != nil {
		return err
	}
	s.data.SubmittedTicketID = ticketID
	s.step = StepConfirmation
	return nil
}

// Payload reduces the form data for transmission: attachment bytes stay in
// the session, only their presence is flagged.
func (s *SupportSession) Payload() model.SupportPayload {
	return model.SupportPayload{
		Name:             s.data.Name,
		Company:          s.data.Company,
		Email:            s.data.Email,
		Phone:            s.data.Phone,
		DeviceModel:      s.data.DeviceModel,
		SerialNumber:     s.data.SerialNumber,
		FirmwareVersion:  s.data.FirmwareVersion,
		ProblemType:      s.data.ProblemType,
		IssueDescription: s.data.IssueDescription,
		ErrorMessage:     s.data.ErrorMessage,
		StepsToReproduce: s.data.StepsToReproduce,
		PreviousTicketID: s.data.PreviousTicketID,
		SupportMethod:    s.data.SupportMethod,
		UrgencyLevel:     s.data.UrgencyLevel,
		HasAttachments:   len(s.data.Attachments) > 0,
	}
}

// SummaryJSON serializes the current form data with attachments reduced to
// their {name,size,type} metadata.
func (s *SupportSession) SummaryJSON() ([]byte, error) {
	return json.MarshalIndent(s.data, "", "  ")
}

// WriteSummary saves the summary into dir and returns the file path. The
// file name carries the slugified client name and the current date.
func (s *SupportSession) WriteSummary(dir string) (string, error) {
	data, err := s.SummaryJSON()
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("rak_support_summary_%s_%s.json",
		model.Slugify(s.data.Name, "user"),
		time.Now().Format("2006-01-02"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
