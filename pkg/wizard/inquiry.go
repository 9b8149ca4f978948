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
	"slices"
	"strings"

	"github.com/RAKWireless/help-hub-connector/pkg/model"
)

// InquiryInputSteps is the number of questionnaire input steps before the
// summary view.
const InquiryInputSteps = 7

// InquirySession drives the sales inquiry questionnaire: an ordinal step
// counter plus a summary flag. Unlike the support flow it tracks no
// in-flight submission state; submission is a one-shot action from the
// summary view.
type InquirySession struct {
	data        model.InquiryPayload
	step        int
	showSummary bool
	submitter   InquirySubmitter
}

func NewInquirySession(submitter InquirySubmitter) *InquirySession {
	return &InquirySession{
		data:      defaultInquiryFormData(),
		step:      1,
		submitter: submitter,
	}
}

func defaultInquiryFormData() model.InquiryPayload {
	return model.InquiryPayload{
		Application:  model.Application{Subtypes: []string{}},
		Connectivity: model.Connectivity{Options: []string{}},
		Power:        []string{},
	}
}

func (s *InquirySession) FormData() model.InquiryPayload {
	return s.data
}

func (s *InquirySession) SetFormData(data model.InquiryPayload) {
	s.data = data
}

// SelectRegion sets the region selection, deriving the frequency band from
// the catalog. Unknown names leave the selection untouched.
func (s *InquirySession) SelectRegion(name string) bool {
	region, ok := model.RegionByName(name)
	if !ok {
		return false
	}
	s.data.Region = model.RegionSelection{Selected: region.Name, FrequencyBand: region.FrequencyBand}
	return true
}

func (s *InquirySession) Step() int {
	return s.step
}

func (s *InquirySession) SummaryShown() bool {
	return s.showSummary
}

// NextStep advances the counter when the current step is valid; at the final
// input step it shows the summary instead of incrementing past the bound.
func (s *InquirySession) NextStep() {
	if s.showSummary || !s.StepValid(s.step) {
		return
	}
	if s.step < InquiryInputSteps {
		s.step++
		return
	}
	s.showSummary = true
}

// PrevStep hides the summary (keeping the counter at the last input step) or
// decrements the counter, never below 1.
func (s *InquirySession) PrevStep() {
	if s.showSummary {
		s.showSummary = false
		return
	}
	if s.step > 1 {
		s.step--
	}
}

func (s *InquirySession) ResetForm() {
	s.data = defaultInquiryFormData()
	s.step = 1
	s.showSummary = false
}

// StepValid reports whether the given input step holds enough data to enable
// advancing. It gates the "Next" affordance only, not backward navigation.
func (s *InquirySession) StepValid(step int) bool {
	switch step {
	case 1:
		return strings.TrimSpace(s.data.ClientInfo.Name) != "" &&
			strings.TrimSpace(s.data.ClientInfo.Email) != "" &&
			emailPattern.MatchString(s.data.ClientInfo.Email) &&
			strings.TrimSpace(s.data.ClientInfo.ContactNumber) != ""
	case 2:
		_, ok := model.RegionByName(s.data.Region.Selected)
		return ok
	case 3:
		return s.data.Deployment.Environment != nil
	case 4:
		subtypes, ok := model.SubtypesFor(s.data.Application.Type)
		if !ok || len(s.data.Application.Subtypes) == 0 {
			return false
		}
		for _, subtype := range s.data.Application.Subtypes {
			if !slices.Contains(subtypes, subtype) {
				return false
			}
			if subtype == "Other" && strings.TrimSpace(s.data.Application.OtherSubtype) == "" {
				return false
			}
		}
		return true
	case 5:
		return slices.Contains(model.DeploymentScales, s.data.Scale)
	case 6:
		if s.data.Connectivity.LorawanType == nil ||
			!slices.Contains(model.NetworkTypes, *s.data.Connectivity.LorawanType) {
			return false
		}
		for _, option := range s.data.Connectivity.Options {
			if !slices.Contains(model.ConnectivityOptions, option) {
				return false
			}
		}
		if len(s.data.Power) == 0 {
			return false
		}
		for _, source := range s.data.Power {
			if !slices.Contains(model.PowerOptions, source) {
				return false
			}
		}
		return true
	case 7:
		// additional details are optional
		return true
	default:
		return false
	}
}

// Submit sends the completed questionnaire. One-shot from the summary view;
// re-entry is not guarded here.
func (s *InquirySession) Submit(ctx context.Context) (*int64, error) {
	return s.submitter.SubmitInquiry(ctx, s.data)
}
