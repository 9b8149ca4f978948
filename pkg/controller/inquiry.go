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
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/RAKWireless/help-hub-connector/pkg/configuration"
	"github.com/RAKWireless/help-hub-connector/pkg/log"
	"github.com/RAKWireless/help-hub-connector/pkg/model"
	"github.com/SENERGY-Platform/go-service-base/struct-logger/attributes"
)

const inquiryConfigErrorMessage = "Internal server configuration error. Please contact support."

// SubmitInquiry validates the inquiry payload, renders the ticket body and
// creates one ticket in the sales group. Validation failures never reach the
// ticketing API.
func (c *Controller) SubmitInquiry(ctx context.Context, payload model.InquiryPayload) (*int64, error) {
	if payload.ClientInfo.Name == "" || payload.ClientInfo.Email == "" {
		log.Logger.Warn("inquiry validation failed", "missing", "name and email")
		return nil, &model.SubmissionError{
			StatusCode: http.StatusBadRequest,
			Message:    "Missing required fields: 'name' and 'email' are mandatory.",
		}
	}

	secrets, err := configuration.ResolveSecrets(configuration.EnvZendeskSalesGroupID)
	if err != nil {
		log.Logger.Error("inquiry configuration error", attributes.ErrorKey, err)
		return nil, &model.SubmissionError{
			StatusCode: http.StatusInternalServerError,
			Message:    inquiryConfigErrorMessage,
		}
	}

	body, err := c.renderInquiryBody(payload)
	if err != nil {
		log.Logger.Error("inquiry body rendering failed", attributes.ErrorKey, err)
		return nil, &model.SubmissionError{
			StatusCode: http.StatusInternalServerError,
			Message:    inquiryConfigErrorMessage,
		}
	}

	groupID, err := strconv.ParseInt(secrets.GroupID, 10, 64)
	if err != nil {
		log.Logger.Error("inquiry group id is not numeric", attributes.ErrorKey, err)
		return nil, &model.SubmissionError{
			StatusCode: http.StatusInternalServerError,
			Message:    inquiryConfigErrorMessage,
		}
	}

	applicationType := payload.Application.Type
	if applicationType == "" {
		applicationType = "General"
	}

	ticket := model.Ticket{
		Subject: fmt.Sprintf("RAK Inquiry: %s from %s", applicationType, payload.ClientInfo.Name),
		Comment: model.TicketComment{HTMLBody: body},
		Requester: model.TicketRequester{
			Name:     payload.ClientInfo.Name,
			Email:    payload.ClientInfo.Email,
			Verified: true,
		},
		GroupID: groupID,
		Tags: []string{
			"rak_inquiry_form",
			"sales_lead",
			"website_inquiry",
			"region_" + model.Slugify(payload.Region.Selected, "unknown"),
		},
		Priority: "normal",
	}

	return c.createTicket(ctx, secrets, ticket, inquiryMessages)
}
