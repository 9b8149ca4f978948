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
	"strings"

	"github.com/RAKWireless/help-hub-connector/pkg/configuration"
	"github.com/RAKWireless/help-hub-connector/pkg/log"
	"github.com/RAKWireless/help-hub-connector/pkg/model"
	"github.com/SENERGY-Platform/go-service-base/struct-logger/attributes"
)

const supportConfigErrorMessage = "Internal server configuration error."

// SubmitSupport validates the support payload, renders the ticket body and
// creates one ticket in the tech support group.
func (c *Controller) SubmitSupport(ctx context.Context, payload model.SupportPayload) (*int64, error) {
	var missing []string
	if payload.Name == "" {
		missing = append(missing, "name")
	}
	if payload.Email == "" {
		missing = append(missing, "email")
	}
	if payload.IssueDescription == "" {
		missing = append(missing, "issueDescription")
	}
	if payload.ProblemType == "" {
		missing = append(missing, "problemType")
	}
	if payload.UrgencyLevel == "" {
		missing = append(missing, "urgencyLevel")
	}
	if len(missing) > 0 {
		log.Logger.Warn("support validation failed", "missing", strings.Join(missing, ", "))
		return nil, &model.SubmissionError{
			StatusCode: http.StatusBadRequest,
			Message:    fmt.Sprintf("Missing required fields: %s.", strings.Join(missing, ", ")),
		}
	}

	secrets, err := configuration.ResolveSecrets(configuration.EnvZendeskTechSupportGroupID)
	if err != nil {
		log.Logger.Error("support configuration error", attributes.ErrorKey, err)
		return nil, &model.SubmissionError{
			StatusCode: http.StatusInternalServerError,
			Message:    supportConfigErrorMessage,
		}
	}

	body, err := c.renderSupportBody(payload)
	if err != nil {
		log.Logger.Error("support body rendering failed", attributes.ErrorKey, err)
		return nil, &model.SubmissionError{
			StatusCode: http.StatusInternalServerError,
			Message:    supportConfigErrorMessage,
		}
	}

	groupID, err := strconv.ParseInt(secrets.GroupID, 10, 64)
	if err != nil {
		log.Logger.Error("support group id is not numeric", attributes.ErrorKey, err)
		return nil, &model.SubmissionError{
			StatusCode: http.StatusInternalServerError,
			Message:    supportConfigErrorMessage,
		}
	}

	deviceModel := payload.DeviceModel
	if deviceModel == "" {
		deviceModel = "General"
	}
	problemLabel := "Issue"
	if label, ok := model.ProblemTypes[payload.ProblemType]; ok {
		problemLabel = label
	}

	var priority string
	switch payload.UrgencyLevel {
	case "high":
		priority = "high"
	case "medium":
		priority = "normal"
	default:
		priority = "low"
	}

	ticket := model.Ticket{
		Subject: fmt.Sprintf("Support: %s - %s from %s", deviceModel, problemLabel, payload.Name),
		Comment: model.TicketComment{HTMLBody: body},
		Requester: model.TicketRequester{
			Name:     payload.Name,
			Email:    payload.Email,
			Verified: true,
		},
		GroupID: groupID,
		Tags: []string{
			"TTR-tech-support",
			"website_support_form",
			"device_" + model.Slugify(payload.DeviceModel, "unknown"),
		},
		Priority: priority,
	}

	return c.createTicket(ctx, secrets, ticket, supportMessages)
}
