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
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/RAKWireless/help-hub-connector/pkg/configuration"
	"github.com/RAKWireless/help-hub-connector/pkg/log"
	"github.com/RAKWireless/help-hub-connector/pkg/model"
	"github.com/SENERGY-Platform/go-service-base/struct-logger/attributes"
)

// flowMessages is the curated message table for one flow. invalidData and
// generic are format strings taking the upstream description / status code.
type flowMessages struct {
	flow        string
	authFailed  string
	invalidData string
	rateLimited string
	timedOut    string
	generic     string
}

var inquiryMessages = flowMessages{
	flow:        "inquiry",
	authFailed:  "Authentication failed with inquiry system. Please contact administrator.",
	invalidData: "Invalid data sent: %s",
	rateLimited: "Rate limit exceeded. Please try again later.",
	timedOut:    "Request to inquiry system timed out. Please try again.",
	generic:     "Failed to communicate with inquiry system (Status: %d).",
}

var supportMessages = flowMessages{
	flow:        "support",
	authFailed:  "Authentication failed with support system. Please contact administrator.",
	invalidData: "Invalid data sent to support system: %s",
	rateLimited: "Rate limit exceeded contacting support system. Please try again later.",
	timedOut:    "Request to support system timed out. Please try again.",
	generic:     "Failed to communicate with support system (Status: %d).",
}

// createTicket issues the single outbound POST to the ticketing API. There is
// no retry; a failed attempt is reported to the caller, who may resubmit.
// The returned id is nil when the upstream response carried none.
func (c *Controller) createTicket(ctx context.Context, secrets configuration.Secrets, ticket model.Ticket, msgs flowMessages) (*int64, error) {
	url := c.config.ZendeskURL
	if url == "" {
		url = fmt.Sprintf("https://%s.zendesk.com/api/v2/tickets.json", secrets.Subdomain)
	}

	log.Logger.Info("sending ticket to zendesk", "flow", msgs.flow, "url", url, "group_id", secrets.GroupID)

	var created model.TicketCreatedResponse
	var upstream model.TicketErrorResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBasicAuth(secrets.UserEmail+"/token", secrets.APIToken).
		SetBody(model.TicketRequest{Ticket: ticket}).
		SetResult(&created).
		SetError(&upstream).
		Post(url)
	if err != nil {
		log.Logger.Error("zendesk request failed", "flow", msgs.flow, attributes.ErrorKey, err)
		if isTimeout(err) {
			return nil, &model.SubmissionError{StatusCode: http.StatusInternalServerError, Message: msgs.timedOut}
		}
		return nil, &model.SubmissionError{
			StatusCode: http.StatusInternalServerError,
			Message:    fmt.Sprintf(msgs.generic, http.StatusInternalServerError),
		}
	}

	if resp.IsSuccess() {
		log.Logger.Info("created zendesk ticket", "flow", msgs.flow, "ticket_id", created.Ticket.ID)
		if created.Ticket.ID == 0 {
			return nil, nil
		}
		id := created.Ticket.ID
		return &id, nil
	}

	status := resp.StatusCode()
	log.Logger.Error("zendesk rejected ticket", "flow", msgs.flow, "status", status, "body", resp.String())

	var message string
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		message = msgs.authFailed
	case status == http.StatusUnprocessableEntity:
		description := upstream.Description
		if description == "" {
			description = "Validation error"
		}
		message = fmt.Sprintf(msgs.invalidData, description)
	case status == http.StatusTooManyRequests:
		message = msgs.rateLimited
	default:
		message = fmt.Sprintf(msgs.generic, status)
	}

	// Upstream 4xx pass through; everything else degrades to 500.
	clientStatus := status
	if status >= http.StatusInternalServerError {
		clientStatus = http.StatusInternalServerError
	}
	return nil, &model.SubmissionError{StatusCode: clientStatus, Message: message}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
