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

// Zendesk ticket creation document, https://{subdomain}.zendesk.com/api/v2/tickets.json

type TicketComment struct {
	HTMLBody string `json:"html_body"`
}

type TicketRequester struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Verified bool   `json:"verified"`
}

type Ticket struct {
	Subject   string          `json:"subject"`
	Comment   TicketComment   `json:"comment"`
	Requester TicketRequester `json:"requester"`
	GroupID   int64           `json:"group_id"`
	Tags      []string        `json:"tags"`
	Priority  string          `json:"priority"`
}

type TicketRequest struct {
	Ticket Ticket `json:"ticket"`
}

type TicketCreatedResponse struct {
	Ticket struct {
		ID int64 `json:"id"`
	} `json:"ticket"`
}

// TicketErrorResponse carries the description Zendesk returns alongside 422
// rejections. Other fields of the upstream error body are logged raw.
type TicketErrorResponse struct {
	Description string `json:"description"`
}
