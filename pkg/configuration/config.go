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

package configuration

type Config struct {
	LogLevel   string `env_var:"LOG_LEVEL"`
	LogHandler string `env_var:"LOG_HANDLER"`
	ServerPort uint   `env_var:"SERVER_PORT"`

	// ZendeskURL overrides the ticket creation endpoint when set. Empty means
	// https://{subdomain}.zendesk.com/api/v2/tickets.json with the subdomain
	// resolved per request.
	ZendeskURL     string   `env_var:"ZENDESK_URL"`
	ZendeskTimeout Duration `env_var:"ZENDESK_TIMEOUT"`
}
