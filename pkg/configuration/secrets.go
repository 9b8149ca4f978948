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

import (
	"fmt"
	"os"
)

// legacyPrefix is the build-tool prefix the deployment historically used for
// these variables. Lookups honor both names so existing environments keep
// working.
const legacyPrefix = "VITE_"

const EnvZendeskSubdomain = "ZENDESK_SUBDOMAIN"
const EnvZendeskAPIToken = "ZENDESK_API_TOKEN"
const EnvZendeskUserEmail = "ZENDESK_USER_EMAIL"
const EnvZendeskSalesGroupID = "ZENDESK_SALES_GROUP_ID"
const EnvZendeskTechSupportGroupID = "ZENDESK_TECH_SUPPORT_GROUP_ID"

// Secrets holds the per-request Zendesk credentials. GroupID stays a string
// here; the controller parses it when building the ticket.
type Secrets struct {
	Subdomain string
	APIToken  string
	UserEmail string
	GroupID   string
}

// LookupSecret resolves name from the environment, falling back to the
// legacy-prefixed variant. The returned error names the missing variables
// and must only be logged, never sent to a client.
func LookupSecret(name string) (string, error) {
	if val := os.Getenv(name); val != "" {
		return val, nil
	}
	if val := os.Getenv(legacyPrefix + name); val != "" {
		return val, nil
	}
	return "", fmt.Errorf("environment variable %s or %s%s is not set", name, legacyPrefix, name)
}

// ResolveSecrets resolves the Zendesk credentials for one flow. groupVar
// selects the destination group (sales or tech support). Resolution happens
// at request time; a missing variable is a configuration failure of the
// request, not of startup.
func ResolveSecrets(groupVar string) (Secrets, error) {
	var secrets Secrets
	var err error
	if secrets.Subdomain, err = LookupSecret(EnvZendeskSubdomain); err != nil {
		return Secrets{}, err
	}
	if secrets.APIToken, err = LookupSecret(EnvZendeskAPIToken); err != nil {
		return Secrets{}, err
	}
	if secrets.UserEmail, err = LookupSecret(EnvZendeskUserEmail); err != nil {
		return Secrets{}, err
	}
	if secrets.GroupID, err = LookupSecret(groupVar); err != nil {
		return Secrets{}, err
	}
	return secrets, nil
}
