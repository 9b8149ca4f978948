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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupSecretPrefersPrimaryName(t *testing.T) {
	t.Setenv("ZENDESK_SUBDOMAIN", "rakwireless")
	t.Setenv("VITE_ZENDESK_SUBDOMAIN", "legacy")

	val, err := LookupSecret(EnvZendeskSubdomain)

	require.NoError(t, err)
	assert.Equal(t, "rakwireless", val)
}

func TestLookupSecretFallsBackToLegacyName(t *testing.T) {
	t.Setenv("VITE_ZENDESK_API_TOKEN", "tok-123")

	val, err := LookupSecret(EnvZendeskAPIToken)

	require.NoError(t, err)
	assert.Equal(t, "tok-123", val)
}

func TestLookupSecretReportsBothNames(t *testing.T) {
	_, err := LookupSecret("ZENDESK_DOES_NOT_EXIST")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ZENDESK_DOES_NOT_EXIST")
	assert.Contains(t, err.Error(), "VITE_ZENDESK_DOES_NOT_EXIST")
}

func TestResolveSecrets(t *testing.T) {
	t.Setenv("ZENDESK_SUBDOMAIN", "rakwireless")
	t.Setenv("ZENDESK_API_TOKEN", "tok-123")
	t.Setenv("ZENDESK_USER_EMAIL", "bot@rakwireless.com")
	t.Setenv("ZENDESK_SALES_GROUP_ID", "360001")

	secrets, err := ResolveSecrets(EnvZendeskSalesGroupID)

	require.NoError(t, err)
	assert.Equal(t, Secrets{
		Subdomain: "rakwireless",
		APIToken:  "tok-123",
		UserEmail: "bot@rakwireless.com",
		GroupID:   "360001",
	}, secrets)
}

func TestResolveSecretsMissingGroup(t *testing.T) {
	t.Setenv("ZENDESK_SUBDOMAIN", "rakwireless")
	t.Setenv("ZENDESK_API_TOKEN", "tok-123")
	t.Setenv("ZENDESK_USER_EMAIL", "bot@rakwireless.com")

	_, err := ResolveSecrets("ZENDESK_GROUP_UNSET")

	require.Error(t, err)
}
