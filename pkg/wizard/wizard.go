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

// Package wizard implements the intake flow state machines. A session is an
// explicitly constructed object owned by exactly one wizard run; it is never
// shared between sessions and is not safe for concurrent use.
package wizard

import (
	"context"
	"errors"
	"regexp"

	"github.com/RAKWireless/help-hub-connector/pkg/model"
)

var ErrNavigationBlocked = errors.New("navigation to the requested step is blocked")
var ErrSubmissionBlocked = errors.New("submission blocked: not on review step or already submitting")

// Simplified RFC shape: local@domain.tld, no whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SupportSubmitter performs the one-shot support submission for a session.
type SupportSubmitter interface {
	SubmitSupport(ctx context.Context, payload model.SupportPayload) (*int64, error)
}

// InquirySubmitter performs the one-shot inquiry submission for a session.
type InquirySubmitter interface {
	SubmitInquiry(ctx context.Context, payload model.InquiryPayload) (*int64, error)
}
