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

import (
	"errors"
	"net/http"
)

var ErrBadRequest = errors.New("bad request")

// GetStatusCode maps sentinel errors to HTTP status codes for the error
// handler middleware. Unclassified errors are internal.
func GetStatusCode(err error) int {
	var se *SubmissionError
	switch {
	case errors.As(err, &se):
		return se.StatusCode
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// SubmissionError is the client-facing outcome of a failed submission. The
// message is from the curated table; raw upstream payloads are never carried
// here, only logged.
type SubmissionError struct {
	StatusCode int
	Message    string
}

func (e *SubmissionError) Error() string {
	return e.Message
}

// AsSubmissionError converts any error into a client-facing submission
// error, degrading unclassified errors to a generic internal failure.
func AsSubmissionError(err error, fallbackMessage string) *SubmissionError {
	var se *SubmissionError
	if errors.As(err, &se) {
		return se
	}
	return &SubmissionError{StatusCode: http.StatusInternalServerError, Message: fallbackMessage}
}
