// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Moodle error codes with a dedicated sentinel.
const (
	errorCodeInvalidLogin = "invalidlogin"
	errorCodeInvalidToken = "invalidtoken"
)

// moodleError is the error body shared by login/token.php ("error") and
// webservice/rest/server.php ("exception"/"message").
type moodleError struct {
	Error     string `json:"error"`
	Exception string `json:"exception"`
	ErrorCode string `json:"errorcode"`
	Message   string `json:"message"`
}

func (e moodleError) text() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Error != "" {
		return e.Error
	}
	return e.ErrorCode
}

// mapHTTPError converts a non-2xx status into a sentinel. Gateway and
// availability failures count as network errors.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusRequestTimeout,
		http.StatusTooManyRequests,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return fmt.Errorf("%w: http %d: %s", ErrNetwork, resp.StatusCode(), body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedResponse, resp.StatusCode(), body)
	}
}

// mapMoodleError inspects a 200 body for a Moodle error object. It returns
// nil when body is not an error.
func mapMoodleError(body []byte) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}

	var me moodleError
	if err := json.Unmarshal(trimmed, &me); err != nil {
		return nil
	}
	if me.ErrorCode == "" && me.Exception == "" && me.Error == "" {
		return nil
	}

	switch me.ErrorCode {
	case errorCodeInvalidLogin:
		return fmt.Errorf("%w: %s", ErrInvalidCredentials, me.text())
	case errorCodeInvalidToken:
		return fmt.Errorf("%w: %s", ErrNoSession, me.text())
	default:
		return fmt.Errorf("%w: %s", ErrWebService, me.text())
	}
}
