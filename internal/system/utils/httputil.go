/*
 * Copyright (c) 2025, Caravel Rentals.
 *
 * Caravel Rentals licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package utils provides utility functions used across the system.
package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/caravel-rentals/caravel/internal/system/log"
)

// DecodeJSONBody decodes the JSON request body into the given type.
func DecodeJSONBody[T any](r *http.Request) (*T, error) {
	defer func() {
		if err := r.Body.Close(); err != nil {
			log.GetLogger().Error("Failed to close request body", log.Error(err))
		}
	}()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, errors.New("failed to read request body")
	}
	if len(body) == 0 {
		return nil, errors.New("request body is empty")
	}

	var decoded T
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, errors.New("failed to parse request body as JSON")
	}

	return &decoded, nil
}

// WriteJSONError writes a JSON error response with the given details.
func WriteJSONError(w http.ResponseWriter, code, desc string, statusCode int) {
	logger := log.GetLogger()
	logger.Error("Error in HTTP response", log.String("error", code), log.String("description", desc))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	err := json.NewEncoder(w).Encode(map[string]string{
		"error":             code,
		"error_description": desc,
	})
	if err != nil {
		logger.Error("Failed to write JSON error response", log.Error(err))
	}
}

// GetAllowedOrigin returns the request origin if it is in the allowed origins list.
func GetAllowedOrigin(allowedOrigins []string, requestOrigin string) string {
	for _, origin := range allowedOrigins {
		if origin == requestOrigin {
			return origin
		}
	}
	return ""
}
