// Copyright 2026 The Steganon Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package remote is a Go client for a running stegod daemon's /v1 HTTP
// API. The steganon CLI does not use it; its hide and extract commands
// always operate on local files.
package remote

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/steganon/steganon/utils/security"
)

// Client talks to a stegod daemon's /v1 API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient builds a Client for a daemon at baseURL (e.g.
// "https://localhost:9443"). A baseURL scheme of "https+insecure" skips
// TLS certificate verification, for talking to a daemon running on its
// generated self-signed certificate. token, if non-empty, is sent as a
// bearer capability token.
func NewClient(baseURL, token string) (*Client, error) {
	resolvedURL, httpClient, _, err := security.CreateHTTPClient(baseURL)
	if err != nil {
		return nil, err
	}
	httpClient.Timeout = 30 * time.Second

	return &Client{
		baseURL: resolvedURL,
		token:   token,
		http:    httpClient,
	}, nil
}

func (c *Client) do(method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("remote: %s %s: status %d: %s", method, path, resp.StatusCode, string(data))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// CreateJob uploads a cover image and seed chain, returning the new job ID.
func (c *Client) CreateJob(cover []byte, codec string, seeds []string, useRawSeed bool) (string, error) {
	var resp struct {
		JobID string `json:"job_id"`
	}
	err := c.do(http.MethodPost, "/v1/jobs", map[string]any{
		"cover":        base64.StdEncoding.EncodeToString(cover),
		"codec":        codec,
		"seeds":        seeds,
		"use_raw_seed": useRawSeed,
	}, &resp)
	return resp.JobID, err
}

// Hide embeds payload into jobID's current chain level.
func (c *Client) Hide(jobID string, payload []byte) error {
	return c.do(http.MethodPost, "/v1/jobs/"+jobID+"/hide", map[string]any{
		"payload": base64.StdEncoding.EncodeToString(payload),
	}, nil)
}

// Extract recovers jobID's current chain level's payload.
func (c *Client) Extract(jobID string) ([]byte, error) {
	var resp struct {
		Payload string `json:"payload"`
	}
	if err := c.do(http.MethodPost, "/v1/jobs/"+jobID+"/extract", nil, &resp); err != nil {
		return nil, err
	}
	return base64.StdEncoding.DecodeString(resp.Payload)
}

// Advance moves jobID to the next chain level.
func (c *Client) Advance(jobID string) error {
	return c.do(http.MethodPost, "/v1/jobs/"+jobID+"/advance", nil, nil)
}

// Render downloads jobID's current cover image state.
func (c *Client) Render(jobID string) ([]byte, error) {
	var resp struct {
		Image string `json:"image"`
	}
	if err := c.do(http.MethodGet, "/v1/jobs/"+jobID+"/render", nil, &resp); err != nil {
		return nil, err
	}
	return base64.StdEncoding.DecodeString(resp.Image)
}
