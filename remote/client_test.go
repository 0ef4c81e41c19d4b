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

package remote_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/steganon/steganon/remote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_CreateJobAndHide(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		switch {
		case r.URL.Path == "/v1/jobs" && r.Method == http.MethodPost:
			json.NewEncoder(w).Encode(map[string]string{"job_id": "job-123"})
		case r.URL.Path == "/v1/jobs/job-123/hide":
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]bool{"ok": true})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c, err := remote.NewClient(srv.URL, "test-token")
	require.NoError(t, err)
	id, err := c.CreateJob([]byte("cover-bytes"), "png", []string{"seed1"}, false)
	require.NoError(t, err)
	assert.Equal(t, "job-123", id)
	assert.Equal(t, "Bearer test-token", gotAuth)

	require.NoError(t, c.Hide(id, []byte("payload")))
}

func TestClient_ErrorStatusReturnsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"bad seed"}`))
	}))
	defer srv.Close()

	c, err := remote.NewClient(srv.URL, "")
	require.NoError(t, err)
	_, err = c.CreateJob(nil, "png", nil, false)
	assert.Error(t, err)
}
