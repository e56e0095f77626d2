// Copyright 2021 The jackal Authors
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

package agent

import (
	"net/http"
	"net/http/httptest"
	"testing"

	kitlog "github.com/go-kit/log"
	"github.com/stretchr/testify/require"
)

func TestHTTPServer_Health(t *testing.T) {
	// given
	healthy := true
	h := newHTTPServer(0, func() bool { return healthy }, kitlog.NewNopLogger())
	hnd := h.handler()

	// when
	rec := httptest.NewRecorder()
	hnd.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	healthy = false
	unhealthyRec := httptest.NewRecorder()
	hnd.ServeHTTP(unhealthyRec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	// then
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, http.StatusServiceUnavailable, unhealthyRec.Code)
}

func TestHTTPServer_Metrics(t *testing.T) {
	// given
	hnd := newHTTPServer(0, nil, kitlog.NewNopLogger()).handler()

	// when
	rec := httptest.NewRecorder()
	hnd.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	// then
	require.Equal(t, http.StatusOK, rec.Code)
}
