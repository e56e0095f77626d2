// Copyright 2022 The jackal Authors
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

package client

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	clientOutgoingRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "spade",
			Subsystem: "client",
			Name:      "outgoing_requests_total",
			Help:      "The total number of outgoing stanza requests.",
		},
		[]string{"name", "type", "success"},
	)
	clientIncomingRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "spade",
			Subsystem: "client",
			Name:      "incoming_requests_total",
			Help:      "The total number of incoming stanza requests.",
		},
		[]string{"name", "type"},
	)
	clientIncomingRequestDurationBucket = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "spade",
			Subsystem: "client",
			Name:      "incoming_requests_duration_bucket",
			Help:      "Bucketed histogram of incoming stanza requests duration.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 20),
		},
		[]string{"name", "type"},
	)
)

func init() {
	prometheus.MustRegister(clientOutgoingRequests)
	prometheus.MustRegister(clientIncomingRequests)
	prometheus.MustRegister(clientIncomingRequestDurationBucket)
}

func reportOutgoingRequest(name, typ string, success bool) {
	metricLabel := prometheus.Labels{
		"name":    name,
		"type":    typ,
		"success": strconv.FormatBool(success),
	}
	clientOutgoingRequests.With(metricLabel).Inc()
}

func reportIncomingRequest(name, typ string, durationInSecs float64) {
	metricLabel := prometheus.Labels{
		"name": name,
		"type": typ,
	}
	clientIncomingRequests.With(metricLabel).Inc()
	clientIncomingRequestDurationBucket.With(metricLabel).Observe(durationInSecs)
}
