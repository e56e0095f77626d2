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

package presence

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	presenceIncomingEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "spade",
			Subsystem: "presence",
			Name:      "incoming_events_total",
			Help:      "The total number of inbound presence events.",
		},
		[]string{"type", "self"},
	)
	presenceOutgoingStanzas = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "spade",
			Subsystem: "presence",
			Name:      "outgoing_stanzas_total",
			Help:      "The total number of outbound presence stanzas.",
		},
		[]string{"type", "success"},
	)
	presenceCachedContacts = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "spade",
			Subsystem: "presence",
			Name:      "cached_presences",
			Help:      "Number of contacts whose last presence is cached.",
		},
	)
)

func init() {
	prometheus.MustRegister(presenceIncomingEvents)
	prometheus.MustRegister(presenceOutgoingStanzas)
	prometheus.MustRegister(presenceCachedContacts)
}

func reportIncomingEvent(typ string, self bool) {
	presenceIncomingEvents.With(prometheus.Labels{
		"type": typ,
		"self": strconv.FormatBool(self),
	}).Inc()
}

func reportOutgoingStanza(typ string, success bool) {
	presenceOutgoingStanzas.With(prometheus.Labels{
		"type":    typ,
		"success": strconv.FormatBool(success),
	}).Inc()
}

func reportCachedPresences(n int) {
	presenceCachedContacts.Set(float64(n))
}
