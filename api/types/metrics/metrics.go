/*
 * Copyright 2023 The RuleGo Authors.
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

package metrics

import (
	"sync/atomic"
)

// RuleMetrics holds counters for rule firings.
type RuleMetrics struct {
	Evaluated int64 // Number of rules evaluated
	Skipped   int64 // Number of rules skipped by a listener veto
	Triggered int64 // Number of rules whose evaluation returned true
	Success   int64 // Number of successful executions
	Failed    int64 // Number of failed executions
	Errors    int64 // Number of evaluation configuration errors
}

// NewRuleMetrics creates a new instance of RuleMetrics.
func NewRuleMetrics() *RuleMetrics {
	return &RuleMetrics{}
}

func (m *RuleMetrics) IncrementEvaluated() {
	atomic.AddInt64(&m.Evaluated, 1)
}

func (m *RuleMetrics) IncrementSkipped() {
	atomic.AddInt64(&m.Skipped, 1)
}

func (m *RuleMetrics) IncrementTriggered() {
	atomic.AddInt64(&m.Triggered, 1)
}

func (m *RuleMetrics) IncrementSuccess() {
	atomic.AddInt64(&m.Success, 1)
}

func (m *RuleMetrics) IncrementFailed() {
	atomic.AddInt64(&m.Failed, 1)
}

func (m *RuleMetrics) IncrementErrors() {
	atomic.AddInt64(&m.Errors, 1)
}

// Get returns a copy of the current metrics.
func (m *RuleMetrics) Get() RuleMetrics {
	return RuleMetrics{
		Evaluated: atomic.LoadInt64(&m.Evaluated),
		Skipped:   atomic.LoadInt64(&m.Skipped),
		Triggered: atomic.LoadInt64(&m.Triggered),
		Success:   atomic.LoadInt64(&m.Success),
		Failed:    atomic.LoadInt64(&m.Failed),
		Errors:    atomic.LoadInt64(&m.Errors),
	}
}

// Reset resets all metrics to zero.
func (m *RuleMetrics) Reset() {
	atomic.StoreInt64(&m.Evaluated, 0)
	atomic.StoreInt64(&m.Skipped, 0)
	atomic.StoreInt64(&m.Triggered, 0)
	atomic.StoreInt64(&m.Success, 0)
	atomic.StoreInt64(&m.Failed, 0)
	atomic.StoreInt64(&m.Errors, 0)
}
