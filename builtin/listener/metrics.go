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

package listener

import (
	"github.com/rulego/rulegroup/api/types"
	"github.com/rulego/rulegroup/api/types/metrics"
)

var _ types.RuleListener = (*Metrics)(nil)

// Metrics counts rule firings.
//
// Metrics 统计规则触发次数
type Metrics struct {
	metrics *metrics.RuleMetrics
	// Filter, when set, vetoes rules it returns false for. Vetoed rules are
	// counted as skipped.
	Filter func(rule types.Rule, facts types.Facts) bool
}

// NewMetrics creates a Metrics listener. A nil m allocates new counters.
func NewMetrics(m *metrics.RuleMetrics) *Metrics {
	if m == nil {
		m = metrics.NewRuleMetrics()
	}
	return &Metrics{metrics: m}
}

func (l *Metrics) BeforeEvaluate(rule types.Rule, facts types.Facts) bool {
	if l.Filter != nil && !l.Filter(rule, facts) {
		l.metrics.IncrementSkipped()
		return false
	}
	l.metrics.IncrementEvaluated()
	return true
}

func (l *Metrics) AfterEvaluate(rule types.Rule, facts types.Facts, evaluationResult bool) {
	if evaluationResult {
		l.metrics.IncrementTriggered()
	}
}

func (l *Metrics) OnEvaluationError(rule types.Rule, facts types.Facts, err error) {
	l.metrics.IncrementErrors()
}

func (l *Metrics) BeforeExecute(rule types.Rule, facts types.Facts) {
}

func (l *Metrics) OnSuccess(rule types.Rule, facts types.Facts) {
	l.metrics.IncrementSuccess()
}

func (l *Metrics) OnFailure(rule types.Rule, facts types.Facts, err error) {
	l.metrics.IncrementFailed()
}

// GetMetrics 返回当前的指标
func (l *Metrics) GetMetrics() *metrics.RuleMetrics {
	return l.metrics
}
