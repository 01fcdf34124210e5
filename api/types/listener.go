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

package types

// RuleListener 规则触发监听器
// RuleListener is a set of hooks invoked by an engine around the firing of
// one rule. Rules never call these hooks themselves.
//
// Invocation order:
//
//	BeforeEvaluate -> Evaluate -> AfterEvaluate
//	  [only if evaluation returned true]
//	  -> BeforeExecute -> Execute -> (OnSuccess | OnFailure)
type RuleListener interface {
	// BeforeEvaluate 规则评估前触发，返回false则跳过该规则
	// BeforeEvaluate returning false makes the engine skip the rule entirely.
	BeforeEvaluate(rule Rule, facts Facts) bool
	// AfterEvaluate 规则评估后触发
	AfterEvaluate(rule Rule, facts Facts, evaluationResult bool)
	// OnEvaluationError 规则评估出现结构性错误时触发，例如条件组中存在多个最高优先级规则
	// OnEvaluationError is invoked when evaluation surfaced a configuration
	// error instead of a boolean outcome.
	OnEvaluationError(rule Rule, facts Facts, err error)
	// BeforeExecute 规则执行前触发
	BeforeExecute(rule Rule, facts Facts)
	// OnSuccess 规则执行成功后触发
	OnSuccess(rule Rule, facts Facts)
	// OnFailure 规则执行失败后触发
	OnFailure(rule Rule, facts Facts, err error)
}

// RulesEngineListener 规则引擎监听器，在整个规则集触发前后调用
type RulesEngineListener interface {
	// BeforeFire is invoked before the first rule of a run is evaluated.
	BeforeFire(rules []Rule, facts Facts)
	// AfterFire is invoked after the last rule of a run, even when the run failed.
	AfterFire(rules []Rule, facts Facts)
}

// RuleListenerAdapter is a no-op RuleListener meant to be embedded by
// listeners that only care about a few hooks.
type RuleListenerAdapter struct {
}

func (l RuleListenerAdapter) BeforeEvaluate(rule Rule, facts Facts) bool {
	return true
}

func (l RuleListenerAdapter) AfterEvaluate(rule Rule, facts Facts, evaluationResult bool) {
}

func (l RuleListenerAdapter) OnEvaluationError(rule Rule, facts Facts, err error) {
}

func (l RuleListenerAdapter) BeforeExecute(rule Rule, facts Facts) {
}

func (l RuleListenerAdapter) OnSuccess(rule Rule, facts Facts) {
}

func (l RuleListenerAdapter) OnFailure(rule Rule, facts Facts, err error) {
}
