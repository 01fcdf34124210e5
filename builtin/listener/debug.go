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

// Package listener provides ready-made rule listeners.
package listener

import (
	"github.com/rulego/rulegroup/api/types"
)

var (
	// Compile-time check Debug implements types.RuleListener.
	_ types.RuleListener = (*Debug)(nil)
	// Compile-time check Debug implements types.RulesEngineListener.
	_ types.RulesEngineListener = (*Debug)(nil)
)

// Debug is a logging listener that traces every hook of a firing through a
// types.Logger. Facts are logged with their id only.
//
// Debug 是一个调试日志监听器，通过 Logger 记录规则触发的每个阶段。
//
// Usage:
// 使用方法：
//
//	debug := listener.NewDebug(config.Logger)
//	e, _ := engine.New(engine.WithRuleListener(debug), engine.WithRulesEngineListener(debug))
type Debug struct {
	logger types.Logger
}

// NewDebug creates a Debug listener. A nil logger means the default logger.
func NewDebug(logger types.Logger) *Debug {
	return &Debug{logger: types.NewLogger(logger)}
}

func (d *Debug) BeforeEvaluate(rule types.Rule, facts types.Facts) bool {
	d.logger.Printf("[%s] before evaluate rule '%s' priority=%d", facts.Id(), rule.Name(), rule.Priority())
	return true
}

func (d *Debug) AfterEvaluate(rule types.Rule, facts types.Facts, evaluationResult bool) {
	if evaluationResult {
		d.logger.Printf("[%s] rule '%s' triggered", facts.Id(), rule.Name())
	} else {
		d.logger.Printf("[%s] rule '%s' has been evaluated to false, it has not been executed", facts.Id(), rule.Name())
	}
}

func (d *Debug) OnEvaluationError(rule types.Rule, facts types.Facts, err error) {
	d.logger.Printf("[%s] rule '%s' evaluated with error: %v", facts.Id(), rule.Name(), err)
}

func (d *Debug) BeforeExecute(rule types.Rule, facts types.Facts) {
	d.logger.Printf("[%s] before execute rule '%s'", facts.Id(), rule.Name())
}

func (d *Debug) OnSuccess(rule types.Rule, facts types.Facts) {
	d.logger.Printf("[%s] rule '%s' performed successfully", facts.Id(), rule.Name())
}

func (d *Debug) OnFailure(rule types.Rule, facts types.Facts, err error) {
	d.logger.Printf("[%s] rule '%s' performed with error: %v", facts.Id(), rule.Name(), err)
}

func (d *Debug) BeforeFire(rules []types.Rule, facts types.Facts) {
	d.logger.Printf("[%s] fire %d rules, facts=%v", facts.Id(), len(rules), facts.AsMap())
}

func (d *Debug) AfterFire(rules []types.Rule, facts types.Facts) {
	d.logger.Printf("[%s] fired %d rules, facts=%v", facts.Id(), len(rules), facts.AsMap())
}
