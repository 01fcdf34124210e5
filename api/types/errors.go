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

import (
	"errors"
	"fmt"
	"strings"
)

// ConfigurationError 规则集结构错误，不可重试
// ConfigurationError reports a structural defect in a rule set, such as a
// conditional group with several highest-priority members. It is raised at
// evaluation time but is not a data-dependent outcome and must not be retried.
type ConfigurationError struct {
	// Group 出错的组合规则名称
	Group string
	// Priority 冲突的优先级
	Priority int
	// Rules 冲突的规则名称
	Rules []string
	// Err is ErrMultipleHighestPriority or ErrEmptyGroup.
	Err error
}

func (e *ConfigurationError) Error() string {
	if len(e.Rules) == 0 {
		return fmt.Sprintf("rule group %q: %v", e.Group, e.Err)
	}
	return fmt.Sprintf("rule group %q: %v, priority=%d rules=[%s]", e.Group, e.Err, e.Priority, strings.Join(e.Rules, ","))
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// IsConfigurationError reports whether err carries a ConfigurationError.
func IsConfigurationError(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}

// RuleError 标识出错的成员规则和阶段
// RuleError tells which member rule failed and in which stage. The original
// failure is kept intact and reachable through errors.Is and errors.As.
type RuleError struct {
	// Rule 出错的规则名称
	Rule string
	// Stage StageEvaluate or StageExecute
	Stage string
	Err   error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("rule %q %s failed: %v", e.Rule, e.Stage, e.Err)
}

func (e *RuleError) Unwrap() error {
	return e.Err
}

// NewExecuteError wraps a failure returned by rule.Execute. A nil err stays nil.
func NewExecuteError(rule Rule, err error) error {
	if err == nil {
		return nil
	}
	return &RuleError{Rule: rule.Name(), Stage: StageExecute, Err: err}
}
