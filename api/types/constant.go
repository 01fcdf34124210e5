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

import "errors"

const (
	// Global 全局属性在表达式和脚本中的变量名
	Global = "global"
	// FactsKey 表达式和脚本中访问事实对象本身的变量名
	FactsKey = "facts"
)

const (
	// StageEvaluate marks a failure raised while evaluating a rule.
	StageEvaluate = "evaluate"
	// StageExecute marks a failure raised while executing a rule.
	StageExecute = "execute"
)

var (
	// ErrMultipleHighestPriority is matched by the configuration error raised when
	// more than one member of a conditional group holds the highest priority.
	ErrMultipleHighestPriority = errors.New("only one rule can have highest priority")
	// ErrEmptyGroup is matched by the configuration error raised when a group that
	// needs a controlling rule has no members.
	ErrEmptyGroup = errors.New("rule group has no rules")
	// ErrNotAdaptable is returned when a candidate cannot be turned into a Rule.
	ErrNotAdaptable = errors.New("candidate can not be adapted to a rule")
	// ErrNilRule is returned when a nil candidate is added to a composite rule.
	ErrNilRule = errors.New("rule can not be nil")
	// ErrExprEmpty is returned when an expression rule has no condition.
	ErrExprEmpty = errors.New("expr can not be empty")
	// ErrScriptEmpty is returned when a script rule has no script.
	ErrScriptEmpty = errors.New("script can not be empty")
	// ErrSchedulerStopped is returned when jobs are added to a stopped scheduler.
	ErrSchedulerStopped = errors.New("scheduler has been stopped")
)
