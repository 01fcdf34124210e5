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

// Package types defines the contracts shared by rules, composite rules,
// listeners and the engines that fire them.
//
// A Rule is evaluated and then, only when evaluation returned true, executed
// against one Facts instance. Composite rules implement the same contract by
// delegating to their members, so they can be used wherever a Rule is expected.
package types

import "math"

const (
	// DefaultRuleName 默认规则名称
	// DefaultRuleName is the name given to rules built without one.
	DefaultRuleName = "rule"
	// DefaultRuleDescription 默认规则描述
	// DefaultRuleDescription is the description given to rules built without one.
	DefaultRuleDescription = "description"
	// DefaultRulePriority 默认优先级，数值越小优先级越高
	// DefaultRulePriority is the priority given to rules built without one.
	// Lower values fire first.
	DefaultRulePriority = math.MaxInt32 - 1
)

// Rule 规则接口，由条件和动作组成
// Rule is the atomic condition/action unit.
//
// Rules are totally ordered by priority ascending, then by name ascending.
type Rule interface {
	// Name 规则名称，在同一个组合规则中作为排序的第二关键字
	// Name returns the rule name. It is the tie-break key of the ordering.
	Name() string
	// Description 规则描述，仅用于展示
	Description() string
	// Priority 优先级，数值越小优先级越高
	// Priority returns the rule priority. Lower value means higher precedence.
	Priority() int
	// Evaluate 评估规则条件
	// Evaluate checks the rule condition against facts.
	// Implementations must never let a fault escape: any error or panic met
	// while computing the condition resolves to false.
	Evaluate(facts Facts) bool
	// Execute 执行规则动作
	// Execute performs the rule actions. A returned error is propagated by
	// callers, never suppressed.
	Execute(facts Facts) error
}

// Condition 规则条件
type Condition interface {
	Evaluate(facts Facts) bool
}

// Action 规则动作
type Action interface {
	Execute(facts Facts) error
}

// ConditionFunc adapts a function to the Condition interface.
type ConditionFunc func(facts Facts) bool

func (f ConditionFunc) Evaluate(facts Facts) bool {
	return f(facts)
}

// ActionFunc adapts a function to the Action interface.
type ActionFunc func(facts Facts) error

func (f ActionFunc) Execute(facts Facts) error {
	return f(facts)
}

// Named is implemented by candidates that carry their own rule name.
type Named interface {
	Name() string
}

// Described is implemented by candidates that carry their own description.
type Described interface {
	Description() string
}

// Prioritized is implemented by candidates that carry their own priority.
type Prioritized interface {
	Priority() int
}

// Forgetter is implemented by rules that keep state between Evaluate and
// Execute for one facts value, such as composite rules. Engines call Forget
// when an evaluation is not followed by an execution.
type Forgetter interface {
	Forget(facts Facts)
}
