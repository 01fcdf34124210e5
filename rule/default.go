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

package rule

import (
	"github.com/rulego/rulegroup/api/types"
)

var _ types.Rule = (*DefaultRule)(nil)

// DefaultRule 由条件和一组动作组成的规则
// DefaultRule is a rule made of one condition and an ordered list of actions.
type DefaultRule struct {
	BasicRule
	condition types.Condition
	actions   []types.Action
	logger    types.Logger
}

// Evaluate runs the condition. A nil condition evaluates to false; a panic
// evaluates to false.
func (r *DefaultRule) Evaluate(facts types.Facts) bool {
	if r.condition == nil {
		return false
	}
	return SafeEvaluate(r.logger, r.name, r.condition, facts)
}

// Execute runs the actions in order and stops at the first failure.
func (r *DefaultRule) Execute(facts types.Facts) error {
	for _, action := range r.actions {
		if err := SafeExecute(action, facts); err != nil {
			return err
		}
	}
	return nil
}

// Builder 规则构建器
// Builder assembles a DefaultRule.
//
//	r := rule.NewBuilder().
//		Name("alarm").
//		Priority(1).
//		When(func(facts types.Facts) bool { return facts.Get("temperature").(int) > 50 }).
//		Then(func(facts types.Facts) error { facts.Put("alarm", true); return nil }).
//		Build()
type Builder struct {
	name        string
	description string
	priority    int
	condition   types.Condition
	actions     []types.Action
	logger      types.Logger
}

// NewBuilder creates a Builder with default name, description and priority.
func NewBuilder() *Builder {
	return &Builder{
		name:        types.DefaultRuleName,
		description: types.DefaultRuleDescription,
		priority:    types.DefaultRulePriority,
	}
}

func (b *Builder) Name(name string) *Builder {
	b.name = name
	return b
}

func (b *Builder) Description(description string) *Builder {
	b.description = description
	return b
}

func (b *Builder) Priority(priority int) *Builder {
	b.priority = priority
	return b
}

// When sets the condition from a function.
func (b *Builder) When(condition func(facts types.Facts) bool) *Builder {
	b.condition = types.ConditionFunc(condition)
	return b
}

// Condition sets the condition.
func (b *Builder) Condition(condition types.Condition) *Builder {
	b.condition = condition
	return b
}

// Then appends actions from functions.
func (b *Builder) Then(actions ...func(facts types.Facts) error) *Builder {
	for _, action := range actions {
		b.actions = append(b.actions, types.ActionFunc(action))
	}
	return b
}

// Action appends actions.
func (b *Builder) Action(actions ...types.Action) *Builder {
	b.actions = append(b.actions, actions...)
	return b
}

// Logger sets the logger used to report recovered evaluate panics.
func (b *Builder) Logger(logger types.Logger) *Builder {
	b.logger = logger
	return b
}

func (b *Builder) Build() *DefaultRule {
	actions := make([]types.Action, len(b.actions))
	copy(actions, b.actions)
	return &DefaultRule{
		BasicRule: NewBasicRule(b.name, b.description, b.priority),
		condition: b.condition,
		actions:   actions,
		logger:    b.logger,
	}
}
