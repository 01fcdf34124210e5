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

package support

import (
	"github.com/rulego/rulegroup/api/types"
	"github.com/rulego/rulegroup/rule"
)

var _ types.Rule = (*ConditionalRuleGroup)(nil)

// ConditionalRuleGroup 条件规则组：优先级最高的规则作为控制规则，
// 只有控制规则通过评估，其余通过评估的规则才会按优先级顺序执行
// ConditionalRuleGroup is a composite gated by its controlling rule, the
// single member with the minimal priority value.
//
// Evaluation: the controlling rule is evaluated first. If it is false the
// group is false and no other member is evaluated. Otherwise every other
// member is evaluated against the same facts and the group is true.
//
// Execution: the controlling rule fires first, then the other members that
// evaluated true, sorted by priority then name. The first failure stops the
// group and is returned; nothing is rolled back.
//
// A group whose minimal priority is held by more than one member, or a group
// without members, is misconfigured: Plan returns a *types.ConfigurationError
// and Evaluate panics with it. Ties between non-controlling members are
// allowed and fire in name, then insertion, order.
type ConditionalRuleGroup struct {
	CompositeRule
}

// NewConditionalRuleGroup creates an empty conditional rule group.
func NewConditionalRuleGroup(name string, opts ...Option) *ConditionalRuleGroup {
	g := &ConditionalRuleGroup{}
	g.init(name, opts...)
	return g
}

// Plan evaluates the group against facts and returns the members to fire.
func (g *ConditionalRuleGroup) Plan(facts types.Facts) (*Plan, error) {
	controlling, err := g.controllingRule()
	if err != nil {
		return nil, err
	}
	plan := &Plan{Group: g.Name(), Controlling: controlling}
	ok, err := evaluateMember(controlling, facts)
	if err != nil {
		return nil, err
	}
	if !ok {
		return plan, nil
	}
	plan.Matched = true
	// The controlling rule is the unique first member.
	for _, r := range g.rules.Rules()[1:] {
		ok, err := evaluateMember(r, facts)
		if err != nil {
			return nil, err
		}
		if ok {
			plan.Triggered = append(plan.Triggered, r)
		}
	}
	rule.Sort(plan.Triggered)
	return plan, nil
}

// Fire executes a plan returned by Plan. A plan that did not match fires nothing.
func (g *ConditionalRuleGroup) Fire(facts types.Facts, plan *Plan) error {
	return g.fire(facts, plan)
}

// Evaluate implements types.Rule. It panics with a *types.ConfigurationError
// when the group is misconfigured.
func (g *ConditionalRuleGroup) Evaluate(facts types.Facts) bool {
	return g.evaluate(facts, g.Plan)
}

// Execute implements types.Rule. It fires what the preceding Evaluate with the
// same facts selected, and does nothing if that evaluation was false.
func (g *ConditionalRuleGroup) Execute(facts types.Facts) error {
	return g.execute(facts)
}

// controllingRule 获取优先级最高的规则，且必须唯一
func (g *ConditionalRuleGroup) controllingRule() (types.Rule, error) {
	highest := g.rules.Highest()
	switch len(highest) {
	case 0:
		return nil, &types.ConfigurationError{Group: g.Name(), Err: types.ErrEmptyGroup}
	case 1:
		return highest[0], nil
	default:
		names := make([]string, len(highest))
		for i, r := range highest {
			names[i] = r.Name()
		}
		return nil, &types.ConfigurationError{
			Group:    g.Name(),
			Priority: highest[0].Priority(),
			Rules:    names,
			Err:      types.ErrMultipleHighestPriority,
		}
	}
}
