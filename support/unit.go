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
)

var _ types.Rule = (*UnitRuleGroup)(nil)

// UnitRuleGroup 单元规则组：所有规则都通过评估才执行，要么全部执行，要么都不执行
// UnitRuleGroup is a composite that matches only when every member evaluates
// true. It then fires all members in order. Evaluation stops at the first
// false member. An empty group never matches.
type UnitRuleGroup struct {
	CompositeRule
}

// NewUnitRuleGroup creates an empty unit rule group.
func NewUnitRuleGroup(name string, opts ...Option) *UnitRuleGroup {
	g := &UnitRuleGroup{}
	g.init(name, opts...)
	return g
}

func (g *UnitRuleGroup) Plan(facts types.Facts) (*Plan, error) {
	plan := &Plan{Group: g.Name()}
	rules := g.rules.Rules()
	if len(rules) == 0 {
		return plan, nil
	}
	for _, r := range rules {
		ok, err := evaluateMember(r, facts)
		if err != nil {
			return nil, err
		}
		if !ok {
			return plan, nil
		}
	}
	plan.Matched = true
	plan.Triggered = rules
	return plan, nil
}

func (g *UnitRuleGroup) Fire(facts types.Facts, plan *Plan) error {
	return g.fire(facts, plan)
}

func (g *UnitRuleGroup) Evaluate(facts types.Facts) bool {
	return g.evaluate(facts, g.Plan)
}

func (g *UnitRuleGroup) Execute(facts types.Facts) error {
	return g.execute(facts)
}
