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

var _ types.Rule = (*ActivationRuleGroup)(nil)

// ActivationRuleGroup 激活规则组：按顺序选择第一个通过评估的规则并只执行它
// ActivationRuleGroup is a composite that fires only the first member, in
// priority then name order, that evaluates true. Members after it are not
// evaluated.
type ActivationRuleGroup struct {
	CompositeRule
}

// NewActivationRuleGroup creates an empty activation rule group.
func NewActivationRuleGroup(name string, opts ...Option) *ActivationRuleGroup {
	g := &ActivationRuleGroup{}
	g.init(name, opts...)
	return g
}

func (g *ActivationRuleGroup) Plan(facts types.Facts) (*Plan, error) {
	plan := &Plan{Group: g.Name()}
	for _, r := range g.rules.Rules() {
		ok, err := evaluateMember(r, facts)
		if err != nil {
			return nil, err
		}
		if ok {
			plan.Matched = true
			plan.Triggered = []types.Rule{r}
			break
		}
	}
	return plan, nil
}

func (g *ActivationRuleGroup) Fire(facts types.Facts, plan *Plan) error {
	return g.fire(facts, plan)
}

func (g *ActivationRuleGroup) Evaluate(facts types.Facts) bool {
	return g.evaluate(facts, g.Plan)
}

func (g *ActivationRuleGroup) Execute(facts types.Facts) error {
	return g.execute(facts)
}
