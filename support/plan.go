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
	"strings"

	"github.com/rulego/rulegroup/api/types"
)

// Plan 组合规则的评估结果，包含需要执行的规则及其顺序
// Plan is the outcome of evaluating a composite rule: whether it matched and
// which members fire, in firing order.
type Plan struct {
	// Group is the name of the composite that produced the plan.
	Group string
	// Matched reports whether the composite evaluated to true.
	Matched bool
	// Controlling is the member that gated the evaluation, if any. It fires first.
	Controlling types.Rule
	// Triggered are the other members to fire, in firing order.
	Triggered []types.Rule
}

// Rules returns every member to fire, in order. It is empty when the plan did not match.
func (p *Plan) Rules() []types.Rule {
	if !p.Matched {
		return nil
	}
	rules := make([]types.Rule, 0, len(p.Triggered)+1)
	if p.Controlling != nil {
		rules = append(rules, p.Controlling)
	}
	return append(rules, p.Triggered...)
}

func (p *Plan) String() string {
	var names []string
	for _, r := range p.Rules() {
		names = append(names, r.Name())
	}
	return p.Group + "[" + strings.Join(names, ",") + "]"
}
