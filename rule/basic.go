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

// Package rule provides the building blocks for individual rules: a basic
// name/description/priority holder, rules assembled from condition and action
// functions, expression rules, script rules and the total order used to fire
// them.
package rule

import (
	"fmt"

	"github.com/rulego/rulegroup/api/types"
	"github.com/rulego/rulegroup/utils/runtime"
)

// BasicRule 规则基础实现，保存名称、描述和优先级
// BasicRule holds the name, description and priority of a rule. Its Evaluate
// always returns false and its Execute does nothing; embed it and override them.
type BasicRule struct {
	name        string
	description string
	priority    int
}

// NewBasicRule creates a BasicRule. Empty name and description fall back to the defaults.
func NewBasicRule(name, description string, priority int) BasicRule {
	if name == "" {
		name = types.DefaultRuleName
	}
	if description == "" {
		description = types.DefaultRuleDescription
	}
	return BasicRule{name: name, description: description, priority: priority}
}

func (r *BasicRule) Name() string {
	return r.name
}

func (r *BasicRule) Description() string {
	return r.description
}

func (r *BasicRule) Priority() int {
	return r.priority
}

func (r *BasicRule) Evaluate(facts types.Facts) bool {
	return false
}

func (r *BasicRule) Execute(facts types.Facts) error {
	return nil
}

func (r *BasicRule) String() string {
	return r.name
}

// SafeEvaluate 评估条件，捕获panic并返回false
// SafeEvaluate runs condition, resolving a panic to false. When logger is not
// nil the recovered panic is logged with its stack.
func SafeEvaluate(logger types.Logger, name string, condition types.Condition, facts types.Facts) (result bool) {
	defer func() {
		if caught := recover(); caught != nil {
			if logger != nil {
				logger.Printf("rule %s evaluate panic, resolved to false, err:%v\n%s", name, caught, runtime.Stack())
			}
			result = false
		}
	}()
	return condition.Evaluate(facts)
}

// SafeExecute runs action, turning a panic into an error.
func SafeExecute(action types.Action, facts types.Facts) (err error) {
	defer func() {
		if caught := recover(); caught != nil {
			err = fmt.Errorf("%v", caught)
		}
	}()
	return action.Execute(facts)
}
