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

//规则定义示例：
//{
//  "name": "temperatureAlarm",
//  "description": "raise alarm when temperature is high",
//  "priority": 1,
//  "condition": "temperature > 50",
//  "actions": ["set('alarm', true)", "set('level', temperature > 80 ? 'high' : 'low')"]
//}
import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/rulego/rulegroup/api/types"
	"github.com/rulego/rulegroup/utils/maps"
)

var _ types.Rule = (*ExprRule)(nil)

// ExprRuleConfiguration 表达式规则配置
type ExprRuleConfiguration struct {
	Name        string
	Description string
	Priority    int
	// Condition 条件表达式，必须返回bool
	Condition string
	// Actions 动作表达式列表，按顺序执行
	Actions []string
}

// ExprRule 使用expr表达式定义条件和动作的规则
// ExprRule evaluates its condition and actions with expr-lang/expr.
//
// Inside expressions:
//   - every fact is a variable, e.g. `temperature > 50`
//   - `facts` is the Facts handle
//   - `set(name, value)` writes a fact and returns value
//   - `remove(name)` deletes a fact
//   - `global` holds Config.Properties
//   - functions registered in Config.Udf are callable by name
//
// A condition that fails to run, or does not produce true, evaluates to false.
type ExprRule struct {
	BasicRule
	Config    ExprRuleConfiguration
	config    types.Config
	condition *vm.Program
	actions   []*vm.Program
}

// NewExprRule decodes configuration and compiles the expressions.
func NewExprRule(config types.Config, configuration types.Configuration) (*ExprRule, error) {
	c := ExprRuleConfiguration{Priority: types.DefaultRulePriority}
	if err := maps.Map2Struct(configuration, &c); err != nil {
		return nil, err
	}
	if strings.TrimSpace(c.Condition) == "" {
		return nil, types.ErrExprEmpty
	}
	condition, err := expr.Compile(c.Condition, expr.AllowUndefinedVariables(), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile condition of rule %s error: %w", c.Name, err)
	}
	r := &ExprRule{
		BasicRule: NewBasicRule(c.Name, c.Description, c.Priority),
		Config:    c,
		config:    config,
		condition: condition,
	}
	for _, action := range c.Actions {
		if strings.TrimSpace(action) == "" {
			continue
		}
		program, err := expr.Compile(action, expr.AllowUndefinedVariables())
		if err != nil {
			return nil, fmt.Errorf("compile action of rule %s error: %w", c.Name, err)
		}
		r.actions = append(r.actions, program)
	}
	return r, nil
}

func (r *ExprRule) Evaluate(facts types.Facts) (result bool) {
	defer func() {
		if caught := recover(); caught != nil {
			r.config.Printf("rule %s evaluate panic, resolved to false, err:%v", r.name, caught)
			result = false
		}
	}()
	out, err := vm.Run(r.condition, r.env(facts))
	if err != nil {
		r.config.Printf("rule %s evaluate error, resolved to false, err:%v", r.name, err)
		return false
	}
	b, ok := out.(bool)
	return ok && b
}

func (r *ExprRule) Execute(facts types.Facts) (err error) {
	defer func() {
		if caught := recover(); caught != nil {
			err = fmt.Errorf("%v", caught)
		}
	}()
	for _, action := range r.actions {
		// Each action sees the writes of the previous ones.
		if _, err := vm.Run(action, r.env(facts)); err != nil {
			return err
		}
	}
	return nil
}

func (r *ExprRule) env(facts types.Facts) map[string]interface{} {
	evn := facts.AsMap()
	for k, v := range r.config.Udf {
		evn[k] = v
	}
	evn[types.FactsKey] = facts
	evn[types.Global] = r.config.Properties
	evn["set"] = func(name string, value interface{}) interface{} {
		facts.Put(name, value)
		return value
	}
	evn["remove"] = func(name string) bool {
		existed := facts.Has(name)
		facts.Remove(name)
		return existed
	}
	return evn
}
