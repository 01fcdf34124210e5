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
//  "name": "discount",
//  "priority": 2,
//  "script": "function condition(facts, data){ return data.amount > 100 }\n function action(facts, data){ facts.Put('discount', 0.1) }"
//}
import (
	"fmt"
	"strings"

	"github.com/rulego/rulegroup/api/types"
	"github.com/rulego/rulegroup/utils/js"
	"github.com/rulego/rulegroup/utils/maps"
)

const (
	// JsConditionFunc JS条件函数名
	JsConditionFunc = "condition"
	// JsActionFunc JS动作函数名
	JsActionFunc = "action"
)

var _ types.Rule = (*JsRule)(nil)

// JsRuleConfiguration 脚本规则配置
type JsRuleConfiguration struct {
	Name        string
	Description string
	Priority    int
	// Script 必须声明condition(facts, data)函数，可选声明action(facts, data)函数
	// Script must declare `condition(facts, data)` and may declare `action(facts, data)`.
	// `facts` is the Facts handle (facts.Get/facts.Put), `data` a snapshot of all facts.
	Script string
}

// JsRule 使用JavaScript定义条件和动作的规则
type JsRule struct {
	BasicRule
	Config    JsRuleConfiguration
	config    types.Config
	jsEngine  *js.GojaJsEngine
	hasAction bool
}

// NewJsRule decodes configuration and compiles the script.
func NewJsRule(config types.Config, configuration types.Configuration) (*JsRule, error) {
	c := JsRuleConfiguration{Priority: types.DefaultRulePriority}
	if err := maps.Map2Struct(configuration, &c); err != nil {
		return nil, err
	}
	if strings.TrimSpace(c.Script) == "" {
		return nil, types.ErrScriptEmpty
	}
	jsEngine, err := js.NewGojaJsEngine(config, c.Script, nil)
	if err != nil {
		return nil, fmt.Errorf("compile script of rule %s error: %w", c.Name, err)
	}
	if !jsEngine.HasFunction(JsConditionFunc) {
		return nil, fmt.Errorf("script of rule %s must declare function %s", c.Name, JsConditionFunc)
	}
	return &JsRule{
		BasicRule: NewBasicRule(c.Name, c.Description, c.Priority),
		Config:    c,
		config:    config,
		jsEngine:  jsEngine,
		hasAction: jsEngine.HasFunction(JsActionFunc),
	}, nil
}

func (r *JsRule) Evaluate(facts types.Facts) bool {
	out, err := r.jsEngine.Execute(JsConditionFunc, facts, facts.AsMap())
	if err != nil {
		r.config.Printf("rule %s evaluate error, resolved to false, err:%v", r.name, err)
		return false
	}
	b, ok := out.(bool)
	return ok && b
}

func (r *JsRule) Execute(facts types.Facts) error {
	if !r.hasAction {
		return nil
	}
	_, err := r.jsEngine.Execute(JsActionFunc, facts, facts.AsMap())
	return err
}
