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

// Package adapter turns caller-supplied candidates into rules.
//
// Candidates are recognised through explicit interfaces, never through
// reflection on annotations:
//   - a types.Rule is used as is
//   - a value implementing types.Condition and/or types.Action becomes a
//     rule.DefaultRule; its name, description and priority come from the
//     optional types.Named, types.Described and types.Prioritized interfaces
//
// Anything else is rejected with types.ErrNotAdaptable.
package adapter

import (
	"errors"
	"fmt"

	"github.com/rulego/rulegroup/api/types"
	"github.com/rulego/rulegroup/rule"
)

// Default 默认适配器
var Default types.Adapter = types.AdapterFunc(Adapt)

// Adapt implements the default adaptation.
func Adapt(candidate interface{}) (types.Rule, error) {
	if candidate == nil {
		return nil, types.ErrNilRule
	}
	if r, ok := candidate.(types.Rule); ok {
		return r, nil
	}
	condition, isCondition := candidate.(types.Condition)
	action, isAction := candidate.(types.Action)
	if !isCondition && !isAction {
		return nil, fmt.Errorf("%w: %T", types.ErrNotAdaptable, candidate)
	}
	builder := rule.NewBuilder()
	if v, ok := candidate.(types.Named); ok {
		builder.Name(v.Name())
	}
	if v, ok := candidate.(types.Described); ok {
		builder.Description(v.Description())
	}
	if v, ok := candidate.(types.Prioritized); ok {
		builder.Priority(v.Priority())
	}
	if isCondition {
		builder.Condition(condition)
	}
	if isAction {
		builder.Action(action)
	}
	return builder.Build(), nil
}

// Chain 依次尝试多个适配器，返回第一个成功的结果
// Chain returns an adapter trying each adapter in turn. Adapters that fail
// with types.ErrNotAdaptable pass the candidate on; any other error stops the chain.
func Chain(adapters ...types.Adapter) types.Adapter {
	return types.AdapterFunc(func(candidate interface{}) (types.Rule, error) {
		for _, a := range adapters {
			r, err := a.Adapt(candidate)
			if err == nil {
				return r, nil
			}
			if !errors.Is(err, types.ErrNotAdaptable) {
				return nil, err
			}
		}
		return nil, fmt.Errorf("%w: %T", types.ErrNotAdaptable, candidate)
	})
}

// Or returns config.Adapter, or Default when none is configured.
func Or(config types.Config) types.Adapter {
	if config.Adapter != nil {
		return config.Adapter
	}
	return Default
}
