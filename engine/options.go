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

package engine

import (
	"github.com/rulego/rulegroup/api/types"
)

// Parameters 规则引擎触发参数
// Parameters control how DefaultRulesEngine walks a rule set.
type Parameters struct {
	// SkipOnFirstAppliedRule stops the run after the first rule executed successfully.
	SkipOnFirstAppliedRule bool
	// SkipOnFirstFailedRule stops the run after the first rule whose execution failed.
	SkipOnFirstFailedRule bool
	// SkipOnFirstNonTriggeredRule stops the run at the first rule that evaluated
	// false or raised an evaluation error.
	SkipOnFirstNonTriggeredRule bool
	// PriorityThreshold stops the run at the first rule whose priority value is above it.
	PriorityThreshold int
	// MaxIterations bounds the cycles of InferenceRulesEngine. 0 means no bound.
	MaxIterations int
}

// DefaultParameters returns parameters that fire every rule.
func DefaultParameters() Parameters {
	return Parameters{PriorityThreshold: types.DefaultRulePriority + 1}
}

// Option is a function type that modifies the engine.
type Option func(*options) error

type options struct {
	parameters     Parameters
	config         types.Config
	ruleListeners  []types.RuleListener
	engineListener []types.RulesEngineListener
}

func newOptions(opts ...Option) (options, error) {
	o := options{
		parameters: DefaultParameters(),
		config:     types.NewConfig(),
	}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return o, err
		}
	}
	return o, nil
}

// WithParameters replaces all parameters.
func WithParameters(parameters Parameters) Option {
	return func(o *options) error {
		o.parameters = parameters
		return nil
	}
}

func WithSkipOnFirstAppliedRule(skip bool) Option {
	return func(o *options) error {
		o.parameters.SkipOnFirstAppliedRule = skip
		return nil
	}
}

func WithSkipOnFirstFailedRule(skip bool) Option {
	return func(o *options) error {
		o.parameters.SkipOnFirstFailedRule = skip
		return nil
	}
}

func WithSkipOnFirstNonTriggeredRule(skip bool) Option {
	return func(o *options) error {
		o.parameters.SkipOnFirstNonTriggeredRule = skip
		return nil
	}
}

func WithPriorityThreshold(threshold int) Option {
	return func(o *options) error {
		o.parameters.PriorityThreshold = threshold
		return nil
	}
}

// WithMaxIterations bounds the cycles of InferenceRulesEngine.
func WithMaxIterations(max int) Option {
	return func(o *options) error {
		if max < 0 {
			return errInvalidMaxIterations
		}
		o.parameters.MaxIterations = max
		return nil
	}
}

// WithConfig sets the config, whose logger the engine uses.
func WithConfig(config types.Config) Option {
	return func(o *options) error {
		o.config = config
		return nil
	}
}

// WithRuleListener registers rule listeners, invoked in registration order.
func WithRuleListener(listeners ...types.RuleListener) Option {
	return func(o *options) error {
		o.ruleListeners = append(o.ruleListeners, listeners...)
		return nil
	}
}

// WithRulesEngineListener registers engine listeners, invoked in registration order.
func WithRulesEngineListener(listeners ...types.RulesEngineListener) Option {
	return func(o *options) error {
		o.engineListener = append(o.engineListener, listeners...)
		return nil
	}
}
