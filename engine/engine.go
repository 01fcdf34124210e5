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

// Package engine fires rule sets against facts and invokes listeners around
// every rule.
//
// DefaultRulesEngine walks the rules once in priority order. For each rule it
// calls, in order, BeforeEvaluate, Evaluate, AfterEvaluate (or
// OnEvaluationError) and, if evaluation returned true, BeforeExecute, Execute
// and OnSuccess or OnFailure. InferenceRulesEngine repeats this while some
// rule still evaluates true. Scheduler fires a rule set on a cron schedule.
//
// Composite rules from the support package are fired like any other rule. A
// configuration error they raise during evaluation is reported through
// OnEvaluationError and returned from Fire, never mistaken for false.
package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/rulego/rulegroup/api/types"
	"github.com/rulego/rulegroup/rule"
)

var errInvalidMaxIterations = errors.New("max iterations can not be negative")

// RulesEngine fires rules against facts.
type RulesEngine interface {
	// Fire evaluates and executes rules. It returns every configuration error
	// and execution failure met during the run, joined.
	Fire(ctx context.Context, rules []types.Rule, facts types.Facts) error
	// Check evaluates rules without executing them.
	Check(ctx context.Context, rules []types.Rule, facts types.Facts) (map[string]bool, error)
}

var _ RulesEngine = (*DefaultRulesEngine)(nil)

// DefaultRulesEngine 默认规则引擎，按优先级顺序触发规则
type DefaultRulesEngine struct {
	options
}

// New creates a DefaultRulesEngine.
func New(opts ...Option) (*DefaultRulesEngine, error) {
	o, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &DefaultRulesEngine{options: o}, nil
}

// Parameters returns the engine parameters.
func (e *DefaultRulesEngine) Parameters() Parameters {
	return e.parameters
}

// Fire 触发规则
func (e *DefaultRulesEngine) Fire(ctx context.Context, rules []types.Rule, facts types.Facts) error {
	rules = rule.Sorted(rules)
	for _, l := range e.engineListener {
		l.BeforeFire(rules, facts)
	}
	err := e.doFire(ctx, rules, facts)
	for _, l := range e.engineListener {
		l.AfterFire(rules, facts)
	}
	return err
}

func (e *DefaultRulesEngine) doFire(ctx context.Context, rules []types.Rule, facts types.Facts) error {
	if len(rules) == 0 {
		return nil
	}
	var errs []error
	for _, r := range rules {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}
		if r.Priority() > e.parameters.PriorityThreshold {
			e.config.Printf("rule priority threshold (%d) exceeded at rule '%s' with priority=%d, next rules will be skipped",
				e.parameters.PriorityThreshold, r.Name(), r.Priority())
			break
		}
		if !e.shouldBeEvaluated(r, facts) {
			continue
		}
		evaluationResult, err := safeEvaluate(r, facts)
		if err != nil {
			e.config.Printf("rule '%s' evaluated with error: %v", r.Name(), err)
			e.onEvaluationError(r, facts, err)
			errs = append(errs, err)
			if e.parameters.SkipOnFirstNonTriggeredRule {
				break
			}
			continue
		}
		e.afterEvaluate(r, facts, evaluationResult)
		if !evaluationResult {
			if e.parameters.SkipOnFirstNonTriggeredRule {
				break
			}
			continue
		}
		e.beforeExecute(r, facts)
		if err := safeExecute(r, facts); err != nil {
			e.config.Printf("rule '%s' performed with error: %v", r.Name(), err)
			e.onFailure(r, facts, err)
			errs = append(errs, types.NewExecuteError(r, err))
			if e.parameters.SkipOnFirstFailedRule {
				break
			}
			continue
		}
		e.onSuccess(r, facts)
		if e.parameters.SkipOnFirstAppliedRule {
			break
		}
	}
	return errors.Join(errs...)
}

// Check 只评估规则，不执行
func (e *DefaultRulesEngine) Check(ctx context.Context, rules []types.Rule, facts types.Facts) (map[string]bool, error) {
	rules = rule.Sorted(rules)
	for _, l := range e.engineListener {
		l.BeforeFire(rules, facts)
	}
	defer func() {
		for _, l := range e.engineListener {
			l.AfterFire(rules, facts)
		}
	}()
	result := make(map[string]bool, len(rules))
	var errs []error
	for _, r := range rules {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}
		if !e.shouldBeEvaluated(r, facts) {
			continue
		}
		ok, err := safeEvaluate(r, facts)
		// nothing is executed, composites must not keep the evaluation around
		forget(r, facts)
		if err != nil {
			e.onEvaluationError(r, facts, err)
			errs = append(errs, err)
			continue
		}
		e.afterEvaluate(r, facts, ok)
		result[r.Name()] = ok
	}
	return result, errors.Join(errs...)
}

func (e *DefaultRulesEngine) shouldBeEvaluated(r types.Rule, facts types.Facts) bool {
	for _, l := range e.ruleListeners {
		if !l.BeforeEvaluate(r, facts) {
			return false
		}
	}
	return true
}

func (e *DefaultRulesEngine) afterEvaluate(r types.Rule, facts types.Facts, result bool) {
	for _, l := range e.ruleListeners {
		l.AfterEvaluate(r, facts, result)
	}
}

func (e *DefaultRulesEngine) onEvaluationError(r types.Rule, facts types.Facts, err error) {
	for _, l := range e.ruleListeners {
		l.OnEvaluationError(r, facts, err)
	}
}

func (e *DefaultRulesEngine) beforeExecute(r types.Rule, facts types.Facts) {
	for _, l := range e.ruleListeners {
		l.BeforeExecute(r, facts)
	}
}

func (e *DefaultRulesEngine) onSuccess(r types.Rule, facts types.Facts) {
	for _, l := range e.ruleListeners {
		l.OnSuccess(r, facts)
	}
}

func (e *DefaultRulesEngine) onFailure(r types.Rule, facts types.Facts, err error) {
	for _, l := range e.ruleListeners {
		l.OnFailure(r, facts, err)
	}
}

// forget releases the per-facts state r kept from an evaluation that will not be executed.
func forget(r types.Rule, facts types.Facts) {
	if f, ok := r.(types.Forgetter); ok {
		f.Forget(facts)
	}
}

// safeEvaluate evaluates r. A panic, normally the configuration error of a
// composite rule, is returned as an evaluate-stage error.
func safeEvaluate(r types.Rule, facts types.Facts) (result bool, err error) {
	defer func() {
		if caught := recover(); caught != nil {
			if e, ok := caught.(error); ok && types.IsConfigurationError(e) {
				err = e
			} else {
				err = &types.RuleError{Rule: r.Name(), Stage: types.StageEvaluate, Err: fmt.Errorf("%v", caught)}
			}
			result = false
		}
	}()
	return r.Evaluate(facts), nil
}

// safeExecute executes r, turning a panic into an error.
func safeExecute(r types.Rule, facts types.Facts) (err error) {
	defer func() {
		if caught := recover(); caught != nil {
			err = fmt.Errorf("%v", caught)
		}
	}()
	return r.Execute(facts)
}
