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

// Package support provides composite rules: rules whose evaluation and
// execution are defined in terms of an ordered set of member rules.
//
// Every composite implements types.Rule and can therefore be fired by an
// engine, or added to another composite, like any other rule.
//
// The concrete strategies are:
//   - ConditionalRuleGroup: the highest-priority member gates the group and
//     the other members that also evaluate true fire after it
//   - UnitRuleGroup: all members must evaluate true, then all fire
//   - ActivationRuleGroup: only the first member that evaluates true fires
//
// Each strategy exposes an explicit two-phase API, Plan then Fire, that
// passes the evaluation outcome as a value. The types.Rule methods are built
// on it: Evaluate records the plan under the facts reference and Execute
// fires the plan recorded for the same facts. Firing cycles that use distinct
// facts on one group are therefore independent; cycles sharing one facts
// value must be serialized by the caller.
//
// Adding or removing members while the group is being fired is not supported.
package support

import (
	"reflect"
	"sync"

	"github.com/rulego/rulegroup/adapter"
	"github.com/rulego/rulegroup/api/types"
	"github.com/rulego/rulegroup/rule"
)

// Option configures a composite rule.
type Option func(*options)

type options struct {
	description string
	priority    int
	adapter     types.Adapter
}

// WithDescription sets the description of the composite rule.
func WithDescription(description string) Option {
	return func(o *options) {
		o.description = description
	}
}

// WithPriority sets the priority of the composite rule itself.
func WithPriority(priority int) Option {
	return func(o *options) {
		o.priority = priority
	}
}

// WithAdapter sets the adapter used by AddRule.
func WithAdapter(a types.Adapter) Option {
	return func(o *options) {
		o.adapter = a
	}
}

// WithConfig takes the adapter from config.
func WithConfig(config types.Config) Option {
	return func(o *options) {
		o.adapter = adapter.Or(config)
	}
}

// anonymousKey identifies members whose candidate can not be used as a map key.
type anonymousKey uint64

// CompositeRule 组合规则基础实现，维护有序去重的成员集合
// CompositeRule owns the ordered member set of a composite. It adapts
// candidates on AddRule and removes members by the caller's original
// candidate on RemoveRule. Concrete strategies embed it and provide
// Evaluate and Execute.
type CompositeRule struct {
	rule.BasicRule
	rules   *rule.Set
	adapter types.Adapter
	anon    uint64

	mu      sync.Mutex
	pending map[types.Facts]*Plan
}

func (c *CompositeRule) init(name string, opts ...Option) {
	o := options{
		description: types.DefaultRuleDescription,
		priority:    types.DefaultRulePriority,
		adapter:     adapter.Default,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.adapter == nil {
		o.adapter = adapter.Default
	}
	c.BasicRule = rule.NewBasicRule(name, o.description, o.priority)
	c.rules = rule.NewSet()
	c.adapter = o.adapter
	c.pending = make(map[types.Facts]*Plan)
}

// AddRule 添加规则
// AddRule adapts candidate and adds the result to the member set. The
// adapter runs exactly once per call.
//
// Membership is decided by candidate identity: adding the same candidate again
// replaces its previous adaptation, while distinct candidates that tie on
// priority and name are all kept. Candidates that are not comparable (func,
// map and slice values, structs holding them) are keyed by their adapted rule
// instead and can only be removed through that rule.
func (c *CompositeRule) AddRule(candidate interface{}) error {
	if candidate == nil {
		return types.ErrNilRule
	}
	r, err := c.adapter.Adapt(candidate)
	if err != nil {
		return err
	}
	if r == nil {
		return types.ErrNilRule
	}
	c.rules.Add(c.keyOf(candidate, r), r)
	return nil
}

// RemoveRule 移除规则
// RemoveRule removes the member added for candidate. It is a no-op when
// candidate was never added.
func (c *CompositeRule) RemoveRule(candidate interface{}) {
	if !isComparable(candidate) {
		return
	}
	c.rules.Remove(candidate)
}

// Rules returns the members in firing order.
func (c *CompositeRule) Rules() []types.Rule {
	return c.rules.Rules()
}

// Len returns the number of members.
func (c *CompositeRule) Len() int {
	return c.rules.Len()
}

func (c *CompositeRule) keyOf(candidate interface{}, adapted types.Rule) interface{} {
	if isComparable(candidate) {
		return candidate
	}
	if isComparable(adapted) {
		return adapted
	}
	c.anon++
	return anonymousKey(c.anon)
}

// isComparable reports whether v can be used as a map key. The dynamic value
// is checked, so a struct whose interface field holds a slice is rejected.
func isComparable(v interface{}) bool {
	if v == nil {
		return false
	}
	return reflect.ValueOf(v).Comparable()
}

// remember records the plan of a positive evaluation for facts.
func (c *CompositeRule) remember(facts types.Facts, plan *Plan) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending[facts] = plan
}

// Forget 丢弃为facts记录的评估结果，包括嵌套的组合规则
// Forget drops the plan recorded for facts by Evaluate, and the plans nested
// composite members recorded for the same facts. Call it when an Evaluate
// will not be followed by Execute.
func (c *CompositeRule) Forget(facts types.Facts) {
	c.mu.Lock()
	delete(c.pending, facts)
	c.mu.Unlock()
	for _, r := range c.rules.Rules() {
		if f, ok := r.(types.Forgetter); ok {
			f.Forget(facts)
		}
	}
}

// take returns and drops the plan recorded for facts.
func (c *CompositeRule) take(facts types.Facts) *Plan {
	c.mu.Lock()
	defer c.mu.Unlock()
	plan := c.pending[facts]
	delete(c.pending, facts)
	return plan
}

// evaluate implements types.Rule Evaluate on top of a planner. A
// configuration error can not be expressed as a bool, so it is raised as a
// panic carrying the error value.
func (c *CompositeRule) evaluate(facts types.Facts, planner func(types.Facts) (*Plan, error)) bool {
	plan, err := planner(facts)
	if err != nil {
		c.Forget(facts)
		panic(err)
	}
	if !plan.Matched {
		c.Forget(facts)
		return false
	}
	c.remember(facts, plan)
	return true
}

// execute implements types.Rule Execute: it fires the plan recorded for facts
// by the preceding Evaluate, or does nothing if there is none.
func (c *CompositeRule) execute(facts types.Facts) error {
	return c.fire(facts, c.take(facts))
}

// fire executes the plan members in order and stops at the first failure.
// Members executed before the failure are not rolled back.
func (c *CompositeRule) fire(facts types.Facts, plan *Plan) error {
	if plan == nil || !plan.Matched {
		return nil
	}
	for _, r := range plan.Rules() {
		if err := r.Execute(facts); err != nil {
			return types.NewExecuteError(r, err)
		}
	}
	return nil
}

// evaluateMember evaluates a member. A configuration error raised by a
// nested composite is returned instead of unwinding through this group.
func evaluateMember(r types.Rule, facts types.Facts) (result bool, err error) {
	defer func() {
		if caught := recover(); caught != nil {
			if e, ok := caught.(error); ok && types.IsConfigurationError(e) {
				err = &types.RuleError{Rule: r.Name(), Stage: types.StageEvaluate, Err: e}
				return
			}
			panic(caught)
		}
	}()
	return r.Evaluate(facts), nil
}
