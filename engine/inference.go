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
	"context"
	"errors"
	"fmt"

	"github.com/rulego/rulegroup/api/types"
	"github.com/rulego/rulegroup/rule"
)

var _ RulesEngine = (*InferenceRulesEngine)(nil)

// ErrMaxIterations is returned when an inference run hits Parameters.MaxIterations.
var ErrMaxIterations = errors.New("inference stopped after max iterations")

// InferenceRulesEngine 推理规则引擎：循环选择评估为true的候选规则并触发，直到没有候选规则
// InferenceRulesEngine repeatedly selects the rules that evaluate true and
// fires them with a DefaultRulesEngine, until no rule evaluates true. Rules
// are expected to change facts so that the run converges.
type InferenceRulesEngine struct {
	delegate *DefaultRulesEngine
}

// NewInference creates an InferenceRulesEngine.
func NewInference(opts ...Option) (*InferenceRulesEngine, error) {
	delegate, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return &InferenceRulesEngine{delegate: delegate}, nil
}

func (e *InferenceRulesEngine) Parameters() Parameters {
	return e.delegate.parameters
}

func (e *InferenceRulesEngine) Fire(ctx context.Context, rules []types.Rule, facts types.Facts) error {
	rules = rule.Sorted(rules)
	max := e.delegate.parameters.MaxIterations
	for iteration := 1; ; iteration++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if max > 0 && iteration > max {
			return fmt.Errorf("%w: %d", ErrMaxIterations, max)
		}
		candidates, err := e.selectCandidates(rules, facts)
		if err != nil {
			return err
		}
		if len(candidates) == 0 {
			return nil
		}
		e.delegate.config.Printf("inference iteration %d fires %d rules", iteration, len(candidates))
		if err := e.delegate.Fire(ctx, candidates, facts); err != nil {
			return err
		}
	}
}

func (e *InferenceRulesEngine) Check(ctx context.Context, rules []types.Rule, facts types.Facts) (map[string]bool, error) {
	return e.delegate.Check(ctx, rules, facts)
}

func (e *InferenceRulesEngine) selectCandidates(rules []types.Rule, facts types.Facts) ([]types.Rule, error) {
	var candidates []types.Rule
	for _, r := range rules {
		ok, err := safeEvaluate(r, facts)
		// candidates are evaluated again when fired
		forget(r, facts)
		if err != nil {
			return nil, err
		}
		if ok {
			candidates = append(candidates, r)
		}
	}
	return candidates, nil
}
