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

package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigurationError(t *testing.T) {
	err := &ConfigurationError{Group: "g", Priority: 1, Rules: []string{"a", "b"}, Err: ErrMultipleHighestPriority}
	assert.Equal(t, `rule group "g": only one rule can have highest priority, priority=1 rules=[a,b]`, err.Error())
	assert.True(t, errors.Is(err, ErrMultipleHighestPriority))

	wrapped := fmt.Errorf("fire: %w", &RuleError{Rule: "g", Stage: StageEvaluate, Err: err})
	assert.True(t, IsConfigurationError(wrapped))
	assert.False(t, IsConfigurationError(errors.New("boom")))

	empty := &ConfigurationError{Group: "g", Err: ErrEmptyGroup}
	assert.Equal(t, `rule group "g": rule group has no rules`, empty.Error())
}

type named string

func (n named) Name() string { return string(n) }
func (n named) Description() string { return "" }
func (n named) Priority() int { return 0 }
func (n named) Evaluate(facts Facts) bool { return true }
func (n named) Execute(facts Facts) error { return nil }

func TestRuleError(t *testing.T) {
	boom := errors.New("boom")
	assert.Nil(t, NewExecuteError(named("r"), nil))
	err := NewExecuteError(named("r"), boom)
	assert.Equal(t, `rule "r" execute failed: boom`, err.Error())
	assert.True(t, errors.Is(err, boom))
	var ruleErr *RuleError
	assert.True(t, errors.As(err, &ruleErr))
	assert.Equal(t, StageExecute, ruleErr.Stage)
}
