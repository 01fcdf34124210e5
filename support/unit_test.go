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
	"errors"
	"testing"

	"github.com/rulego/rulegroup/facts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitRuleGroup(t *testing.T) {
	t.Run("AllTrue", func(t *testing.T) {
		rec := &recorder{}
		g := NewUnitRuleGroup("unit")
		require.Nil(t, g.AddRule(newStub(rec, "b", 2, true)))
		require.Nil(t, g.AddRule(newStub(rec, "a", 1, true)))
		f := facts.New()
		assert.True(t, g.Evaluate(f))
		assert.Nil(t, g.Execute(f))
		assert.Equal(t, []string{"a.evaluate", "b.evaluate", "a.execute", "b.execute"}, rec.Events())
	})

	t.Run("OneFalse", func(t *testing.T) {
		rec := &recorder{}
		g := NewUnitRuleGroup("unit")
		require.Nil(t, g.AddRule(newStub(rec, "a", 1, false)))
		require.Nil(t, g.AddRule(newStub(rec, "b", 2, true)))
		f := facts.New()
		assert.False(t, g.Evaluate(f))
		assert.Nil(t, g.Execute(f))
		assert.Equal(t, []string{"a.evaluate"}, rec.Events())
	})

	t.Run("Empty", func(t *testing.T) {
		g := NewUnitRuleGroup("unit")
		plan, err := g.Plan(facts.New())
		require.Nil(t, err)
		assert.False(t, plan.Matched)
		assert.False(t, g.Evaluate(facts.New()))
	})

	t.Run("FailFast", func(t *testing.T) {
		rec := &recorder{}
		g := NewUnitRuleGroup("unit")
		require.Nil(t, g.AddRule(newStub(rec, "a", 1, true).failing(errBoom)))
		require.Nil(t, g.AddRule(newStub(rec, "b", 2, true)))
		plan, err := g.Plan(facts.New())
		require.Nil(t, err)
		rec.Reset()
		assert.True(t, errors.Is(g.Fire(facts.New(), plan), errBoom))
		assert.Equal(t, []string{"a.execute"}, rec.Events())
	})
}

func TestActivationRuleGroup(t *testing.T) {
	t.Run("FirstMatchOnly", func(t *testing.T) {
		rec := &recorder{}
		g := NewActivationRuleGroup("activation")
		require.Nil(t, g.AddRule(newStub(rec, "c", 3, true)))
		require.Nil(t, g.AddRule(newStub(rec, "b", 2, true)))
		require.Nil(t, g.AddRule(newStub(rec, "a", 1, false)))
		f := facts.New()
		assert.True(t, g.Evaluate(f))
		assert.Nil(t, g.Execute(f))
		assert.Equal(t, []string{"a.evaluate", "b.evaluate", "b.execute"}, rec.Events())
	})

	t.Run("NoMatch", func(t *testing.T) {
		rec := &recorder{}
		g := NewActivationRuleGroup("activation")
		require.Nil(t, g.AddRule(newStub(rec, "a", 1, false)))
		plan, err := g.Plan(facts.New())
		require.Nil(t, err)
		assert.False(t, plan.Matched)
		assert.Nil(t, g.Fire(facts.New(), plan))
		assert.False(t, g.Evaluate(facts.New()))
	})

	t.Run("Failure", func(t *testing.T) {
		rec := &recorder{}
		g := NewActivationRuleGroup("activation")
		require.Nil(t, g.AddRule(newStub(rec, "a", 1, true).failing(errBoom)))
		f := facts.New()
		require.True(t, g.Evaluate(f))
		assert.True(t, errors.Is(g.Execute(f), errBoom))
	})
}
