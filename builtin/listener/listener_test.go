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

package listener_test

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/rulego/rulegroup/api/types"
	"github.com/rulego/rulegroup/api/types/metrics"
	"github.com/rulego/rulegroup/builtin/listener"
	"github.com/rulego/rulegroup/engine"
	"github.com/rulego/rulegroup/facts"
	"github.com/rulego/rulegroup/rule"
	"github.com/rulego/rulegroup/support"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func fixed(name string, priority int, result bool, err error) types.Rule {
	return rule.NewBuilder().Name(name).Priority(priority).
		When(func(f types.Facts) bool { return result }).
		Then(func(f types.Facts) error { return err }).Build()
}

func TestMetrics(t *testing.T) {
	t.Run("Fire", func(t *testing.T) {
		l := listener.NewMetrics(nil)
		l.Filter = func(r types.Rule, f types.Facts) bool { return r.Name() != "skip" }
		e, err := engine.New(engine.WithRuleListener(l))
		require.Nil(t, err)
		rules := []types.Rule{
			fixed("ok", 1, true, nil),
			fixed("fail", 2, true, errBoom),
			fixed("no", 3, false, nil),
			fixed("skip", 4, true, nil),
		}
		err = e.Fire(context.Background(), rules, facts.New())
		assert.True(t, errors.Is(err, errBoom))
		assert.Equal(t, metrics.RuleMetrics{
			Evaluated: 3,
			Skipped:   1,
			Triggered: 2,
			Success:   1,
			Failed:    1,
		}, l.GetMetrics().Get())

		l.GetMetrics().Reset()
		assert.Equal(t, metrics.RuleMetrics{}, l.GetMetrics().Get())
	})

	t.Run("ConfigurationError", func(t *testing.T) {
		m := metrics.NewRuleMetrics()
		l := listener.NewMetrics(m)
		e, err := engine.New(engine.WithRuleListener(l))
		require.Nil(t, err)
		group := support.NewConditionalRuleGroup("group")
		require.Nil(t, group.AddRule(fixed("A", 1, true, nil)))
		require.Nil(t, group.AddRule(fixed("B", 1, true, nil)))
		err = e.Fire(context.Background(), []types.Rule{group}, facts.New())
		assert.True(t, types.IsConfigurationError(err))
		assert.Equal(t, int64(1), m.Get().Errors)
		assert.Equal(t, int64(0), m.Get().Triggered)
	})
}

func TestDebug(t *testing.T) {
	var buf bytes.Buffer
	d := listener.NewDebug(log.New(&buf, "", 0))
	e, err := engine.New(engine.WithRuleListener(d), engine.WithRulesEngineListener(d))
	require.Nil(t, err)
	f := facts.New()
	f.Put("temperature", 30)
	_ = e.Fire(context.Background(), []types.Rule{
		fixed("ok", 1, true, nil),
		fixed("fail", 2, true, errBoom),
		fixed("no", 3, false, nil),
	}, f)

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "["+f.Id()+"] fire 3 rules"))
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "["+f.Id()+"] fired 3 rules"))
	assert.Contains(t, out, "rule 'ok' performed successfully")
	assert.Contains(t, out, "rule 'fail' performed with error: ")
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "rule 'no' has been evaluated to false")
	assert.Contains(t, out, "temperature:30")

	t.Run("DefaultLogger", func(t *testing.T) {
		assert.NotNil(t, listener.NewDebug(nil))
	})
}
