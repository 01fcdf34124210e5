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

package js

import (
	"strings"
	"testing"
	"time"

	"github.com/rulego/rulegroup/api/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGojaJsEngine(t *testing.T) {
	config := types.NewConfig(
		types.WithProperties(map[string]interface{}{"threshold": 10}),
		types.WithUdf("double", func(v int) int { return v * 2 }),
		types.WithUdf("isBig", "function isBig(v){ return v > 100 }"),
	)
	jsScript := `
		function check(data) { return double(data.value) > global.threshold && !isBig(data.value) }
		function loop() { while (true) {} }
	`
	jsEngine, err := NewGojaJsEngine(config, jsScript, map[string]interface{}{"unit": "C"})
	require.Nil(t, err)
	assert.True(t, jsEngine.HasFunction("check"))
	assert.False(t, jsEngine.HasFunction("action"))

	out, err := jsEngine.Execute("check", map[string]interface{}{"value": 6})
	require.Nil(t, err)
	assert.Equal(t, true, out)

	out, err = jsEngine.Execute("check", map[string]interface{}{"value": 3})
	require.Nil(t, err)
	assert.Equal(t, false, out)

	_, err = jsEngine.Execute("action")
	assert.NotNil(t, err)

	t.Run("Timeout", func(t *testing.T) {
		config := types.NewConfig(types.WithScriptMaxExecutionTime(time.Millisecond * 100))
		jsEngine, err := NewGojaJsEngine(config, jsScript, nil)
		require.Nil(t, err)
		_, err = jsEngine.Execute("loop")
		require.NotNil(t, err)
		assert.True(t, strings.Contains(err.Error(), "execution timeout"))
		// the runtime is usable again once the interrupt is cleared
		out, err := jsEngine.Execute("check", map[string]interface{}{"value": 200})
		require.Nil(t, err)
		assert.Equal(t, false, out)
	})

	t.Run("SyntaxError", func(t *testing.T) {
		_, err := NewGojaJsEngine(config, "function check( {", nil)
		assert.NotNil(t, err)
	})
}
