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

package maps

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type definition struct {
	Name     string
	Priority int
	Actions  []string
	Timeout  time.Duration
}

func TestMap2Struct(t *testing.T) {
	m := map[string]interface{}{
		"name":     "alarm",
		"priority": "3",
		"actions":  []string{"a", "b"},
		"timeout":  "5s",
	}
	var d definition
	err := Map2Struct(m, &d)
	assert.Nil(t, err)
	assert.Equal(t, "alarm", d.Name)
	assert.Equal(t, 3, d.Priority)
	assert.Equal(t, []string{"a", "b"}, d.Actions)
	assert.Equal(t, time.Second*5, d.Timeout)

	d = definition{Priority: 7}
	assert.Nil(t, Map2Struct(map[string]interface{}{"name": "x"}, &d))
	assert.Equal(t, 7, d.Priority)

	assert.NotNil(t, Map2Struct(map[string]interface{}{"priority": "abc"}, &d))
}
