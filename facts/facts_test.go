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

package facts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacts(t *testing.T) {
	t.Run("PutGetRemove", func(t *testing.T) {
		f := New()
		assert.NotEmpty(t, f.Id())
		f.Put("temperature", 60)
		assert.True(t, f.Has("temperature"))
		assert.Equal(t, 60, f.Get("temperature"))

		f.Put("temperature", 70)
		assert.Equal(t, 70, f.Get("temperature"))
		assert.Equal(t, 1, f.Len())

		f.Remove("temperature")
		assert.False(t, f.Has("temperature"))
		assert.Nil(t, f.Get("temperature"))
		f.Remove("notExist")
	})

	t.Run("FromMap", func(t *testing.T) {
		f := FromMap(map[string]interface{}{"a": 1, "b": "x"})
		assert.Equal(t, map[string]interface{}{"a": 1, "b": "x"}, f.AsMap())
		assert.Equal(t, "[{name=a, value=1}, {name=b, value=x}]", f.String())
	})

	t.Run("DistinctIds", func(t *testing.T) {
		assert.NotEqual(t, New().Id(), New().Id())
	})

	t.Run("TTL", func(t *testing.T) {
		f := New()
		require.Nil(t, f.PutWithTTL("short", "v", "20ms"))
		require.Nil(t, f.PutWithTTL("forever", "v", ""))
		assert.True(t, f.Has("short"))
		time.Sleep(time.Millisecond * 50)
		assert.False(t, f.Has("short"))
		assert.Nil(t, f.Get("short"))
		assert.True(t, f.Has("forever"))
		assert.Equal(t, map[string]interface{}{"forever": "v"}, f.AsMap())
		assert.Equal(t, 1, f.DeleteExpired())
		assert.Equal(t, 0, f.DeleteExpired())
	})

	t.Run("InvalidTTL", func(t *testing.T) {
		f := New()
		assert.NotNil(t, f.PutWithTTL("k", "v", "abc"))
		assert.False(t, f.Has("k"))
	})
}
