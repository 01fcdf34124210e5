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
	"sync/atomic"
	"testing"
	"time"

	"github.com/rulego/rulegroup/api/types"
	"github.com/rulego/rulegroup/facts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler(t *testing.T) {
	e, err := New()
	require.Nil(t, err)

	t.Run("Fire", func(t *testing.T) {
		s := NewScheduler(e, types.NewConfig())
		assert.NotEmpty(t, s.Id())
		var fired int32
		jobId, err := s.AddJob("* * * * * *", []types.Rule{fixed("tick", 1, true, nil)},
			func() types.Facts { return facts.New() },
			func(id string, f types.Facts, err error) {
				if id == "" || err != nil || !f.Has("tick") {
					return
				}
				atomic.AddInt32(&fired, 1)
			})
		require.Nil(t, err)
		assert.Equal(t, []string{jobId}, s.Jobs())
		s.Start()
		time.Sleep(time.Millisecond * 2200)
		<-s.Stop().Done()
		assert.True(t, atomic.LoadInt32(&fired) >= 1)

		_, err = s.AddJob("* * * * * *", nil, func() types.Facts { return facts.New() }, nil)
		assert.Equal(t, types.ErrSchedulerStopped, err)
	})

	t.Run("InvalidJob", func(t *testing.T) {
		s := NewScheduler(e, types.NewConfig())
		_, err := s.AddJob("not a spec", nil, func() types.Facts { return facts.New() }, nil)
		assert.NotNil(t, err)
		_, err = s.AddJob("* * * * * *", nil, nil, nil)
		assert.NotNil(t, err)
		assert.Empty(t, s.Jobs())
	})

	t.Run("RemoveJob", func(t *testing.T) {
		s := NewScheduler(e, types.NewConfig())
		jobId, err := s.AddJob("0 0 * * * *", nil, func() types.Facts { return facts.New() }, nil)
		require.Nil(t, err)
		s.RemoveJob(jobId)
		s.RemoveJob("unknown")
		assert.Empty(t, s.Jobs())
	})

	t.Run("SupplierPanic", func(t *testing.T) {
		s := NewScheduler(e, types.NewConfig())
		var failed int32
		_, err := s.AddJob("* * * * * *", nil, func() types.Facts { panic("no facts") },
			func(id string, f types.Facts, err error) {
				if err != nil {
					atomic.AddInt32(&failed, 1)
				}
			})
		require.Nil(t, err)
		s.Start()
		time.Sleep(time.Millisecond * 2200)
		<-s.Stop().Done()
		assert.True(t, atomic.LoadInt32(&failed) >= 1)
	})
}
