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
	"sync"

	"github.com/gofrs/uuid/v5"
	"github.com/robfig/cron/v3"
	"github.com/rulego/rulegroup/api/types"
)

// FactsSupplier provides the facts of one scheduled firing.
type FactsSupplier func() types.Facts

// OnFired is called after each scheduled firing.
type OnFired func(jobId string, facts types.Facts, err error)

// Scheduler 定时触发规则集
// Scheduler fires rule sets on cron schedules. Specs use six fields, seconds first:
//
//	"*/5 * * * * *"  every 5 seconds
//	"0 0 * * * *"    every hour
//
// Each job gets fresh facts from its supplier, so concurrent firings never
// share a firing cycle.
type Scheduler struct {
	id     string
	engine RulesEngine
	config types.Config
	cron   *cron.Cron

	mu      sync.Mutex
	entries map[string]cron.EntryID
	stopped bool
}

// NewScheduler creates a Scheduler firing through engine.
func NewScheduler(engine RulesEngine, config types.Config) *Scheduler {
	uuId, _ := uuid.NewV4()
	return &Scheduler{
		id:      uuId.String(),
		engine:  engine,
		config:  config,
		cron:    cron.New(cron.WithSeconds()),
		entries: make(map[string]cron.EntryID),
	}
}

func (s *Scheduler) Id() string {
	return s.id
}

// AddJob 添加定时任务，返回任务ID，用于清除任务
// AddJob schedules rules to fire on spec. onFired may be nil.
func (s *Scheduler) AddJob(spec string, rules []types.Rule, supplier FactsSupplier, onFired OnFired) (string, error) {
	if supplier == nil {
		return "", errors.New("facts supplier can not be nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return "", types.ErrSchedulerStopped
	}
	uuId, _ := uuid.NewV4()
	jobId := uuId.String()
	snapshot := make([]types.Rule, len(rules))
	copy(snapshot, rules)
	entryId, err := s.cron.AddFunc(spec, func() {
		s.handler(jobId, snapshot, supplier, onFired)
	})
	if err != nil {
		return "", fmt.Errorf("invalid cron spec %q: %w", spec, err)
	}
	s.entries[jobId] = entryId
	return jobId, nil
}

// RemoveJob removes a job. Unknown ids are ignored.
func (s *Scheduler) RemoveJob(jobId string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entryId, ok := s.entries[jobId]; ok {
		s.cron.Remove(entryId)
		delete(s.entries, jobId)
	}
}

// Jobs returns the ids of the scheduled jobs.
func (s *Scheduler) Jobs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.entries))
	for id := range s.entries {
		ids = append(ids, id)
	}
	return ids
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops scheduling and returns a context done when running firings have completed.
func (s *Scheduler) Stop() context.Context {
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()
	return s.cron.Stop()
}

// handler 处理定时任务
func (s *Scheduler) handler(jobId string, rules []types.Rule, supplier FactsSupplier, onFired OnFired) {
	var facts types.Facts
	defer func() {
		//捕捉异常
		if e := recover(); e != nil {
			s.config.Printf("schedule job %s panic: %v", jobId, e)
			if onFired != nil {
				onFired(jobId, facts, fmt.Errorf("%v", e))
			}
		}
	}()
	facts = supplier()
	err := s.engine.Fire(context.Background(), rules, facts)
	if err != nil {
		s.config.Printf("schedule job %s fired with error: %v", jobId, err)
	}
	if onFired != nil {
		onFired(jobId, facts, err)
	}
}
