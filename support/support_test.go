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
	"sync"

	"github.com/rulego/rulegroup/api/types"
)

var errBoom = errors.New("boom")

// recorder collects the calls made on probes, in order.
type recorder struct {
	mu     sync.Mutex
	events []string
}

func (r *recorder) add(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recorder) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

func (r *recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

// stub is a rule with a fixed outcome that records its calls.
type stub struct {
	name     string
	priority int
	result   bool
	err      error
	rec      *recorder
}

func newStub(rec *recorder, name string, priority int, result bool) *stub {
	return &stub{name: name, priority: priority, result: result, rec: rec}
}

func (s *stub) failing(err error) *stub {
	s.err = err
	return s
}

func (s *stub) Name() string {
	return s.name
}

func (s *stub) Description() string {
	return "stub " + s.name
}

func (s *stub) Priority() int {
	return s.priority
}

func (s *stub) Evaluate(facts types.Facts) bool {
	s.rec.add(s.name + ".evaluate")
	return s.result
}

func (s *stub) Execute(facts types.Facts) error {
	s.rec.add(s.name + ".execute")
	return s.err
}

func ruleNames(rules []types.Rule) []string {
	var names []string
	for _, r := range rules {
		names = append(names, r.Name())
	}
	return names
}
