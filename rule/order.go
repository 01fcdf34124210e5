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

package rule

import (
	"sort"
	"strings"

	"github.com/rulego/rulegroup/api/types"
)

// Compare 比较两个规则的顺序：先比较优先级（数值小的在前），再比较名称
// Compare orders rules by priority ascending, then by name ascending.
// It returns -1, 0 or +1.
func Compare(a, b types.Rule) int {
	if a.Priority() < b.Priority() {
		return -1
	} else if a.Priority() > b.Priority() {
		return 1
	}
	return strings.Compare(a.Name(), b.Name())
}

// Less reports whether a fires before b.
func Less(a, b types.Rule) bool {
	return Compare(a, b) < 0
}

// Sort sorts rules in firing order. Rules of equal rank keep their relative order.
func Sort(rules []types.Rule) {
	sort.SliceStable(rules, func(i, j int) bool {
		return Less(rules[i], rules[j])
	})
}

// Sorted returns a sorted copy of rules.
func Sorted(rules []types.Rule) []types.Rule {
	cp := make([]types.Rule, len(rules))
	copy(cp, rules)
	Sort(cp)
	return cp
}

type entry struct {
	key  interface{}
	rule types.Rule
	seq  uint64
}

func (e *entry) before(o *entry) bool {
	if c := Compare(e.rule, o.rule); c != 0 {
		return c < 0
	}
	return e.seq < o.seq
}

// Set 按顺序保存成员规则的集合，成员身份由key决定，而不是由优先级和名称决定
// Set is an ordered rule collection whose membership is decided by an identity
// key rather than by rank. Two rules that tie on priority and name are both
// kept and fire in insertion order.
//
// Keys must be comparable. Set is not safe for concurrent mutation.
type Set struct {
	entries []*entry
	index   map[interface{}]*entry
	seq     uint64
}

// NewSet creates an empty Set.
func NewSet() *Set {
	return &Set{index: make(map[interface{}]*entry)}
}

// Add inserts rule under key. If key is already present its rule is replaced
// and Add returns false.
func (s *Set) Add(key interface{}, rule types.Rule) bool {
	if old, ok := s.index[key]; ok {
		s.removeEntry(old)
		e := &entry{key: key, rule: rule, seq: old.seq}
		s.insert(e)
		return false
	}
	s.seq++
	s.insert(&entry{key: key, rule: rule, seq: s.seq})
	return true
}

// Remove deletes the rule stored under key and reports whether it was present.
func (s *Set) Remove(key interface{}) bool {
	e, ok := s.index[key]
	if !ok {
		return false
	}
	s.removeEntry(e)
	return true
}

// Lookup returns the rule stored under key.
func (s *Set) Lookup(key interface{}) (types.Rule, bool) {
	if e, ok := s.index[key]; ok {
		return e.rule, true
	}
	return nil, false
}

// Len returns the number of members.
func (s *Set) Len() int {
	return len(s.entries)
}

// Rules returns the members in firing order.
func (s *Set) Rules() []types.Rule {
	rules := make([]types.Rule, len(s.entries))
	for i, e := range s.entries {
		rules[i] = e.rule
	}
	return rules
}

// Highest 返回优先级最高（数值最小）的所有规则
// Highest returns every member holding the minimal priority value.
func (s *Set) Highest() []types.Rule {
	if len(s.entries) == 0 {
		return nil
	}
	var rules []types.Rule
	p := s.entries[0].rule.Priority()
	for _, e := range s.entries {
		if e.rule.Priority() != p {
			break
		}
		rules = append(rules, e.rule)
	}
	return rules
}

func (s *Set) insert(e *entry) {
	i := sort.Search(len(s.entries), func(i int) bool {
		return e.before(s.entries[i])
	})
	s.entries = append(s.entries, nil)
	copy(s.entries[i+1:], s.entries[i:])
	s.entries[i] = e
	s.index[e.key] = e
}

func (s *Set) removeEntry(e *entry) {
	for i, item := range s.entries {
		if item == e {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			break
		}
	}
	delete(s.index, e.key)
}
