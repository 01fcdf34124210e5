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

// Package facts provides the default Facts implementation: a keyed,
// mutex-guarded store with optional per-fact expiration.
//
// One Facts value is shared by reference through a whole firing cycle, so
// rules fired later in the cycle see the writes of rules fired earlier.
package facts

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/rulego/rulegroup/api/types"
)

var _ types.Facts = (*Facts)(nil)

// item represents a fact with its value and expiration time.
// The expiration time is stored as Unix nano timestamp (int64).
// If expiration is 0, the fact never expires.
type item struct {
	value      interface{}
	expiration int64
}

func (it item) expired(now int64) bool {
	return it.expiration > 0 && now > it.expiration
}

// Facts 事实集合
type Facts struct {
	id    string
	items map[string]item
	mu    sync.RWMutex
}

// New creates an empty Facts with a random id.
func New() *Facts {
	uuId, _ := uuid.NewV4()
	return &Facts{
		id:    uuId.String(),
		items: make(map[string]item),
	}
}

// FromMap creates Facts seeded with the given values.
func FromMap(values map[string]interface{}) *Facts {
	f := New()
	for k, v := range values {
		f.items[k] = item{value: v}
	}
	return f
}

func (f *Facts) Id() string {
	return f.id
}

// Put stores a fact that never expires. An existing fact with the same name is replaced.
func (f *Facts) Put(name string, value interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[name] = item{value: value}
}

// PutWithTTL stores a fact that expires after ttl.
// Parameters:
//   - name: fact name
//   - value: fact value
//   - ttl: time-to-live as string (e.g. "10m", "1h"); empty or zero means no expiration
//
// Returns:
//   - error if ttl parsing fails
func (f *Facts) PutWithTTL(name string, value interface{}, ttl string) error {
	var expiration int64
	if ttl != "" {
		dur, err := time.ParseDuration(ttl)
		if err != nil {
			return err
		}
		if dur > 0 {
			expiration = time.Now().Add(dur).UnixNano()
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[name] = item{value: value, expiration: expiration}
	return nil
}

// Get returns the fact value, or nil if the fact is absent or expired.
func (f *Facts) Get(name string) interface{} {
	f.mu.RLock()
	defer f.mu.RUnlock()
	it, found := f.items[name]
	if !found || it.expired(time.Now().UnixNano()) {
		return nil
	}
	return it.value
}

func (f *Facts) Has(name string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	it, found := f.items[name]
	return found && !it.expired(time.Now().UnixNano())
}

func (f *Facts) Remove(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, name)
}

// AsMap returns a copy of every live fact.
func (f *Facts) AsMap() map[string]interface{} {
	f.mu.RLock()
	defer f.mu.RUnlock()
	now := time.Now().UnixNano()
	result := make(map[string]interface{}, len(f.items))
	for k, v := range f.items {
		if !v.expired(now) {
			result[k] = v.value
		}
	}
	return result
}

// Len returns the number of live facts.
func (f *Facts) Len() int {
	return len(f.AsMap())
}

// DeleteExpired removes expired facts and returns how many were removed.
// Expired facts are already invisible to readers; this only reclaims memory.
func (f *Facts) DeleteExpired() int {
	now := time.Now().UnixNano()
	f.mu.Lock()
	defer f.mu.Unlock()
	removed := 0
	for k, v := range f.items {
		if v.expired(now) {
			delete(f.items, k)
			removed++
		}
	}
	return removed
}

// String renders the live facts sorted by name.
func (f *Facts) String() string {
	values := f.AsMap()
	names := make([]string, 0, len(values))
	for k := range values {
		names = append(names, k)
	}
	sort.Strings(names)
	var b strings.Builder
	b.WriteString("[")
	for i, k := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprintf("{name=%s, value=%v}", k, values[k]))
	}
	b.WriteString("]")
	return b.String()
}
