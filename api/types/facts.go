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

package types

// Facts 事实上下文，在一次触发周期内以同一个引用传递给所有规则
// Facts is the mutable keyed context shared by every Evaluate and Execute
// call of one firing cycle.
//
// Implementations must be pointer types: composites use the Facts value as a
// map key to tie an Execute call to the Evaluate call that preceded it, and
// members rely on seeing each other's writes.
type Facts interface {
	// Id returns the identifier of this facts instance.
	Id() string
	// Put 设置事实
	Put(name string, value interface{})
	// Get 获取事实，不存在返回nil
	Get(name string) interface{}
	// Has 判断事实是否存在
	Has(name string) bool
	// Remove 删除事实
	Remove(name string)
	// AsMap 返回所有事实的副本
	// AsMap returns a snapshot copy of all facts.
	AsMap() map[string]interface{}
}
