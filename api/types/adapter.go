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

// Adapter 把外部对象适配为规则
// Adapter turns an externally typed candidate into a Rule. Composite rules call
// it exactly once per AddRule and store the result.
type Adapter interface {
	Adapt(candidate interface{}) (Rule, error)
}

// AdapterFunc adapts a function to the Adapter interface.
type AdapterFunc func(candidate interface{}) (Rule, error)

func (f AdapterFunc) Adapt(candidate interface{}) (Rule, error) {
	return f(candidate)
}
