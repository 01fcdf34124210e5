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

// Package runtime provides stack trace helpers used when a rule condition or
// action panics and the panic is recovered.
package runtime

import (
	"fmt"
	"runtime"
	"strings"
)

const maxDepth = 20

// Stack 获取调用者的堆栈信息
// Stack returns the stack of the caller, one frame per line, skipping the
// runtime frames of Stack itself.
func Stack() string {
	return StackSkip(1)
}

// StackSkip returns the stack starting skip frames above the caller.
func StackSkip(skip int) string {
	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+2, pc)
	frames := runtime.CallersFrames(pc[:n])

	var build strings.Builder
	for {
		frame, more := frames.Next()
		build.WriteString(fmt.Sprintf(" %s:%d %s\n", frame.File, frame.Line, frame.Function))
		if !more {
			break
		}
	}
	return build.String()
}
