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

import (
	"time"
)

// Configuration 规则定义配置，通过mapstructure解码到具体的规则定义结构体
// Configuration holds a rule definition in key-value form.
type Configuration map[string]interface{}

// Config 规则运行配置
// Config carries the ambient settings shared by script rules, composite
// rules and engines.
type Config struct {
	// ScriptMaxExecutionTime is the maximum execution time for scripts, defaulting to 2000 milliseconds.
	ScriptMaxExecutionTime time.Duration
	// Logger is the logging interface, defaulting to `DefaultLogger()`.
	Logger Logger
	// Properties are global read-only properties, exposed to expression and
	// script rules through the `global` variable.
	Properties map[string]interface{}
	// Udf is a map for registering custom Golang functions that can be called
	// from expression and JavaScript rule bodies.
	Udf map[string]interface{}
	// Adapter converts candidates added to composite rules. Nil means the
	// default adapter of the adapter package.
	Adapter Adapter
}

// RegisterUdf registers a custom function.
func (c *Config) RegisterUdf(name string, value interface{}) {
	if c.Udf == nil {
		c.Udf = make(map[string]interface{})
	}
	c.Udf[name] = value
}

// Printf logs through the configured logger, if any.
func (c Config) Printf(format string, v ...interface{}) {
	if c.Logger != nil {
		c.Logger.Printf(format, v...)
	}
}

// NewConfig creates a new Config with default values and applies the provided options.
func NewConfig(opts ...Option) Config {
	c := &Config{
		ScriptMaxExecutionTime: time.Millisecond * 2000,
		Logger:                 DefaultLogger(),
		Properties:             make(map[string]interface{}),
	}

	for _, opt := range opts {
		_ = opt(c)
	}
	return *c
}
