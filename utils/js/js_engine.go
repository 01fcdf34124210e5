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

// Package js runs JavaScript rule bodies with the goja engine.
//
// A GojaJsEngine compiles one script once and keeps a pool of goja runtimes
// that already ran it, so named functions declared by the script can be called
// repeatedly. Every call is bounded by Config.ScriptMaxExecutionTime.
// Functions registered through Config.Udf and Config.Properties (as `global`)
// are visible to the script.
package js

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dop251/goja"
	"github.com/rulego/rulegroup/api/types"
)

// GojaJsEngine goja js engine
type GojaJsEngine struct {
	vmPool   sync.Pool
	config   types.Config
	jsScript *goja.Program
}

// NewGojaJsEngine compiles jsScript and prepares the runtime pool.
// vars are set as global variables in every runtime.
func NewGojaJsEngine(config types.Config, jsScript string, vars map[string]interface{}) (*GojaJsEngine, error) {
	program, err := goja.Compile("", jsScript, true)
	if err != nil {
		return nil, err
	}
	jsEngine := &GojaJsEngine{
		config:   config,
		jsScript: program,
	}
	// Run once eagerly so that script errors surface at construction time.
	vm, err := jsEngine.newVm(vars)
	if err != nil {
		return nil, err
	}
	jsEngine.vmPool.Put(vm)
	jsEngine.vmPool.New = func() interface{} {
		vm, err := jsEngine.newVm(vars)
		if err != nil {
			config.Printf("js vm error: %s", err.Error())
		}
		return vm
	}
	return jsEngine, nil
}

func (g *GojaJsEngine) newVm(vars map[string]interface{}) (*goja.Runtime, error) {
	vm := goja.New()
	for k, v := range vars {
		if err := vm.Set(k, v); err != nil {
			return nil, fmt.Errorf("set variable %s error: %w", k, err)
		}
	}
	if len(g.config.Properties) != 0 {
		if err := vm.Set(types.Global, g.config.Properties); err != nil {
			return nil, fmt.Errorf("set global properties error: %w", err)
		}
	}
	for k, v := range g.config.Udf {
		var err error
		if jsFuncStr, ok := v.(string); ok {
			_, err = vm.RunString(jsFuncStr)
		} else {
			err = vm.Set(k, v)
		}
		if err != nil {
			return nil, fmt.Errorf("parse js udf=%s error: %w", k, err)
		}
	}

	timer := g.startTimeout(vm)
	_, err := vm.RunProgram(g.jsScript)
	g.stopTimeout(vm, timer)
	if err != nil {
		return nil, err
	}
	return vm, nil
}

// Execute calls the script function functionName with argumentList and returns
// its exported result. Panics raised by the script or by Go values it calls
// are returned as errors.
func (g *GojaJsEngine) Execute(functionName string, argumentList ...interface{}) (out interface{}, err error) {
	defer func() {
		if caught := recover(); caught != nil {
			err = fmt.Errorf("%s", caught)
		}
	}()

	vm, ok := g.vmPool.Get().(*goja.Runtime)
	if !ok || vm == nil {
		return nil, errors.New("js vm is not available")
	}
	defer g.vmPool.Put(vm)

	timer := g.startTimeout(vm)
	defer g.stopTimeout(vm, timer)

	f, ok := goja.AssertFunction(vm.Get(functionName))
	if !ok {
		return nil, errors.New(functionName + " is not a function")
	}

	var params []goja.Value
	if len(argumentList) > 0 {
		params = make([]goja.Value, len(argumentList))
		for i, v := range argumentList {
			params[i] = vm.ToValue(v)
		}
	}

	res, err := f(goja.Undefined(), params...)
	if err != nil {
		return nil, err
	}
	return res.Export(), nil
}

// HasFunction reports whether the script declares a function named functionName.
func (g *GojaJsEngine) HasFunction(functionName string) bool {
	vm, ok := g.vmPool.Get().(*goja.Runtime)
	if !ok || vm == nil {
		return false
	}
	defer g.vmPool.Put(vm)
	_, ok = goja.AssertFunction(vm.Get(functionName))
	return ok
}

// startTimeout returns nil if no timeout is configured.
func (g *GojaJsEngine) startTimeout(vm *goja.Runtime) *time.Timer {
	if g.config.ScriptMaxExecutionTime <= 0 {
		return nil
	}
	return time.AfterFunc(g.config.ScriptMaxExecutionTime, func() {
		vm.Interrupt("execution timeout")
	})
}

// stopTimeout stops the timer and clears a pending interrupt so the runtime
// can go back to the pool.
func (g *GojaJsEngine) stopTimeout(vm *goja.Runtime, timer *time.Timer) {
	if timer != nil {
		timer.Stop()
	}
	vm.ClearInterrupt()
}
