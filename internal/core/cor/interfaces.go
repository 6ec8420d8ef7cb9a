// Copyright 2024 Google, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cor implements a small chain-of-responsibility toolkit used to
// assemble ingestion pipelines. A Chain runs an ordered list of Commands
// against one shared Context, piping each command's output into the next
// command's input.
package cor

import (
	"context"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Default keys used by BaseChain to pipe one command's output into the next.
const (
	CtxIn  = "__IN__"
	CtxOut = "__OUT__"
)

// Context is the per-execution property bag shared by every command of a
// chain. It carries the request-scoped Go context, intermediate values,
// errors keyed by command name, and the temporary artifacts to remove when
// the execution ends.
type Context interface {
	SetContext(context context.Context)
	GetContext() context.Context

	Add(key string, value any) Context
	Get(key string) any
	Remove(key string)

	// AddError records the failure of the named command. The first error
	// recorded for a name wins.
	AddError(key string, err error)
	GetErrors() map[string]error
	HasErrors() bool
	// Err joins every recorded error in a stable order, or returns nil.
	Err() error

	// AddTempFile registers a path that Close removes.
	AddTempFile(file string)
	GetTempFiles() []string

	// Close removes every registered temporary file. Missing files are
	// ignored and removal failures are logged, never returned.
	Close()
}

// Executable is anything with execution logic driven by a Context.
type Executable interface {
	Execute(context Context)
}

// Command is one step of a pipeline.
type Command interface {
	Executable

	GetName() string
	GetInputParam() string
	GetOutputParam() string

	// IsExecutable reports whether the command's preconditions hold for the
	// given context. Commands that are not executable are skipped.
	IsExecutable(context Context) bool

	GetTracer() trace.Tracer
	GetMeter() metric.Meter
	GetSuccessCounter() metric.Int64Counter
	GetErrorCounter() metric.Int64Counter
}

// Chain is an ordered composite of commands. A Chain is itself a Command so
// chains can be nested.
type Chain interface {
	Command

	ContinueOnFailure(bool) Chain
	AddCommand(command Command) Chain
}
