// Copyright 2024 Google, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cor implements a small chain-of-responsibility engine. A workflow
// is a Chain of Commands that share a Context: each command reads its input
// from the context, does one unit of work, and writes its output back. The
// chain pipes the previous command's output into the next command's input
// and stops at the first recorded error.
package cor

import (
	"context"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	// CtxIn is the default key for the primary input of a command. The chain
	// populates it with the output of the previous command.
	CtxIn = "__IN__"
	// CtxOut is the default key where a command places its primary output.
	CtxOut = "__OUT__"
)

// Context is the shared state of one workflow execution.
type Context interface {
	// SetContext sets the standard Go context carrying cancellation and
	// trace information for the currently executing command.
	SetContext(context context.Context)

	// GetContext retrieves the standard Go context.
	GetContext() context.Context

	// Add stores a key-value pair. Returns the Context for chaining.
	Add(key string, value interface{}) Context

	// AddError records an error produced by a command. The key should be the
	// name of the command that produced it.
	AddError(key string, err error)

	// GetErrors returns all errors collected during the workflow.
	GetErrors() map[string]error

	// Get retrieves a value by key, or nil.
	Get(key string) interface{}

	// Remove deletes a key-value pair.
	Remove(key string)

	// HasErrors reports whether any command has recorded an error.
	HasErrors() bool
}

// Executable is anything that can run against a workflow context.
type Executable interface {
	Execute(context Context)
}

// Command is a single named unit of work in a chain.
type Command interface {
	Executable

	// GetName returns the unique name of the command, used for logging and
	// telemetry.
	GetName() string

	// GetInputParam returns the context key the command reads its primary
	// input from.
	GetInputParam() string

	// GetOutputParam returns the context key the command writes its primary
	// output to.
	GetOutputParam() string

	// IsExecutable reports whether the command can run with the current
	// state of the context. Commands that are not executable are skipped.
	IsExecutable(context Context) bool

	// GetTracer returns the OpenTelemetry tracer for this command.
	GetTracer() trace.Tracer

	// GetMeter returns the OpenTelemetry meter for creating metrics.
	GetMeter() metric.Meter

	// GetSuccessCounter returns the counter incremented on success.
	GetSuccessCounter() metric.Int64Counter

	// GetErrorCounter returns the counter incremented on failure.
	GetErrorCounter() metric.Int64Counter
}

// Chain is an ordered sequence of commands that is itself a Command.
type Chain interface {
	Command

	// ContinueOnFailure configures whether the chain keeps executing after a
	// command records an error.
	ContinueOnFailure(bool) Chain

	// AddCommand appends a command to the execution sequence.
	AddCommand(command Command) Chain
}
