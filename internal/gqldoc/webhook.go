// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package gqldoc

import (
	"github.com/vektah/gqlparser/v2/ast"
)

// Implicit webhook wiring for subscription operations. Subscription root
// fields that accept these arguments get them injected as variable
// references so the generated client can fill them in at call time.
const (
	WebhookURLVariable    = "netligraphWebhookUrl"
	WebhookSecretVariable = "netligraphWebhookSecret"

	webhookURLArgument    = "webhookUrl"
	webhookSecretArgument = "secret"

	webhookSecretTypeName = "OneGraphSubscriptionSecretInput"
)

// implicitArgument configures one ensure-argument pass: the argument to
// inject on subscription root fields, the variable it references and the
// declared type of that variable.
type implicitArgument struct {
	argument     string
	variable     string
	variableType func() *ast.Type
}

// PatchWebhookURL returns a definition guaranteed to pass a webhook URL
// to every subscription root field that accepts one. No-op for
// non-subscription operations and schemas without a subscription root.
// The input definition is never mutated.
func PatchWebhookURL(schema *ast.Schema, def *ast.OperationDefinition) *ast.OperationDefinition {
	return ensureSubscriptionArgument(schema, def, implicitArgument{
		argument: webhookURLArgument,
		variable: WebhookURLVariable,
		variableType: func() *ast.Type {
			return ast.NonNullNamedType("String", nil)
		},
	})
}

// PatchWebhookSecret is the webhook signing-secret counterpart of
// PatchWebhookURL.
func PatchWebhookSecret(schema *ast.Schema, def *ast.OperationDefinition) *ast.OperationDefinition {
	return ensureSubscriptionArgument(schema, def, implicitArgument{
		argument: webhookSecretArgument,
		variable: WebhookSecretVariable,
		variableType: func() *ast.Type {
			return ast.NonNullNamedType(webhookSecretTypeName, nil)
		},
	})
}

// ensureSubscriptionArgument injects imp.argument as a variable reference
// into every top-level field selection whose subscription root field
// declares it and which does not already supply it, and appends the
// matching variable declaration when at least one argument was injected
// and no variable of that name exists. Fragment selections pass through
// unpatched. Applying the pass twice is a no-op the second time.
func ensureSubscriptionArgument(schema *ast.Schema, def *ast.OperationDefinition, imp implicitArgument) *ast.OperationDefinition {
	if def == nil || def.Operation != ast.Subscription {
		return def
	}
	if schema == nil || schema.Subscription == nil {
		return def
	}

	injected := false
	selections := make(ast.SelectionSet, len(def.SelectionSet))
	for i, sel := range def.SelectionSet {
		field, ok := sel.(*ast.Field)
		if !ok {
			selections[i] = sel
			continue
		}

		rootField := schema.Subscription.Fields.ForName(field.Name)
		if rootField == nil ||
			rootField.Arguments.ForName(imp.argument) == nil ||
			field.Arguments.ForName(imp.argument) != nil {
			selections[i] = sel
			continue
		}

		patched := *field
		patched.Arguments = append(append(ast.ArgumentList{}, field.Arguments...), &ast.Argument{
			Name:  imp.argument,
			Value: &ast.Value{Raw: imp.variable, Kind: ast.Variable},
		})
		selections[i] = &patched
		injected = true
	}

	if !injected {
		return def
	}

	out := *def
	out.SelectionSet = selections
	if def.VariableDefinitions.ForName(imp.variable) == nil {
		out.VariableDefinitions = append(
			append(ast.VariableDefinitionList{}, def.VariableDefinitions...),
			&ast.VariableDefinition{Variable: imp.variable, Type: imp.variableType()},
		)
	}
	return &out
}
