// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package wit

// ErrorTypeName is the name of the shared failure type of every operation.
const ErrorTypeName = "error"

const errorModel = `variant error {
    validation-error(record {
        message: string,
        details: list<record {
            field: string,
            message: string,
        }>,
    }),
    unauthorized(string),
    forbidden(string),
    not-found(string),
    rate-limit-exceeded(string),
    internal-error(string),
}`

// ErrorModel returns the error variant declaration.
func ErrorModel() string {
	return errorModel
}

// ResultType wraps a return type in the fallible result shape.
func ResultType(returnType string) string {
	return "expected<" + returnType + ", " + ErrorTypeName + ">"
}
