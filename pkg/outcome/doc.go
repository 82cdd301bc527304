/*
Package outcome defines the result algebra for use case executions.

Every execution yields exactly one Outcome, a closed union of four variants:
Neutral (never executed), Success, Failed (validation), and
PreConditionFailed. Callers branch on the variant declaratively through the
OnSuccess, OnFailure, and OnPreConditionFailed accessors; exactly one handler
fires per outcome.

Precondition failures additionally support symbolic dispatch: each failure
cause carries a tag (explicit via ports.Tagger, or derived from the cause's
type name in snake_case), and the Failure view offers When/Otherwise matching
over it without referencing concrete types.
*/
package outcome
