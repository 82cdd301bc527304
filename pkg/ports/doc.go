/*
Package ports defines the capability contracts consumed by the use case engine.

These interfaces decouple the executor from concrete business logic, allowing
preconditions, builders, validators, and commands to be supplied by the host
application in whatever form is convenient (structs or bare functions).

# Key Interfaces

  - Precondition: A system-level gate check evaluated before any step runs.
  - Builder: A transformation applied to input before validation and execution.
  - Command: A unit of business logic executed inside a step.
  - Validator: A field-level check producing a ValidationResult.
  - InputAdapter: Coerces raw key-value input into a typed object.
  - Journal: Persists a record of each execution for auditing.
*/
package ports
