// Package core defines the shared language of the sqlforge system.
//
// This package contains:
//   - Dialect rule data (DialectConfig, IdentifierConfig, LiteralConfig)
//   - Closed vocabularies (Operator, SetOperator, JoinType, Connector, ...)
//   - The SelectDocument produced by the statement builder
//   - Error kinds shared by the preparer, builder, tokenizer and adapters
//   - Adapter configuration types
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
