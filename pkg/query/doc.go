// Package query provides the SELECT statement builder.
//
// A Select accumulates prepared fragments into a core.SelectDocument,
// validating every identifier, value and vocabulary token against its
// dialect as it is added. Violations are reported by the call that causes
// them; rendering never fails.
//
//	s := query.New(postgres.Postgres)
//	_ = s.Column("id", "")
//	_ = s.From("users", "")
//	_ = s.Where("age", ">=", 18)
//	_ = s.OrderBy("id", "ASC", "")
//	s.Limit(10)
//	s.Statement(true) // SELECT "id" FROM "users" WHERE "age" >= 18 ORDER BY "id" ASC LIMIT 10;
//
// A Select is not safe for concurrent use.
package query
