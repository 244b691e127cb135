package satchel

// Package satchel provides:
//
// - Schema-validated dynamic property containers (Type/Container, Make/Fill/Merge)
// - A rule mini-language ("required", "in:a,b", "dateFormat:Y-m-d") with an extensible registry
// - Read resolution through computed accessors and process-wide macros before stored values
// - A stable error model via Violations (field, rule, code, message)
//
// Design policy:
// - Keep only public APIs in the root package; put name normalization under internal/.
// - Place date-format handling under codec/, messages under i18n/, schema files under schemafile/,
//   and the CLI under cmd/satchel.
// - Registries carry no internal locking; register rules and macros before use.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	user := satchel.NewType("User").
//		Field("email", "required", "email").
//		Field("age", "nullable", "int", "greaterThanEqual:0").
//		Date("joined_at").
//		MustBuild()
//
//	c, err := user.Make(map[string]any{"email": "ada@example.com", "joined_at": "2021-10-01"})
//	joined := c.Get("joined_at") // time.Time
