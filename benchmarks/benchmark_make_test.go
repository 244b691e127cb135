package satchel_test

import (
	"testing"

	gojson "github.com/goccy/go-json"

	satchel "github.com/satchel-dev/satchel"
)

// ---- Helpers ----

func userType(tb testing.TB) *satchel.Type {
	tb.Helper()
	t, err := satchel.NewType("User").
		Field("email", "required", "email").
		Field("age", "int", "greaterThanEqual:0").
		Field("plan", "in:free,pro,enterprise").
		Build()
	if err != nil {
		tb.Fatalf("type build failed: %v", err)
	}
	return t
}

func userJSON() []byte {
	return []byte(`{"email":"ada@example.com","age":36,"plan":"pro"}`)
}

func userMap() map[string]any {
	return map[string]any{"email": "ada@example.com", "age": 36, "plan": "pro"}
}

// ---- Construction ----

func Benchmark_Make_Map_Small(b *testing.B) {
	ty := userType(b)
	data := userMap()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ty.Make(data); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Make_Map_Violation(b *testing.B) {
	ty := userType(b)
	data := map[string]any{"email": "not-an-email", "age": 36}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ty.Make(data); err == nil {
			b.Fatal("expected violations")
		}
	}
}

func Benchmark_MakeJSON_Small(b *testing.B) {
	ty := userType(b)
	data := userJSON()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ty.MakeJSON(data); err != nil {
			b.Fatal(err)
		}
	}
}

// Baseline: decode without any rule evaluation.
func Benchmark_DecodeOnly_Small(b *testing.B) {
	data := userJSON()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var m map[string]any
		if err := gojson.Unmarshal(data, &m); err != nil {
			b.Fatal(err)
		}
	}
}

// ---- Rule parsing ----

func Benchmark_ParseRules(b *testing.B) {
	specs := []string{"required", "email", "int", "greaterThanEqual:0", "in:free,pro,enterprise", "dateFormat:Y-m-d H:i:s"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if rules := satchel.ParseRules(specs...); len(rules) != len(specs) {
			b.Fatal("parse lost rules")
		}
	}
}
