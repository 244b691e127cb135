package satchel_test

import (
	"fmt"
	"log"
	"strings"
	"time"

	satchel "github.com/satchel-dev/satchel"
)

// ExampleNewType demonstrates declaring a type and constructing a validated
// container from it.
func ExampleNewType() {
	user := satchel.NewType("User").
		Field("email", "required", "email").
		Field("plan", "in:free,pro").
		MustBuild()

	c, err := user.Make(map[string]any{"email": "ada@example.com", "plan": "pro"})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(c.Get("email"))
	fmt.Println(c.Has("nickname"))

	// Output:
	// ada@example.com
	// false
}

// ExampleAsViolations demonstrates inspecting structured validation failures.
func ExampleAsViolations() {
	user := satchel.NewType("User").
		Field("age", "greaterThan:0").
		MustBuild()

	_, err := user.Make(map[string]any{"age": -3})
	if vs, ok := satchel.AsViolations(err); ok {
		for _, v := range vs {
			fmt.Printf("%s at /%s: %s\n", v.Rule, v.Field, v.Message)
		}
	}

	// Output:
	// greaterThan at /age: value violates rule greaterThan
}

// ExampleContainer_Get demonstrates read-time date coercion on declared date
// fields.
func ExampleContainer_Get() {
	event := satchel.NewType("Event").
		Field("starts_at", "required", "dateFormat:Y-m-d").
		Date("starts_at").
		MustBuild()

	c := event.MustMake(map[string]any{"starts_at": "2021-10-01"})
	d := c.Get("starts_at").(time.Time)
	fmt.Println(d.Format("Jan 2, 2006"))

	// Output:
	// Oct 1, 2021
}

// ExampleRegisterMacro demonstrates a process-wide dynamic method available
// on every container.
func ExampleRegisterMacro() {
	satchel.RegisterMacro("getInitials", func(c *satchel.Container, args ...any) any {
		name, _ := c.Raw("name")
		s, _ := name.(string)
		var b strings.Builder
		for _, w := range strings.Fields(s) {
			b.WriteString(strings.ToUpper(w[:1]))
		}
		return b.String()
	})

	person := satchel.NewType("Person").MustBuild()
	c := person.MustMake(map[string]any{"name": "Ada Lovelace"})

	initials, err := c.Call("getInitials")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(initials)

	// Output:
	// AL
}
