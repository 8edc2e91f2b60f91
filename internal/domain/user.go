package domain

import (
	"encoding/json"
	"math"
)

// User is the persisted record. Age holds whatever the store returns for the
// column (integer, real or text) and may be nil; Role is nullable.
type User struct {
	ID       int64   `db:"id" json:"id"`
	Username string  `db:"username" json:"username"`
	Email    string  `db:"email" json:"email"`
	Age      any     `db:"age" json:"age"`
	Role     *string `db:"role" json:"role"`
}

// Field is one loosely typed body value. Set records whether the key was
// present at all, so an explicit null and an omitted key stay distinct.
type Field struct {
	Set   bool
	Value any
}

// Value returns a Field holding v as if it had been sent.
func Value(v any) Field { return Field{Set: true, Value: v} }

func (f *Field) UnmarshalJSON(b []byte) error {
	f.Set = true
	return json.Unmarshal(b, &f.Value)
}

func (f Field) MarshalJSON() ([]byte, error) { return json.Marshal(f.Value) }

// IsZero lets omitzero drop fields the caller never sent.
func (f Field) IsZero() bool { return !f.Set }

// Arg converts the value into a statement argument. Whole numbers bind as
// integers, nested objects and arrays bind as their JSON text, absent or
// null binds as NULL.
func (f Field) Arg() any {
	switch v := f.Value.(type) {
	case nil:
		return nil
	case float64:
		if v == math.Trunc(v) && math.Abs(v) < 1<<53 {
			return int64(v)
		}
		return v
	case string, bool:
		return v
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return nil
		}
		return string(b)
	}
}

// UserInput is the request body for create and update.
type UserInput struct {
	Username Field `json:"username"`
	Email    Field `json:"email"`
	Age      Field `json:"age"`
	Role     Field `json:"role"`
}

// UserEcho answers a write: the id plus the fields exactly as sent.
// Fields the caller left out are left out here too.
type UserEcho struct {
	ID       int64 `json:"id"`
	Username Field `json:"username,omitzero"`
	Email    Field `json:"email,omitzero"`
	Age      Field `json:"age,omitzero"`
	Role     Field `json:"role,omitzero"`
}

const DefaultRole = "user"
