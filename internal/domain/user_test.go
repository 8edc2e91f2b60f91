package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserInputKeepsPresence(t *testing.T) {
	var in UserInput
	require.NoError(t, json.Unmarshal([]byte(`{"username":"a","age":null,"role":7}`), &in))

	require.True(t, in.Username.Set)
	require.Equal(t, "a", in.Username.Value)
	require.True(t, in.Age.Set)
	require.Nil(t, in.Age.Value)
	require.False(t, in.Email.Set)
	require.Equal(t, float64(7), in.Role.Value)
}

func TestUserEchoOmitsUnsentFields(t *testing.T) {
	echo := UserEcho{ID: 3, Username: Value("a"), Age: Value(nil)}
	b, err := json.Marshal(echo)
	require.NoError(t, err)
	require.JSONEq(t, `{"id":3,"username":"a","age":null}`, string(b))
}

func TestFieldArg(t *testing.T) {
	require.Nil(t, Field{}.Arg())
	require.Nil(t, Value(nil).Arg())
	require.Equal(t, int64(25), Value(float64(25)).Arg())
	require.Equal(t, 2.5, Value(2.5).Arg())
	require.Equal(t, "25", Value("25").Arg())
	require.Equal(t, true, Value(true).Arg())
	require.Equal(t, `{"k":1}`, Value(map[string]any{"k": float64(1)}).Arg())
	require.Equal(t, `[1,"x"]`, Value([]any{float64(1), "x"}).Arg())
}
