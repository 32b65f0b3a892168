package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The envelope JSON shape is a frozen contract: callers branch on success and
// display error verbatim, and absent fields marshal as null.

func TestEnvelope_SuccessJSON(t *testing.T) {
	env := OK(User{ID: 1, Name: "Ann", Email: "ann@x.com", Role: "Viewer", Status: StatusActive})
	raw, err := json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"success":true,"data":{"id":1,"name":"Ann","email":"ann@x.com","role":"Viewer","status":"Active"},"error":null}`,
		string(raw))
}

func TestEnvelope_FailureJSON(t *testing.T) {
	env := Fail[User]("A user with this name and email already exists")
	raw, err := json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"success":false,"data":null,"error":"A user with this name and email already exists"}`,
		string(raw))
}

func TestEnvelope_DeletedJSON(t *testing.T) {
	raw, err := json.Marshal(OK(Deleted{DeletedID: 42}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"data":{"deletedId":42},"error":null}`, string(raw))
}
