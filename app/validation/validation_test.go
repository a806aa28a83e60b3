package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVar(t *testing.T) {
	assert.NoError(t, Var("head@school.ug", "required,email"))
	assert.Error(t, Var("not-an-email", "required,email"))
	assert.Error(t, Var("", "required"))
	assert.NoError(t, Var(5, "min=1,max=12"))
	assert.Error(t, Var(13, "min=1,max=12"))
	assert.NoError(t, Var("present", "oneof=present absent late excused"))
	assert.Error(t, Var("holiday", "oneof=present absent late excused"))
}

func TestStructAndMessage(t *testing.T) {
	type form struct {
		Name  string `validate:"required"`
		Email string `validate:"required,email"`
	}

	assert.NoError(t, Struct(form{Name: "Jane", Email: "jane@school.ug"}))

	err := Struct(form{})
	assert.Error(t, err)

	msg := Message(err)
	assert.Contains(t, msg, "Name is required")
	assert.Contains(t, msg, "Email is required")
}

func TestMessageNil(t *testing.T) {
	assert.Equal(t, "", Message(nil))
}
