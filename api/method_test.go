package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParametersPreserveInsertionOrder(t *testing.T) {
	var params Parameters
	params.Add("id", "25")
	params.Add("name", "JuneReport")
	params.Add("max", 42)

	list := params.List()
	assert.Len(t, list, 3)
	assert.Equal(t, "id", list[0].Name)
	assert.Equal(t, "name", list[1].Name)
	assert.Equal(t, "max", list[2].Name)
}

func TestParametersAllowDuplicateNames(t *testing.T) {
	var params Parameters
	params.Add("field", "a")
	params.Add("field", "b")

	list := params.List()
	assert.Len(t, list, 2)
	assert.Equal(t, "a", list[0].Value)
	assert.Equal(t, "b", list[1].Value)
}

func TestParametersIsEmpty(t *testing.T) {
	var params Parameters
	assert.True(t, params.IsEmpty())

	params.Add("excludeSystem", true)
	assert.False(t, params.IsEmpty())
}

func TestParametersString(t *testing.T) {
	var params Parameters
	params.Add("id", 25)
	params.Add("name", "JuneReport")

	assert.Equal(t, "Parameters[id=25, name=JuneReport]", params.String())
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{name: "string", value: "simple", expected: "simple"},
		{name: "bool true", value: true, expected: "true"},
		{name: "bool false", value: false, expected: "false"},
		{name: "int", value: 42, expected: "42"},
		{name: "int64", value: int64(-7), expected: "-7"},
		{name: "uint64", value: uint64(8529), expected: "8529"},
		{name: "float", value: 1.5, expected: "1.5"},
		{name: "string slice", value: []string{"a", "b", "c"}, expected: "[a,b,c]"},
		{name: "int slice", value: []int{1, 2, 3}, expected: "[1,2,3]"},
		{name: "bool slice", value: []bool{true, false}, expected: "[true,false]"},
		{name: "empty slice", value: []string{}, expected: "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatValue(tt.value))
		})
	}
}

func TestOperationString(t *testing.T) {
	assert.Equal(t, "Create", OperationCreate.String())
	assert.Equal(t, "Read", OperationRead.String())
	assert.Equal(t, "Modify", OperationModify.String())
	assert.Equal(t, "Replace", OperationReplace.String())
	assert.Equal(t, "Delete", OperationDelete.String())
	assert.Equal(t, "ReadHeader", OperationReadHeader.String())
}
