package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIDList(t *testing.T) {
	assert.Equal(t, []int64{1, 2, 3}, parseIDList("1,2,3"))
	assert.Equal(t, []int64{42}, parseIDList(" 42 "))
	assert.Nil(t, parseIDList(""))
	assert.Equal(t, []int64{7}, parseIDList("7,,"))
}
