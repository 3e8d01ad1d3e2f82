package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	result := RequestID()

	assert.Equal(t, len(result), 8)
}

func TestRequestIDIsUnique(t *testing.T) {
	assert.NotEqual(t, RequestID(), RequestID())
}
