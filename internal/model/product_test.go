package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandle(t *testing.T) {
	assert.Equal(t, "brightsign-hd226", Handle("HD226"))
	assert.Equal(t, "brightsign-xt1145", Handle("XT1145"))
	assert.Equal(t, "brightsign-hd226", Handle("hd226"), "already lowercase stays stable")
}
