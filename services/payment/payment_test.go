package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicationFee(t *testing.T) {
	assert.EqualValues(t, 0, ApplicationFee(0))
	assert.EqualValues(t, 500, ApplicationFee(10000))
	assert.EqualValues(t, 1, ApplicationFee(19))
	assert.EqualValues(t, 0, ApplicationFee(9))
}
