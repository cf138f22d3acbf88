package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransportTypeIsValid(t *testing.T) {
	for _, valid := range []TransportType{TransportBus, TransportTrain, TransportShip, TransportCar, TransportOther} {
		assert.True(t, valid.IsValid(), string(valid))
	}

	assert.False(t, TransportType("Plane").IsValid())
	assert.False(t, TransportType("").IsValid())
	assert.False(t, TransportType("bus").IsValid())
}
