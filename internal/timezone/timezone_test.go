package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("America/Sao_Paulo"))
	assert.True(t, IsValid("UTC"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Not/AZone"))
}

func TestResolve(t *testing.T) {
	loc, err := Resolve("America/New_York")
	assert.NoError(t, err)
	assert.Equal(t, "America/New_York", loc.String())

	_, err = Resolve("Not/AZone")
	assert.Error(t, err)
}

func TestLocation_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("").String())
	assert.Equal(t, DefaultTimezone, Location("Not/AZone").String())
	assert.Equal(t, "America/Bahia", Location("America/Bahia").String())
}

func TestNowIn(t *testing.T) {
	got := NowIn("UTC")
	assert.Equal(t, time.UTC.String(), got.Location().String())
}
