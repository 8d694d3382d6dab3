package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockPortIsStableAndInRange(t *testing.T) {
	port := LockPort("Greenhouse")

	assert.Equal(t, port, LockPort("Greenhouse"))
	assert.GreaterOrEqual(t, port, minLockPort)
	assert.LessOrEqual(t, port, maxLockPort)
}

func TestAcquireSingleInstance(t *testing.T) {
	name := "greenhouse-test-" + t.Name()
	guard, err := AcquireSingleInstance(name)
	if err != nil {
		t.Skipf("lock port unavailable: %v", err)
	}

	_, err = AcquireSingleInstance(name)
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, guard.Release())
	require.NoError(t, guard.Release())

	again, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	assert.NoError(t, again.Release())
}

func TestReleaseNilGuard(t *testing.T) {
	var guard *InstanceGuard
	assert.NoError(t, guard.Release())
}
