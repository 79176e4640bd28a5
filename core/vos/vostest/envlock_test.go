package vostest

import (
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	testVarA = "EDITORCMD_VOSTEST_A"
	testVarB = "EDITORCMD_VOSTEST_B"
)

func TestLockEnv(t *testing.T) {
	os.Unsetenv(testVarA)
	os.Unsetenv(testVarB)

	release := LockEnv(map[string]*string{
		testVarA: Value("vim"),
		testVarB: Value(""),
	})

	val, ok := os.LookupEnv(testVarA)
	assert.True(t, ok)
	assert.Equal(t, "vim", val)

	val, ok = os.LookupEnv(testVarB)
	assert.True(t, ok)
	assert.Equal(t, "", val)

	release()
	release() // second release is a no-op

	_, ok = os.LookupEnv(testVarA)
	assert.False(t, ok, "previous unset state not restored")
	_, ok = os.LookupEnv(testVarB)
	assert.False(t, ok, "previous unset state not restored")
}

func TestLockEnv_restoresPreviousValue(t *testing.T) {
	t.Setenv(testVarA, "emacs")

	release := LockEnv(map[string]*string{testVarA: Unset})
	_, ok := os.LookupEnv(testVarA)
	assert.False(t, ok)
	release()

	assert.Equal(t, "emacs", os.Getenv(testVarA))
}

func TestLockEnvT(t *testing.T) {
	t.Setenv(testVarA, "before")

	t.Run("locked", func(t *testing.T) {
		LockEnvT(t, map[string]*string{testVarA: Value("during")})
		assert.Equal(t, "during", os.Getenv(testVarA))
	})

	assert.Equal(t, "before", os.Getenv(testVarA))
}

func TestLockEnv_serializesAccess(t *testing.T) {
	os.Unsetenv(testVarA)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(value string) {
			defer wg.Done()

			release := LockEnv(map[string]*string{testVarB: Value(value), testVarA: Value(value)})
			defer release()

			assert.Equal(t, value, os.Getenv(testVarA))
			assert.Equal(t, value, os.Getenv(testVarB))
		}(string(rune('a' + i)))
	}
	wg.Wait()

	_, ok := os.LookupEnv(testVarA)
	assert.False(t, ok)
}
