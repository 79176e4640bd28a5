// Package vostest contains helpers for tests that touch the environment.
package vostest

import (
	"os"
	"sort"
	"sync"
	"testing"
)

var (
	registryMu sync.Mutex
	nameLocks  = make(map[string]*sync.Mutex)
)

func lockFor(name string) *sync.Mutex {
	registryMu.Lock()
	defer registryMu.Unlock()

	mu, ok := nameLocks[name]
	if !ok {
		mu = &sync.Mutex{}
		nameLocks[name] = mu
	}
	return mu
}

// Unset marks a variable that should be removed from the environment while
// the lock is held.
var Unset *string

// Value returns a pointer to s, for use in LockEnv maps.
func Value(s string) *string {
	return &s
}

type savedVar struct {
	name    string
	value   string
	present bool
}

// LockEnv takes exclusive ownership of the named process environment
// variables, sets each to its value (nil unsets it) and returns a function
// that restores the previous values and releases the locks.
//
// Locks are acquired in name order so concurrent callers can't deadlock.
// The release function is safe to call more than once.
func LockEnv(vars map[string]*string) (release func()) {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	locks := make([]*sync.Mutex, 0, len(names))
	for _, name := range names {
		mu := lockFor(name)
		mu.Lock()
		locks = append(locks, mu)
	}

	saved := make([]savedVar, 0, len(names))
	for _, name := range names {
		value, present := os.LookupEnv(name)
		saved = append(saved, savedVar{name: name, value: value, present: present})

		if v := vars[name]; v != nil {
			_ = os.Setenv(name, *v)
		} else {
			_ = os.Unsetenv(name)
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			for _, s := range saved {
				if s.present {
					_ = os.Setenv(s.name, s.value)
				} else {
					_ = os.Unsetenv(s.name)
				}
			}

			for i := len(locks) - 1; i >= 0; i-- {
				locks[i].Unlock()
			}
		})
	}
}

// LockEnvT is LockEnv with the release registered as a test cleanup, so the
// environment is restored even if the test fails or panics.
func LockEnvT(t testing.TB, vars map[string]*string) {
	t.Helper()
	t.Cleanup(LockEnv(vars))
}
