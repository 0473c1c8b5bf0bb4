// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package syncx

import (
	"errors"
	"sync"
	"testing"
	"testing/synctest"

	"go.astrophena.name/licstamp/testutil"
)

func TestLazy(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		var l Lazy[int]
		var count int
		var mu sync.Mutex

		f := func() int {
			mu.Lock()
			defer mu.Unlock()
			count++
			return count
		}

		for range 10 {
			go l.Get(f)
		}
		synctest.Wait()

		testutil.AssertEqual(t, l.Get(f), 1)
		testutil.AssertEqual(t, count, 1)
	})
}

func TestLazyErr(t *testing.T) {
	t.Parallel()

	errFailed := errors.New("failed")
	var l Lazy[string]
	var calls int
	f := func() (string, error) {
		calls++
		return "", errFailed
	}

	_, err := l.GetErr(f)
	if !errors.Is(err, errFailed) {
		t.Fatalf("GetErr() = %v, want %v", err, errFailed)
	}
	_, err = l.GetErr(f)
	if !errors.Is(err, errFailed) {
		t.Fatalf("second GetErr() = %v, want %v", err, errFailed)
	}
	testutil.AssertEqual(t, calls, 1)
}

func TestMap(t *testing.T) {
	t.Parallel()

	var m Map[string, int]

	_, ok := m.Load("a")
	testutil.AssertEqual(t, ok, false)

	m.Store("a", 1)
	v, ok := m.Load("a")
	testutil.AssertEqual(t, ok, true)
	testutil.AssertEqual(t, v, 1)

	actual, loaded := m.LoadOrStore("a", 2)
	testutil.AssertEqual(t, loaded, true)
	testutil.AssertEqual(t, actual, 1)

	actual, loaded = m.LoadOrStore("b", 2)
	testutil.AssertEqual(t, loaded, false)
	testutil.AssertEqual(t, actual, 2)
	testutil.AssertEqual(t, m.Len(), 2)

	m.Delete("a")
	_, ok = m.Load("a")
	testutil.AssertEqual(t, ok, false)

	got := make(map[string]int)
	m.Range(func(k string, v int) bool {
		got[k] = v
		return true
	})
	testutil.AssertEqual(t, got, map[string]int{"b": 2})
}

func TestMapConcurrentLoadOrStore(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		var (
			m      Map[int, struct{}]
			mu     sync.Mutex
			stored int
		)
		for range 100 {
			go func() {
				if _, loaded := m.LoadOrStore(1, struct{}{}); !loaded {
					mu.Lock()
					stored++
					mu.Unlock()
				}
			}()
		}
		synctest.Wait()
		testutil.AssertEqual(t, stored, 1)
		testutil.AssertEqual(t, m.Len(), 1)
	})
}
