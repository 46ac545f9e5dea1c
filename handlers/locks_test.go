package handlers

import (
	"sync"
	"testing"
)

func TestPhysicianLocksSerializeSamePhysician(t *testing.T) {
	locks := newPhysicianLocks()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Acquire("phys-1")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	if counter != 50 {
		t.Fatalf("expected 50 serialized increments, got %d", counter)
	}
}

func TestPhysicianLocksIndependentPerPhysician(t *testing.T) {
	locks := newPhysicianLocks()

	unlock1 := locks.Acquire("phys-1")
	defer unlock1()

	done := make(chan struct{})
	go func() {
		unlock2 := locks.Acquire("phys-2")
		unlock2()
		close(done)
	}()

	<-done // must not deadlock while phys-1 is held
}
