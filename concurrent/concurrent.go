// Package concurrent serializes access to a linked_list.List with a mutex.
package concurrent

import (
	"fmt"
	"slices"
	"sync"

	"ordered_chain/linked_list"
)

// SyncList guards one list with one lock. Iteration happens under the lock,
// so callers get copies (Snapshot) rather than live cursors.
type SyncList[T any] struct {
	mu sync.Mutex
	l  *linked_list.List[T]
}

func NewSyncList[T any]() *SyncList[T] {
	return &SyncList[T]{l: linked_list.New[T]()}
}

func (s *SyncList[T]) Push(elem T) {
	s.mu.Lock()
	s.l.Push(elem)
	s.mu.Unlock()
}

func (s *SyncList[T]) Pop() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Pop()
}

func (s *SyncList[T]) Insert(index uint64, elem T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.l.Insert(index, elem); err != nil {
		return fmt.Errorf("sync list: %w", err)
	}
	return nil
}

func (s *SyncList[T]) Len() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Len()
}

// Snapshot copies the elements in list order.
func (s *SyncList[T]) Snapshot() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Collect(s.l.All())
}

func (s *SyncList[T]) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.String()
}

// ParallelPush pushes each element from its own goroutine and returns once
// all of them are in the list. The resulting order is unspecified.
func (s *SyncList[T]) ParallelPush(elems []T) {
	var wg sync.WaitGroup
	wg.Add(len(elems))
	for _, e := range elems {
		go func() {
			s.Push(e)
			wg.Done()
		}()
	}
	wg.Wait()
}
