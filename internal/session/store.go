// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the details of the authenticated storefront customer.
//
// The [Store] outlives every view. Views read it and subscribe to its changes
// but write it only through SetLoggedInUserDetails and
// SetLoggedOutUserDetails.
package session

import (
	"sync"

	"github.com/MKhiriev/go-pet-storefront/models"
)

// Observer is notified with the new details after every store change.
type Observer func(models.UserDetails)

// Store is the single holder of the current customer's details.
// It is safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	details   models.UserDetails
	nextID    int
	observers map[int]Observer
}

// NewStore returns a store with no authenticated customer.
func NewStore() *Store {
	return &Store{observers: make(map[int]Observer)}
}

// UserDetails returns a copy of the current details.
func (s *Store) UserDetails() models.UserDetails {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.details
}

// SetLoggedInUserDetails records details as the authenticated customer.
func (s *Store) SetLoggedInUserDetails(details models.UserDetails) {
	s.set(details)
}

// SetLoggedOutUserDetails clears the authenticated customer.
func (s *Store) SetLoggedOutUserDetails() {
	s.set(models.UserDetails{})
}

// Subscribe registers o and returns a function removing it. Observers run
// synchronously on the writer's goroutine, outside the store lock.
func (s *Store) Subscribe(o Observer) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers[id] = o
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.observers, id)
			s.mu.Unlock()
		})
	}
}

func (s *Store) set(details models.UserDetails) {
	s.mu.Lock()
	s.details = details
	observers := make([]Observer, 0, len(s.observers))
	for _, o := range s.observers {
		observers = append(observers, o)
	}
	s.mu.Unlock()

	for _, o := range observers {
		o(details)
	}
}
