// Copyright (c) Facebook, Inc. and its affiliates.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

package memory

import (
	"sync"

	"github.com/facebookincubator/citrigger/pkg/storage"
)

// Memory implements a storage engine which keeps the trigger history in
// memory. History is lost when the process exits, so this engine is meant
// for testing purposes.
type Memory struct {
	lock     *sync.Mutex
	triggers []storage.Record
}

// StoreTrigger appends a record to the history
func (m *Memory) StoreTrigger(record storage.Record) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.triggers = append(m.triggers, record)
	return nil
}

// ListTriggers returns the records matching prID in insertion order
func (m *Memory) ListTriggers(prID string) ([]storage.Record, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	var matching []storage.Record
	for _, r := range m.triggers {
		if prID != "" && r.PRID != prID {
			continue
		}
		matching = append(matching, r)
	}
	return matching, nil
}

// Reset restores the original state of the memory storage layer
func (m *Memory) Reset() error {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.triggers = nil
	return nil
}

// Version returns the version of the memory storage layer.
func (m *Memory) Version() (uint64, error) {
	return storage.MinStorageVersion, nil
}

// Close is a no-op for the memory storage layer.
func (m *Memory) Close() error {
	return nil
}

// New create a new Memory storage engine
func New() (storage.ResettableStorage, error) {
	return &Memory{lock: &sync.Mutex{}}, nil
}
