// Copyright (c) Facebook, Inc. and its affiliates.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

package storage

import (
	"fmt"
)

// MinStorageVersion is the oldest schema version the client can write to.
const MinStorageVersion uint64 = 1

// Storage defines the interface that history storage engines must implement
type Storage interface {
	TriggerStorage

	// Version returns the version of the storage being used
	Version() (uint64, error)
	// Close releases any resource held by the engine
	Close() error
}

// ResettableStorage is implemented by storage engines that support reset operation
type ResettableStorage interface {
	Storage
	Reset() error
}

// Check makes sure that a storage engine is usable before records are
// written to it.
func Check(storageEngine Storage) error {
	if storageEngine == nil {
		return fmt.Errorf("cannot configure a nil storage engine")
	}
	v, err := storageEngine.Version()
	if err != nil {
		return fmt.Errorf("could not determine storage version: %w", err)
	}
	if v < MinStorageVersion {
		return fmt.Errorf("could not configure storage of type %T (minimum storage version: %d, current storage version: %d)", storageEngine, MinStorageVersion, v)
	}
	return nil
}
