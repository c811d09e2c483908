// Package cache persists perft node counts in BadgerDB so repeated
// benchmark runs of the same positions skip the recount.
package cache

import (
	"encoding/binary"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// Cache wraps BadgerDB for persistent node-count storage.
type Cache struct {
	db *badger.DB
}

// Open opens (or creates) a cache at the given directory.
func Open(dir string) (*Cache, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Cache{db: db}, nil
}

// Close closes the database.
func (c *Cache) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// key builds the storage key for a position/depth pair.
func key(fen string, depth int) []byte {
	return fmt.Appendf(nil, "%d|%s", depth, fen)
}

// Get returns the stored node count for the position and depth, if present.
func (c *Cache) Get(fen string, depth int) (uint64, bool, error) {
	var nodes uint64
	found := false

	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(fen, depth))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			if len(val) != 8 {
				return fmt.Errorf("corrupt cache value for depth %d", depth)
			}
			nodes = binary.BigEndian.Uint64(val)
			found = true
			return nil
		})
	})

	return nodes, found, err
}

// Put stores the node count for the position and depth.
func (c *Cache) Put(fen string, depth int, nodes uint64) error {
	var val [8]byte
	binary.BigEndian.PutUint64(val[:], nodes)

	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(fen, depth), val[:])
	})
}
