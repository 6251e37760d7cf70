package catalog

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang/snappy"
	"go.etcd.io/bbolt"
)

var (
	bucketTracks = []byte("tracks")
	bucketEdges  = []byte("edges")

	// ErrTrackNotFound is returned when a store lookup misses.
	ErrTrackNotFound = errors.New("track not found")
)

// Store persists a catalog snapshot in a bbolt database so the server does
// not need to re-parse the (large) galaxy export on every start. Values are
// snappy-compressed JSON; genetic vectors compress well.
type Store struct {
	db *bbolt.DB
}

// OpenStore opens or creates the catalog database at path.
func OpenStore(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open catalog store: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketTracks); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(bucketEdges)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init catalog store: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func encodeValue(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return snappy.Encode(nil, raw), nil
}

func decodeValue(data []byte, v any) error {
	raw, err := snappy.Decode(nil, data)
	if err != nil {
		return fmt.Errorf("decompress value: %w", err)
	}
	return json.Unmarshal(raw, v)
}

// SaveTrack writes a single track.
func (s *Store) SaveTrack(t *Track) error {
	if t == nil || t.ID == "" {
		return errors.New("track must have an id")
	}
	data, err := encodeValue(t)
	if err != nil {
		return fmt.Errorf("encode track %s: %w", t.ID, err)
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketTracks).Put([]byte(t.ID), data)
	})
}

// GetTrack reads a single track by id.
func (s *Store) GetTrack(id string) (*Track, error) {
	var t Track
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketTracks).Get([]byte(id))
		if data == nil {
			return fmt.Errorf("%w: %s", ErrTrackNotFound, id)
		}
		return decodeValue(data, &t)
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// SaveSnapshot replaces the stored catalog and edge list in one
// transaction. A snapshot is a full replace, matching the engine's
// rebuild-from-scratch graph semantics.
func (s *Store) SaveSnapshot(c *Catalog, edges []Edge) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketTracks, bucketEdges} {
			if err := tx.DeleteBucket(name); err != nil {
				return err
			}
			if _, err := tx.CreateBucket(name); err != nil {
				return err
			}
		}

		tb := tx.Bucket(bucketTracks)
		for _, t := range c.Tracks() {
			data, err := encodeValue(t)
			if err != nil {
				return fmt.Errorf("encode track %s: %w", t.ID, err)
			}
			if err := tb.Put([]byte(t.ID), data); err != nil {
				return err
			}
		}

		eb := tx.Bucket(bucketEdges)
		key := make([]byte, 8)
		for i, e := range edges {
			data, err := encodeValue(e)
			if err != nil {
				return fmt.Errorf("encode edge %d: %w", i, err)
			}
			binary.BigEndian.PutUint64(key, uint64(i))
			if err := eb.Put(append([]byte(nil), key...), data); err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadSnapshot reads the stored catalog and edge list.
func (s *Store) LoadSnapshot() (*Catalog, []Edge, error) {
	var tracks []*Track
	var edges []Edge

	err := s.db.View(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketTracks).ForEach(func(_, data []byte) error {
			var t Track
			if err := decodeValue(data, &t); err != nil {
				return err
			}
			tracks = append(tracks, &t)
			return nil
		}); err != nil {
			return err
		}

		return tx.Bucket(bucketEdges).ForEach(func(_, data []byte) error {
			var e Edge
			if err := decodeValue(data, &e); err != nil {
				return err
			}
			edges = append(edges, e)
			return nil
		})
	})
	if err != nil {
		return nil, nil, fmt.Errorf("load catalog snapshot: %w", err)
	}

	return NewCatalog(tracks), edges, nil
}
