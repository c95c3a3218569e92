package activitylog

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"
	bolt "go.etcd.io/bbolt"
)

const (
	defaultBoltBucket  = "activity_log"
	defaultBoltTimeout = time.Second
)

// ErrEmptyBucketName is returned when a BoltSink is configured with an empty bucket name.
var ErrEmptyBucketName = errors.New("empty bucket name supplied")

// boltRecord is the stored representation of an Entry.
type boltRecord struct {
	EventType   string          `json:"event_type"`
	OccurredAt  time.Time       `json:"occurred_at"`
	Description string          `json:"description"`
	Payload     json.RawMessage `json:"payload"`
	Metadata    json.RawMessage `json:"metadata"`
}

// BoltSink appends entries to a bbolt bucket.
// Keys are the bucket's big-endian sequence numbers, so a cursor walk yields append order.
type BoltSink struct {
	db     *bolt.DB
	bucket []byte
}

// BoltOption defines a functional option for configuring a BoltSink.
type BoltOption func(*BoltSink) error

// WithBucket sets the bucket name for the BoltSink.
func WithBucket(name string) BoltOption {
	return func(s *BoltSink) error {
		if name == "" {
			return ErrEmptyBucketName
		}

		s.bucket = []byte(name)

		return nil
	}
}

// OpenBoltSink opens (or creates) the bbolt database at path and ensures the bucket exists.
func OpenBoltSink(path string, options ...BoltOption) (*BoltSink, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	s := &BoltSink{bucket: []byte(defaultBoltBucket)}

	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: defaultBoltTimeout})
	if err != nil {
		return nil, errors.Join(ErrLogWriteFailed, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, createErr := tx.CreateBucketIfNotExists(s.bucket)
		return createErr
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Join(ErrLogWriteFailed, err)
	}

	s.db = db

	return s, nil
}

// Record implements Recorder.
func (s *BoltSink) Record(_ context.Context, entry Entry) error {
	value, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(boltRecord{
		EventType:   entry.EventType,
		OccurredAt:  entry.OccurredAt,
		Description: entry.Description,
		Payload:     entry.PayloadJSON,
		Metadata:    entry.MetadataJSON,
	})
	if err != nil {
		return errors.Join(ErrLogWriteFailed, err)
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket)

		seq, seqErr := b.NextSequence()
		if seqErr != nil {
			return seqErr
		}

		return b.Put(sequenceKey(seq), value)
	})
	if err != nil {
		return errors.Join(ErrLogWriteFailed, err)
	}

	return nil
}

// Entries implements Reader.
func (s *BoltSink) Entries(ctx context.Context) (Entries, error) {
	entries := make(Entries, 0)

	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).ForEach(func(_, value []byte) error {
			if err := ctx.Err(); err != nil {
				return err
			}

			record := new(boltRecord)
			if err := jsoniter.ConfigFastest.Unmarshal(value, record); err != nil {
				return err
			}

			entry, err := BuildEntry(record.EventType, record.OccurredAt, record.Description, record.Payload, record.Metadata)
			if err != nil {
				return err
			}

			entries = append(entries, entry)

			return nil
		})
	})
	if err != nil {
		return nil, errors.Join(ErrLogReadFailed, err)
	}

	return entries, nil
}

// Close closes the underlying bbolt database.
func (s *BoltSink) Close() error {
	if s == nil || s.db == nil {
		return nil
	}

	return s.db.Close()
}

func sequenceKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)

	return key
}
