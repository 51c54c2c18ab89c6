package store

import (
	"os"
	"time"

	badger "github.com/dgraph-io/badger/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gitlab.com/urlp/urlp"
)

const (
	entryPrefix = "hist"
	seqKey      = "hist_seq"
)

// Entry is one recorded parse, URI is nil when the parse failed
type Entry struct {
	ID        uint64          `json:"id"`
	Input     string          `json:"input"`
	Remainder string          `json:"remainder"`
	URI       *urlp.URI       `json:"uri,omitempty"`
	Error     *urlp.ErrorBody `json:"error,omitempty"`
	Time      time.Time       `json:"time"`
}

// NewEntry from the return values of a parse
func NewEntry(input string, u *urlp.URI, remainder string, err error) *Entry {
	return &Entry{Input: input, Remainder: remainder, URI: u, Error: urlp.NewErrorBody(err)}
}

// Result rebuilds the parse result the entry was recorded from
func (e *Entry) Result() *urlp.Result {
	r := &urlp.Result{Input: e.Input, URI: e.URI, Remainder: e.Remainder, Error: e.Error}
	if e.URI != nil {
		r.Domain, _ = e.URI.Resource.RegistrableDomain()
	}
	return r
}

// History persists parse results
type History struct {
	Store    *badger.DB
	seq      *badger.Sequence
	filepath string
}

// NewHistory for storing parse results under filepath
func NewHistory(filepath string) *History {
	return &History{filepath: filepath}
}

// Init the history storage
func (h *History) Init() error {
	var err error

	if err = os.MkdirAll(h.filepath, 0766); err != nil {
		return err
	}

	h.Store, err = badger.Open(badger.DefaultOptions(h.filepath).WithLogger(nil))

	if errors.Is(err, badger.ErrTruncateNeeded) {
		log.Warn().Msg("there was a failure re-opening database, trying to recover")
		opts := badger.DefaultOptions(h.filepath).WithLogger(nil)
		opts.Truncate = true
		h.Store, err = badger.Open(opts)
	}

	if err != nil {
		return err
	}

	h.seq, err = h.Store.GetSequence([]byte(seqKey), 16)
	return errors.Wrap(err, "history sequence")
}

// Add an entry, its ID and Time are assigned here
func (h *History) Add(entry *Entry) (uint64, error) {
	id, err := h.seq.Next()
	if err != nil {
		return 0, errors.Wrap(err, "next history id")
	}
	entry.ID = id + 1 // 0 is never a valid id
	if entry.Time.IsZero() {
		entry.Time = time.Now()
	}

	enc, err := EncodeStruct(entry)
	if err != nil {
		return 0, errors.Wrap(err, "encoding entry")
	}

	err = h.Store.Update(func(txn *badger.Txn) error {
		return txn.Set(MakeKey(entryPrefix, entry.ID), enc)
	})
	if err != nil {
		log.Error().Err(err).Str("input", entry.Input).Msg("failed to add history entry")
		return 0, errors.Wrap(err, "adding entry")
	}
	return entry.ID, nil
}

// Get the entry with id
func (h *History) Get(id uint64) (*Entry, error) {
	entry := &Entry{}
	err := h.Store.View(func(txn *badger.Txn) error {
		item, err := txn.Get(MakeKey(entryPrefix, id))
		if err == badger.ErrKeyNotFound {
			return urlp.ErrNotFound
		}
		if err != nil {
			return err
		}
		val, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		return DecodeStruct(val, entry)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "history entry %d", id)
	}
	return entry, nil
}

// List up to limit entries, oldest first. limit <= 0 returns everything.
func (h *History) List(limit int) ([]*Entry, error) {
	entries := make([]*Entry, 0)
	prefix := []byte(entryPrefix + ":")

	err := h.Store.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(entries) >= limit {
				break
			}
			val, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			entry := &Entry{}
			if err := DecodeStruct(val, entry); err != nil {
				log.Error().Err(err).Uint64("id", KeyID(it.Item().Key())).Msg("failed to decode history entry")
				continue
			}
			entries = append(entries, entry)
		}
		return nil
	})
	return entries, errors.Wrap(err, "listing history")
}

// Close the history store
func (h *History) Close() error {
	if h.seq != nil {
		if err := h.seq.Release(); err != nil {
			log.Error().Err(err).Msg("failed to release history sequence")
		}
	}
	return h.Store.Close()
}
