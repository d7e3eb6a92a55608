package pondiuni

import (
	"bytes"
	"encoding/gob"
	"time"

	"github.com/dgraph-io/badger/v4"
)

var errCachedPageNotFound = badger.ErrKeyNotFound

type cachedPage struct {
	HTML      string
	SourceURL string
	FetchedAt int64
}

// Cache persists browser-fetched HTML on disk keyed by node id, so a
// later scrape can survive a full network outage against the source site.
type Cache struct {
	db *badger.DB
}

// OpenCache opens (or creates) the on-disk cache at dir.
func OpenCache(dir string) (*Cache, error) {
	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	if err != nil {
		return nil, err
	}
	return &Cache{db: db}, nil
}

func NewCache(db *badger.DB) *Cache {
	return &Cache{db: db}
}

func (c *Cache) Close() error {
	return c.db.Close()
}

func cacheKey(nodeID string) []byte {
	return []byte("html:" + nodeID)
}

func (c *Cache) Get(nodeID string) (Page, error) {
	tx := c.db.NewTransaction(false)
	defer tx.Discard()

	item, err := tx.Get(cacheKey(nodeID))
	if err == badger.ErrKeyNotFound {
		return Page{}, errCachedPageNotFound
	}
	if err != nil {
		return Page{}, err
	}
	serialized, err := item.ValueCopy(nil)
	if err != nil {
		return Page{}, err
	}

	var cached cachedPage
	decoder := gob.NewDecoder(bytes.NewBuffer(serialized))
	err = decoder.Decode(&cached)
	if err != nil {
		return Page{}, err
	}

	return Page{HTML: cached.HTML, SourceURL: cached.SourceURL}, nil
}

func (c *Cache) Put(nodeID string, page Page) error {
	serialized := bytes.NewBuffer(nil)
	encoder := gob.NewEncoder(serialized)
	err := encoder.Encode(cachedPage{
		HTML:      page.HTML,
		SourceURL: page.SourceURL,
		FetchedAt: time.Now().Unix(),
	})
	if err != nil {
		return err
	}

	tx := c.db.NewTransaction(true)
	defer tx.Discard()

	err = tx.Set(cacheKey(nodeID), serialized.Bytes())
	if err != nil {
		return err
	}
	return tx.Commit()
}
