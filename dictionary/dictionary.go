// Package dictionary implements the cache of evaluated board configurations:
// a hash table with separate chaining keyed by serialized configurations.
//
// Chains live in a single arena of links addressed by index. Each bucket holds
// the index of its head link and each link holds the index of its successor.
// A Dictionary is not safe for concurrent use.
package dictionary

import (
	"github.com/pkg/errors"
)

// NotFound is returned by Get for keys that are not stored.
// Scores produced by the board evaluator are never negative.
const NotFound = -1

// MaxLoadFactor is the records-per-bucket ratio above which an insert grows the table.
const MaxLoadFactor = 0.5

const nilLink = -1

var (
	ErrDuplicateKey = errors.New("duplicate key")
	ErrKeyNotFound  = errors.New("key not found")
)

type link struct {
	record Record
	next   int
}

type Dictionary struct {
	buckets []int  // Head link per bucket, nilLink when empty
	links   []link // Arena of chain links
	free    []int  // Released arena slots, reused by Put
	count   int
}

// New returns an empty dictionary whose bucket count is the smallest prime
// strictly greater than sizeHint.
func New(sizeHint int) *Dictionary {
	return &Dictionary{buckets: emptyBuckets(NextPrime(sizeHint))}
}

func emptyBuckets(n int) []int {
	buckets := make([]int, n)
	for i := range buckets {
		buckets[i] = nilLink
	}
	return buckets
}

// Put stores r unless a record with the same key already exists, in which case
// it returns ErrDuplicateKey and leaves the stored records unchanged.
// collided reports whether the target bucket already held at least one record.
//
// The load factor is checked before the key, so a rejected duplicate can still
// grow the table.
func (d *Dictionary) Put(r Record) (collided bool, err error) {
	d.resizeIfNeeded()

	index := hash(r.key, len(d.buckets))
	head := d.buckets[index]
	for i := head; i != nilLink; i = d.links[i].next {
		if d.links[i].record.key == r.key {
			return false, errors.Wrapf(ErrDuplicateKey, "put %q", r.key)
		}
	}

	d.buckets[index] = d.allocate(r, head)
	d.count++
	return head != nilLink, nil
}

func (d *Dictionary) allocate(r Record, next int) int {
	if n := len(d.free); n > 0 {
		i := d.free[n-1]
		d.free = d.free[:n-1]
		d.links[i] = link{record: r, next: next}
		return i
	}
	d.links = append(d.links, link{record: r, next: next})
	return len(d.links) - 1
}

// Remove deletes the record stored under key, or returns ErrKeyNotFound.
func (d *Dictionary) Remove(key string) error {
	index := hash(key, len(d.buckets))

	prev := nilLink
	i := d.buckets[index]
	for i != nilLink && d.links[i].record.key != key {
		prev = i
		i = d.links[i].next
	}
	if i == nilLink {
		return errors.Wrapf(ErrKeyNotFound, "remove %q", key)
	}

	if prev == nilLink {
		d.buckets[index] = d.links[i].next
	} else {
		d.links[prev].next = d.links[i].next
	}
	d.links[i] = link{next: nilLink}
	d.free = append(d.free, i)
	d.count--
	return nil
}

// Get returns the score stored under key, or NotFound.
func (d *Dictionary) Get(key string) int {
	if score, ok := d.Lookup(key); ok {
		return score
	}
	return NotFound
}

// Lookup returns the score stored under key and whether it was found.
func (d *Dictionary) Lookup(key string) (int, bool) {
	index := hash(key, len(d.buckets))
	for i := d.buckets[index]; i != nilLink; i = d.links[i].next {
		if d.links[i].record.key == key {
			return d.links[i].record.score, true
		}
	}
	return 0, false
}

// NumRecords returns the number of stored records.
func (d *Dictionary) NumRecords() int {
	return d.count
}

// Capacity returns the current bucket count, which is always prime.
func (d *Dictionary) Capacity() int {
	return len(d.buckets)
}

func (d *Dictionary) LoadFactor() float64 {
	return float64(d.count) / float64(len(d.buckets))
}

// Records returns a snapshot of all records in bucket order, each chain from
// its most recent insert.
func (d *Dictionary) Records() []Record {
	records := make([]Record, 0, d.count)
	for _, head := range d.buckets {
		for i := head; i != nilLink; i = d.links[i].next {
			records = append(records, d.links[i].record)
		}
	}
	return records
}

func (d *Dictionary) resizeIfNeeded() {
	if d.LoadFactor() > MaxLoadFactor {
		d.rehash(NextPrime(len(d.buckets) * 2))
	}
}

// rehash builds a new bucket array and arena of the given size from the
// current chains, then swaps them in. Released slots are compacted away.
func (d *Dictionary) rehash(size int) {
	buckets := emptyBuckets(size)
	links := make([]link, 0, d.count)
	for _, head := range d.buckets {
		for i := head; i != nilLink; i = d.links[i].next {
			r := d.links[i].record
			index := hash(r.key, size)
			links = append(links, link{record: r, next: buckets[index]})
			buckets[index] = len(links) - 1
		}
	}

	d.buckets = buckets
	d.links = links
	d.free = nil
}
