package game

import (
	"inarow/dictionary"
	"inarow/meta"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// NewDictionary returns an empty configuration cache with the default size.
func NewDictionary() *dictionary.Dictionary {
	return dictionary.New(meta.DictionarySize)
}

// RepeatedConfiguration returns the cached score of the current configuration,
// or dictionary.NotFound if it has not been evaluated yet.
func RepeatedConfiguration(s State, d *dictionary.Dictionary) int {
	return d.Get(s.Key())
}

// AddConfiguration caches score for the current configuration and reports
// whether it collided with another configuration's bucket. A configuration
// that is already cached keeps its first score.
func AddConfiguration(s State, d *dictionary.Dictionary, score int) bool {
	collided, err := d.Put(dictionary.NewRecord(s.Key(), score))
	if errors.Is(err, dictionary.ErrDuplicateKey) {
		log.Debug().Err(err).Msg("configuration already cached")
		return false
	}
	return collided
}
