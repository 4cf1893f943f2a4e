package dictionary

// Record pairs a serialized board configuration with its score.
// The zero value is a record with an empty key and a score of 0.
type Record struct {
	key   string
	score int
}

func NewRecord(key string, score int) Record {
	return Record{key: key, score: score}
}

// Key returns the serialized configuration that identifies the record.
func (r Record) Key() string {
	return r.key
}

func (r Record) Score() int {
	return r.score
}
