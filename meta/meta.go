// meta/meta.go
package meta

import "github.com/rs/zerolog"

// BoardSize defines the default number of rows and columns.
const BoardSize = 3

// LengthToWin defines the default number of symbols in a row needed to win.
const LengthToWin = 3

// MaxLevels defines the default depth of the game tree explored per computer move.
const MaxLevels = 9

// DictionarySize defines the size hint of the configuration cache, a prime close to 10,000.
const DictionarySize = 9973

// MaxDictionarySize bounds the configured size hint of the configuration cache.
const MaxDictionarySize = 1 << 20

// MaxBoardSize defines the default largest board the move server searches.
const MaxBoardSize = 4

// MaxRequestBytes bounds the body of a move server request.
const MaxRequestBytes = 1 << 16

// Addr defines the default listen address of the move server.
const Addr = ":8080"

// LogLevel defines the default logging level.
const LogLevel = zerolog.InfoLevel
