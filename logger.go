package hpack

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the package-wide logger instance for HPACK codec and table
// events.
var Logger zerolog.Logger

func init() {
	setupLogger()
}

// setupLogger initializes zerolog based on the LOG_LEVEL environment
// variable.
func setupLogger() {
	logLevel := strings.ToLower(os.Getenv("LOG_LEVEL"))

	var level zerolog.Level
	switch logLevel {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn", "warning":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	case "fatal":
		level = zerolog.FatalLevel
	case "panic":
		level = zerolog.PanicLevel
	default:
		// If LOG_LEVEL is not set or invalid -> disable completely
		level = zerolog.Disabled
	}

	var output = zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}

	if logLevel == "debug" {
		output.FormatLevel = func(i interface{}) string {
			return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
		}
		output.FormatMessage = func(i interface{}) string {
			return fmt.Sprintf("*** %s ***", i)
		}
		output.FormatFieldName = func(i interface{}) string {
			return fmt.Sprintf("%s:", i)
		}
	}

	Logger = zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Str("component", "hpack").
		Logger()

	if level != zerolog.Disabled {
		Logger.Info().
			Str("level", level.String()).
			Msg("HPACK logger initialized")
	}
}

// LogHuffmanEncode logs a Huffman encode operation's outcome.
func LogHuffmanEncode(inputLen, outputLen int, err error) {
	if Logger.GetLevel() == zerolog.Disabled {
		return
	}
	ev := Logger.Debug().
		Str("event", "huffman_encode").
		Int("input_len", inputLen).
		Int("output_len", outputLen)
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msg("huffman encode")
}

// LogHuffmanDecode logs a Huffman decode operation's outcome.
func LogHuffmanDecode(inputLen, outputLen int, err error) {
	if Logger.GetLevel() == zerolog.Disabled {
		return
	}
	ev := Logger.Debug().
		Str("event", "huffman_decode").
		Int("input_len", inputLen).
		Int("output_len", outputLen)
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msg("huffman decode")
}

// LogDynamicTableInsert logs a dynamic table insertion.
func LogDynamicTableInsert(name string, bytesUsed, maxBytes int, typ EntryType) {
	if Logger.GetLevel() == zerolog.Disabled {
		return
	}
	Logger.Debug().
		Str("event", "dynamic_table_insert").
		Str("name", name).
		Str("type", typ.String()).
		Int("bytes_used", bytesUsed).
		Int("max_bytes", maxBytes).
		Msg("dynamic table insert")
}

// LogDynamicTableEvict logs a dynamic table eviction.
func LogDynamicTableEvict(name string, freedBytes int) {
	if Logger.GetLevel() == zerolog.Disabled {
		return
	}
	Logger.Debug().
		Str("event", "dynamic_table_evict").
		Str("name", name).
		Int("freed_bytes", freedBytes).
		Msg("dynamic table evict")
}

// LogError logs an error with context.
func LogError(err error, context string, fields map[string]interface{}) {
	if Logger.GetLevel() == zerolog.Disabled {
		return
	}
	ev := Logger.Error().
		Err(err).
		Str("context", context)
	for key, value := range fields {
		ev = ev.Interface(key, value)
	}
	ev.Msg("HPACK error")
}
