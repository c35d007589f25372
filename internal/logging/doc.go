// Package logging builds the zerolog loggers used across wordcycle.
package logging
