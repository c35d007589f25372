// Package archive moves old word list snapshots out of the export directory.
package archive
