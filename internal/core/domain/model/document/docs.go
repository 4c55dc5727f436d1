// Package document contains the Document aggregate which binds an uploaded
// file to its owning order. The aggregate only tracks ownership and
// lifecycle bookkeeping; the bytes themselves live behind the FileStore
// port and are addressed by the storage key recorded here.
package document
