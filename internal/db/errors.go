package db

import "errors"

var (
	// ErrKeyNotFound is returned by Get for a missing key.
	ErrKeyNotFound = errors.New("db: key not found")
	// ErrIndexNotFound means the collection index has not been created yet.
	ErrIndexNotFound = errors.New("db: index not found")
	// ErrIndexExists is returned by CreateIndex when another writer won the race.
	ErrIndexExists = errors.New("db: index already exists")
)

// Command names recorded in Error.
const (
	CmdCreate = "FT.CREATE"
	CmdInfo   = "FT.INFO"
	CmdSearch = "FT.SEARCH"
	CmdHSet   = "HSET"
	CmdScan   = "SCAN"
	CmdGet    = "GET"
	CmdSet    = "SET"
)

// Error is a driver failure tagged with the command and the key or index it targeted.
type Error struct {
	Cmd    string
	Target string
	Err    error
}

func (e *Error) Error() string {
	if e.Target == "" {
		return e.Cmd + ": " + e.Err.Error()
	}
	return e.Cmd + " " + e.Target + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }
