package main

import (
	"fmt"
	"strconv"
	"strings"

	"vqlite/storage"
)

type StatementType int

const (
	StatementInsert StatementType = iota
	StatementSelect
)

type PrepareResult int

const (
	PrepareSuccess PrepareResult = iota
	PrepareUnrecognizedStatement
	PrepareSyntaxError
	PrepareNegativeID
	PrepareStringTooLong
)

type Statement struct {
	Type        StatementType
	RowToInsert storage.Row
}

// prepareStatement tokenizes input into a Statement, or reports which
// prepare-time validation failed. These are all user-visible, recoverable
// errors: the REPL prints a message and keeps reading.
func prepareStatement(input string) (*Statement, PrepareResult) {
	if strings.HasPrefix(input, "insert") {
		return prepareInsert(input)
	}
	if input == "select" {
		return &Statement{Type: StatementSelect}, PrepareSuccess
	}
	return nil, PrepareUnrecognizedStatement
}

func prepareInsert(input string) (*Statement, PrepareResult) {
	fields := strings.Fields(input)
	if len(fields) != 4 {
		return nil, PrepareSyntaxError
	}

	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, PrepareSyntaxError
	}
	if id < 0 {
		return nil, PrepareNegativeID
	}

	username, email := fields[2], fields[3]
	if uint32(len(username)) > storage.UsernameSize || uint32(len(email)) > storage.EmailSize {
		return nil, PrepareStringTooLong
	}

	return &Statement{
		Type: StatementInsert,
		RowToInsert: storage.Row{
			ID:       uint32(id),
			Username: username,
			Email:    email,
		},
	}, PrepareSuccess
}

// executeStatement runs stmt against table and prints its result.
// Execute-time failures (duplicate key, and the fatal engine limitations
// this revision carries forward) are reported the same way prepare-time
// failures are, except fatal ones terminate the process.
func executeStatement(table *storage.Table, stmt *Statement) {
	switch stmt.Type {
	case StatementInsert:
		executeInsert(table, stmt)
	case StatementSelect:
		executeSelect(table)
	}
}

func executeInsert(table *storage.Table, stmt *Statement) {
	err := storage.InsertRow(table, stmt.RowToInsert)
	switch {
	case err == nil:
		fmt.Println("Executed.")
	case isFatal(err):
		exitFatal(err)
	case isDuplicateKey(err):
		fmt.Println("Error: Duplicate key.")
	default:
		exitFatal(err)
	}
}

func executeSelect(table *storage.Table) {
	rows, err := table.ScanAll()
	if err != nil {
		exitFatal(err)
	}
	for _, row := range rows {
		fmt.Printf("(%d, %s, %s)\n", row.ID, row.Username, row.Email)
	}
	fmt.Println("Executed.")
}

func isFatal(err error) bool {
	_, ok := err.(*storage.FatalError)
	return ok
}

func isDuplicateKey(err error) bool {
	_, ok := err.(*storage.DuplicateKeyError)
	return ok
}
