package main

import (
	"bufio"
	"fmt"
	"os"

	"vqlite/storage"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Must supply a database filename.")
		os.Exit(1)
	}

	table, err := storage.Open(os.Args[1])
	if err != nil {
		exitFatal(err)
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		printPrompt()
		input, err := readInput(reader)
		if err != nil {
			table.Close()
			return
		}

		if len(input) > 0 && input[0] == '.' {
			switch doMetaCommand(table, input) {
			case MetaCommandSuccess:
				continue
			case MetaCommandUnrecognizedCommand:
				fmt.Printf("Unrecognized command '%s'.\n", input)
				continue
			}
		}

		stmt, result := prepareStatement(input)
		switch result {
		case PrepareSuccess:
			executeStatement(table, stmt)
		case PrepareNegativeID:
			fmt.Println("ID must be positive.")
		case PrepareStringTooLong:
			fmt.Println("String is too long.")
		case PrepareSyntaxError:
			fmt.Println("Syntax error. Could not parse statement.")
		case PrepareUnrecognizedStatement:
			fmt.Printf("Unrecognized keyword at start of '%s'.\n", input)
		}
	}
}
