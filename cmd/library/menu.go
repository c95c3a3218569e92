package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/zeenath1324/Mini-project/activitylog"
	"github.com/zeenath1324/Mini-project/librarystore"
)

const (
	choiceAddBook         = "1"
	choiceAddMember       = "2"
	choiceIssueBook       = "3"
	choiceReturnBook      = "4"
	choiceShowInventory   = "5"
	choiceShowActivityLog = "6"
	choiceExit            = "7"
)

const menuText = `
===== LIBRARY MENU =====
1. Add Book
2. Add Member
3. Issue Book
4. Return Book
5. Show Inventory
6. Show Activity Log
7. Exit
`

// Menu is the interactive front end over a librarystore.Store.
// It only reads input and prints outcomes; all rules live in the store.
type Menu struct {
	store  *librarystore.Store
	reader activitylog.Reader
	in     *bufio.Scanner
	out    io.Writer
}

// NewMenu creates a Menu. reader may be nil if the activity log cannot be read back.
func NewMenu(store *librarystore.Store, reader activitylog.Reader, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		store:  store,
		reader: reader,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// errEndOfInput ends the menu loop when the input is exhausted.
var errEndOfInput = errors.New("end of input")

// Run shows the menu until the user exits, the input ends or ctx is canceled.
func (m *Menu) Run(ctx context.Context) error {
	for ctx.Err() == nil {
		m.printf("%s", menuText)

		choice, err := m.prompt("Enter your choice: ")
		if err != nil {
			return m.finish(err)
		}

		if choice == choiceExit {
			m.printf("Exiting Library System. Goodbye!\n")
			return nil
		}

		failuresBefore := m.store.LogWriteFailures()

		err = m.dispatch(ctx, choice)

		if m.store.LogWriteFailures() > failuresBefore {
			m.printf("Error writing to activity log.\n")
		}

		if err != nil {
			if errors.Is(err, errEndOfInput) {
				return m.finish(err)
			}

			m.printf("Error: %v\n", err)
		}
	}

	return nil
}

func (m *Menu) dispatch(ctx context.Context, choice string) error {
	switch choice {
	case choiceAddBook:
		return m.addBook(ctx)
	case choiceAddMember:
		return m.addMember(ctx)
	case choiceIssueBook:
		return m.issueBook(ctx)
	case choiceReturnBook:
		return m.returnBook(ctx)
	case choiceShowInventory:
		m.showInventory()
		return nil
	case choiceShowActivityLog:
		return m.showActivityLog(ctx)
	default:
		m.printf("Invalid choice! Try again.\n")
		return nil
	}
}

func (m *Menu) addBook(ctx context.Context) error {
	fields, err := m.prompts("Enter Book ID: ", "Enter Title: ", "Enter Author: ")
	if err != nil {
		return err
	}

	if err := m.store.AddItem(ctx, fields[0], fields[1], fields[2]); err != nil {
		return err
	}

	m.printf("Book added successfully!\n")

	return nil
}

func (m *Menu) addMember(ctx context.Context) error {
	fields, err := m.prompts("Enter Member ID: ", "Enter Name: ")
	if err != nil {
		return err
	}

	if err := m.store.AddActor(ctx, fields[0], fields[1]); err != nil {
		return err
	}

	m.printf("Member added successfully!\n")

	return nil
}

func (m *Menu) issueBook(ctx context.Context) error {
	fields, err := m.prompts("Enter Book ID to Issue: ", "Enter Member ID: ")
	if err != nil {
		return err
	}

	if err := m.store.Checkout(ctx, fields[0], fields[1]); err != nil {
		return err
	}

	m.printf("Book issued successfully!\n")

	return nil
}

func (m *Menu) returnBook(ctx context.Context) error {
	fields, err := m.prompts("Enter Book ID to Return: ", "Enter Member ID: ", "Enter Days Late (0 if none): ")
	if err != nil {
		return err
	}

	daysLate, err := strconv.Atoi(fields[2])
	if err != nil {
		return fmt.Errorf("days late must be a whole number, got %q", fields[2])
	}

	lateFee, err := m.store.CheckIn(ctx, fields[0], fields[1], daysLate)
	if err != nil {
		return err
	}

	m.printf("Book returned successfully! Late Fee: %d\n", lateFee)

	return nil
}

func (m *Menu) showInventory() {
	m.printf("\n===== Library Inventory =====\n")
	for item := range m.store.Inventory() {
		m.printf("%s\n", item)
	}
	m.printf("=============================\n")
}

func (m *Menu) showActivityLog(ctx context.Context) error {
	if m.reader == nil {
		m.printf("The configured activity log sinks cannot be read back.\n")
		return nil
	}

	entries, err := m.reader.Entries(ctx)
	if err != nil {
		return err
	}

	if entries == nil {
		m.printf("The configured activity log sinks cannot be read back.\n")
		return nil
	}

	m.printf("\n===== Activity Log =====\n")
	for _, entry := range entries {
		m.printf("%s\n", entry.Line())
	}
	m.printf("========================\n")

	return nil
}

func (m *Menu) prompts(labels ...string) ([]string, error) {
	answers := make([]string, 0, len(labels))

	for _, label := range labels {
		answer, err := m.prompt(label)
		if err != nil {
			return nil, err
		}

		answers = append(answers, answer)
	}

	return answers, nil
}

func (m *Menu) prompt(label string) (string, error) {
	m.printf("%s", label)

	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}

		return "", errEndOfInput
	}

	return strings.TrimSpace(m.in.Text()), nil
}

func (m *Menu) finish(err error) error {
	if errors.Is(err, errEndOfInput) {
		m.printf("\n")
		return nil
	}

	return err
}

func (m *Menu) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(m.out, format, args...)
}
