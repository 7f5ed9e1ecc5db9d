// Package cli provides the interactive menu and the cobra entry point
// around the task store.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"todo-list/internal/config"
	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/logging"
	"todo-list/internal/store"
	"todo-list/internal/validation"
)

// Menu drives the interactive session: it reads numeric choices from the
// input, calls one store operation per turn, and prints the results.
type Menu struct {
	store     *store.Store
	config    *config.Config
	validator *validation.TaskValidator
	handler   *ErrorHandler
	in        *bufio.Scanner
	out       io.Writer
}

// NewMenu creates a menu over the given store, reading from in and
// writing to out.
func NewMenu(st *store.Store, cfg *config.Config, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		store:     st,
		config:    cfg,
		validator: validation.NewTaskValidatorWithLimits(cfg.Validation.TaskNameMinLength, cfg.Validation.TaskNameMaxLength),
		handler:   NewErrorHandler(),
		in:        bufio.NewScanner(in),
		out:       out,
	}
}

// Run loads the persisted tasks, then loops on the menu until the user
// exits (which saves) or the input ends. Every failure inside the loop is
// reported as a message; none terminates the session.
func (m *Menu) Run(ctx context.Context) error {
	if err := m.store.Load(ctx); err != nil {
		fmt.Fprintf(m.out, "Error loading tasks: %s. Starting with empty list.\n", m.handler.UserMessage(err))
	} else if n := m.store.Len(); n > 0 {
		fmt.Fprintf(m.out, "Loaded %d tasks.\n", n)
	}

	if m.config.Application.Verbose {
		fmt.Fprintf(m.out, "Data file: %s\n", m.config.GetDataFilePath())
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.printBanner()
		choice, ok := m.prompt("Enter your choice (1-7): ")
		if !ok {
			// Input ended; save as if the user chose to exit.
			m.saveAndClose(ctx)
			return nil
		}
		logging.Debugf("menu choice: %q\n", choice)

		switch strings.TrimSpace(choice) {
		case "1":
			m.displayTasks(m.store.Tasks())
		case "2":
			m.handleAdd()
		case "3":
			m.handleSort()
		case "4":
			m.handleFilter()
		case "5":
			m.handleToggle()
		case "6":
			m.handleDelete()
		case "7":
			m.saveAndClose(ctx)
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please enter a number from 1 to 7.")
		}
	}
}

func (m *Menu) printBanner() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "=============================================")
	fmt.Fprintln(m.out, "          ADVANCED TO-DO LIST MANAGER")
	fmt.Fprintln(m.out, "=============================================")
	fmt.Fprintln(m.out, "1. View Tasks (Master List)")
	fmt.Fprintln(m.out, "2. Add New Task")
	fmt.Fprintln(m.out, "3. Sort Tasks")
	fmt.Fprintln(m.out, "4. Filter Tasks")
	fmt.Fprintln(m.out, "5. Toggle Task Status (Complete/Pending)")
	fmt.Fprintln(m.out, "6. Delete Task")
	fmt.Fprintln(m.out, "7. Exit (and Save)")
	fmt.Fprintln(m.out, "=============================================")
}

// displayTasks prints a 1-based numbered list of the given tasks and
// returns the list shown, so a caller that filtered can reuse the same
// subset within the turn. An empty list is reported and nothing is shown.
func (m *Menu) displayTasks(tasks []domain.Task) []domain.Task {
	if len(tasks) == 0 {
		fmt.Fprintln(m.out, "\nList is empty or filter returned no results.")
		return nil
	}

	fmt.Fprintln(m.out, "\n--- Current To-Do List ---")
	for i, task := range tasks {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, task.Render(m.config.Display.PriorityWidth))
	}
	fmt.Fprintln(m.out, "--------------------------")
	return tasks
}

func (m *Menu) handleAdd() {
	rawName, ok := m.prompt("Enter task name: ")
	if !ok {
		return
	}
	name, err := m.validator.GetValidTaskName(rawName)
	if err != nil {
		fmt.Fprintf(m.out, "\nError: %s\n", m.handler.UserMessage(err))
		return
	}

	rawPriority, _ := m.prompt("Enter priority (Low, Medium, High): ")
	priority := domain.ParsePriority(rawPriority)

	task := m.store.Add(name, priority)
	fmt.Fprintf(m.out, "\nTask '%s' added with priority '%s'.\n", task.Name, task.Priority)
}

func (m *Menu) handleSort() {
	rawKey, _ := m.prompt("Sort by: 'name', 'priority', or 'created_date'? (Default: created_date): ")
	rawReverse, _ := m.prompt("Reverse order? (y/n): ")
	reverse := strings.EqualFold(strings.TrimSpace(rawReverse), "y")

	key, ok := domain.ParseSortKey(rawKey)
	if !ok {
		// Unrecognised key falls back to creation date ascending.
		fmt.Fprintf(m.out, "\nInvalid sorting key: %s. Defaulting to creation date.\n", strings.TrimSpace(rawKey))
		m.store.Sort(domain.DefaultSortKey, false)
	} else {
		m.store.Sort(key, reverse)
		fmt.Fprintf(m.out, "\nTasks sorted by %s (Reverse: %v).\n", key, reverse)
	}

	m.displayTasks(m.store.Tasks())
}

func (m *Menu) handleFilter() {
	raw, _ := m.prompt("Filter by (Low, Medium, High, Pending, Done, All): ")

	criterion, ok := domain.ParseFilterCriterion(raw)
	if !ok {
		fmt.Fprintln(m.out, "Invalid filter criterion. Options: All, Low, Medium, High, Pending, Done.")
		m.displayTasks(nil)
		return
	}

	switch criterion {
	case domain.FilterLow, domain.FilterMedium, domain.FilterHigh:
		fmt.Fprintf(m.out, "\n--- Filtered by Priority: %s ---\n", strings.ToUpper(criterion.String()))
	case domain.FilterPending:
		fmt.Fprintln(m.out, "\n--- Filtered: Pending Tasks Only ---")
	case domain.FilterDone:
		fmt.Fprintln(m.out, "\n--- Filtered: Completed Tasks Only ---")
	}

	m.displayTasks(m.store.Filter(criterion))
}

func (m *Menu) handleToggle() {
	index, ok := m.promptTaskIndex("Enter the number of the task to toggle status: ")
	if !ok {
		return
	}

	task, err := m.store.Toggle(index)
	if err != nil {
		fmt.Fprintf(m.out, "\nError: %s\n", m.handler.UserMessage(err))
		return
	}

	status := "PENDING"
	if task.Completed {
		status = "DONE"
	}
	fmt.Fprintf(m.out, "\nTask '%s' status set to %s.\n", task.Name, status)
}

func (m *Menu) handleDelete() {
	index, ok := m.promptTaskIndex("Enter the number of the task to DELETE: ")
	if !ok {
		return
	}

	removed, err := m.store.Delete(index)
	if err != nil {
		fmt.Fprintf(m.out, "\nError: %s\n", m.handler.UserMessage(err))
		return
	}

	fmt.Fprintf(m.out, "\nTask '%s' deleted.\n", removed.Name)
}

// promptTaskIndex shows the master list and reads a 1-based task number,
// returning the 0-based index into the backing collection. Non-numeric
// input is reported and treated as a no-op.
func (m *Menu) promptTaskIndex(promptText string) (int, bool) {
	if m.displayTasks(m.store.Tasks()) == nil {
		return 0, false
	}

	raw, ok := m.prompt(promptText)
	if !ok {
		return 0, false
	}

	number, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		logging.Debugf("%v\n", errors.NewInvalidInputError("task number", raw, "not a number"))
		fmt.Fprintln(m.out, "\nError: Please enter a valid number.")
		return 0, false
	}

	return number - 1, true
}

func (m *Menu) saveAndClose(ctx context.Context) {
	if err := m.store.Save(ctx); err != nil {
		fmt.Fprintf(m.out, "Error saving tasks: %s\n", m.handler.UserMessage(err))
	} else {
		fmt.Fprintln(m.out, "Tasks saved successfully!")
	}
	fmt.Fprintln(m.out, "Application closed. Goodbye!")
}

// prompt writes the prompt text and reads one line. The boolean result is
// false once the input is exhausted.
func (m *Menu) prompt(text string) (string, bool) {
	fmt.Fprint(m.out, text)
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}
