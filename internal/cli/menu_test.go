package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-list/internal/config"
	"todo-list/internal/repository/jsonfile"
	"todo-list/internal/store"
)

func menuConfig(dir string) *config.Config {
	cfg := config.NewConfig()
	cfg.Storage.Dir = dir
	cfg.Storage.Filename = "tasks.json"
	return cfg
}

// runSession drives a full menu session over a JSON file in dir, feeding
// the given input lines, and returns everything printed.
func runSession(t *testing.T, cfg *config.Config, input string) string {
	t.Helper()

	repo, err := jsonfile.New(cfg.GetDataFilePath())
	require.NoError(t, err)

	var out bytes.Buffer
	menu := NewMenu(store.New(repo), cfg, strings.NewReader(input), &out)
	require.NoError(t, menu.Run(context.Background()))

	return out.String()
}

func TestMenu_AddAndView(t *testing.T) {
	cfg := menuConfig(t.TempDir())

	out := runSession(t, cfg, "2\nBuy milk\nHigh\n1\n7\n")

	assert.Contains(t, out, "Task 'Buy milk' added with priority 'High'.")
	assert.Contains(t, out, "--- Current To-Do List ---")
	assert.Contains(t, out, "1. [ ] (P: High  ) Buy milk (Created: ")
}

func TestMenu_Add_UnknownPriorityDefaultsToMedium(t *testing.T) {
	cfg := menuConfig(t.TempDir())

	out := runSession(t, cfg, "2\nBuy milk\nUrgent\n7\n")

	assert.Contains(t, out, "Task 'Buy milk' added with priority 'Medium'.")
}

func TestMenu_Add_RejectsEmptyName(t *testing.T) {
	cfg := menuConfig(t.TempDir())

	out := runSession(t, cfg, "2\n   \n7\n")

	assert.Contains(t, out, "Error: task name is required")
	assert.NotContains(t, out, "added with priority")
}

func TestMenu_View_EmptyList(t *testing.T) {
	cfg := menuConfig(t.TempDir())

	out := runSession(t, cfg, "1\n7\n")

	assert.Contains(t, out, "List is empty or filter returned no results.")
}

func TestMenu_InvalidChoice(t *testing.T) {
	cfg := menuConfig(t.TempDir())

	out := runSession(t, cfg, "9\n7\n")

	assert.Contains(t, out, "Invalid choice. Please enter a number from 1 to 7.")
}

func TestMenu_Sort(t *testing.T) {
	cfg := menuConfig(t.TempDir())

	input := "2\nbanana\nLow\n2\napple\nHigh\n3\nname\nn\n7\n"
	out := runSession(t, cfg, input)

	assert.Contains(t, out, "Tasks sorted by name (Reverse: false).")
	apple := strings.Index(out, "1. [ ] (P: High  ) apple")
	banana := strings.Index(out, "2. [ ] (P: Low   ) banana")
	require.GreaterOrEqual(t, apple, 0)
	require.GreaterOrEqual(t, banana, 0)
	assert.Less(t, apple, banana)
}

func TestMenu_Sort_InvalidKeyDefaultsToCreationDate(t *testing.T) {
	cfg := menuConfig(t.TempDir())

	out := runSession(t, cfg, "2\nBuy milk\nLow\n3\ncolour\ny\n7\n")

	assert.Contains(t, out, "Invalid sorting key: colour. Defaulting to creation date.")
}

func TestMenu_Filter_ByPriority(t *testing.T) {
	cfg := menuConfig(t.TempDir())

	input := "2\nBuy milk\nHigh\n2\nWater plants\nLow\n4\nHigh\n7\n"
	out := runSession(t, cfg, input)

	assert.Contains(t, out, "--- Filtered by Priority: HIGH ---")
	// The filtered view numbers its own subset from 1
	assert.Contains(t, out, "1. [ ] (P: High  ) Buy milk")
	assert.NotContains(t, out, "Water plants (Created")
}

func TestMenu_Filter_InvalidCriterion(t *testing.T) {
	cfg := menuConfig(t.TempDir())

	out := runSession(t, cfg, "4\nUrgent\n7\n")

	assert.Contains(t, out, "Invalid filter criterion. Options: All, Low, Medium, High, Pending, Done.")
	assert.Contains(t, out, "List is empty or filter returned no results.")
}

func TestMenu_Toggle(t *testing.T) {
	cfg := menuConfig(t.TempDir())

	out := runSession(t, cfg, "2\nBuy milk\nLow\n5\n1\n5\n1\n7\n")

	assert.Contains(t, out, "Task 'Buy milk' status set to DONE.")
	assert.Contains(t, out, "Task 'Buy milk' status set to PENDING.")
}

func TestMenu_Toggle_OutOfRange(t *testing.T) {
	cfg := menuConfig(t.TempDir())

	out := runSession(t, cfg, "2\nBuy milk\nLow\n5\n4\n7\n")

	assert.Contains(t, out, "Error: task number is out of range")
}

func TestMenu_Toggle_NonNumericInput(t *testing.T) {
	cfg := menuConfig(t.TempDir())

	out := runSession(t, cfg, "2\nBuy milk\nLow\n5\nfirst\n7\n")

	assert.Contains(t, out, "Error: Please enter a valid number.")
}

func TestMenu_Delete(t *testing.T) {
	cfg := menuConfig(t.TempDir())

	out := runSession(t, cfg, "2\nBuy milk\nLow\n6\n1\n1\n7\n")

	assert.Contains(t, out, "Task 'Buy milk' deleted.")
	assert.Contains(t, out, "List is empty or filter returned no results.")
}

func TestMenu_Exit_SavesTasks(t *testing.T) {
	dir := t.TempDir()
	cfg := menuConfig(dir)

	out := runSession(t, cfg, "2\nBuy milk\nHigh\n7\n")

	assert.Contains(t, out, "Tasks saved successfully!")
	assert.Contains(t, out, "Application closed. Goodbye!")

	data, err := os.ReadFile(filepath.Join(dir, "tasks.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name": "Buy milk"`)
	assert.Contains(t, string(data), `"priority": "High"`)
}

func TestMenu_InputEnd_SavesTasks(t *testing.T) {
	dir := t.TempDir()
	cfg := menuConfig(dir)

	// No exit choice; the input just ends after the add
	out := runSession(t, cfg, "2\nBuy milk\nHigh\n")

	assert.Contains(t, out, "Tasks saved successfully!")

	_, err := os.Stat(filepath.Join(dir, "tasks.json"))
	assert.NoError(t, err)
}

func TestMenu_Load_ReportsCount(t *testing.T) {
	dir := t.TempDir()
	cfg := menuConfig(dir)
	seed := `[
    {"name": "a", "priority": "Low", "completed": false, "created_date": "2024-01-01 00:00:00"},
    {"name": "b", "priority": "High", "completed": true, "created_date": "2024-01-02 00:00:00"}
]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tasks.json"), []byte(seed), 0644))

	out := runSession(t, cfg, "7\n")

	assert.Contains(t, out, "Loaded 2 tasks.")
}

func TestMenu_Load_CorruptFileStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	cfg := menuConfig(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tasks.json"), []byte("corrupt"), 0644))

	out := runSession(t, cfg, "1\n7\n")

	assert.Contains(t, out, "Error loading tasks:")
	assert.Contains(t, out, "Starting with empty list.")
	assert.Contains(t, out, "List is empty or filter returned no results.")
	// Exiting overwrites the corrupt file with the empty collection
	data, err := os.ReadFile(filepath.Join(dir, "tasks.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestMenu_Verbose_ShowsDataFilePath(t *testing.T) {
	cfg := menuConfig(t.TempDir())
	cfg.Application.Verbose = true

	out := runSession(t, cfg, "7\n")

	assert.Contains(t, out, "Data file: "+cfg.GetDataFilePath())
}

func TestMenu_PriorityWidthFromConfig(t *testing.T) {
	cfg := menuConfig(t.TempDir())
	cfg.Display.PriorityWidth = 8

	out := runSession(t, cfg, "2\nBuy milk\nLow\n1\n7\n")

	assert.Contains(t, out, "1. [ ] (P: Low     ) Buy milk")
}
