package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"todo/internal/testutil"
	clitest "todo/internal/testutil/cli"
)

func TestRemoveCommand_Positive(t *testing.T) {
	c, st := clitest.SetupCLITest(t)

	_, err := clitest.ExecuteCLICommand(t, c, []string{"add", "Buy milk", "--quiet"})
	assert.NoError(t, err)
	_, err = clitest.ExecuteCLICommand(t, c, []string{"add", "Fix bug", "-p", "high", "--quiet"})
	assert.NoError(t, err)

	output, err := clitest.ExecuteCLICommand(t, c, []string{"remove", "1"})
	assert.NoError(t, err)
	assert.Equal(t, "Deleted task: Buy milk\n", output)

	// The survivor keeps its original id.
	tasks, err := st.Load()
	assert.NoError(t, err)
	assert.Len(t, tasks, 1)
	assert.Equal(t, 2, tasks[0].ID)
	assert.Equal(t, "Fix bug", tasks[0].Name)
}

func TestRemoveCommand_NotFound(t *testing.T) {
	c, _ := clitest.SetupCLITest(t)

	t.Run("JSON error payload", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, c, []string{"remove", "42", "--json"})

		assert.NoError(t, err)

		result := testutil.ParseJSON(t, output)
		assert.Equal(t, false, result["success"])

		errObj, ok := result["error"].(map[string]interface{})
		assert.True(t, ok)
		assert.Equal(t, "TASK_NOT_FOUND", errObj["code"])
		assert.Equal(t, "No task found with ID 42", errObj["message"])
	})

	t.Run("Human mode exits cleanly", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, c, []string{"rm", "42"})
		assert.NoError(t, err)
	})
}

func TestRemoveCommand_UsageErrors(t *testing.T) {
	c, _ := clitest.SetupCLITest(t)

	t.Run("Non-numeric id", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, c, []string{"remove", "abc"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid task ID")
	})

	t.Run("Missing id", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, c, []string{"remove"})
		assert.Error(t, err)
	})
}
