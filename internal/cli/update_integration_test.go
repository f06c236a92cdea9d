package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"todo/internal/models"
	"todo/internal/testutil"
	clitest "todo/internal/testutil/cli"
)

func TestUpdateCommand_Positive(t *testing.T) {
	c, st := clitest.SetupCLITest(t)

	_, err := clitest.ExecuteCLICommand(t, c, []string{"add", "Buy milk", "--quiet"})
	assert.NoError(t, err)

	t.Run("Update name", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, c, []string{"update", "1", "-n", "Buy oat milk"})

		assert.NoError(t, err)
		assert.Equal(t, "Updated task 1\n", output)

		tasks, loadErr := st.Load()
		assert.NoError(t, loadErr)
		assert.Equal(t, "Buy oat milk", tasks[0].Name)
		assert.Equal(t, models.PriorityMedium, tasks[0].Priority)
	})

	t.Run("Update priority", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, c, []string{"u", "1", "-p", "high"})

		assert.NoError(t, err)
		assert.Equal(t, "Updated task 1\n", output)

		tasks, loadErr := st.Load()
		assert.NoError(t, loadErr)
		assert.Equal(t, models.PriorityHigh, tasks[0].Priority)
	})
}

func TestUpdateCommand_InvalidPriorityLeavesNameUntouched(t *testing.T) {
	c, st := clitest.SetupCLITest(t)

	_, err := clitest.ExecuteCLICommand(t, c, []string{"add", "Buy milk", "--quiet"})
	assert.NoError(t, err)

	output, err := clitest.ExecuteCLICommand(t, c,
		[]string{"update", "1", "-n", "Renamed", "-p", "urgent", "--json"})
	assert.NoError(t, err)

	result := testutil.ParseJSON(t, output)
	assert.Equal(t, false, result["success"])
	errObj, ok := result["error"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "INVALID_PRIORITY", errObj["code"])

	tasks, err := st.Load()
	assert.NoError(t, err)
	assert.Equal(t, "Buy milk", tasks[0].Name)
	assert.Equal(t, models.PriorityMedium, tasks[0].Priority)
}

func TestUpdateCommand_NotFound(t *testing.T) {
	c, _ := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, c, []string{"update", "9", "-n", "Ghost", "--json"})
	assert.NoError(t, err)

	result := testutil.ParseJSON(t, output)
	assert.Equal(t, false, result["success"])
	errObj, ok := result["error"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "No task found with ID 9", errObj["message"])
}

func TestUpdateCommand_RequiresAField(t *testing.T) {
	c, _ := clitest.SetupCLITest(t)

	_, err := clitest.ExecuteCLICommand(t, c, []string{"add", "Buy milk", "--quiet"})
	assert.NoError(t, err)

	_, err = clitest.ExecuteCLICommand(t, c, []string{"update", "1"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "at least one of --name or --priority")
}

func TestMarkCommand_Toggle(t *testing.T) {
	c, st := clitest.SetupCLITest(t)

	_, err := clitest.ExecuteCLICommand(t, c, []string{"add", "Buy milk", "--quiet"})
	assert.NoError(t, err)

	output, err := clitest.ExecuteCLICommand(t, c, []string{"mark", "1"})
	assert.NoError(t, err)
	assert.Equal(t, "Marked task 1 as completed\n", output)

	tasks, err := st.Load()
	assert.NoError(t, err)
	assert.True(t, tasks[0].Done)

	output, err = clitest.ExecuteCLICommand(t, c, []string{"m", "1"})
	assert.NoError(t, err)
	assert.Equal(t, "Marked task 1 as pending\n", output)

	tasks, err = st.Load()
	assert.NoError(t, err)
	assert.False(t, tasks[0].Done)
}

func TestMarkCommand_NotFound(t *testing.T) {
	c, _ := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, c, []string{"mark", "7", "--json"})
	assert.NoError(t, err)

	result := testutil.ParseJSON(t, output)
	assert.Equal(t, false, result["success"])
}
