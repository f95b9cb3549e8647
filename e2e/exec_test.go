package e2e

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const execConfig = `
indicator:
  delay: 50ms
logging:
  level: debug
  format: json
concurrency:
  workers: 2
tasks:
  - name: build
    command: echo building
  - name: test-unit
    command: sleep 0.2 && echo unit
  - name: test-race
    command: sleep 0.2 && echo race
`

func Test_Exec_AllTasks(t *testing.T) {
	runner := NewRunner(t, execConfig)

	code, err := runner.Run(15*time.Second, "exec")
	require.NoError(t, err)

	assert.Equal(t, 0, code, runner.Stderr())

	output := runner.Output()
	assert.Contains(t, output, "build")
	assert.Contains(t, output, "test-unit")
	assert.Contains(t, output, "test-race")
	assert.Contains(t, output, "3 tasks in")
	assert.Contains(t, output, "ok")

	assert.Contains(t, runner.Stderr(), "building")
	assert.Contains(t, runner.Stderr(), "Task 'build' finished")
}

func Test_Exec_Pattern(t *testing.T) {
	runner := NewRunner(t, execConfig)

	code, err := runner.Run(15*time.Second, "exec", "test-*")
	require.NoError(t, err)

	assert.Equal(t, 0, code, runner.Stderr())

	output := runner.Output()
	assert.Contains(t, output, "2 tasks in")
	assert.NotContains(t, output, "build")
}

func Test_Exec_NoMatch(t *testing.T) {
	runner := NewRunner(t, execConfig)

	code, err := runner.Run(15*time.Second, "exec", "deploy")
	require.NoError(t, err)

	assert.Equal(t, 1, code)
	assert.Contains(t, runner.Output(), "no tasks matched")
}

func Test_Exec_FailingTask(t *testing.T) {
	runner := NewRunner(t, `
logging:
  format: json
tasks:
  - name: ok
    command: "true"
  - name: broken
    command: exit 3
`)

	code, err := runner.Run(15*time.Second, "exec")
	require.NoError(t, err)

	assert.Equal(t, 1, code)

	output := runner.Output()
	assert.Contains(t, output, "1 failed")
	assert.Contains(t, output, "broken")
	assert.Contains(t, runner.Stderr(), "Task 'broken' failed")
}

func Test_Exec_Interrupted(t *testing.T) {
	runner := NewRunner(t, `
logging:
  format: json
tasks:
  - name: forever
    command: sleep 30
`)

	require.NoError(t, runner.Start("exec"))
	require.NoError(t, runner.WaitForLog("Running 1 task(s)", 10*time.Second))

	start := time.Now()
	require.NoError(t, runner.Stop())

	assert.Less(t, time.Since(start), 10*time.Second)
	assert.True(t, strings.Contains(runner.Output(), "forever"), runner.Stderr())
}

func Test_Exec_InvalidConfig(t *testing.T) {
	runner := NewRunner(t, `
indicator:
  item: confetti
`)

	code, err := runner.Run(10*time.Second, "exec")
	require.NoError(t, err)

	assert.Equal(t, 1, code)
	assert.Contains(t, runner.Stderr(), "unknown indicator item")
}
