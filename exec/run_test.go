package exec_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lintelhq/lintel-cli/exec"
)

func TestSetEnv(t *testing.T) {
	c, cancel := exec.BuildExec(exec.Cmd{
		Name: "example",
		Env: map[string]string{
			"foo": "bar",
		},
	})

	assert.Nil(t, cancel)
	assert.Equal(t, []string{"foo=bar"}, c.Env)
}

func TestAppendEnv(t *testing.T) {
	os.Setenv("alice", "bob")
	c, _ := exec.BuildExec(exec.Cmd{
		Name: "example",
		WithEnv: map[string]string{
			"foo": "bar",
		},
	})

	assert.Contains(t, c.Env, "foo=bar")
	assert.Contains(t, c.Env, "alice=bob")
}

func TestDefaultEnv(t *testing.T) {
	os.Setenv("alice", "bob")
	c, _ := exec.BuildExec(exec.Cmd{
		Name: "example",
	})
	assert.Contains(t, c.Env, "alice=bob")
}

func TestTimeoutSetsCancel(t *testing.T) {
	c, cancel := exec.BuildExec(exec.Cmd{
		Name:    "example",
		Timeout: "10s",
	})
	assert.NotNil(t, cancel)
	cancel()
	assert.NotNil(t, c)
}
