package contextinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shelp/internal/config"
)

func TestInfoString(t *testing.T) {
	t.Run("empty info renders nothing", func(t *testing.T) {
		assert.Equal(t, "", Info{}.String())
	})

	t.Run("all sections in order", func(t *testing.T) {
		info := Info{
			OS:          "Linux",
			Shell:       "zsh",
			Cwd:         "/home/user/project",
			Environment: "PATH,HOME",
			Programs:    "rg,fd",
		}
		s := info.String()
		assert.Contains(t, s, "You are operating on Linux and your shell is zsh\n")
		assert.Contains(t, s, "You are currently in folder: /home/user/project\n")
		assert.Contains(t, s, "The following environment variables are defined: PATH,HOME\n")
		assert.Contains(t, s, "only use these programs to accomplish the <task>: rg,fd\n")
	})

	t.Run("os without shell", func(t *testing.T) {
		s := Info{OS: "macOS"}.String()
		assert.Equal(t, "You are operating on macOS\n", s)
	})
}

func TestBuildRequest(t *testing.T) {
	info := Info{Environment: "PATH"}
	got := BuildRequest("list all files", info)
	assert.Contains(t, got, "The following environment variables are defined: PATH\n")
	assert.Contains(t, got, "<task>list all files</task>")
}

func TestCollect(t *testing.T) {
	t.Run("explain never exposes programs", func(t *testing.T) {
		cfg := &config.Config{
			Task:     config.TaskExplain,
			OSLabel:  "Linux",
			Programs: nil,
		}
		info := Collect(cfg)
		assert.Empty(t, info.Programs)
	})

	t.Run("ask joins programs and environment", func(t *testing.T) {
		cfg := &config.Config{
			Task:        config.TaskAsk,
			Environment: []string{"PATH", "EDITOR"},
			Programs:    []string{"tar", "ssh"},
		}
		info := Collect(cfg)
		assert.Equal(t, "PATH,EDITOR", info.Environment)
		assert.Equal(t, "tar,ssh", info.Programs)
	})
}
