package internal

import (
	"github.com/robinovitch61/copycode/internal/copyaction"
	"github.com/robinovitch61/copycode/internal/keymap"
)

type Config struct {
	KeyMap    keymap.KeyMap
	Copy      copyaction.Config
	Clipboard string
	DryRun    bool
	PagePath  string
	SaveDir   string
	Version   string
	Watch     bool
}
