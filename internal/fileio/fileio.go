package fileio

import (
	"fmt"
	tea "github.com/charmbracelet/bubbletea"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type SaveCompleteMsg struct {
	FullPath, SuccessMessage, ErrMessage string
}

// extensions for common data-lang values, anything else is saved as .txt
var extensions = map[string]string{
	"bash":       ".sh",
	"go":         ".go",
	"javascript": ".js",
	"js":         ".js",
	"json":       ".json",
	"python":     ".py",
	"sh":         ".sh",
	"shell":      ".sh",
	"toml":       ".toml",
	"yaml":       ".yaml",
	"yml":        ".yaml",
}

func GetSaveCommand(dir, blockID, lang, content string) tea.Cmd {
	return func() tea.Msg {
		path, err := saveToFile(dir, FileName(blockID, lang), content, time.Now())
		if err != nil {
			return SaveCompleteMsg{ErrMessage: fmt.Sprintf("Error saving: %s", err.Error())}
		}
		return SaveCompleteMsg{
			FullPath:       path,
			SuccessMessage: fmt.Sprintf("Saved to %s", path),
		}
	}
}

// FileName builds a plain file name for a block. Block ids come from the page, so path separators and
// dot-only names are replaced to keep the file inside the save directory.
func FileName(blockID, lang string) string {
	ext, ok := extensions[strings.ToLower(lang)]
	if !ok {
		ext = ".txt"
	}
	return safeBase(blockID) + ext
}

func safeBase(blockID string) string {
	name := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == filepath.Separator || r == 0 {
			return '_'
		}
		return r
	}, blockID)
	if strings.Trim(name, ".") == "" {
		return "block"
	}
	return name
}

func saveToFile(dir, fileName, content string, now time.Time) (string, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(absPath, 0755); err != nil {
		return "", err
	}

	pathWithFileName := filepath.Join(absPath, fileName)
	if filepath.Dir(pathWithFileName) != absPath {
		return "", fmt.Errorf("file name %q is not inside %s", fileName, absPath)
	}

	// if file already exists at specified location, append timestamp to filename
	if exists, err := fileOrDirectoryExists(pathWithFileName); err == nil {
		if exists {
			// /home/block-1.go -> /home/block-1_20210101T120000Z.go
			extension := filepath.Ext(pathWithFileName)
			pathWithFileName = strings.TrimSuffix(pathWithFileName, extension) + "_" + now.UTC().Format("20060102T150405Z") + extension
		}
	} else {
		return "", err
	}

	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	if err := os.WriteFile(pathWithFileName, []byte(content), 0644); err != nil {
		return "", err
	}
	return pathWithFileName, nil
}

func fileOrDirectoryExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
