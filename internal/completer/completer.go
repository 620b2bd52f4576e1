// Package completer provides tab completion for the smash interpreter:
// command names first, then file names for copy and run and directory
// names for list, read from the current directory at completion time.
package completer

import (
	"github.com/chzyer/readline"
	"github.com/spf13/afero"
)

// Completer adapts the interpreter's commands and the filesystem to the
// readline.AutoCompleter interface.
type Completer struct {
	fs                afero.Fs
	readlineCompleter *readline.PrefixCompleter
}

// NewCompleter returns a Completer for the given command names. Arguments
// are completed from fs.
func NewCompleter(names []string, fs afero.Fs) *Completer {

	c := &Completer{fs: fs}

	var items []readline.PrefixCompleterInterface
	for _, name := range names {
		switch name {
		case "copy":
			items = append(items, readline.PcItem(name, readline.PcItemDynamic(c.files, readline.PcItemDynamic(c.files))))
		case "run":
			items = append(items, readline.PcItem(name, readline.PcItemDynamic(c.files)))
		case "list":
			items = append(items, readline.PcItem(name, readline.PcItemDynamic(c.dirs)))
		default:
			items = append(items, readline.PcItem(name))
		}
	}

	c.readlineCompleter = readline.NewPrefixCompleter(items...)

	return c

}

// Do delegates the completion logic to the underlying PrefixCompleter.
// It satisfies the readline.AutoCompleter interface.
func (c *Completer) Do(line []rune, pos int) ([][]rune, int) {
	return c.readlineCompleter.Do(line, pos)
}

// files lists every entry of the current directory, directories with a
// trailing slash.
func (c *Completer) files(string) []string {
	return c.entries(false)
}

// dirs lists the directories of the current directory.
func (c *Completer) dirs(string) []string {
	return c.entries(true)
}

func (c *Completer) entries(onlyDirs bool) []string {

	entries, err := afero.ReadDir(c.fs, ".")
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name()+"/")
		} else if !onlyDirs {
			names = append(names, entry.Name())
		}
	}

	return names

}
