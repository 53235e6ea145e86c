package ui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

const maxConsoleChars = 200000

// console is a read-only multiline entry that implements launch.Logger.
// Lines are timestamped and appended on the fyne thread, so workers can
// log from any goroutine.
type console struct {
	entry *widget.Entry
}

func newConsole(placeholder string) *console {
	entry := widget.NewMultiLineEntry()
	entry.Disable()
	entry.SetMinRowsVisible(8)
	entry.SetPlaceHolder(placeholder)
	return &console{entry: entry}
}

func (c *console) Infof(format string, args ...any)    { c.append("", format, args...) }
func (c *console) Successf(format string, args ...any) { c.append("OK", format, args...) }
func (c *console) Warnf(format string, args ...any)    { c.append("WARN", format, args...) }
func (c *console) Errorf(format string, args ...any)   { c.append("ERROR", format, args...) }

func (c *console) append(tag, format string, args ...any) {
	line := fmt.Sprintf("[%s] ", time.Now().Format("15:04:05"))
	if tag != "" {
		line += tag + ": "
	}
	line += fmt.Sprintf(format, args...)

	fyne.Do(func() {
		text := line
		if c.entry.Text != "" {
			text = c.entry.Text + "\n" + line
		}
		if len(text) > maxConsoleChars {
			text = "[console output truncated]\n" + text[len(text)-maxConsoleChars:]
		}
		c.entry.SetText(text)
	})
}

func (c *console) clear() {
	fyne.Do(func() {
		c.entry.SetText("")
	})
}
