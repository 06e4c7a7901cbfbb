package utils

import (
	"fmt"
	"math"
	"time"
)

// MessageType selects the color of a terminal message.
type MessageType int

const (
	DefaultMessage MessageType = iota
	SuccessMessage
	ErrorMessage
	StatusMessage
)

// ANSI colors of the terminal output.
const (
	DefaultColor = "\x1b[0m"
	StatusColor  = "\x1b[36m"
	SuccessColor = "\x1b[32m"
	ErrorColor   = "\x1b[31m"
)

var messageColors = map[MessageType]string{
	DefaultMessage: DefaultColor,
	SuccessMessage: SuccessColor,
	ErrorMessage:   ErrorColor,
	StatusMessage:  StatusColor,
}

// Banner prefixes every status line of the command line tool.
const Banner = "♥ HEARTS"

// DecorateText wraps s in the color of msgType and resets the color afterwards.
// Unknown message types leave s untouched.
func DecorateText(s string, msgType MessageType) string {
	c, ok := messageColors[msgType]
	if !ok {
		return s
	}
	return c + s + DefaultColor
}

// StatusLine returns "♥ HEARTS ⇢ msg", with msg colored as msgType.
func StatusLine(msg string, msgType MessageType) string {
	return fmt.Sprintf("%s %s %s",
		DecorateText(Banner, StatusMessage),
		DecorateText("⇢", DefaultMessage),
		DecorateText(msg, msgType),
	)
}

// FormatTime prints a render duration: milliseconds below one second,
// seconds below one minute and minutes with seconds above.
func FormatTime(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	return fmt.Sprintf("%dm %.2fs", int64(d.Minutes()), math.Mod(d.Seconds(), 60))
}
