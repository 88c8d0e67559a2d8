package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the Stoich banner with the running version.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Subtle gradient (teal to violet)
	s1 := termenv.String("  ___ _        _    _    ").Foreground(p.Color("#2dd4bf"))
	s2 := termenv.String(" / __| |_ ___ (_)__| |_  ").Foreground(p.Color("#22d3ee"))
	s3 := termenv.String(" \\__ \\  _/ _ \\| / _| ' \\ ").Foreground(p.Color("#818cf8"))
	s4 := termenv.String(" |___/\\__\\___/|_\\__|_||_|").Foreground(p.Color("#a78bfa"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	ver := termenv.String(" chemical equation balancer " + version).Faint()
	fmt.Println(ver)
	fmt.Println()
}

// Highlight styles a balanced equation for terminal output.
func Highlight(equation string) string {
	p := termenv.ColorProfile()
	return termenv.String(equation).Foreground(p.Color("#34d399")).Bold().String()
}
