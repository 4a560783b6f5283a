// vellum-theme validates a theme TOML file and prints the resolved values.
package main

import (
	"fmt"
	"os"

	"github.com/vellumui/vellum"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch cmd := os.Args[1]; cmd {
	case "check":
		if len(os.Args) != 3 {
			printUsage()
			os.Exit(1)
		}
		if err := check(os.Args[2]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("vellum-theme %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func check(path string) error {
	theme, err := vellum.LoadThemeFile(path)
	if err != nil {
		return err
	}

	fmt.Printf("%s: ok\n", path)
	fmt.Printf("  label color:          #%02X%02X%02X%02X\n",
		theme.LabelColor.R, theme.LabelColor.G, theme.LabelColor.B, theme.LabelColor.A)
	fmt.Printf("  button text:          #%02X%02X%02X%02X\n",
		theme.ButtonTextColor.R, theme.ButtonTextColor.G, theme.ButtonTextColor.B, theme.ButtonTextColor.A)
	fmt.Printf("  button fill:          #%02X%02X%02X%02X\n",
		theme.ButtonFillColor.R, theme.ButtonFillColor.G, theme.ButtonFillColor.B, theme.ButtonFillColor.A)
	fmt.Printf("  button border:        #%02X%02X%02X%02X\n",
		theme.ButtonBorderColor.R, theme.ButtonBorderColor.G, theme.ButtonBorderColor.B, theme.ButtonBorderColor.A)
	fmt.Printf("  button selected fill: #%02X%02X%02X%02X\n",
		theme.ButtonSelectedFillColor.R, theme.ButtonSelectedFillColor.G, theme.ButtonSelectedFillColor.B, theme.ButtonSelectedFillColor.A)
	fmt.Printf("  button active fill:   #%02X%02X%02X%02X\n",
		theme.ButtonActiveFillColor.R, theme.ButtonActiveFillColor.G, theme.ButtonActiveFillColor.B, theme.ButtonActiveFillColor.A)
	fmt.Printf("  padding:              %dpx\n", theme.Padding)
	fmt.Printf("  line height:          %dpx\n", theme.Font.AdvanceY())
	return nil
}

func printUsage() {
	fmt.Println(`vellum-theme - validate vellum theme files

Usage:
  vellum-theme check <theme.toml>   Parse the file and print resolved values
  vellum-theme version              Print the version
  vellum-theme help                 Show this help`)
}
