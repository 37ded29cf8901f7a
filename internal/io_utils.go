package internal

import (
	"bufio"
	"os"
	"strings"
)

// writeToFile writes text string to the given filename.
func writeToFile(text, filename string) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteString(text)
	return err
}

// sourceLine is a line of an input file along with its 1-based line number.
type sourceLine struct {
	Number int
	Text   string
}

// readLines returns the lines of the given file with blank lines and `#` comments dropped.
func readLines(file string) ([]sourceLine, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []sourceLine
	scanner := bufio.NewScanner(f)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, sourceLine{Number: n, Text: line})
	}
	return lines, scanner.Err()
}

func addExtension(filename, ext string) string {
	if !strings.HasSuffix(filename, "."+ext) {
		return filename + "." + ext
	}
	return filename
}
