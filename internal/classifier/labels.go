package classifier

import (
	"bufio"
	"os"
	"strings"
)

// LoadLabels reads the class label file: one label per line, blank lines
// skipped.  Line order must match the model's output order, since score
// index i is resolved to the label on line i.
func LoadLabels(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var labels []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if l := strings.TrimSpace(sc.Text()); l != "" {
			labels = append(labels, l)
		}
	}
	return labels, sc.Err()
}
