package overlay

import (
	"errors"
	"fmt"
	"os"
)

// ErrNoInput is returned by Merge when there is nothing to merge.
var ErrNoInput = errors.New("overlay: no input documents")

// Merge concatenates the pages of docs, in order, into one flat PDF. It
// assembles a qualification file from the application and attachments
// such as the motor vehicle record and the medical card.
func Merge(docs ...[]byte) ([]byte, error) {
	if len(docs) == 0 {
		return nil, ErrNoInput
	}
	pdf := newPDF()
	for i, data := range docs {
		src, err := openSource(data)
		if err != nil {
			return nil, fmt.Errorf("overlay: document %d: %w", i+1, err)
		}
		for n := 1; n <= src.pages; n++ {
			src.addPage(pdf, n)
		}
	}
	return output(pdf)
}

// MergeFiles merges the PDFs at inputPaths and writes the result to
// outputPath.
func MergeFiles(outputPath string, inputPaths ...string) error {
	docs := make([][]byte, 0, len(inputPaths))
	for _, p := range inputPaths {
		data, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("overlay: %w", err)
		}
		docs = append(docs, data)
	}
	out, err := Merge(docs...)
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, out, 0o644)
}
