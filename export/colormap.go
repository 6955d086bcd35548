package export

import (
	"errors"
	"fmt"
	"os"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"
)

// ColorMapName is name of color mapping rules file expected in product
// directory for production PDF exports.
const ColorMapName = "colormap.xml"

// readColorMap loads color mapping rules and returns number of top level rule
// elements. Rules older tools produced may declare legacy encodings.
func readColorMap(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
	}
	if _, err := doc.ReadFrom(f); err != nil {
		return 0, fmt.Errorf("unable to parse color mapping rules: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return 0, errors.New("color mapping rules have no root element")
	}
	return len(root.ChildElements()), nil
}
