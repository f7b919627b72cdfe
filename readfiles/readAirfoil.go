package readfiles

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/phil-mansfield/table"
	log "github.com/sirupsen/logrus"
)

// ReadAirfoil reads a two column coordinate file, x then y, one point per
// line. Lines starting with '#' are comments. An uncommented first line that
// does not hold two numbers is taken as the section title, as in Selig files.
func ReadAirfoil(filename string, verbose bool) (title string, X, Y []float64, err error) {
	var (
		hasTitle bool
		cols     [][]float64
		path     = filename
	)
	if title, hasTitle, err = readTitle(filename); err != nil {
		return
	}
	if hasTitle {
		var cleanup func()
		if path, cleanup, err = commentTitle(filename, title); err != nil {
			return
		}
		defer cleanup()
	}
	if cols, err = table.ReadTable(path, []int{0, 1}, nil); err != nil {
		err = fmt.Errorf("reading coordinates from %s: %w", filename, err)
		return
	}
	X, Y = cols[0], cols[1]
	if len(X) != len(Y) {
		err = fmt.Errorf("%s: have %d x and %d y coordinates", filename, len(X), len(Y))
		return
	}
	if len(X) < 3 {
		err = fmt.Errorf("%s: need at least 3 points, have %d", filename, len(X))
		return
	}
	if verbose {
		log.WithFields(log.Fields{"file": filename, "title": title, "points": len(X)}).Info("read airfoil")
	}
	return
}

func readTitle(filename string) (title string, uncommented bool, err error) {
	var (
		file *os.File
		line string
	)
	if file, err = os.Open(filename); err != nil {
		return
	}
	defer file.Close()
	reader := bufio.NewReader(file)
	for {
		if line, err = reader.ReadString('\n'); err != nil && err != io.EOF {
			return
		}
		eof := err == io.EOF
		err = nil
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "#"):
			if title == "" {
				title = strings.TrimSpace(strings.TrimLeft(line, "#"))
			}
		case len(line) != 0:
			var x, y float64
			if _, scanErr := fmt.Sscanf(line, "%f %f", &x, &y); scanErr != nil {
				return line, true, nil
			}
			return
		}
		if eof {
			return
		}
	}
}

// commentTitle copies the file with the title line commented out, so the
// table reader sees only numeric rows
func commentTitle(filename, title string) (path string, cleanup func(), err error) {
	var (
		data []byte
		tmp  *os.File
	)
	if data, err = os.ReadFile(filename); err != nil {
		return
	}
	if tmp, err = os.CreateTemp("", "airfoil-*.dat"); err != nil {
		return
	}
	cleanup = func() { _ = os.Remove(tmp.Name()) }
	data = []byte(strings.Replace(string(data), title, "#"+title, 1))
	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		cleanup()
		return
	}
	if err = tmp.Close(); err != nil {
		cleanup()
		return
	}
	return tmp.Name(), cleanup, nil
}
