// Command solvefile loads a maze from a text file, searches it for a path,
// prints the marked grid, then resets the maze and prints it again.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/config"
	logger "github.com/beka-birhanu/vinom-pathfinder/infrastruture/log"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
)

func main() {
	path := flag.String("file", "./mazefile.txt", "maze description file")
	timeout := flag.Duration("timeout", 5*time.Second, "search time limit")
	flag.Parse()

	log, err := logger.New("SOLVE-FILE", config.ColorMagenta, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(*path, *timeout, os.Stdout, log); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

// run loads, solves, prints, resets and prints again.
func run(path string, timeout time.Duration, out io.Writer, log i.Logger) error {
	m, err := maze.Load(path)
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	log.Info(fmt.Sprintf("Loaded %dx%d maze from %s", m.Rows(), m.Cols(), path))

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	found, err := m.FindPathContext(ctx)
	if err != nil {
		return err
	}
	if found {
		log.Info(fmt.Sprintf("Path found: %d cells, %d dead ends explored", len(m.Path()), m.Explored()))
	} else {
		log.Warning(fmt.Sprintf("No path: %d cells explored", m.Explored()))
	}

	fmt.Fprintln(out, m)
	fmt.Fprintln(out)
	m.Reset()
	fmt.Fprintln(out, m)
	return nil
}
