// Package wire provides dependency injection for the textkit commands.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"sync"

	cliadapter "github.com/example/textkit/internal/adapters/cli"
	"github.com/example/textkit/internal/adapters/filesystem"
	"github.com/example/textkit/internal/app"
	"github.com/example/textkit/internal/logger"
	"github.com/example/textkit/internal/ports/primary"
)

var (
	lineCopyService  primary.LineCopyService
	digitFileService primary.DigitFileService
	once             sync.Once
)

// LineCopyService returns the singleton LineCopyService instance.
func LineCopyService() primary.LineCopyService {
	once.Do(initServices)
	return lineCopyService
}

// DigitFileService returns the singleton DigitFileService instance.
func DigitFileService() primary.DigitFileService {
	once.Do(initServices)
	return digitFileService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once, after logging has been set up.
func initServices() {
	files := filesystem.NewTextFileAdapter()
	log := logger.L()

	lineCopyService = app.NewLineCopyService(files, log.With("component", "filtercopy"))
	digitFileService = app.NewDigitFileService(files, nil, log.With("component", "randdigits"))
}

// CopyAdapterWithOutput returns a new CopyAdapter writing to the given output.
// Each call creates a new adapter (adapters are stateless translators).
func CopyAdapterWithOutput(out io.Writer) *cliadapter.CopyAdapter {
	return cliadapter.NewCopyAdapter(LineCopyService(), out)
}

// DigitAdapterWithOutput returns a new DigitAdapter writing to the given output.
func DigitAdapterWithOutput(out io.Writer, verbose bool) *cliadapter.DigitAdapter {
	return cliadapter.NewDigitAdapter(DigitFileService(), out, verbose)
}
