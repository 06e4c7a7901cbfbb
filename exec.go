package hearts

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"sync"
	"syscall"
	"time"

	"github.com/esimov/hearts/utils"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// DefaultBatchDir is the directory variants are written to when no
// destination is given.
const DefaultBatchDir = "variants"

// Ops holds the output related options of a run.
type Ops struct {
	Dst, PipeName string
	Workers       int
	// Count is the number of variants to generate. With more than one
	// variant Dst is a directory.
	Count int
}

// destination returns Dst, or the default file or directory when Dst is empty.
func (op *Ops) destination() string {
	switch {
	case op.Dst != "":
		return op.Dst
	case op.Count > 1:
		return DefaultBatchDir
	}
	return DefaultExportName
}

// result holds the relevant information about one generated file.
type result struct {
	path string
	err  error
}

// job is one variant of a batch run.
type job struct {
	index int
	path  string
}

// Execute renders the heart of hearts into the destination described by op.
// A single frame is written to a file or to stdout; a batch is spread over a
// bounded pool of workers, each variant seeded with Seed plus its index.
func (p *Processor) Execute(op *Ops) error {
	defaultMsg := utils.StatusLine("composing the heart of hearts...", utils.DefaultMessage)
	if p.Spinner == nil {
		p.Spinner = utils.NewSpinner(defaultMsg, time.Millisecond*80, true)
	}
	now := time.Now()
	op.Dst = op.destination()

	var err error
	if op.Count > 1 {
		err = p.executeBatch(op)
	} else {
		ext := filepath.Ext(op.Dst)
		if op.Dst == op.PipeName {
			ext = ".svg"
		}
		if !isValidExtension(ext, SupportedExtensions) {
			err = errors.Errorf("%v file type not supported", ext)
			op.printOpStatus(op.Dst, err)
			return err
		}
		p.Format = ext
		err = op.process(p, op.Dst)
		op.printOpStatus(op.Dst, err)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n", utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
	return nil
}

func (p *Processor) executeBatch(op *Ops) error {
	fi, err := os.Stat(op.Dst)
	switch {
	case err == nil && !fi.IsDir():
		err = errors.Errorf("%s exists and is not a directory", op.Dst)
		op.printOpStatus(op.Dst, err)
		return err
	case err != nil:
		if err := os.MkdirAll(op.Dst, 0755); err != nil {
			return errors.Wrap(err, "unable to create the destination directory")
		}
	}
	ext := p.Format
	if !isValidExtension(ext, SupportedExtensions) {
		ext = ".svg"
	}

	// Limit the concurrently running workers to maxWorkers.
	if op.Workers <= 0 || op.Workers > maxWorkers {
		op.Workers = runtime.NumCPU()
	}
	if p.Seed == 0 {
		p.Seed = time.Now().UnixNano()
	}

	// Workers share the terminal, so a single spinner covers the whole batch.
	if p.Spinner != nil {
		p.Spinner.Start()
		defer p.Spinner.Stop()
	}

	var wg sync.WaitGroup
	ch := make(chan result)
	done := make(chan struct{})
	defer close(done)

	jobs := variants(done, op.Dst, ext, op.Count)

	wg.Add(op.Workers)
	for i := 0; i < op.Workers; i++ {
		go func() {
			defer wg.Done()
			op.consumer(p, ext, ch, done, jobs)
		}()
	}

	// Close the channel after the values are consumed.
	go func() {
		defer close(ch)
		wg.Wait()
	}()

	var firstErr error
	for res := range ch {
		if res.err != nil && firstErr == nil {
			firstErr = res.err
		}
		op.printOpStatus(res.path, res.err)
	}
	return firstErr
}

// variants starts a goroutine sending one job per variant. It stops early
// when done is closed.
func variants(done <-chan struct{}, dir, ext string, count int) <-chan job {
	jobs := make(chan job)
	go func() {
		defer close(jobs)
		for i := 0; i < count; i++ {
			j := job{
				index: i,
				path:  filepath.Join(dir, fmt.Sprintf("variant-%03d%s", i, ext)),
			}
			select {
			case <-done:
				return
			case jobs <- j:
			}
		}
	}()
	return jobs
}

// consumer renders the jobs received on the jobs channel, each with its own
// processor, and reports them on res.
func (op *Ops) consumer(
	p *Processor,
	ext string,
	res chan<- result,
	done <-chan struct{},
	jobs <-chan job,
) {
	for j := range jobs {
		err := op.process(p.variant(j.index, ext), j.path)

		select {
		case <-done:
			return
		case res <- result{
			path: j.path,
			err:  err,
		}:
		}
	}
}

// process renders one frame into the out file and returns the error in case exists.
func (op *Ops) process(p *Processor, out string) error {
	successMsg := utils.StatusLine("the heart of hearts has been generated successfully ✔", utils.SuccessMessage)
	errorMsg := utils.StatusLine("composing the heart of hearts failed ✘", utils.ErrorMessage)

	if p.Spinner != nil {
		p.Spinner.Start()
	}
	stop := func(msg string) {
		if p.Spinner != nil {
			p.Spinner.StopMsg = msg
			p.Spinner.Stop()
		}
	}

	dst, err := op.pathToFile(out)
	if err != nil {
		stop(errorMsg)
		return err
	}

	// Capture CTRL-C signal and restores back the cursor visibility.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	finished := make(chan struct{})
	defer func() {
		signal.Stop(signalChan)
		close(finished)
	}()
	go func() {
		select {
		case <-finished:
			return
		case <-signalChan:
		}
		if p.Spinner != nil {
			p.Spinner.RestoreCursor()
		}
		if f, ok := dst.(*os.File); ok && f != os.Stdout {
			os.Remove(f.Name())
		}
		os.Exit(1)
	}()

	err = p.Process(dst)
	if f, ok := dst.(*os.File); ok && f != os.Stdout {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			// remove the partially written file in case of an error
			os.Remove(f.Name())
		}
	}
	if err != nil {
		stop(errorMsg)
		return err
	}
	stop(successMsg)
	return nil
}

// pathToFile converts the destination path to a writable file.
func (op *Ops) pathToFile(out string) (io.Writer, error) {
	// Check if the destination is a pipe name or a regular file.
	if out == op.PipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return nil, errors.New("`-` should be used with a pipe for stdout")
		}
		return os.Stdout, nil
	}
	dst, err := os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create the destination file")
	}
	return dst, nil
}

// printOpStatus displays the relevant information about the generated file.
func (op *Ops) printOpStatus(fname string, err error) {
	if err != nil {
		log.Printf(
			utils.DecorateText("\nError generating the heart of hearts: %s", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err.Error()), utils.DefaultMessage),
		)
		return
	}
	if fname != op.PipeName {
		fmt.Fprintf(os.Stderr, "\nThe file has been saved as: %s %s\n\n",
			utils.DecorateText(filepath.Base(fname), utils.SuccessMessage),
			utils.DefaultColor,
		)
	}
}
