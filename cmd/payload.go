package cmd

import (
	"fmt"
	"github.com/robinovitch61/copycode/internal/copyaction"
	"github.com/robinovitch61/copycode/internal/feedback"
	"github.com/robinovitch61/copycode/internal/payload"
	"github.com/robinovitch61/copycode/internal/source"
	"github.com/robinovitch61/copycode/internal/style"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

var (
	decodeCmd = &cobra.Command{
		Use:   "decode [file]",
		Short: "Print a stored payload with its line break markers turned back into newlines",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return transform(cmd, args, payload.Decode)
		},
	}

	encodeCmd = &cobra.Command{
		Use:   "encode [file]",
		Short: "Print text with its newlines escaped as line break markers",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return transform(cmd, args, payload.Encode)
		},
	}

	copyCmd = &cobra.Command{
		Use:   "copy [page.html]",
		Short: "Copy a single payload without the interactive view",
		Long: `Copy a single payload without the interactive view.

The payload is either given directly with --code, or taken from the block with --id on a page
(use - to read the page from stdin). Without --id, the page's first block is copied.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCopy,
	}
)

func init() {
	addCopyFlags(copyCmd.Flags())
}

func addCopyFlags(flags *pflag.FlagSet) {
	flags.String("code", "", "Raw payload to copy")
	flags.String("id", "", "Id of the block to copy from the page")
	flags.Bool("no-wait", false, "If present, exit right after copying instead of waiting for the copied state to clear")
}

func transform(cmd *cobra.Command, args []string, f func(string) string) error {
	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()
		in = file
	}
	b, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), f(string(b)))
	return err
}

// waitScheduler lets copy wait for every scheduled reset before exiting
type waitScheduler struct {
	wg *sync.WaitGroup
}

func (s waitScheduler) AfterFunc(d time.Duration, f func()) {
	s.wg.Add(1)
	time.AfterFunc(d, func() {
		defer s.wg.Done()
		f()
	})
}

func runCopy(cmd *cobra.Command, args []string) error {
	el, err := copyTarget(cmd, args)
	if err != nil {
		return err
	}
	copyConfig, err := getCopyConfig(cmd)
	if err != nil {
		return err
	}
	writer, err := newWriter(
		cmd.Flags().Lookup("clipboard").Value.String(),
		cmd.Flags().Lookup("dry-run").Value.String() == "true",
	)
	if err != nil {
		return err
	}

	var wg sync.WaitGroup
	store := feedback.NewMemory()
	handler := copyaction.NewHandler(copyConfig, writer, store).WithScheduler(waitScheduler{wg: &wg})
	res := handler.Copy(el)

	out := cmd.OutOrStdout()
	summary := copySummary(el, res)
	if res.Err != nil {
		if !res.Activated {
			return fmt.Errorf("error copying %s to clipboard: %w", el.ID, res.Err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: clipboard write failed: %v\n", res.Err)
	}

	noWait, _ := cmd.Flags().GetBool("no-wait")
	if noWait {
		fmt.Fprintf(out, "%s %s\n", style.Copied.Render("[copied]"), summary)
		return nil
	}
	fmt.Fprintf(out, "%s %s", style.Copied.Render("[copied]"), summary)
	wg.Wait()
	fmt.Fprintf(out, "\r\x1b[K%s\n", summary)
	return nil
}

func copyTarget(cmd *cobra.Command, args []string) (copyaction.Element, error) {
	code, _ := cmd.Flags().GetString("code")
	id, _ := cmd.Flags().GetString("id")
	if cmd.Flags().Lookup("code").Changed {
		if len(args) > 0 || id != "" {
			return copyaction.Element{}, fmt.Errorf("error: --code can't be combined with a page or --id")
		}
		return copyaction.Element{ID: "code", Payload: code}, nil
	}
	if len(args) == 0 {
		return copyaction.Element{}, fmt.Errorf("error: give either --code or a page")
	}

	elements, err := source.Load(args[0])
	if err != nil {
		return copyaction.Element{}, err
	}
	if len(elements) == 0 {
		return copyaction.Element{}, fmt.Errorf("no copyable blocks found in %s", args[0])
	}
	if id == "" {
		return elements[0], nil
	}
	el, ok := source.Find(elements, id)
	if !ok {
		return copyaction.Element{}, fmt.Errorf("no block with id %q in %s", id, args[0])
	}
	return el, nil
}

func copySummary(el copyaction.Element, res copyaction.Result) string {
	lines := strings.Count(res.Text, "\n") + 1
	if res.Text == "" {
		lines = 0
	}
	noun := "lines"
	if lines == 1 {
		noun = "line"
	}
	return fmt.Sprintf("%s: %d %s", el.ID, lines, noun)
}
